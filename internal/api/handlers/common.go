package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/careersheet/internal/utils"
	"github.com/yoockh/careersheet/internal/validation"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

// ValidationErrorResponse is the 422 body: every failed rule, field-scoped.
type ValidationErrorResponse struct {
	Code   utils.Code              `json:"code"`
	Errors []validation.FieldError `json:"errors"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(status, ValidationErrorResponse{
			Code:   utils.CodeValidation,
			Errors: verrs,
		})
		return
	}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Params", name+" must be a positive integer", err))
		return 0, false
	}
	return uint(v), true
}
