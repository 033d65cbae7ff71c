package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/services"
	"github.com/yoockh/careersheet/internal/utils"
)

type SkillCategoryHandler struct {
	svc services.SkillCategoryService
}

func NewSkillCategoryHandler(svc services.SkillCategoryService) *SkillCategoryHandler {
	return &SkillCategoryHandler{svc: svc}
}

type CreateSkillCategoryRequest struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	DisplayOrder int    `json:"display_order,omitempty"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

func (h *SkillCategoryHandler) Create(c *gin.Context) {
	var req CreateSkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillCategoryHandler.Create", "invalid request body", err))
		return
	}

	cat := &models.SkillCategory{
		Name:         req.Name,
		Code:         req.Code,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	created, err := h.svc.Create(c.Request.Context(), cat)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SkillCategoryHandler) ListActive(c *gin.Context) {
	out, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SkillCategoryHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")

	cat, err := h.svc.GetByCode(c.Request.Context(), code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *SkillCategoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
