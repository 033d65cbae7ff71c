package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/careersheet/internal/dates"
	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/services"
	"github.com/yoockh/careersheet/internal/utils"
)

type WorkExperienceHandler struct {
	svc services.WorkExperienceService
}

func NewWorkExperienceHandler(svc services.WorkExperienceService) *WorkExperienceHandler {
	return &WorkExperienceHandler{svc: svc}
}

type CreateWorkExperienceRequest struct {
	CompanyName              string      `json:"company_name"`
	Position                 string      `json:"position,omitempty"`
	StartDate                dates.Date  `json:"start_date"`
	EndDate                  *dates.Date `json:"end_date,omitempty"`
	JobDescription           string      `json:"job_description,omitempty"`
	Achievements             string      `json:"achievements,omitempty"`
	TechnicalSelectionReason string      `json:"technical_selection_reason,omitempty"`
	DisplayOrder             int         `json:"display_order,omitempty"`
}

func (h *WorkExperienceHandler) Create(c *gin.Context) {
	profileID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateWorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "WorkExperienceHandler.Create", "invalid request body", err))
		return
	}

	w := &models.WorkExperience{
		CompanyName:              req.CompanyName,
		Position:                 req.Position,
		StartDate:                req.StartDate,
		EndDate:                  req.EndDate,
		JobDescription:           req.JobDescription,
		Achievements:             req.Achievements,
		TechnicalSelectionReason: req.TechnicalSelectionReason,
		DisplayOrder:             req.DisplayOrder,
	}

	created, err := h.svc.Add(c.Request.Context(), profileID, w)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *WorkExperienceHandler) ListByProfile(c *gin.Context) {
	profileID, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.svc.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *WorkExperienceHandler) Delete(c *gin.Context) {
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
