package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/careersheet/internal/dates"
	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/services"
	"github.com/yoockh/careersheet/internal/utils"
)

type SkillUsageHandler struct {
	svc services.SkillUsageService
}

func NewSkillUsageHandler(svc services.SkillUsageService) *SkillUsageHandler {
	return &SkillUsageHandler{svc: svc}
}

type CreateSkillUsageRequest struct {
	SkillID      uint        `json:"skill_id"`
	StartDate    dates.Date  `json:"start_date"`
	EndDate      *dates.Date `json:"end_date,omitempty"`
	UsageContext string      `json:"usage_context,omitempty"`
}

func (h *SkillUsageHandler) Create(c *gin.Context) {
	workExperienceID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateSkillUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillUsageHandler.Create", "invalid request body", err))
		return
	}

	u := &models.SkillUsage{
		SkillID:      req.SkillID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		UsageContext: req.UsageContext,
	}

	created, err := h.svc.Add(c.Request.Context(), workExperienceID, u)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SkillUsageHandler) Delete(c *gin.Context) {
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
