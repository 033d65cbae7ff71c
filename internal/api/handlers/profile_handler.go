package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/careersheet/internal/dates"
	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/services"
	"github.com/yoockh/careersheet/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type CreateProfileRequest struct {
	Name          string      `json:"name"`
	Birthday      dates.Date  `json:"birthday"`
	Gender        *int        `json:"gender,omitempty"`
	CareerProfile string      `json:"career_profile,omitempty"`
	JobSummary    string      `json:"job_summary,omitempty"`
	DocumentDate  *dates.Date `json:"document_date,omitempty"`
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Create", "invalid request body", err))
		return
	}

	p := &models.Profile{
		Name:          req.Name,
		Birthday:      req.Birthday,
		CareerProfile: req.CareerProfile,
		JobSummary:    req.JobSummary,
	}
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		p.Gender = &g
	}
	if req.DocumentDate != nil {
		p.DocumentDate = *req.DocumentDate
	}

	created, err := h.svc.Create(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProfileHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
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

// SkillSummary returns the ranked per-skill experience totals.
func (h *ProfileHandler) SkillSummary(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.svc.SkillSummary(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
