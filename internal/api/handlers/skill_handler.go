package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/services"
	"github.com/yoockh/careersheet/internal/utils"
)

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

type CreateSkillRequest struct {
	Name            string `json:"name"`
	DisplayName     string `json:"display_name,omitempty"`
	SkillCategoryID uint   `json:"skill_category_id"`
}

// SkillResponse adds the derived category label to the stored fields.
type SkillResponse struct {
	models.Skill
	CategoryDisplayName string `json:"category_display_name"`
}

func toSkillResponse(s models.Skill) SkillResponse {
	return SkillResponse{Skill: s, CategoryDisplayName: s.CategoryDisplayName()}
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Create", "invalid request body", err))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &models.Skill{
		Name:            req.Name,
		DisplayName:     req.DisplayName,
		SkillCategoryID: req.SkillCategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSkillResponse(*created))
}

func (h *SkillHandler) GetByName(c *gin.Context) {
	s, err := h.svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSkillResponse(*s))
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, toSkillResponse(s))
	}
	c.JSON(http.StatusOK, out)
}
