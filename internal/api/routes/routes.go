package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/careersheet/internal/api/handlers"
)

type Deps struct {
	Profile        *handlers.ProfileHandler
	WorkExperience *handlers.WorkExperienceHandler
	SkillUsage     *handlers.SkillUsageHandler
	Skill          *handlers.SkillHandler
	SkillCategory  *handlers.SkillCategoryHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/profiles", d.Profile.Create)
	r.GET("/profiles", d.Profile.List)
	r.GET("/profiles/:id", d.Profile.Get)
	r.DELETE("/profiles/:id", d.Profile.Delete)
	r.GET("/profiles/:id/skill-summary", d.Profile.SkillSummary)

	r.POST("/profiles/:id/work-experiences", d.WorkExperience.Create)
	r.GET("/profiles/:id/work-experiences", d.WorkExperience.ListByProfile)
	r.DELETE("/work-experiences/:id", d.WorkExperience.Delete)

	r.POST("/work-experiences/:id/skill-usages", d.SkillUsage.Create)
	r.DELETE("/skill-usages/:id", d.SkillUsage.Delete)

	r.POST("/skills", d.Skill.Create)
	r.GET("/skills", d.Skill.List)
	r.GET("/skills/:name", d.Skill.GetByName)

	r.POST("/skill-categories", d.SkillCategory.Create)
	r.GET("/skill-categories", d.SkillCategory.ListActive)
	r.GET("/skill-categories/:code", d.SkillCategory.GetByCode)
	r.DELETE("/skill-categories/:id", d.SkillCategory.Delete)
}
