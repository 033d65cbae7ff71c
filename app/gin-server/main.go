package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/careersheet/config"
	"github.com/yoockh/careersheet/internal/api/handlers"
	"github.com/yoockh/careersheet/internal/api/middleware"
	"github.com/yoockh/careersheet/internal/api/routes"
	"github.com/yoockh/careersheet/internal/cache"
	"github.com/yoockh/careersheet/internal/logger"
	"github.com/yoockh/careersheet/internal/models"
	pgrepo "github.com/yoockh/careersheet/internal/repositories/postgres"
	"github.com/yoockh/careersheet/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.PostgresDB.AutoMigrate(
		&models.SkillCategory{},
		&models.Skill{},
		&models.Profile{},
		&models.WorkExperience{},
		&models.SkillUsage{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// Init Redis (skill category cache)
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	db := config.PostgresDB
	redisCache := cache.NewRedisCache(config.RedisClient)

	profileRepo := pgrepo.NewProfileRepo(db)
	workExperienceRepo := pgrepo.NewWorkExperienceRepo(db)
	skillUsageRepo := pgrepo.NewSkillUsageRepo(db)
	skillRepo := pgrepo.NewSkillRepo(db)
	skillCategoryRepo := pgrepo.NewSkillCategoryRepo(db)

	now := time.Now

	profileSvc := services.NewProfileService(profileRepo, now)
	workExperienceSvc := services.NewWorkExperienceService(workExperienceRepo, profileRepo, now)
	skillUsageSvc := services.NewSkillUsageService(skillUsageRepo, workExperienceRepo, skillRepo, now)
	skillSvc := services.NewSkillService(skillRepo, skillCategoryRepo)
	skillCategorySvc := services.NewSkillCategoryService(skillCategoryRepo, skillRepo, redisCache)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Profile:        handlers.NewProfileHandler(profileSvc),
		WorkExperience: handlers.NewWorkExperienceHandler(workExperienceSvc),
		SkillUsage:     handlers.NewSkillUsageHandler(skillUsageSvc),
		Skill:          handlers.NewSkillHandler(skillSvc),
		SkillCategory:  handlers.NewSkillCategoryHandler(skillCategorySvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
