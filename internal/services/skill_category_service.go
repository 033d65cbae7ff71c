package services

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/careersheet/internal/cache"
	"github.com/yoockh/careersheet/internal/models"
	pgrepo "github.com/yoockh/careersheet/internal/repositories/postgres"
	"github.com/yoockh/careersheet/internal/utils"
	"github.com/yoockh/careersheet/internal/validation"
)

const categoryCacheTTL = time.Hour

type SkillCategoryService interface {
	Create(ctx context.Context, c *models.SkillCategory) (*models.SkillCategory, error)
	GetByCode(ctx context.Context, code string) (*models.SkillCategory, error)
	ListActive(ctx context.Context) ([]models.SkillCategory, error)
	Delete(ctx context.Context, id uint) error
}

type skillCategoryService struct {
	categories pgrepo.SkillCategoryRepository
	skills     pgrepo.SkillRepository
	cache      cache.Cache
}

func NewSkillCategoryService(categories pgrepo.SkillCategoryRepository, skills pgrepo.SkillRepository, c cache.Cache) SkillCategoryService {
	return &skillCategoryService{categories: categories, skills: skills, cache: c}
}

func (s *skillCategoryService) Create(ctx context.Context, c *models.SkillCategory) (*models.SkillCategory, error) {
	const op = "SkillCategoryService.Create"

	if c == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "skill category is required", nil)
	}

	verrs := validation.ValidateSkillCategory(c)
	// Pre-check only; the unique index on code is the race-safe guard.
	if c.Code != "" {
		if _, err := s.categories.GetByCode(ctx, c.Code); err == nil {
			verrs.Add("code", "is already taken")
		} else if !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to check category code", err)
		}
	}
	if !verrs.Empty() {
		return nil, utils.E(utils.CodeValidation, op, "skill category validation failed", verrs)
	}

	if err := s.categories.Create(ctx, c); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "category code is already taken", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill category", err)
	}
	return c, nil
}

// GetByCode looks a category up by its code, serving from the cache for up
// to an hour. Cache failures fall through to the database.
func (s *skillCategoryService) GetByCode(ctx context.Context, code string) (*models.SkillCategory, error) {
	const op = "SkillCategoryService.GetByCode"

	if code == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "code is required", nil)
	}

	key := "skill_category:" + code
	if s.cache != nil {
		var cached models.SkillCategory
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	c, err := s.categories.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "skill category not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get skill category", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, c, categoryCacheTTL)
	}
	return c, nil
}

func (s *skillCategoryService) ListActive(ctx context.Context) ([]models.SkillCategory, error) {
	const op = "SkillCategoryService.ListActive"

	out, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skill categories", err)
	}
	return out, nil
}

// Delete refuses to remove a category while any skill still references it.
func (s *skillCategoryService) Delete(ctx context.Context, id uint) error {
	const op = "SkillCategoryService.Delete"

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "skill category not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load skill category", err)
	}

	count, err := s.skills.CountByCategory(ctx, id)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to count referencing skills", err)
	}
	if count > 0 {
		return utils.E(utils.CodeConflict, op, "skill category still has skills", nil)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete skill category", err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "skill_category:"+c.Code)
	}
	return nil
}
