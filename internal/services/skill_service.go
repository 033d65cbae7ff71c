package services

import (
	"context"
	"errors"

	"github.com/yoockh/careersheet/internal/models"
	pgrepo "github.com/yoockh/careersheet/internal/repositories/postgres"
	"github.com/yoockh/careersheet/internal/utils"
	"github.com/yoockh/careersheet/internal/validation"
)

type SkillService interface {
	Create(ctx context.Context, sk *models.Skill) (*models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	List(ctx context.Context) ([]models.Skill, error)
}

type skillService struct {
	skills     pgrepo.SkillRepository
	categories pgrepo.SkillCategoryRepository
}

func NewSkillService(skills pgrepo.SkillRepository, categories pgrepo.SkillCategoryRepository) SkillService {
	return &skillService{skills: skills, categories: categories}
}

func (s *skillService) Create(ctx context.Context, sk *models.Skill) (*models.Skill, error) {
	const op = "SkillService.Create"

	if sk == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "skill is required", nil)
	}

	verrs := validation.ValidateSkill(sk)
	if sk.SkillCategoryID != 0 {
		if _, err := s.categories.GetByID(ctx, sk.SkillCategoryID); err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				verrs.Add("skill_category_id", "does not reference an existing category")
			} else {
				return nil, utils.E(utils.CodeInternal, op, "failed to load skill category", err)
			}
		}
	}
	// Pre-check only; the unique index on name is the race-safe guard.
	if sk.Name != "" {
		if _, err := s.skills.GetByName(ctx, sk.Name); err == nil {
			verrs.Add("name", "is already taken")
		} else if !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to check skill name", err)
		}
	}
	if !verrs.Empty() {
		return nil, utils.E(utils.CodeValidation, op, "skill validation failed", verrs)
	}

	if err := s.skills.Create(ctx, sk); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "skill name is already taken", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}
	return sk, nil
}

func (s *skillService) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	const op = "SkillService.GetByName"

	if name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	sk, err := s.skills.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "skill not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get skill", err)
	}
	return sk, nil
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	const op = "SkillService.List"

	out, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}
	return out, nil
}
