package services

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/careersheet/internal/dates"
	"github.com/yoockh/careersheet/internal/experience"
	"github.com/yoockh/careersheet/internal/models"
	pgrepo "github.com/yoockh/careersheet/internal/repositories/postgres"
	"github.com/yoockh/careersheet/internal/utils"
	"github.com/yoockh/careersheet/internal/validation"
)

type SkillUsageService interface {
	Add(ctx context.Context, workExperienceID uint, u *models.SkillUsage) (*models.SkillUsage, error)
	Delete(ctx context.Context, id uint) error
}

type skillUsageService struct {
	usages      pgrepo.SkillUsageRepository
	experiences pgrepo.WorkExperienceRepository
	skills      pgrepo.SkillRepository
	now         experience.Clock
}

func NewSkillUsageService(usages pgrepo.SkillUsageRepository, experiences pgrepo.WorkExperienceRepository, skills pgrepo.SkillRepository, now experience.Clock) SkillUsageService {
	if now == nil {
		now = time.Now
	}
	return &skillUsageService{usages: usages, experiences: experiences, skills: skills, now: now}
}

func (s *skillUsageService) Add(ctx context.Context, workExperienceID uint, u *models.SkillUsage) (*models.SkillUsage, error) {
	const op = "SkillUsageService.Add"

	if u == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "skill usage is required", nil)
	}

	parent, err := s.experiences.GetByID(ctx, workExperienceID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load work experience", err)
	}
	u.WorkExperienceID = workExperienceID

	today := dates.FromTime(s.now())
	verrs := validation.ValidateSkillUsage(u, parent, today)
	if u.SkillID == 0 {
		verrs.Add("skill_id", "is required")
	} else if _, err := s.skills.GetByID(ctx, u.SkillID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			verrs.Add("skill_id", "does not reference an existing skill")
		} else {
			return nil, utils.E(utils.CodeInternal, op, "failed to load skill", err)
		}
	}
	if !verrs.Empty() {
		return nil, utils.E(utils.CodeValidation, op, "skill usage validation failed", verrs)
	}

	exists, err := s.usages.ExistsForSkill(ctx, workExperienceID, u.SkillID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing usage", err)
	}
	if exists {
		return nil, utils.E(utils.CodeConflict, op, "skill is already recorded for this work experience", nil)
	}

	if err := s.usages.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "skill is already recorded for this work experience", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill usage", err)
	}
	return u, nil
}

func (s *skillUsageService) Delete(ctx context.Context, id uint) error {
	const op = "SkillUsageService.Delete"

	if err := s.usages.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "skill usage not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete skill usage", err)
	}
	return nil
}
