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

// WorkExperienceView is a work experience together with its computed
// employment duration and ongoing flag.
type WorkExperienceView struct {
	models.WorkExperience
	Current  bool                `json:"current"`
	Duration experience.Duration `json:"duration"`
}

type WorkExperienceService interface {
	Add(ctx context.Context, profileID uint, w *models.WorkExperience) (*models.WorkExperience, error)
	ListByProfile(ctx context.Context, profileID uint) ([]WorkExperienceView, error)
	Delete(ctx context.Context, id uint) error
}

type workExperienceService struct {
	experiences pgrepo.WorkExperienceRepository
	profiles    pgrepo.ProfileRepository
	now         experience.Clock
}

func NewWorkExperienceService(experiences pgrepo.WorkExperienceRepository, profiles pgrepo.ProfileRepository, now experience.Clock) WorkExperienceService {
	if now == nil {
		now = time.Now
	}
	return &workExperienceService{experiences: experiences, profiles: profiles, now: now}
}

func (s *workExperienceService) Add(ctx context.Context, profileID uint, w *models.WorkExperience) (*models.WorkExperience, error) {
	const op = "WorkExperienceService.Add"

	if w == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "work experience is required", nil)
	}

	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}
	w.ProfileID = profileID

	today := dates.FromTime(s.now())
	if verrs := validation.ValidateWorkExperience(w, today); !verrs.Empty() {
		return nil, utils.E(utils.CodeValidation, op, "work experience validation failed", verrs)
	}
	if err := s.experiences.Create(ctx, w); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create work experience", err)
	}
	return w, nil
}

func (s *workExperienceService) ListByProfile(ctx context.Context, profileID uint) ([]WorkExperienceView, error) {
	const op = "WorkExperienceService.ListByProfile"

	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}

	rows, err := s.experiences.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list work experiences", err)
	}

	today := dates.FromTime(s.now())
	out := make([]WorkExperienceView, 0, len(rows))
	for _, w := range rows {
		out = append(out, WorkExperienceView{
			WorkExperience: w,
			Current:        w.Current(),
			Duration:       experience.YearsAndMonths(experience.WorkExperienceMonths(w, today)),
		})
	}
	return out, nil
}

func (s *workExperienceService) Delete(ctx context.Context, id uint) error {
	const op = "WorkExperienceService.Delete"

	if err := s.experiences.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete work experience", err)
	}
	return nil
}
