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

type ProfileService interface {
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	Get(ctx context.Context, id uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Delete(ctx context.Context, id uint) error
	SkillSummary(ctx context.Context, id uint) ([]experience.SkillSummary, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	now      experience.Clock
}

func NewProfileService(profiles pgrepo.ProfileRepository, now experience.Clock) ProfileService {
	if now == nil {
		now = time.Now
	}
	return &profileService{profiles: profiles, now: now}
}

func (s *profileService) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	const op = "ProfileService.Create"

	if p == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "profile is required", nil)
	}

	today := dates.FromTime(s.now())
	if p.DocumentDate.IsZero() {
		p.DocumentDate = today
	}
	if verrs := validation.ValidateProfile(p, today); !verrs.Empty() {
		return nil, utils.E(utils.CodeValidation, op, "profile validation failed", verrs)
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create profile", err)
	}
	return p, nil
}

func (s *profileService) Get(ctx context.Context, id uint) (*models.Profile, error) {
	const op = "ProfileService.Get"

	p, err := s.profiles.GetWithExperiences(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

func (s *profileService) List(ctx context.Context) ([]models.Profile, error) {
	const op = "ProfileService.List"

	out, err := s.profiles.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list profiles", err)
	}
	return out, nil
}

func (s *profileService) Delete(ctx context.Context, id uint) error {
	const op = "ProfileService.Delete"

	if err := s.profiles.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete profile", err)
	}
	return nil
}

// SkillSummary aggregates the profile's skill usages into ranked per-skill
// totals. The clock is read once so every row shares the same "today".
func (s *profileService) SkillSummary(ctx context.Context, id uint) ([]experience.SkillSummary, error) {
	const op = "ProfileService.SkillSummary"

	p, err := s.profiles.GetWithExperiences(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}

	today := dates.FromTime(s.now())
	return experience.Summarize(p.WorkExperiences, today), nil
}
