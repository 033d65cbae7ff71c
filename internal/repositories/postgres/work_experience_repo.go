package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/utils"
	"gorm.io/gorm"
)

type WorkExperienceRepository interface {
	Create(ctx context.Context, w *models.WorkExperience) error
	GetByID(ctx context.Context, id uint) (*models.WorkExperience, error)
	ListByProfile(ctx context.Context, profileID uint) ([]models.WorkExperience, error)
	Delete(ctx context.Context, id uint) error
}

type workExperienceRepo struct {
	db *gorm.DB
}

func NewWorkExperienceRepo(db *gorm.DB) WorkExperienceRepository {
	return &workExperienceRepo{db: db}
}

func (r *workExperienceRepo) Create(ctx context.Context, w *models.WorkExperience) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *workExperienceRepo) GetByID(ctx context.Context, id uint) (*models.WorkExperience, error) {
	var w models.WorkExperience
	err := r.db.WithContext(ctx).Take(&w, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &w, err
}

// ListByProfile returns the profile's experiences in display order, newest
// start date first within the same order value.
func (r *workExperienceRepo) ListByProfile(ctx context.Context, profileID uint) ([]models.WorkExperience, error) {
	var out []models.WorkExperience
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("display_order ASC, start_date DESC").
		Preload("SkillUsages").
		Preload("SkillUsages.Skill").
		Find(&out).Error
	return out, err
}

func (r *workExperienceRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.WorkExperience{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
