package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/utils"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	// GetWithExperiences loads the profile with its full work-experience
	// tree (skill usages, skills, categories) for aggregation.
	GetWithExperiences(ctx context.Context, id uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Delete(ctx context.Context, id uint) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *profileRepo) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).Take(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) GetWithExperiences(ctx context.Context, id uint) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).
		Preload("WorkExperiences", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, start_date DESC")
		}).
		Preload("WorkExperiences.SkillUsages").
		Preload("WorkExperiences.SkillUsages.Skill").
		Preload("WorkExperiences.SkillUsages.Skill.SkillCategory").
		Take(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) List(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *profileRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Profile{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
