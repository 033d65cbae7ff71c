package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/utils"
	"gorm.io/gorm"
)

type SkillRepository interface {
	Create(ctx context.Context, s *models.Skill) error
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	List(ctx context.Context) ([]models.Skill, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type skillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, s *models.Skill) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicate
	}
	return err
}

func (r *skillRepo) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var s models.Skill
	err := r.db.WithContext(ctx).Preload("SkillCategory").Take(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *skillRepo) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var s models.Skill
	err := r.db.WithContext(ctx).
		Preload("SkillCategory").
		Where("name = ?", name).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *skillRepo) List(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	err := r.db.WithContext(ctx).
		Preload("SkillCategory").
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *skillRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Where("skill_category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
