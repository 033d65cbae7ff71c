package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/utils"
	"gorm.io/gorm"
)

type SkillCategoryRepository interface {
	Create(ctx context.Context, c *models.SkillCategory) error
	GetByID(ctx context.Context, id uint) (*models.SkillCategory, error)
	GetByCode(ctx context.Context, code string) (*models.SkillCategory, error)
	ListActive(ctx context.Context) ([]models.SkillCategory, error)
	Delete(ctx context.Context, id uint) error
}

type skillCategoryRepo struct {
	db *gorm.DB
}

func NewSkillCategoryRepo(db *gorm.DB) SkillCategoryRepository {
	return &skillCategoryRepo{db: db}
}

func (r *skillCategoryRepo) Create(ctx context.Context, c *models.SkillCategory) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicate
	}
	return err
}

func (r *skillCategoryRepo) GetByID(ctx context.Context, id uint) (*models.SkillCategory, error) {
	var c models.SkillCategory
	err := r.db.WithContext(ctx).Take(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *skillCategoryRepo) GetByCode(ctx context.Context, code string) (*models.SkillCategory, error) {
	var c models.SkillCategory
	err := r.db.WithContext(ctx).Where("code = ?", code).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *skillCategoryRepo) ListActive(ctx context.Context) ([]models.SkillCategory, error) {
	var out []models.SkillCategory
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&out).Error
	return out, err
}

func (r *skillCategoryRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.SkillCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
