package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/utils"
	"gorm.io/gorm"
)

type SkillUsageRepository interface {
	Create(ctx context.Context, u *models.SkillUsage) error
	// ExistsForSkill pre-checks the one-usage-per-skill rule for a work
	// experience. The unique index is the real guard against races.
	ExistsForSkill(ctx context.Context, workExperienceID, skillID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type skillUsageRepo struct {
	db *gorm.DB
}

func NewSkillUsageRepo(db *gorm.DB) SkillUsageRepository {
	return &skillUsageRepo{db: db}
}

func (r *skillUsageRepo) Create(ctx context.Context, u *models.SkillUsage) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicate
	}
	return err
}

func (r *skillUsageRepo) ExistsForSkill(ctx context.Context, workExperienceID, skillID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SkillUsage{}).
		Where("work_experience_id = ? AND skill_id = ?", workExperienceID, skillID).
		Count(&count).Error
	return count > 0, err
}

func (r *skillUsageRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.SkillUsage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
