package models

import (
	"time"

	"github.com/yoockh/careersheet/internal/dates"
)

// SkillUsage records a sub-period within a WorkExperience during which a
// Skill was used. A work experience has at most one usage row per skill.
type SkillUsage struct {
	ID               uint `gorm:"column:id;primaryKey" json:"id"`
	WorkExperienceID uint `gorm:"column:work_experience_id;not null;uniqueIndex:idx_skill_usages_we_skill" json:"work_experience_id"`
	SkillID          uint `gorm:"column:skill_id;not null;uniqueIndex:idx_skill_usages_we_skill;index" json:"skill_id"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`

	StartDate    dates.Date  `gorm:"column:start_date;not null" json:"start_date"`
	EndDate      *dates.Date `gorm:"column:end_date" json:"end_date,omitempty"` // nil means until the work experience ends
	UsageContext string      `gorm:"column:usage_context;type:text" json:"usage_context,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (SkillUsage) TableName() string { return "skill_usages" }
