package models

import (
	"time"

	"github.com/yoockh/careersheet/internal/dates"
)

type WorkExperience struct {
	ID        uint `gorm:"column:id;primaryKey" json:"id"`
	ProfileID uint `gorm:"column:profile_id;not null;index" json:"profile_id"`

	CompanyName string      `gorm:"column:company_name;type:varchar(255);not null" json:"company_name"`
	Position    string      `gorm:"column:position;type:varchar(255)" json:"position,omitempty"`
	StartDate   dates.Date  `gorm:"column:start_date;not null;index" json:"start_date"`
	EndDate     *dates.Date `gorm:"column:end_date" json:"end_date,omitempty"` // nil means still employed

	JobDescription           string `gorm:"column:job_description;type:text" json:"job_description,omitempty"`
	Achievements             string `gorm:"column:achievements;type:text" json:"achievements,omitempty"`
	TechnicalSelectionReason string `gorm:"column:technical_selection_reason;type:text" json:"technical_selection_reason,omitempty"`

	DisplayOrder int `gorm:"column:display_order;not null;default:0" json:"display_order"`

	SkillUsages []SkillUsage `gorm:"foreignKey:WorkExperienceID;constraint:OnDelete:CASCADE" json:"skill_usages,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (WorkExperience) TableName() string { return "work_experiences" }

// Current reports whether the employment is still ongoing.
func (w WorkExperience) Current() bool { return w.EndDate == nil }
