package models

import "time"

type SkillCategory struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Code         string `gorm:"column:code;type:varchar(255);not null;uniqueIndex" json:"code"`
	DisplayOrder int    `gorm:"column:display_order;not null;default:0;index" json:"display_order"`
	IsActive     bool   `gorm:"column:is_active;not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (SkillCategory) TableName() string { return "skill_categories" }
