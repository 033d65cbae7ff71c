package models

import "time"

type Skill struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:varchar(255);not null;uniqueIndex" json:"name"`
	DisplayName string `gorm:"column:display_name;type:varchar(255)" json:"display_name,omitempty"`

	SkillCategoryID uint           `gorm:"column:skill_category_id;not null;index" json:"skill_category_id"`
	SkillCategory   *SkillCategory `gorm:"foreignKey:SkillCategoryID;constraint:OnDelete:RESTRICT" json:"skill_category,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }

// CategoryDisplayName prefers the skill's own display name, then the
// owning category's name.
func (s Skill) CategoryDisplayName() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	if s.SkillCategory != nil {
		return s.SkillCategory.Name
	}
	return ""
}
