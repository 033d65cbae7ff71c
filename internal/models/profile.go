package models

import (
	"time"

	"github.com/yoockh/careersheet/internal/dates"
)

type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
	GenderOther
	GenderPreferNotToSay
)

func (g Gender) Valid() bool {
	return g >= GenderMale && g <= GenderPreferNotToSay
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderOther:
		return "other"
	case GenderPreferNotToSay:
		return "prefer_not_to_say"
	default:
		return "unknown"
	}
}

type Profile struct {
	ID            uint       `gorm:"column:id;primaryKey" json:"id"`
	Name          string     `gorm:"column:name;type:varchar(255);not null;index" json:"name"`
	Birthday      dates.Date `gorm:"column:birthday;not null" json:"birthday"`
	Gender        *Gender    `gorm:"column:gender;type:integer" json:"gender,omitempty"`
	CareerProfile string     `gorm:"column:career_profile;type:text" json:"career_profile,omitempty"`
	JobSummary    string     `gorm:"column:job_summary;type:text" json:"job_summary,omitempty"`

	// DocumentDate is the date the career sheet was written. Defaults to
	// the current date at creation when absent; never overwritten after.
	DocumentDate dates.Date `gorm:"column:document_date" json:"document_date"`

	WorkExperiences []WorkExperience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"work_experiences,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
