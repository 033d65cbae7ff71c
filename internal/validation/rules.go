package validation

import (
	"fmt"

	"github.com/yoockh/careersheet/internal/dates"
	"github.com/yoockh/careersheet/internal/models"
)

// ValidateProfile checks required fields and date sanity. DocumentDate is
// expected to be defaulted by the service before validation runs.
func ValidateProfile(p *models.Profile, today dates.Date) Errors {
	var errs Errors

	if p.Name == "" {
		errs.Add("name", "is required")
	}
	if p.Birthday.IsZero() {
		errs.Add("birthday", "is required")
	} else if p.Birthday.After(today) {
		errs.Add("birthday", "cannot be in the future")
	}
	if p.DocumentDate.IsZero() {
		errs.Add("document_date", "is required")
	} else if p.DocumentDate.After(today) {
		errs.Add("document_date", "cannot be in the future")
	}
	if p.Gender != nil && !p.Gender.Valid() {
		errs.Add("gender", "must be between 0 and 3")
	}
	return errs
}

// ValidateWorkExperience checks required fields, end-after-start and the
// no-future-dates rule.
func ValidateWorkExperience(w *models.WorkExperience, today dates.Date) Errors {
	var errs Errors

	if w.CompanyName == "" {
		errs.Add("company_name", "is required")
	}
	if w.StartDate.IsZero() {
		errs.Add("start_date", "is required")
	} else if w.StartDate.After(today) {
		errs.Add("start_date", "cannot be in the future")
	}
	if w.EndDate != nil {
		if !w.StartDate.IsZero() && w.EndDate.Before(w.StartDate) {
			errs.Add("end_date", "must be on or after the start date")
		}
		if w.EndDate.After(today) {
			errs.Add("end_date", "cannot be in the future")
		}
	}
	return errs
}

// ValidateSkillUsage checks that the usage period lies within its parent
// work experience's period. The parent's effective end is its end date, or
// today while the employment is ongoing.
func ValidateSkillUsage(u *models.SkillUsage, parent *models.WorkExperience, today dates.Date) Errors {
	var errs Errors

	if u.StartDate.IsZero() {
		errs.Add("start_date", "is required")
	}
	if u.EndDate != nil && !u.StartDate.IsZero() && u.EndDate.Before(u.StartDate) {
		errs.Add("end_date", "must be on or after the start date")
	}

	if parent == nil || u.StartDate.IsZero() {
		return errs
	}

	parentEnd := today
	if parent.EndDate != nil {
		parentEnd = *parent.EndDate
	}

	if u.StartDate.Before(parent.StartDate) {
		errs.Add("start_date", fmt.Sprintf("must be on or after the work experience start date (%s)", parent.StartDate))
	}
	if u.StartDate.After(parentEnd) {
		errs.Add("start_date", fmt.Sprintf("must be on or before the work experience end date (%s)", parentEnd))
	}
	if u.EndDate != nil && u.EndDate.After(parentEnd) {
		errs.Add("end_date", fmt.Sprintf("must be on or before the work experience end date (%s)", parentEnd))
	}
	return errs
}

func ValidateSkill(s *models.Skill) Errors {
	var errs Errors

	if s.Name == "" {
		errs.Add("name", "is required")
	}
	if s.SkillCategoryID == 0 {
		errs.Add("skill_category_id", "is required")
	}
	return errs
}

func ValidateSkillCategory(c *models.SkillCategory) Errors {
	var errs Errors

	if c.Name == "" {
		errs.Add("name", "is required")
	}
	if c.Code == "" {
		errs.Add("code", "is required")
	}
	if c.DisplayOrder < 0 {
		errs.Add("display_order", "must not be negative")
	}
	return errs
}
