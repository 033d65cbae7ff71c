// Package experience computes per-skill experience durations from the date
// ranges on work experiences and skill usages. Everything here is pure:
// the caller supplies the "today" snapshot, taken once per pass.
package experience

import (
	"sort"
	"time"

	"github.com/yoockh/careersheet/internal/dates"
	"github.com/yoockh/careersheet/internal/models"
)

// Clock supplies the current time. Injected so summaries are reproducible
// in tests and consistent within a single pass.
type Clock func() time.Time

// MonthsBetween returns the inclusive whole-month count between two dates.
// A range entirely within one calendar month counts as 1. Day-of-month is
// ignored. The caller guarantees end is at or after start; validation
// enforces this before records are persisted.
func MonthsBetween(start, end dates.Date) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

// Duration is a month total decomposed into years and remainder months.
type Duration struct {
	TotalMonths int `json:"total_months"`
	Years       int `json:"years"`
	Months      int `json:"months"`
}

func YearsAndMonths(totalMonths int) Duration {
	return Duration{
		TotalMonths: totalMonths,
		Years:       totalMonths / 12,
		Months:      totalMonths % 12,
	}
}

// EffectiveEnd resolves the end date to compute with: the record's own end
// date, else the parent's end date, else today. The same chain applies to
// work experiences (own end -> today) by passing a nil own bound.
func EffectiveEnd(own, parent *dates.Date, today dates.Date) dates.Date {
	if own != nil {
		return *own
	}
	if parent != nil {
		return *parent
	}
	return today
}

// UsageMonths returns the month count for one skill usage, resolving its
// effective end against the parent work experience's end date.
func UsageMonths(u models.SkillUsage, parentEnd *dates.Date, today dates.Date) int {
	return MonthsBetween(u.StartDate, EffectiveEnd(u.EndDate, parentEnd, today))
}

// WorkExperienceMonths returns the month count for one employment period.
func WorkExperienceMonths(w models.WorkExperience, today dates.Date) int {
	return MonthsBetween(w.StartDate, EffectiveEnd(w.EndDate, nil, today))
}

// SkillSummary is one row of the ranked per-skill experience report.
type SkillSummary struct {
	Skill       models.Skill `json:"skill"`
	TotalMonths int          `json:"total_months"`
	Years       int          `json:"years"`
	Months      int          `json:"months"`
}

// Summarize aggregates skill usages across all of a profile's work
// experiences into one row per distinct skill, ranked by total months
// descending. Ties break on ascending skill ID so the order is stable.
// A profile with no usages yields an empty slice.
func Summarize(experiences []models.WorkExperience, today dates.Date) []SkillSummary {
	totals := make(map[uint]int)
	skills := make(map[uint]models.Skill)

	for _, we := range experiences {
		for _, u := range we.SkillUsages {
			totals[u.SkillID] += UsageMonths(u, we.EndDate, today)
			if _, seen := skills[u.SkillID]; !seen {
				if u.Skill != nil {
					skills[u.SkillID] = *u.Skill
				} else {
					skills[u.SkillID] = models.Skill{ID: u.SkillID}
				}
			}
		}
	}

	out := make([]SkillSummary, 0, len(totals))
	for id, months := range totals {
		d := YearsAndMonths(months)
		out = append(out, SkillSummary{
			Skill:       skills[id],
			TotalMonths: d.TotalMonths,
			Years:       d.Years,
			Months:      d.Months,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMonths != out[j].TotalMonths {
			return out[i].TotalMonths > out[j].TotalMonths
		}
		return out[i].Skill.ID < out[j].Skill.ID
	})
	return out
}
