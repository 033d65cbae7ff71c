package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/careersheet/internal/dates"
	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/utils"
	"github.com/yoockh/careersheet/internal/validation"
)

func TestWorkExperienceListViews(t *testing.T) {
	profiles := newFakeProfileRepo()
	experiences := newFakeWorkExperienceRepo()
	svc := NewWorkExperienceService(experiences, profiles, frozenClock(2024, time.June, 1))

	profile := &models.Profile{Name: "Taro Yamada", Birthday: dates.New(1990, time.April, 2), DocumentDate: dates.New(2024, time.June, 1)}
	require.NoError(t, profiles.Create(context.Background(), profile))

	past, err := svc.Add(context.Background(), profile.ID, &models.WorkExperience{
		CompanyName: "Acme",
		StartDate:   dates.New(2020, time.January, 1),
		EndDate:     datePtrFor(2020, time.December, 31),
	})
	require.NoError(t, err)

	ongoing, err := svc.Add(context.Background(), profile.ID, &models.WorkExperience{
		CompanyName: "Globex",
		StartDate:   dates.New(2023, time.January, 1),
	})
	require.NoError(t, err)

	views, err := svc.ListByProfile(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byID := make(map[uint]WorkExperienceView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}

	assert.False(t, byID[past.ID].Current)
	assert.Equal(t, 12, byID[past.ID].Duration.TotalMonths)

	// Ongoing employment counts up to the injected "today": 2023-01
	// through 2024-06 inclusive.
	assert.True(t, byID[ongoing.ID].Current)
	assert.Equal(t, 18, byID[ongoing.ID].Duration.TotalMonths)
	assert.Equal(t, 1, byID[ongoing.ID].Duration.Years)
	assert.Equal(t, 6, byID[ongoing.ID].Duration.Months)
}

func TestWorkExperienceAddRejectsEndBeforeStart(t *testing.T) {
	profiles := newFakeProfileRepo()
	svc := NewWorkExperienceService(newFakeWorkExperienceRepo(), profiles, frozenClock(2024, time.June, 1))

	profile := &models.Profile{Name: "Taro Yamada", Birthday: dates.New(1990, time.April, 2), DocumentDate: dates.New(2024, time.June, 1)}
	require.NoError(t, profiles.Create(context.Background(), profile))

	_, err := svc.Add(context.Background(), profile.ID, &models.WorkExperience{
		CompanyName: "Acme",
		StartDate:   dates.New(2022, time.January, 1),
		EndDate:     datePtrFor(2021, time.January, 1),
	})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeValidation))

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "end_date", verrs[0].Field)
}

func datePtrFor(y int, m time.Month, d int) *dates.Date {
	v := dates.New(y, m, d)
	return &v
}
