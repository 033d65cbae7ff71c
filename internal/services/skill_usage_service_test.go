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

type fakeWorkExperienceRepo struct {
	stored map[uint]*models.WorkExperience
	nextID uint
}

func newFakeWorkExperienceRepo() *fakeWorkExperienceRepo {
	return &fakeWorkExperienceRepo{stored: make(map[uint]*models.WorkExperience)}
}

func (r *fakeWorkExperienceRepo) Create(ctx context.Context, w *models.WorkExperience) error {
	r.nextID++
	w.ID = r.nextID
	r.stored[w.ID] = w
	return nil
}

func (r *fakeWorkExperienceRepo) GetByID(ctx context.Context, id uint) (*models.WorkExperience, error) {
	w, ok := r.stored[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return w, nil
}

func (r *fakeWorkExperienceRepo) ListByProfile(ctx context.Context, profileID uint) ([]models.WorkExperience, error) {
	out := make([]models.WorkExperience, 0, len(r.stored))
	for _, w := range r.stored {
		if w.ProfileID == profileID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWorkExperienceRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.stored[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.stored, id)
	return nil
}

type fakeSkillUsageRepo struct {
	created []*models.SkillUsage
}

func (r *fakeSkillUsageRepo) Create(ctx context.Context, u *models.SkillUsage) error {
	r.created = append(r.created, u)
	return nil
}

func (r *fakeSkillUsageRepo) ExistsForSkill(ctx context.Context, workExperienceID, skillID uint) (bool, error) {
	for _, u := range r.created {
		if u.WorkExperienceID == workExperienceID && u.SkillID == skillID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSkillUsageRepo) Delete(ctx context.Context, id uint) error {
	return utils.ErrNotFound
}

func newSkillUsageFixture(t *testing.T) (SkillUsageService, *fakeWorkExperienceRepo, uint) {
	t.Helper()

	experiences := newFakeWorkExperienceRepo()
	skills := newFakeSkillRepo()
	usages := &fakeSkillUsageRepo{}
	svc := NewSkillUsageService(usages, experiences, skills, frozenClock(2024, time.June, 1))

	end := dates.New(2022, time.December, 31)
	parent := &models.WorkExperience{
		ProfileID:   1,
		CompanyName: "Acme",
		StartDate:   dates.New(2020, time.January, 1),
		EndDate:     &end,
	}
	require.NoError(t, experiences.Create(context.Background(), parent))
	require.NoError(t, skills.Create(context.Background(), &models.Skill{Name: "Go", SkillCategoryID: 1}))
	return svc, experiences, parent.ID
}

func TestSkillUsageAddDuplicateSkillConflict(t *testing.T) {
	svc, _, parentID := newSkillUsageFixture(t)

	_, err := svc.Add(context.Background(), parentID, &models.SkillUsage{
		SkillID:   1,
		StartDate: dates.New(2020, time.June, 1),
	})
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), parentID, &models.SkillUsage{
		SkillID:   1,
		StartDate: dates.New(2021, time.June, 1),
	})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
}

func TestSkillUsageAddRejectsPeriodOutsideParent(t *testing.T) {
	svc, _, parentID := newSkillUsageFixture(t)

	_, err := svc.Add(context.Background(), parentID, &models.SkillUsage{
		SkillID:   1,
		StartDate: dates.New(2019, time.June, 1),
	})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeValidation))

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "start_date", verrs[0].Field)
}

func TestSkillUsageAddUnknownParent(t *testing.T) {
	svc, _, _ := newSkillUsageFixture(t)

	_, err := svc.Add(context.Background(), 99, &models.SkillUsage{
		SkillID:   1,
		StartDate: dates.New(2020, time.June, 1),
	})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
