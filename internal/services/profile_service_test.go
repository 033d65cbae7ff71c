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

type fakeProfileRepo struct {
	created []*models.Profile
	stored  map[uint]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{stored: make(map[uint]*models.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	p.ID = uint(len(r.created) + 1)
	r.created = append(r.created, p)
	r.stored[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	p, ok := r.stored[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) GetWithExperiences(ctx context.Context, id uint) (*models.Profile, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]models.Profile, error) {
	out := make([]models.Profile, 0, len(r.stored))
	for _, p := range r.stored {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.stored[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.stored, id)
	return nil
}

func frozenClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}
}

func TestProfileCreateDefaultsDocumentDate(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, frozenClock(2024, time.June, 1))

	created, err := svc.Create(context.Background(), &models.Profile{
		Name:     "Taro Yamada",
		Birthday: dates.New(1990, time.April, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", created.DocumentDate.String())
}

func TestProfileCreateKeepsExplicitDocumentDate(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, frozenClock(2024, time.June, 1))

	created, err := svc.Create(context.Background(), &models.Profile{
		Name:         "Taro Yamada",
		Birthday:     dates.New(1990, time.April, 2),
		DocumentDate: dates.New(2024, time.March, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", created.DocumentDate.String())
}

func TestProfileCreateCollectsValidationErrors(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, frozenClock(2024, time.June, 1))

	_, err := svc.Create(context.Background(), &models.Profile{})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeValidation))

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	// name and birthday are missing; document_date was defaulted.
	assert.Len(t, verrs, 2)
	assert.Empty(t, repo.created)
}

func TestSkillSummaryUsesFrozenClockConsistently(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, frozenClock(2024, time.June, 1))

	profile := &models.Profile{
		Name:         "Taro Yamada",
		Birthday:     dates.New(1990, time.April, 2),
		DocumentDate: dates.New(2024, time.June, 1),
	}
	require.NoError(t, repo.Create(context.Background(), profile))

	// Ongoing experience with an open-ended usage: everything resolves to
	// the injected clock's "today".
	profile.WorkExperiences = []models.WorkExperience{{
		ID:        1,
		StartDate: dates.New(2023, time.January, 1),
		SkillUsages: []models.SkillUsage{
			{SkillID: 1, Skill: &models.Skill{ID: 1, Name: "Go"}, StartDate: dates.New(2023, time.January, 1)},
		},
	}}

	first, err := svc.SkillSummary(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	// 2023-01 through 2024-06 inclusive.
	assert.Equal(t, 18, first[0].TotalMonths)

	second, err := svc.SkillSummary(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
