package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/careersheet/internal/models"
	"github.com/yoockh/careersheet/internal/utils"
	"github.com/yoockh/careersheet/internal/validation"
)

type fakeSkillCategoryRepo struct {
	stored         map[uint]*models.SkillCategory
	nextID         uint
	getByCodeCalls int
}

func newFakeSkillCategoryRepo() *fakeSkillCategoryRepo {
	return &fakeSkillCategoryRepo{stored: make(map[uint]*models.SkillCategory)}
}

func (r *fakeSkillCategoryRepo) Create(ctx context.Context, c *models.SkillCategory) error {
	r.nextID++
	c.ID = r.nextID
	r.stored[c.ID] = c
	return nil
}

func (r *fakeSkillCategoryRepo) GetByID(ctx context.Context, id uint) (*models.SkillCategory, error) {
	c, ok := r.stored[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return c, nil
}

func (r *fakeSkillCategoryRepo) GetByCode(ctx context.Context, code string) (*models.SkillCategory, error) {
	r.getByCodeCalls++
	for _, c := range r.stored {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeSkillCategoryRepo) ListActive(ctx context.Context) ([]models.SkillCategory, error) {
	out := make([]models.SkillCategory, 0, len(r.stored))
	for _, c := range r.stored {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeSkillCategoryRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.stored[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.stored, id)
	return nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func TestSkillCategoryDeleteBlockedWhileReferenced(t *testing.T) {
	categories := newFakeSkillCategoryRepo()
	skills := newFakeSkillRepo()
	svc := NewSkillCategoryService(categories, skills, newFakeCache())

	cat, err := svc.Create(context.Background(), &models.SkillCategory{Name: "Language", Code: "language", IsActive: true})
	require.NoError(t, err)
	require.NoError(t, skills.Create(context.Background(), &models.Skill{Name: "Go", SkillCategoryID: cat.ID}))

	err = svc.Delete(context.Background(), cat.ID)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	// The category must survive the rejected delete.
	_, err = categories.GetByID(context.Background(), cat.ID)
	assert.NoError(t, err)
}

func TestSkillCategoryDeleteWhenUnreferenced(t *testing.T) {
	categories := newFakeSkillCategoryRepo()
	svc := NewSkillCategoryService(categories, newFakeSkillRepo(), newFakeCache())

	cat, err := svc.Create(context.Background(), &models.SkillCategory{Name: "Language", Code: "language", IsActive: true})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), cat.ID))
	_, err = categories.GetByID(context.Background(), cat.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSkillCategoryGetByCodeServesFromCache(t *testing.T) {
	categories := newFakeSkillCategoryRepo()
	svc := NewSkillCategoryService(categories, newFakeSkillRepo(), newFakeCache())

	created, err := svc.Create(context.Background(), &models.SkillCategory{Name: "Language", Code: "language", IsActive: true})
	require.NoError(t, err)
	// Create pre-checks the code, so the repo has already been hit once.
	require.Equal(t, 1, categories.getByCodeCalls)

	first, err := svc.GetByCode(context.Background(), "language")
	require.NoError(t, err)
	assert.Equal(t, created.ID, first.ID)
	assert.Equal(t, 2, categories.getByCodeCalls)

	second, err := svc.GetByCode(context.Background(), "language")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, categories.getByCodeCalls, "second lookup must not hit the repo")
}

func TestSkillCategoryGetByCodeFallsThroughOnMiss(t *testing.T) {
	categories := newFakeSkillCategoryRepo()
	svc := NewSkillCategoryService(categories, newFakeSkillRepo(), newFakeCache())

	_, err := svc.GetByCode(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestSkillCategoryCreateDuplicateCode(t *testing.T) {
	categories := newFakeSkillCategoryRepo()
	svc := NewSkillCategoryService(categories, newFakeSkillRepo(), newFakeCache())

	_, err := svc.Create(context.Background(), &models.SkillCategory{Name: "Language", Code: "language", IsActive: true})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &models.SkillCategory{Name: "Languages", Code: "language", IsActive: true})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeValidation))

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "code", verrs[0].Field)
	assert.Equal(t, "is already taken", verrs[0].Message)
}
