package profileService

import (
	"bytes"
	"context"
	"io"
	"testing"

	profiles "PortfolioGolang/internal/api/profile"
	profileRepository "PortfolioGolang/internal/api/profile/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/media"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSkills struct {
	mock.Mock
}

func (m *mockSkills) GetAllCategories(ctx context.Context) ([]entity.SkillCategory, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entity.SkillCategory)
	return list, args.Error(1)
}

func (m *mockSkills) GetAllSkills(ctx context.Context) ([]entity.Skill, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entity.Skill)
	return list, args.Error(1)
}

type mockServices struct {
	mock.Mock
}

func (m *mockServices) GetAllServices(ctx context.Context) ([]entity.Service, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entity.Service)
	return list, args.Error(1)
}

func (m *mockServices) GetFeaturedServices(ctx context.Context, limit int) ([]entity.Service, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]entity.Service)
	return list, args.Error(1)
}

type mockRepository struct {
	skills   *mockSkills
	services *mockServices
}

func (m *mockRepository) NewClient(bool) (profileRepository.Client, error) {
	return profileRepository.Client{
		Skills:   m.skills,
		Services: m.services,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(t *testing.T) (IProfileService, *mockRepository, media.Storage) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := &mockRepository{skills: &mockSkills{}, services: &mockServices{}}
	storage := media.NewLocal(t.TempDir(), "/media/")

	return NewProfileService(log, repo, storage), repo, storage
}

func TestGetSkillCategories_GroupsSkills(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.skills.On("GetAllCategories", mock.Anything).Return([]entity.SkillCategory{
		{ID: 2, Name: "Backend", DisplayOrder: 1},
		{ID: 1, Name: "Frontend", DisplayOrder: 2},
		{ID: 3, Name: "Empty", DisplayOrder: 3},
	}, nil)
	repo.skills.On("GetAllSkills", mock.Anything).Return([]entity.Skill{
		{ID: 10, CategoryID: 1, Name: "Vue"},
		{ID: 11, CategoryID: 2, Name: "Go"},
		{ID: 12, CategoryID: 2, Name: "Postgres"},
	}, nil)

	categories, err := svc.GetSkillCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "Backend", categories[0].Name)
	require.Len(t, categories[0].Skills, 2)
	assert.Equal(t, "Go", categories[0].Skills[0].Name)
	assert.Equal(t, "Vue", categories[1].Skills[0].Name)
	assert.Empty(t, categories[2].Skills)
}

func TestGetServices_SplitsFeatured(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.services.On("GetAllServices", mock.Anything).Return([]entity.Service{
		{ID: 1, Title: "Web", IsFeatured: true},
		{ID: 2, Title: "Audit"},
		{ID: 3, Title: "API", IsFeatured: true},
	}, nil)

	res, err := svc.GetServices(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Featured, 2)
	assert.Equal(t, "Web", res.Featured[0].Title)
	assert.Equal(t, "API", res.Featured[1].Title)
	require.Len(t, res.Regular, 1)
	assert.Equal(t, "Audit", res.Regular[0].Title)
}

func TestGetFeaturedServices_UsesLimit(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.services.On("GetFeaturedServices", mock.Anything, profiles.FeaturedServicesLimit).
		Return([]entity.Service{{ID: 1}}, nil)

	services, err := svc.GetFeaturedServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 1)
	repo.services.AssertExpectations(t)
}

func TestOpenResume(t *testing.T) {
	svc, _, storage := newTestService(t)
	ctx := context.Background()
	require.NoError(t, storage.Put(ctx, "resumes/cv.pdf", bytes.NewReader([]byte("%PDF-1.4 test"))))

	t.Run("no profile", func(t *testing.T) {
		_, err := svc.OpenResume(ctx, nil)
		assert.ErrorIs(t, err, profiles.ErrResumeNotFound)
	})

	t.Run("no resume key", func(t *testing.T) {
		_, err := svc.OpenResume(ctx, &entity.Profile{Name: "Ada"})
		assert.ErrorIs(t, err, profiles.ErrResumeNotFound)
	})

	t.Run("object missing", func(t *testing.T) {
		_, err := svc.OpenResume(ctx, &entity.Profile{Name: "Ada", Resume: "resumes/gone.pdf"})
		assert.ErrorIs(t, err, profiles.ErrResumeNotFound)
	})

	t.Run("streams file", func(t *testing.T) {
		resume, err := svc.OpenResume(ctx, &entity.Profile{Name: "Ada Lovelace", Resume: "resumes/cv.pdf"})
		require.NoError(t, err)
		defer resume.Body.Close()

		body, err := io.ReadAll(resume.Body)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 test", string(body))
		assert.Equal(t, int64(len(body)), resume.Size)
		assert.Equal(t, "Ada Lovelace_Resume.pdf", resume.Filename)
	})
}
