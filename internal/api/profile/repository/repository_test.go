package profileRepository

import (
	"context"
	"io"
	"testing"

	"PortfolioGolang/database/sqlite"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (Client, *sqlx.DB) {
	t.Helper()

	db, err := sqlite.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := New(db, log).NewClient(false)
	require.NoError(t, err)

	return client, db
}

func TestGetProfile(t *testing.T) {
	client, db := newTestClient(t)
	ctx := context.Background()

	profile, err := client.Profiles.GetProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	db.MustExec(`INSERT INTO profiles (id, name, title, email, resume) VALUES
		(2, 'Second', 'Dev', 'b@example.com', NULL),
		(1, 'Ada', 'Engineer', 'ada@example.com', 'resumes/ada.pdf')`)

	profile, err = client.Profiles.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, "resumes/ada.pdf", profile.Resume)
}

func TestGetAllExperiences(t *testing.T) {
	client, db := newTestClient(t)

	db.MustExec(`INSERT INTO experiences (id, company, position, start_date, end_date, is_current) VALUES
		(1, 'Acme', 'Intern', '2019-06-01', '2019-09-01', 0),
		(2, 'Globex', 'Engineer', '2021-01-01', NULL, 1)`)

	experiences, err := client.Experiences.GetAllExperiences(context.Background())
	require.NoError(t, err)
	require.Len(t, experiences, 2)

	assert.Equal(t, "Globex", experiences[0].Company)
	assert.Nil(t, experiences[0].EndDate)
	assert.True(t, experiences[0].IsCurrent)
	require.NotNil(t, experiences[1].EndDate)
	assert.Equal(t, 2019, experiences[1].EndDate.Year())
}

func TestSkills(t *testing.T) {
	client, db := newTestClient(t)
	ctx := context.Background()

	db.MustExec(`INSERT INTO skill_categories (id, name, display_order) VALUES (1, 'Frontend', 2), (2, 'Backend', 1)`)
	db.MustExec(`INSERT INTO skills (category_id, name, proficiency, display_order) VALUES
		(2, 'SQL', 80, 2), (2, 'Go', 90, 1), (1, 'Vue', 70, 1)`)

	categories, err := client.Skills.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Backend", categories[0].Name)

	skills, err := client.Skills.GetAllSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, []string{"Vue", "Go", "SQL"}, []string{skills[0].Name, skills[1].Name, skills[2].Name})
}

func TestServices(t *testing.T) {
	client, db := newTestClient(t)
	ctx := context.Background()

	db.MustExec(`INSERT INTO services (id, title, price_starting, is_featured, display_order) VALUES
		(1, 'Audit', NULL, 0, 1),
		(2, 'Web', 1500.5, 1, 2),
		(3, 'API', 900, 1, 3)`)

	all, err := client.Services.GetAllServices(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Nil(t, all[0].PriceStarting)
	require.NotNil(t, all[1].PriceStarting)
	assert.InDelta(t, 1500.5, *all[1].PriceStarting, 0.001)

	featured, err := client.Services.GetFeaturedServices(ctx, 1)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Web", featured[0].Title)
}

func TestFeaturedTestimonials(t *testing.T) {
	client, db := newTestClient(t)

	db.MustExec(`INSERT INTO testimonials (id, client_name, review, rating, is_featured, created_at) VALUES
		(1, 'Old', 'ok', 4, 1, '2023-01-01 00:00:00'),
		(2, 'New', 'great', 5, 1, '2024-01-01 00:00:00'),
		(3, 'Hidden', 'meh', 3, 0, '2024-06-01 00:00:00')`)

	testimonials, err := client.Testimonials.GetFeaturedTestimonials(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, testimonials, 2)
	assert.Equal(t, "New", testimonials[0].ClientName)
	assert.Equal(t, 5, testimonials[0].Rating)
}
