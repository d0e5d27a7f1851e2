package profileRepository

import (
	"context"

	"PortfolioGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Profiles:     &profilesRepository{q: sqlExecutor, log: r.log},
		Experiences:  &experiencesRepository{q: sqlExecutor, log: r.log},
		Skills:       &skillsRepository{q: sqlExecutor, log: r.log},
		Services:     &servicesRepository{q: sqlExecutor, log: r.log},
		Testimonials: &testimonialsRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Profiles interface {
	// GetProfile returns the first profile by id, or nil when there is none.
	GetProfile(ctx context.Context) (*entity.Profile, error)
}

type Experiences interface {
	GetAllExperiences(ctx context.Context) ([]entity.Experience, error)
}

type Skills interface {
	GetAllCategories(ctx context.Context) ([]entity.SkillCategory, error)
	GetAllSkills(ctx context.Context) ([]entity.Skill, error)
}

type Services interface {
	GetAllServices(ctx context.Context) ([]entity.Service, error)
	GetFeaturedServices(ctx context.Context, limit int) ([]entity.Service, error)
}

type Testimonials interface {
	GetFeaturedTestimonials(ctx context.Context, limit int) ([]entity.Testimonial, error)
}

type Client struct {
	Profiles     Profiles
	Experiences  Experiences
	Skills       Skills
	Services     Services
	Testimonials Testimonials

	Commit   func() error
	Rollback func() error
}

type profilesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type experiencesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type skillsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type servicesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type testimonialsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
