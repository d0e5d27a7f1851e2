package projectRepository

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
		Projects:  &projectsRepository{q: sqlExecutor, log: r.log},
		Templates: &templatesRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Projects interface {
	GetAllProjects(ctx context.Context) ([]entity.Project, error)
	GetFeaturedProjects(ctx context.Context, limit int) ([]entity.Project, error)
	GetProjectByID(ctx context.Context, id int64) (entity.Project, error)
}

type Templates interface {
	GetAllTemplates(ctx context.Context) ([]entity.ProjectTemplate, error)
	GetTemplatesByType(ctx context.Context, templateType string) ([]entity.ProjectTemplate, error)
	GetTemplateByID(ctx context.Context, id int64) (entity.ProjectTemplate, error)
}

type Client struct {
	Projects  Projects
	Templates Templates

	Commit   func() error
	Rollback func() error
}

type projectsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type templatesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
