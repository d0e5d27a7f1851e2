package projectRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	projects "PortfolioGolang/internal/api/project"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ProjectDB struct {
	ID           int64          `db:"id"`
	Title        sql.NullString `db:"title"`
	Description  sql.NullString `db:"description"`
	Image        sql.NullString `db:"image"`
	TechStack    sql.NullString `db:"tech_stack"`
	GithubURL    sql.NullString `db:"github_url"`
	DemoURL      sql.NullString `db:"demo_url"`
	IsFeatured   bool           `db:"is_featured"`
	CreatedDate  time.Time      `db:"created_date"`
	DisplayOrder int            `db:"display_order"`
}

func (r *projectsRepository) GetAllProjects(ctx context.Context) ([]entity.Project, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var projectsList []ProjectDB

	query, args, err := sqlx.Named(queryGetAllProjects, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllProjects named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &projectsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllProjects execution err")
		return nil, err
	}

	return r.makeProjects(projectsList), nil
}

func (r *projectsRepository) GetFeaturedProjects(ctx context.Context, limit int) ([]entity.Project, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var projectsList []ProjectDB

	argsKV := map[string]interface{}{
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryGetFeaturedProjects, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFeaturedProjects named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &projectsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFeaturedProjects execution err")
		return nil, err
	}

	return r.makeProjects(projectsList), nil
}

func (r *projectsRepository) GetProjectByID(ctx context.Context, id int64) (entity.Project, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var project ProjectDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetProjectByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProjectByID named query preparation err")
		return entity.Project{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&project); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetProjectByID no rows found")
			return entity.Project{}, projects.ErrProjectNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProjectByID execution err")
		return entity.Project{}, err
	}

	return r.makeProject(project), nil
}

func (r *projectsRepository) makeProjects(rows []ProjectDB) []entity.Project {
	out := make([]entity.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.makeProject(row))
	}
	return out
}

func (r *projectsRepository) makeProject(project ProjectDB) entity.Project {
	return entity.Project{
		ID:           project.ID,
		Title:        project.Title.String,
		Description:  project.Description.String,
		Image:        project.Image.String,
		TechStack:    project.TechStack.String,
		GithubURL:    project.GithubURL.String,
		DemoURL:      project.DemoURL.String,
		IsFeatured:   project.IsFeatured,
		CreatedDate:  project.CreatedDate,
		DisplayOrder: project.DisplayOrder,
	}
}
