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

type TemplateDB struct {
	ID           int64          `db:"id"`
	Title        sql.NullString `db:"title"`
	Description  sql.NullString `db:"description"`
	URL          sql.NullString `db:"url"`
	Icon         sql.NullString `db:"icon"`
	TemplateType sql.NullString `db:"template_type"`
	UploadedAt   time.Time      `db:"uploaded_at"`
}

func (r *templatesRepository) GetAllTemplates(ctx context.Context) ([]entity.ProjectTemplate, error) {
	return r.selectTemplates(ctx, "GetAllTemplates", queryGetAllTemplates, map[string]interface{}{})
}

func (r *templatesRepository) GetTemplatesByType(ctx context.Context, templateType string) ([]entity.ProjectTemplate, error) {
	return r.selectTemplates(ctx, "GetTemplatesByType", queryGetTemplatesByType, map[string]interface{}{
		"template_type": templateType,
	})
}

func (r *templatesRepository) selectTemplates(ctx context.Context, op, namedQuery string, argsKV map[string]interface{}) ([]entity.ProjectTemplate, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var templatesList []TemplateDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &templatesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	templates := make([]entity.ProjectTemplate, 0, len(templatesList))
	for _, t := range templatesList {
		templates = append(templates, r.makeTemplate(t))
	}

	return templates, nil
}

func (r *templatesRepository) GetTemplateByID(ctx context.Context, id int64) (entity.ProjectTemplate, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var template TemplateDB

	query, args, err := sqlx.Named(queryGetTemplateByID, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTemplateByID named query preparation err")
		return entity.ProjectTemplate{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&template); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetTemplateByID no rows found")
			return entity.ProjectTemplate{}, projects.ErrTemplateNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTemplateByID execution err")
		return entity.ProjectTemplate{}, err
	}

	return r.makeTemplate(template), nil
}

func (r *templatesRepository) makeTemplate(t TemplateDB) entity.ProjectTemplate {
	return entity.ProjectTemplate{
		ID:           t.ID,
		Title:        t.Title.String,
		Description:  t.Description.String,
		URL:          t.URL.String,
		Icon:         t.Icon.String,
		TemplateType: t.TemplateType.String,
		UploadedAt:   t.UploadedAt,
	}
}
