package profileRepository

import (
	"context"
	"database/sql"
	"time"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ExperienceDB struct {
	ID          int64          `db:"id"`
	Company     sql.NullString `db:"company"`
	Position    sql.NullString `db:"position"`
	Description sql.NullString `db:"description"`
	StartDate   time.Time      `db:"start_date"`
	EndDate     sql.NullTime   `db:"end_date"`
	IsCurrent   bool           `db:"is_current"`
	CompanyLogo sql.NullString `db:"company_logo"`
}

func (r *experiencesRepository) GetAllExperiences(ctx context.Context) ([]entity.Experience, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ExperienceDB

	query, args, err := sqlx.Named(queryGetAllExperiences, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllExperiences named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllExperiences execution err")
		return nil, err
	}

	experiences := make([]entity.Experience, 0, len(rows))
	for _, row := range rows {
		experiences = append(experiences, r.makeExperience(row))
	}

	return experiences, nil
}

func (r *experiencesRepository) makeExperience(experience ExperienceDB) entity.Experience {
	var endDate *time.Time
	if experience.EndDate.Valid {
		t := experience.EndDate.Time
		endDate = &t
	}

	return entity.Experience{
		ID:          experience.ID,
		Company:     experience.Company.String,
		Position:    experience.Position.String,
		Description: experience.Description.String,
		StartDate:   experience.StartDate,
		EndDate:     endDate,
		IsCurrent:   experience.IsCurrent,
		CompanyLogo: experience.CompanyLogo.String,
	}
}
