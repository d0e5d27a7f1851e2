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

type TestimonialDB struct {
	ID                int64          `db:"id"`
	ClientName        sql.NullString `db:"client_name"`
	ClientDesignation sql.NullString `db:"client_designation"`
	ClientCompany     sql.NullString `db:"client_company"`
	ClientPhoto       sql.NullString `db:"client_photo"`
	Review            sql.NullString `db:"review"`
	Rating            int            `db:"rating"`
	IsFeatured        bool           `db:"is_featured"`
	CreatedAt         time.Time      `db:"created_at"`
}

func (r *testimonialsRepository) GetFeaturedTestimonials(ctx context.Context, limit int) ([]entity.Testimonial, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []TestimonialDB

	argsKV := map[string]interface{}{
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryGetFeaturedTestimonials, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFeaturedTestimonials named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFeaturedTestimonials execution err")
		return nil, err
	}

	testimonials := make([]entity.Testimonial, 0, len(rows))
	for _, row := range rows {
		testimonials = append(testimonials, entity.Testimonial{
			ID:                row.ID,
			ClientName:        row.ClientName.String,
			ClientDesignation: row.ClientDesignation.String,
			ClientCompany:     row.ClientCompany.String,
			ClientPhoto:       row.ClientPhoto.String,
			Review:            row.Review.String,
			Rating:            row.Rating,
			IsFeatured:        row.IsFeatured,
			CreatedAt:         row.CreatedAt,
		})
	}

	return testimonials, nil
}
