package profileRepository

import (
	"context"
	"database/sql"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServiceDB struct {
	ID            int64           `db:"id"`
	Title         sql.NullString  `db:"title"`
	Description   sql.NullString  `db:"description"`
	Icon          sql.NullString  `db:"icon"`
	PriceStarting sql.NullFloat64 `db:"price_starting"`
	IsFeatured    bool            `db:"is_featured"`
	DisplayOrder  int             `db:"display_order"`
}

func (r *servicesRepository) GetAllServices(ctx context.Context) ([]entity.Service, error) {
	return r.selectServices(ctx, "GetAllServices", queryGetAllServices, map[string]interface{}{})
}

func (r *servicesRepository) GetFeaturedServices(ctx context.Context, limit int) ([]entity.Service, error) {
	return r.selectServices(ctx, "GetFeaturedServices", queryGetFeaturedServices, map[string]interface{}{
		"limit": limit,
	})
}

func (r *servicesRepository) selectServices(ctx context.Context, op, namedQuery string, argsKV map[string]interface{}) ([]entity.Service, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ServiceDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	services := make([]entity.Service, 0, len(rows))
	for _, row := range rows {
		services = append(services, r.makeService(row))
	}

	return services, nil
}

func (r *servicesRepository) makeService(service ServiceDB) entity.Service {
	var price *float64
	if service.PriceStarting.Valid {
		p := service.PriceStarting.Float64
		price = &p
	}

	return entity.Service{
		ID:            service.ID,
		Title:         service.Title.String,
		Description:   service.Description.String,
		Icon:          service.Icon.String,
		PriceStarting: price,
		IsFeatured:    service.IsFeatured,
		DisplayOrder:  service.DisplayOrder,
	}
}
