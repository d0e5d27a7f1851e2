package profileRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ProfileDB struct {
	ID           int64          `db:"id"`
	Name         sql.NullString `db:"name"`
	Title        sql.NullString `db:"title"`
	Bio          sql.NullString `db:"bio"`
	ProfileImage sql.NullString `db:"profile_image"`
	Resume       sql.NullString `db:"resume"`
	Email        sql.NullString `db:"email"`
	Phone        sql.NullString `db:"phone"`
	Location     sql.NullString `db:"location"`
	Github       sql.NullString `db:"github"`
	Linkedin     sql.NullString `db:"linkedin"`
	Twitter      sql.NullString `db:"twitter"`
	Instagram    sql.NullString `db:"instagram"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *profilesRepository) GetProfile(ctx context.Context) (*entity.Profile, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var profile ProfileDB

	query, args, err := sqlx.Named(queryGetProfile, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProfile named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProfile execution err")
		return nil, err
	}

	return r.makeProfile(profile), nil
}

func (r *profilesRepository) makeProfile(profile ProfileDB) *entity.Profile {
	return &entity.Profile{
		ID:           profile.ID,
		Name:         profile.Name.String,
		Title:        profile.Title.String,
		Bio:          profile.Bio.String,
		ProfileImage: profile.ProfileImage.String,
		Resume:       profile.Resume.String,
		Email:        profile.Email.String,
		Phone:        profile.Phone.String,
		Location:     profile.Location.String,
		Github:       profile.Github.String,
		Linkedin:     profile.Linkedin.String,
		Twitter:      profile.Twitter.String,
		Instagram:    profile.Instagram.String,
		CreatedAt:    profile.CreatedAt,
	}
}
