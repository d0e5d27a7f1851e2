package profileRepository

import (
	"context"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *skillsRepository) GetAllCategories(ctx context.Context) ([]entity.SkillCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)
	categories := []entity.SkillCategory{}

	query, args, err := sqlx.Named(queryGetAllCategories, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &categories, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	return categories, nil
}

func (r *skillsRepository) GetAllSkills(ctx context.Context) ([]entity.Skill, error) {
	requestID := contextPkg.GetRequestID(ctx)
	skills := []entity.Skill{}

	query, args, err := sqlx.Named(queryGetAllSkills, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSkills named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &skills, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSkills execution err")
		return nil, err
	}

	return skills, nil
}
