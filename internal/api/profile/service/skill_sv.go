package profileService

import (
	"context"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

// GetSkillCategories returns categories in display order, each carrying its skills
// in display order.
func (s *profileService) GetSkillCategories(ctx context.Context) ([]entity.SkillCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Skills.GetAllCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get skill categories")
		return nil, err
	}

	skills, err := repo.Skills.GetAllSkills(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get skills")
		return nil, err
	}

	byCategory := make(map[int64][]entity.Skill, len(categories))
	for _, skill := range skills {
		byCategory[skill.CategoryID] = append(byCategory[skill.CategoryID], skill)
	}

	for i := range categories {
		categories[i].Skills = byCategory[categories[i].ID]
	}

	return categories, nil
}
