package projectService

import (
	"context"
	"errors"

	projects "PortfolioGolang/internal/api/project"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

// ListTemplates filters by type only for the two known types; anything else lists all.
func (s *projectService) ListTemplates(ctx context.Context, templateType string) (*projects.TemplateListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.projectRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	var templates []entity.ProjectTemplate
	switch templateType {
	case entity.TemplateTypeApp, entity.TemplateTypeWebsite:
		templates, err = repo.Templates.GetTemplatesByType(ctx, templateType)
	default:
		templateType = ""
		templates, err = repo.Templates.GetAllTemplates(ctx)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"template_type": templateType,
			"error":         err.Error(),
		}).Error("Failed to get project templates")
		return nil, err
	}

	return &projects.TemplateListResponse{
		Templates:  templates,
		FilterType: templateType,
	}, nil
}

func (s *projectService) GetTemplate(ctx context.Context, id int64) (entity.ProjectTemplate, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.projectRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.ProjectTemplate{}, err
	}

	template, err := repo.Templates.GetTemplateByID(ctx, id)
	if err != nil {
		if !errors.Is(err, projects.ErrTemplateNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get project template")
		}
		return entity.ProjectTemplate{}, err
	}

	return template, nil
}
