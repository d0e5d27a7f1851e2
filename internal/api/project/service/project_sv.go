package projectService

import (
	"context"
	"errors"

	projects "PortfolioGolang/internal/api/project"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/listing"

	"github.com/sirupsen/logrus"
)

var projectListing = listing.Spec[entity.Project]{
	PageSize: projects.ProjectsPerPage,
	SearchFields: func(p entity.Project) []string {
		return []string{p.Title, p.Description, p.TechStack}
	},
	FilterField: func(p entity.Project) string { return p.TechStack },
	Less:        entity.ProjectBefore,
}

func (s *projectService) ListProjects(ctx context.Context, req projects.ListProjectsRequest) (*projects.ProjectListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.projectRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	all, err := repo.Projects.GetAllProjects(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get projects")
		return nil, err
	}

	result := listing.Run(all, projectListing, listing.Query{
		Search: req.Search,
		Filter: req.Tech,
		Page:   req.Page,
	})

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"search":     req.Search,
		"tech":       req.Tech,
		"page":       result.Page.Number,
		"matched":    result.Page.TotalItems,
	}).Debug("Listed projects")

	return &projects.ProjectListResponse{
		Projects: result.Page,
		AllTechs: result.Tags,
		Search:   req.Search,
		Tech:     req.Tech,
	}, nil
}

func (s *projectService) GetProjectDetail(ctx context.Context, id int64) (*projects.ProjectDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.projectRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	project, err := repo.Projects.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, projects.ErrProjectNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Project not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get project")
		}
		return nil, err
	}

	all, err := repo.Projects.GetAllProjects(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get projects for related lookup")
		return nil, err
	}

	listing.Sort(all, entity.ProjectBefore)
	related := listing.Related(all,
		func(p entity.Project) bool { return p.ID == project.ID },
		func(p entity.Project) string { return p.TechStack },
		listing.FirstTag(project.TechStack),
		projects.RelatedProjectsLimit,
	)

	return &projects.ProjectDetailResponse{
		Project: project,
		Related: related,
	}, nil
}

func (s *projectService) GetFeaturedProjects(ctx context.Context) ([]entity.Project, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.projectRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	featured, err := repo.Projects.GetFeaturedProjects(ctx, projects.FeaturedProjectsLimit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get featured projects")
		return nil, err
	}

	return featured, nil
}
