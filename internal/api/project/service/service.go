package projectService

import (
	"context"

	projects "PortfolioGolang/internal/api/project"
	projectRepository "PortfolioGolang/internal/api/project/repository"
	"PortfolioGolang/internal/entity"

	"github.com/sirupsen/logrus"
)

type IProjectService interface {
	ListProjects(ctx context.Context, req projects.ListProjectsRequest) (*projects.ProjectListResponse, error)
	GetProjectDetail(ctx context.Context, id int64) (*projects.ProjectDetailResponse, error)
	GetFeaturedProjects(ctx context.Context) ([]entity.Project, error)
	ListTemplates(ctx context.Context, templateType string) (*projects.TemplateListResponse, error)
	GetTemplate(ctx context.Context, id int64) (entity.ProjectTemplate, error)
}

type projectService struct {
	log         *logrus.Logger
	projectRepo projectRepository.Repository
}

func NewProjectService(
	log *logrus.Logger,
	projectRepo projectRepository.Repository,
) IProjectService {
	return &projectService{
		log:         log,
		projectRepo: projectRepo,
	}
}
