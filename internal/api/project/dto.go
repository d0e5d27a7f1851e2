package projects

import (
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/listing"
)

const (
	ProjectsPerPage       = 9
	RelatedProjectsLimit  = 3
	FeaturedProjectsLimit = 6
)

type ListProjectsRequest struct {
	Search string
	Tech   string
	Page   int
}

type ProjectListResponse struct {
	Projects listing.Page[entity.Project]
	AllTechs []string
	Search   string
	Tech     string
}

type ProjectDetailResponse struct {
	Project entity.Project
	Related []entity.Project
}

type TemplateListResponse struct {
	Templates  []entity.ProjectTemplate
	FilterType string
}
