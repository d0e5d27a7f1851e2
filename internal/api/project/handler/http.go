package projectHandler

import (
	projectService "PortfolioGolang/internal/api/project/service"
	"PortfolioGolang/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProjectHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	projectService projectService.IProjectService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ps projectService.IProjectService,
) *ProjectHandler {
	return &ProjectHandler{
		log:            log,
		middleware:     middleware,
		projectService: ps,
	}
}

func (h *ProjectHandler) Start(srv fiber.Router) {
	srv.Get("/projects/", h.ListProjects)
	srv.Get("/project/:id<int>/", h.GetProjectDetail)

	srv.Get("/templates/", h.ListTemplates)
	srv.Get("/templates/:id<int>/", h.GetTemplate)
}
