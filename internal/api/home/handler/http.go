package homeHandler

import (
	blogService "PortfolioGolang/internal/api/blog/service"
	profileService "PortfolioGolang/internal/api/profile/service"
	projectService "PortfolioGolang/internal/api/project/service"
	"PortfolioGolang/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HomeHandler composes the landing page from the other domains' services.
type HomeHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	projectService projectService.IProjectService
	profileService profileService.IProfileService
	blogService    blogService.IBlogService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ps projectService.IProjectService,
	prs profileService.IProfileService,
	bs blogService.IBlogService,
) *HomeHandler {
	return &HomeHandler{
		log:            log,
		middleware:     middleware,
		projectService: ps,
		profileService: prs,
		blogService:    bs,
	}
}

func (h *HomeHandler) Start(srv fiber.Router) {
	srv.Get("/", h.Home)
}
