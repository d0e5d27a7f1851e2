package profileHandler

import (
	profileService "PortfolioGolang/internal/api/profile/service"
	"PortfolioGolang/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	profileService profileService.IProfileService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ps profileService.IProfileService,
) *ProfileHandler {
	return &ProfileHandler{
		log:            log,
		middleware:     middleware,
		profileService: ps,
	}
}

func (h *ProfileHandler) Start(srv fiber.Router) {
	srv.Get("/about/", h.About)
	srv.Get("/experience/", h.Experience)
	srv.Get("/skills/", h.Skills)
	srv.Get("/services/", h.Services)
	srv.Get("/download-resume/", h.DownloadResume)
}
