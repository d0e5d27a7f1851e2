package contactHandler

import (
	contactService "PortfolioGolang/internal/api/contact/service"
	"PortfolioGolang/internal/middleware"
	"PortfolioGolang/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	log            *logrus.Logger
	validator      *validation.Validator
	middleware     middleware.Middleware
	contactService contactService.IContactService
}

func New(
	log *logrus.Logger,
	validate *validation.Validator,
	middleware middleware.Middleware,
	cs contactService.IContactService,
) *ContactHandler {
	return &ContactHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		contactService: cs,
	}
}

func (h *ContactHandler) Start(srv fiber.Router) {
	srv.Get("/contact/", h.ContactForm)
	srv.Post("/contact/", h.SubmitContact)
}
