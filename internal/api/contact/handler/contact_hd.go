package contactHandler

import (
	"context"
	"time"

	contacts "PortfolioGolang/internal/api/contact"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const contactSentURL = "/contact/?sent=1"

func (h *ContactHandler) ContactForm(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing contact form request")

	return handlerUtil.View(ctx, "contact", fiber.Map{
		"Title":  "Contact",
		"Form":   contacts.ContactRequest{},
		"Errors": map[string]string{},
		"Sent":   ctx.Query("sent") == "1",
	})
}

func (h *ContactHandler) SubmitContact(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing contact submission")

	var req contacts.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		fieldErrors := h.validator.FieldErrors(req, err)
		if fieldErrors == nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"fields":     fieldErrors,
		}).Warn("Contact form rejected")

		return handlerUtil.ViewStatus(ctx, fiber.StatusBadRequest, "contact", fiber.Map{
			"Title":  "Contact",
			"Form":   req,
			"Errors": fieldErrors,
			"Sent":   false,
		})
	}

	if _, err := h.contactService.SubmitContact(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_contact")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Redirect(contactSentURL, fiber.StatusSeeOther)
	}
}
