package profileHandler

import (
	"context"
	"time"

	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *ProfileHandler) About(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing about request")

	experiences, err := h.profileService.GetExperiences(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "about")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "about", fiber.Map{
			"Title":       "About",
			"Experiences": experiences,
		})
	}
}

func (h *ProfileHandler) Experience(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing experience request")

	experiences, err := h.profileService.GetExperiences(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "experience")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "experience", fiber.Map{
			"Title":       "Experience",
			"Experiences": experiences,
		})
	}
}

func (h *ProfileHandler) Skills(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing skills request")

	categories, err := h.profileService.GetSkillCategories(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "skills")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "skills", fiber.Map{
			"Title":      "Skills",
			"Categories": categories,
		})
	}
}

func (h *ProfileHandler) Services(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing services request")

	res, err := h.profileService.GetServices(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "services")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "services", fiber.Map{
			"Title":    "Services",
			"Featured": res.Featured,
			"Regular":  res.Regular,
		})
	}
}

// DownloadResume has no deadline: the body is read after the handler returns.
func (h *ProfileHandler) DownloadResume(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c := contextPkg.FromFiberCtx(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing resume download request")

	resume, err := h.profileService.OpenResume(c, contextPkg.GetProfile(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "download_resume")
	}

	ctx.Attachment(resume.Filename)
	ctx.Set(fiber.HeaderContentType, "application/pdf")

	size := -1
	if resume.Size > 0 {
		size = int(resume.Size)
	}
	return ctx.SendStream(resume.Body, size)
}
