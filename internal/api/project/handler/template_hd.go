package projectHandler

import (
	"context"
	"time"

	projects "PortfolioGolang/internal/api/project"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *ProjectHandler) ListTemplates(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list templates request")

	res, err := h.projectService.ListTemplates(c, ctx.Query("type"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_templates")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "templates", fiber.Map{
			"Title":      "Project Templates",
			"Templates":  res.Templates,
			"FilterType": res.FilterType,
		})
	}
}

func (h *ProjectHandler) GetTemplate(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get template request")

	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return errHandler.Handle(ctx, requestID, projects.ErrTemplateNotFound, ctx.Path(), "get_template")
	}

	template, err := h.projectService.GetTemplate(c, int64(id))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_template")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "template_preview", fiber.Map{
			"Title":    template.Title,
			"Template": template,
		})
	}
}
