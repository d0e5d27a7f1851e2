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

func (h *ProjectHandler) ListProjects(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list projects request")

	req := projects.ListProjectsRequest{
		Search: ctx.Query("search"),
		Tech:   ctx.Query("tech"),
		Page:   ctx.QueryInt("page", 1),
	}

	res, err := h.projectService.ListProjects(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_projects")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "projects", fiber.Map{
			"Title":    "Projects",
			"Projects": res.Projects,
			"AllTechs": res.AllTechs,
			"Search":   res.Search,
			"Tech":     res.Tech,
		})
	}
}

func (h *ProjectHandler) GetProjectDetail(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get project detail request")

	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return errHandler.Handle(ctx, requestID, projects.ErrProjectNotFound, ctx.Path(), "get_project")
	}

	res, err := h.projectService.GetProjectDetail(c, int64(id))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_project")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "project_detail", fiber.Map{
			"Title":   res.Project.Title,
			"Project": res.Project,
			"Related": res.Related,
		})
	}
}
