package homeHandler

import (
	"context"
	"time"

	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *HomeHandler) Home(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing home request")

	projects, err := h.projectService.GetFeaturedProjects(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "home")
	}

	services, err := h.profileService.GetFeaturedServices(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "home")
	}

	testimonials, err := h.profileService.GetFeaturedTestimonials(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "home")
	}

	posts, err := h.blogService.GetRecentPosts(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "home")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "home", fiber.Map{
			"Title":        "Home",
			"Projects":     projects,
			"Services":     services,
			"Testimonials": testimonials,
			"RecentPosts":  posts,
		})
	}
}
