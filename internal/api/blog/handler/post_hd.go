package blogHandler

import (
	"context"
	"time"

	blogs "PortfolioGolang/internal/api/blog"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *BlogHandler) ListPosts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list blog posts request")

	req := blogs.ListPostsRequest{
		Search: ctx.Query("search"),
		Tag:    ctx.Query("tag"),
		Page:   ctx.QueryInt("page", 1),
	}

	res, err := h.blogService.ListPosts(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_posts")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "blog", fiber.Map{
			"Title":   "Blog",
			"Posts":   res.Posts,
			"AllTags": res.AllTags,
			"Search":  res.Search,
			"Tag":     res.Tag,
		})
	}
}

func (h *BlogHandler) GetPostDetail(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get blog post request")

	res, err := h.blogService.GetPostDetail(c, ctx.Params("slug"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return handlerUtil.View(ctx, "blog_detail", fiber.Map{
			"Title":   res.Post.Title,
			"Post":    res.Post,
			"Related": res.Related,
		})
	}
}
