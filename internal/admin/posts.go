package admin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	blogs "PortfolioGolang/internal/api/blog"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/adrg/frontmatter"
	"github.com/sirupsen/logrus"
)

// ParsePost reads a Markdown file with YAML frontmatter. The body becomes the
// content; the file name is the slug unless the frontmatter sets one.
func ParsePost(path string) (blogs.SavePostRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return blogs.SavePostRequest{}, err
	}
	defer f.Close()

	var req blogs.SavePostRequest
	body, err := frontmatter.Parse(f, &req)
	if err != nil {
		return blogs.SavePostRequest{}, fmt.Errorf("parse frontmatter of %s: %w", path, err)
	}

	req.Content = strings.TrimSpace(string(body))
	if req.Slug == "" {
		req.Slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return req, nil
}

// ImportPosts saves each file as a blog post, creating or updating by slug.
// Import stops at the first failing file; earlier files stay saved.
func (a *Admin) ImportPosts(ctx context.Context, paths []string) ([]entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)

	saved := make([]entity.BlogPost, 0, len(paths))
	for _, path := range paths {
		req, err := ParsePost(path)
		if err != nil {
			return saved, err
		}

		post, err := a.blogService.SavePost(ctx, req)
		if err != nil {
			a.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"path":       path,
				"error":      err.Error(),
			}).Error("Failed to import post")
			return saved, fmt.Errorf("import %s: %w", path, err)
		}

		fmt.Fprintf(a.out, "%s -> /blog/%s/\n", path, post.Slug)
		saved = append(saved, post)
	}

	return saved, nil
}
