package blogService

import (
	"context"
	"errors"
	"strings"
	"time"

	blogs "PortfolioGolang/internal/api/blog"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/listing"

	"github.com/sirupsen/logrus"
)

func isPublished(p entity.BlogPost) bool { return p.IsPublished }

var postListing = listing.Spec[entity.BlogPost]{
	PageSize: blogs.PostsPerPage,
	Visible:  isPublished,
	SearchFields: func(p entity.BlogPost) []string {
		return []string{p.Title, p.Content, p.Excerpt}
	},
	FilterField: func(p entity.BlogPost) string { return p.Tags },
	Less:        entity.PostBefore,
}

func (s *blogService) ListPosts(ctx context.Context, req blogs.ListPostsRequest) (*blogs.PostListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	all, err := repo.Posts.GetAllPosts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blog posts")
		return nil, err
	}

	result := listing.Run(all, postListing, listing.Query{
		Search: req.Search,
		Filter: req.Tag,
		Page:   req.Page,
	})

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"search":     req.Search,
		"tag":        req.Tag,
		"page":       result.Page.Number,
		"matched":    result.Page.TotalItems,
	}).Debug("Listed blog posts")

	return &blogs.PostListResponse{
		Posts:   result.Page,
		AllTags: result.Tags,
		Search:  req.Search,
		Tag:     req.Tag,
	}, nil
}

// GetPostDetail treats a draft exactly like a missing post.
func (s *blogService) GetPostDetail(ctx context.Context, slug string) (*blogs.PostDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	post, err := repo.Posts.GetPostBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, blogs.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       slug,
				"error":      err.Error(),
			}).Error("Failed to get blog post")
		}
		return nil, err
	}

	if !post.IsPublished {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
		}).Warn("Requested blog post is not published")
		return nil, blogs.ErrPostNotFound
	}

	all, err := repo.Posts.GetAllPosts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
			"error":      err.Error(),
		}).Error("Failed to get blog posts for related lookup")
		return nil, err
	}

	candidates := make([]entity.BlogPost, 0, len(all))
	for _, p := range all {
		if isPublished(p) {
			candidates = append(candidates, p)
		}
	}
	listing.Sort(candidates, entity.PostBefore)

	related := listing.Related(candidates,
		func(p entity.BlogPost) bool { return p.ID == post.ID },
		func(p entity.BlogPost) string { return p.Tags },
		listing.FirstTag(post.Tags),
		blogs.RelatedPostsLimit,
	)

	return &blogs.PostDetailResponse{
		Post:    post,
		Related: related,
	}, nil
}

func (s *blogService) GetRecentPosts(ctx context.Context) ([]entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	posts, err := repo.Posts.GetRecentPublishedPosts(ctx, blogs.RecentPostsLimit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get recent blog posts")
		return nil, err
	}

	return posts, nil
}

func (s *blogService) SavePost(ctx context.Context, req blogs.SavePostRequest) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)

	post, err := s.makePost(req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"title":      req.Title,
			"error":      err.Error(),
		}).Warn("Invalid blog post")
		return entity.BlogPost{}, err
	}

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.BlogPost{}, err
	}
	defer repo.Rollback()

	id, err := repo.Posts.UpsertPost(ctx, post)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       post.Slug,
			"error":      err.Error(),
		}).Error("Failed to save blog post")
		return entity.BlogPost{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       post.Slug,
			"error":      err.Error(),
		}).Error("Failed to commit blog post")
		return entity.BlogPost{}, err
	}

	post.ID = id

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
		"slug":       post.Slug,
	}).Info("Blog post saved")

	return post, nil
}

func (s *blogService) makePost(req blogs.SavePostRequest) (entity.BlogPost, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return entity.BlogPost{}, blogs.ErrInvalidPostData
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = s.utils.Slugify(title)
	}
	if r := []rune(slug); len(r) > blogs.MaxSlugLength {
		slug = strings.TrimRight(string(r[:blogs.MaxSlugLength]), "-")
	}
	if slug == "" {
		return entity.BlogPost{}, blogs.ErrInvalidPostData
	}

	excerpt := strings.TrimSpace(req.Excerpt)
	if r := []rune(excerpt); len(r) > blogs.MaxExcerptLength {
		excerpt = string(r[:blogs.MaxExcerptLength])
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	now := time.Now().UTC()
	createdAt := req.CreatedAt.UTC()
	if req.CreatedAt.IsZero() {
		createdAt = now
	}

	return entity.BlogPost{
		Title:         title,
		Slug:          slug,
		Content:       req.Content,
		Excerpt:       excerpt,
		FeaturedImage: req.FeaturedImage,
		Tags:          strings.Join(tags, ", "),
		IsPublished:   published,
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	}, nil
}
