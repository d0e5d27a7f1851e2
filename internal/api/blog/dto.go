package blogs

import (
	"time"

	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/listing"
)

const (
	PostsPerPage      = 6
	RelatedPostsLimit = 3
	RecentPostsLimit  = 3

	MaxSlugLength    = 50
	MaxExcerptLength = 300
)

type ListPostsRequest struct {
	Search string
	Tag    string
	Page   int
}

type PostListResponse struct {
	Posts   listing.Page[entity.BlogPost]
	AllTags []string
	Search  string
	Tag     string
}

type PostDetailResponse struct {
	Post    entity.BlogPost
	Related []entity.BlogPost
}

// SavePostRequest creates or replaces the post with the same slug. An empty slug
// is derived from the title; a zero CreatedAt means now.
type SavePostRequest struct {
	Title         string    `yaml:"title" validate:"required,max=200"`
	Slug          string    `yaml:"slug" validate:"omitempty,max=50"`
	Content       string    `yaml:"-"`
	Excerpt       string    `yaml:"excerpt"`
	FeaturedImage string    `yaml:"featured_image"`
	Tags          []string  `yaml:"tags"`
	IsPublished   *bool     `yaml:"published"`
	CreatedAt     time.Time `yaml:"date"`
}
