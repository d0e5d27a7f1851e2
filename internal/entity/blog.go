package entity

import (
	"time"

	"PortfolioGolang/pkg/listing"
)

type BlogPost struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Slug          string    `db:"slug"`
	Content       string    `db:"content"`
	Excerpt       string    `db:"excerpt"`
	FeaturedImage string    `db:"featured_image"`
	Tags          string    `db:"tags"`
	IsPublished   bool      `db:"is_published"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (p BlogPost) TagList() []string {
	return listing.SplitTags(p.Tags)
}

// PostBefore is the natural post order: newest first.
func PostBefore(a, b BlogPost) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
