package entity

import (
	"time"

	"PortfolioGolang/pkg/listing"
)

type Project struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Image        string    `db:"image"`
	TechStack    string    `db:"tech_stack"`
	GithubURL    string    `db:"github_url"`
	DemoURL      string    `db:"demo_url"`
	IsFeatured   bool      `db:"is_featured"`
	CreatedDate  time.Time `db:"created_date"`
	DisplayOrder int       `db:"display_order"`
}

func (p Project) TechList() []string {
	return listing.SplitTags(p.TechStack)
}

// ProjectBefore is the natural project order: newest first, then display order.
func ProjectBefore(a, b Project) bool {
	if !a.CreatedDate.Equal(b.CreatedDate) {
		return a.CreatedDate.After(b.CreatedDate)
	}
	if a.DisplayOrder != b.DisplayOrder {
		return a.DisplayOrder < b.DisplayOrder
	}
	return a.ID < b.ID
}

const (
	TemplateTypeApp     = "app"
	TemplateTypeWebsite = "website"
)

type ProjectTemplate struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	URL          string    `db:"url"`
	Icon         string    `db:"icon"`
	TemplateType string    `db:"template_type"`
	UploadedAt   time.Time `db:"uploaded_at"`
}
