// Package admin is the content management surface of the site: entity
// descriptors, YAML seeding, Markdown post import and contact inbox commands.
package admin

import (
	"fmt"
	"sort"
	"strings"
)

// Field describes one column an operator can see or set.
type Field struct {
	Column      string
	Label       string
	Editable    bool
	ListDisplay bool
}

// Descriptor is the explicit admin registration of one entity.
type Descriptor struct {
	Name    string
	Table   string
	OrderBy string
	Fields  []Field
}

func field(column, label string, listed bool) Field {
	return Field{Column: column, Label: label, Editable: true, ListDisplay: listed}
}

func readOnly(column, label string, listed bool) Field {
	return Field{Column: column, Label: label, ListDisplay: listed}
}

// seedOrder keeps parents before children so foreign keys resolve.
var seedOrder = []string{
	"profiles",
	"skill-categories",
	"skills",
	"services",
	"projects",
	"experiences",
	"testimonials",
	"posts",
	"contacts",
	"templates",
}

var descriptors = map[string]Descriptor{
	"profiles": {
		Name: "profiles", Table: "profiles", OrderBy: "id",
		Fields: []Field{
			field("name", "Name", true),
			field("title", "Title", true),
			field("bio", "Bio", false),
			field("profile_image", "Image", false),
			field("resume", "Resume", false),
			field("email", "Email", true),
			field("phone", "Phone", false),
			field("location", "Location", false),
			field("github", "GitHub", false),
			field("linkedin", "LinkedIn", false),
			field("twitter", "Twitter", false),
			field("instagram", "Instagram", false),
			readOnly("created_at", "Created", false),
		},
	},
	"skill-categories": {
		Name: "skill-categories", Table: "skill_categories", OrderBy: "display_order, id",
		Fields: []Field{
			field("name", "Name", true),
			field("icon", "Icon", false),
			field("display_order", "Order", true),
		},
	},
	"skills": {
		Name: "skills", Table: "skills", OrderBy: "category_id, display_order, id",
		Fields: []Field{
			field("category_id", "Category", true),
			field("name", "Name", true),
			field("proficiency", "Proficiency", true),
			field("icon", "Icon", false),
			field("display_order", "Order", false),
		},
	},
	"services": {
		Name: "services", Table: "services", OrderBy: "display_order, id",
		Fields: []Field{
			field("title", "Title", true),
			field("description", "Description", false),
			field("icon", "Icon", false),
			field("price_starting", "Price from", true),
			field("is_featured", "Featured", true),
			field("display_order", "Order", true),
		},
	},
	"projects": {
		Name: "projects", Table: "projects", OrderBy: "created_date DESC, display_order, id",
		Fields: []Field{
			field("title", "Title", true),
			field("description", "Description", false),
			field("image", "Image", false),
			field("tech_stack", "Tech stack", true),
			field("github_url", "GitHub", false),
			field("demo_url", "Demo", false),
			field("is_featured", "Featured", true),
			field("created_date", "Created", true),
			field("display_order", "Order", false),
		},
	},
	"experiences": {
		Name: "experiences", Table: "experiences", OrderBy: "start_date DESC, id",
		Fields: []Field{
			field("company", "Company", true),
			field("position", "Position", true),
			field("description", "Description", false),
			field("start_date", "Start", true),
			field("end_date", "End", true),
			field("is_current", "Current", true),
			field("company_logo", "Logo", false),
		},
	},
	"testimonials": {
		Name: "testimonials", Table: "testimonials", OrderBy: "created_at DESC, id",
		Fields: []Field{
			field("client_name", "Client", true),
			field("client_designation", "Designation", false),
			field("client_company", "Company", true),
			field("client_photo", "Photo", false),
			field("review", "Review", false),
			field("rating", "Rating", true),
			field("is_featured", "Featured", true),
			readOnly("created_at", "Created", false),
		},
	},
	"posts": {
		Name: "posts", Table: "blog_posts", OrderBy: "created_at DESC, id",
		Fields: []Field{
			field("title", "Title", true),
			field("slug", "Slug", true),
			field("content", "Content", false),
			field("excerpt", "Excerpt", false),
			field("featured_image", "Image", false),
			field("tags", "Tags", true),
			field("is_published", "Published", true),
			field("created_at", "Created", true),
			readOnly("updated_at", "Updated", false),
		},
	},
	"contacts": {
		Name: "contacts", Table: "contacts", OrderBy: "created_at DESC, id",
		Fields: []Field{
			field("name", "Name", true),
			field("email", "Email", true),
			field("subject", "Subject", true),
			field("message", "Message", false),
			field("is_read", "Read", true),
			field("created_at", "Received", true),
		},
	},
	"templates": {
		Name: "templates", Table: "project_templates", OrderBy: "uploaded_at DESC, id",
		Fields: []Field{
			field("title", "Title", true),
			field("description", "Description", false),
			field("url", "URL", true),
			field("icon", "Icon", false),
			field("template_type", "Type", true),
			readOnly("uploaded_at", "Uploaded", true),
		},
	},
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, error) {
	d, ok := descriptors[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown entity %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names lists the registered entity names, sorted.
func Names() []string {
	names := make([]string, 0, len(descriptors))
	for name := range descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d Descriptor) editable(column string) bool {
	for _, f := range d.Fields {
		if f.Column == column {
			return f.Editable
		}
	}
	return false
}

// Listed returns the fields shown by list, in declaration order.
func (d Descriptor) Listed() []Field {
	listed := make([]Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.ListDisplay {
			listed = append(listed, f)
		}
	}
	return listed
}

// ListQuery selects the id plus every listed column in the entity's admin order.
func (d Descriptor) ListQuery() string {
	columns := []string{"id"}
	for _, f := range d.Listed() {
		columns = append(columns, f.Column)
	}
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(columns, ", "), d.Table, d.OrderBy)
}

// InsertQuery builds a named insert for columns, which must all be editable.
func (d Descriptor) InsertQuery(columns []string) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("%s: record has no fields", d.Name)
	}

	params := make([]string, 0, len(columns))
	for _, c := range columns {
		if !d.editable(c) {
			return "", fmt.Errorf("%s: field %q is not editable", d.Name, c)
		}
		params = append(params, ":"+c)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.Table, strings.Join(columns, ", "), strings.Join(params, ", ")), nil
}
