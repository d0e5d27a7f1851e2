// Package listing narrows, orders and paginates in-memory collections of content
// records. Project gallery and blog index share it with different specs.
package listing

import (
	"sort"
	"strings"
)

// Spec describes how one entity type takes part in a listing.
type Spec[T any] struct {
	// PageSize must be positive.
	PageSize int
	// Visible, when set, is applied before anything else.
	Visible func(T) bool
	// SearchFields returns the texts a search term is matched against.
	SearchFields func(T) []string
	// FilterField returns the raw comma-separated tag field.
	FilterField func(T) string
	// Less is the natural order.
	Less func(a, b T) bool
}

// Query is what the visitor asked for.
type Query struct {
	Search string
	Filter string
	Page   int
}

// Page is one slice of an ordered collection plus the metadata to navigate it.
type Page[T any] struct {
	Items        []T
	Number       int
	Size         int
	TotalItems   int
	TotalPages   int
	HasPrevious  bool
	HasNext      bool
	PreviousPage int
	NextPage     int
}

// Result is a listing page together with the filter options for the whole visible set.
type Result[T any] struct {
	Page Page[T]
	Tags []string
}

// Run executes the listing pipeline: visibility, search, filter, sort, paginate.
// Tags are computed over every visible record regardless of search and filter.
func Run[T any](items []T, spec Spec[T], q Query) Result[T] {
	visible := make([]T, 0, len(items))
	for _, item := range items {
		if spec.Visible == nil || spec.Visible(item) {
			visible = append(visible, item)
		}
	}

	matched := make([]T, 0, len(visible))
	for _, item := range visible {
		if q.Search != "" && !matchesAny(spec.SearchFields(item), q.Search) {
			continue
		}
		if q.Filter != "" && !ContainsFold(spec.FilterField(item), q.Filter) {
			continue
		}
		matched = append(matched, item)
	}

	if spec.Less != nil {
		sort.SliceStable(matched, func(i, j int) bool {
			return spec.Less(matched[i], matched[j])
		})
	}

	return Result[T]{
		Page: Paginate(matched, spec.PageSize, q.Page),
		Tags: DistinctTags(visible, spec.FilterField),
	}
}

// Sort orders items in place by less, keeping equal items in their current order.
func Sort[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

// Paginate returns page number of items split into pages of size. Numbers below 1
// mean the first page; numbers past the last page give an empty page.
func Paginate[T any](items []T, size, number int) Page[T] {
	if size < 1 {
		size = 1
	}
	if number < 1 {
		number = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	page := Page[T]{
		Items:       []T{},
		Number:      number,
		Size:        size,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasPrevious: number > 1,
		HasNext:     number < totalPages,
	}
	if page.HasPrevious {
		page.PreviousPage = min(number-1, totalPages)
	}
	if page.HasNext {
		page.NextPage = number + 1
	}

	// Compared before multiplying: a huge number would overflow start.
	if number > totalPages || total == 0 {
		return page
	}
	start := (number - 1) * size
	end := min(start+size, total)
	page.Items = items[start:end]

	return page
}

// DistinctTags collects the parsed tags of all items, exact-string unique, sorted.
func DistinctTags[T any](items []T, raw func(T) string) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, tag := range SplitTags(raw(item)) {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

// SplitTags parses a raw comma-separated field. Segments are trimmed and empty
// segments dropped, so "" and " , " both yield no tags.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FirstTag returns the first parsed tag of raw or "" when there is none.
func FirstTag(raw string) string {
	tags := SplitTags(raw)
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}

// Related returns up to limit items, in the given order, that are not the current
// one and whose raw field contains key. An empty key matches every item.
func Related[T any](items []T, isCurrent func(T) bool, raw func(T) string, key string, limit int) []T {
	related := make([]T, 0, limit)
	for _, item := range items {
		if len(related) >= limit {
			break
		}
		if isCurrent(item) {
			continue
		}
		if ContainsFold(raw(item), key) {
			related = append(related, item)
		}
	}
	return related
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func matchesAny(fields []string, term string) bool {
	for _, field := range fields {
		if ContainsFold(field, term) {
			return true
		}
	}
	return false
}
