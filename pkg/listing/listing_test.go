package listing

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID        int
	Title     string
	Body      string
	Tags      string
	Published bool
	Created   time.Time
}

func itemSpec(pageSize int) Spec[item] {
	return Spec[item]{
		PageSize: pageSize,
		Visible:  func(i item) bool { return i.Published },
		SearchFields: func(i item) []string {
			return []string{i.Title, i.Body}
		},
		FilterField: func(i item) string { return i.Tags },
		Less: func(a, b item) bool {
			if !a.Created.Equal(b.Created) {
				return a.Created.After(b.Created)
			}
			return a.ID < b.ID
		},
	}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func ids(items []item) []int {
	out := make([]int, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func TestRun_FilterByTechnology(t *testing.T) {
	projects := []item{
		{ID: 1, Tags: "Python, Django", Published: true, Created: day(1)},
		{ID: 2, Tags: "Go, Docker", Published: true, Created: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	res := Run(projects, itemSpec(9), Query{Filter: "Go", Page: 1})

	assert.Equal(t, []int{2}, ids(res.Page.Items))
	assert.Equal(t, []string{"Django", "Docker", "Go", "Python"}, res.Tags)
}

func TestRun_FilterIsSubstringNotExactTag(t *testing.T) {
	items := []item{
		{ID: 1, Tags: "Golang", Published: true, Created: day(1)},
		{ID: 2, Tags: "Django", Published: true, Created: day(2)},
		{ID: 3, Tags: "Rust", Published: true, Created: day(3)},
	}

	res := Run(items, itemSpec(9), Query{Filter: "go"})

	assert.Equal(t, []int{2, 1}, ids(res.Page.Items))
}

func TestRun_SearchIsCaseInsensitiveOrAcrossFields(t *testing.T) {
	items := []item{
		{ID: 1, Title: "Building a CLI", Body: "cobra", Published: true, Created: day(1)},
		{ID: 2, Title: "Notes", Body: "on building services", Published: true, Created: day(2)},
		{ID: 3, Title: "Unrelated", Body: "nothing here", Published: true, Created: day(3)},
	}

	res := Run(items, itemSpec(9), Query{Search: "BUILDING"})

	assert.Equal(t, []int{2, 1}, ids(res.Page.Items))
	for _, got := range res.Page.Items {
		assert.True(t, ContainsFold(got.Title, "building") || ContainsFold(got.Body, "building"))
	}
}

func TestRun_SearchAndFilterCombine(t *testing.T) {
	items := []item{
		{ID: 1, Title: "Go API", Tags: "Go", Published: true, Created: day(1)},
		{ID: 2, Title: "Go CLI", Tags: "Rust", Published: true, Created: day(2)},
		{ID: 3, Title: "Web", Tags: "Go", Published: true, Created: day(3)},
	}

	res := Run(items, itemSpec(9), Query{Search: "go", Filter: "go"})

	assert.Equal(t, []int{1}, ids(res.Page.Items))
}

func TestRun_VisibilityAppliesToItemsAndTags(t *testing.T) {
	items := []item{
		{ID: 1, Title: "public", Tags: "Go", Published: true, Created: day(1)},
		{ID: 2, Title: "draft", Tags: "Secret, Go", Published: false, Created: day(2)},
	}

	res := Run(items, itemSpec(6), Query{})

	assert.Equal(t, []int{1}, ids(res.Page.Items))
	assert.Equal(t, []string{"Go"}, res.Tags)

	res = Run(items, itemSpec(6), Query{Search: "draft"})
	assert.Empty(t, res.Page.Items)
}

func TestRun_TagsIgnoreSearchAndFilter(t *testing.T) {
	items := []item{
		{ID: 1, Tags: "Go", Published: true, Created: day(1)},
		{ID: 2, Tags: "Rust", Published: true, Created: day(2)},
	}

	res := Run(items, itemSpec(6), Query{Filter: "Rust"})

	assert.Equal(t, []string{"Go", "Rust"}, res.Tags)
}

func TestRun_PagesConcatenateToWholeCollection(t *testing.T) {
	var items []item
	for i := 1; i <= 23; i++ {
		items = append(items, item{
			ID:        i,
			Title:     fmt.Sprintf("post %d", i),
			Tags:      "Go",
			Published: i%5 != 0,
			Created:   day(1 + i%7),
		})
	}

	all := Run(items, itemSpec(1000), Query{Filter: "go"}).Page.Items

	var joined []item
	for page := 1; ; page++ {
		res := Run(items, itemSpec(6), Query{Filter: "go", Page: page})
		if len(res.Page.Items) == 0 {
			assert.Greater(t, page, res.Page.TotalPages)
			break
		}
		joined = append(joined, res.Page.Items...)
	}

	assert.Equal(t, ids(all), ids(joined))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}

	first := Paginate(items, 9, 1)
	assert.Equal(t, items[:9], first.Items)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 20, first.TotalItems)
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)
	assert.Equal(t, 2, first.NextPage)

	last := Paginate(items, 9, 3)
	assert.Equal(t, items[18:], last.Items)
	assert.True(t, last.HasPrevious)
	assert.Equal(t, 2, last.PreviousPage)
	assert.False(t, last.HasNext)

	beyond := Paginate(items, 9, 4)
	assert.Empty(t, beyond.Items)
	assert.NotNil(t, beyond.Items)
	assert.False(t, beyond.HasNext)
	assert.Equal(t, 3, beyond.PreviousPage)

	huge := Paginate(items, 9, 1024819115206086202)
	assert.Empty(t, huge.Items)
	assert.NotNil(t, huge.Items)
	assert.False(t, huge.HasNext)
	assert.Equal(t, 3, huge.PreviousPage)

	maxPage := Paginate([]int{1, 2, 3}, 9, math.MaxInt)
	assert.Empty(t, maxPage.Items)

	assert.Equal(t, 1, Paginate(items, 9, 0).Number)
	assert.Equal(t, 1, Paginate(items, 9, -4).Number)

	empty := Paginate([]int{}, 6, 1)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"Go", "Docker"}, SplitTags("Go, Docker"))
	assert.Equal(t, []string{"Go", "go", "Go"}, SplitTags("Go,go , Go"))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , ,"))
	assert.Equal(t, []string{"a", "b"}, SplitTags("a,,b"))
}

func TestDistinctTags_EmptyFieldContributesNothing(t *testing.T) {
	items := []item{
		{ID: 1, Tags: ""},
		{ID: 2, Tags: "Go, go"},
		{ID: 3, Tags: "Go"},
	}

	tags := DistinctTags(items, func(i item) string { return i.Tags })

	assert.Equal(t, []string{"Go", "go"}, tags)
}

func TestRelated(t *testing.T) {
	items := []item{
		{ID: 1, Tags: "Go, Docker"},
		{ID: 2, Tags: "Golang"},
		{ID: 3, Tags: "Python"},
		{ID: 4, Tags: "go"},
		{ID: 5, Tags: "Go"},
		{ID: 6, Tags: "Go"},
	}
	raw := func(i item) string { return i.Tags }
	current := items[0]

	related := Related(items, func(i item) bool { return i.ID == current.ID }, raw, FirstTag(current.Tags), 3)

	require.Len(t, related, 3)
	assert.Equal(t, []int{2, 4, 5}, ids(related))
	for _, r := range related {
		assert.NotEqual(t, current.ID, r.ID)
		assert.True(t, strings.Contains(strings.ToLower(r.Tags), "go"))
	}
}

func TestRelated_EmptyKeyMatchesEverythingButCurrent(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2, Tags: "x"}}

	related := Related(items, func(i item) bool { return i.ID == 1 }, func(i item) string { return i.Tags }, FirstTag(""), 3)

	assert.Equal(t, []int{2}, ids(related))
}
