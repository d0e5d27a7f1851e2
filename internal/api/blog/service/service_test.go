package blogService

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	blogs "PortfolioGolang/internal/api/blog"
	blogRepository "PortfolioGolang/internal/api/blog/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPosts struct {
	mock.Mock
}

func (m *mockPosts) GetAllPosts(ctx context.Context) ([]entity.BlogPost, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entity.BlogPost)
	return list, args.Error(1)
}

func (m *mockPosts) GetRecentPublishedPosts(ctx context.Context, limit int) ([]entity.BlogPost, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]entity.BlogPost)
	return list, args.Error(1)
}

func (m *mockPosts) GetPostBySlug(ctx context.Context, slug string) (entity.BlogPost, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(entity.BlogPost), args.Error(1)
}

func (m *mockPosts) UpsertPost(ctx context.Context, post entity.BlogPost) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

type mockRepository struct {
	posts     *mockPosts
	committed bool
}

func (m *mockRepository) NewClient(bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Posts:    m.posts,
		Commit:   func() error { m.committed = true; return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService() (IBlogService, *mockRepository) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := &mockRepository{posts: &mockPosts{}}
	return NewBlogService(log, repo, utils.New()), repo
}

func at(day int) time.Time {
	return time.Date(2024, 3, day, 9, 0, 0, 0, time.UTC)
}

func slugs(list []entity.BlogPost) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Slug)
	}
	return out
}

func fixturePosts() []entity.BlogPost {
	return []entity.BlogPost{
		{ID: 1, Slug: "go-generics", Title: "Go generics", Tags: "Go, Generics", IsPublished: true, CreatedAt: at(1)},
		{ID: 2, Slug: "draft", Title: "Secret draft about Go", Tags: "Go, Unreleased", IsPublished: false, CreatedAt: at(9)},
		{ID: 3, Slug: "docker", Title: "Docker tips", Excerpt: "containers and go builds", Tags: "Docker", IsPublished: true, CreatedAt: at(3)},
		{ID: 4, Slug: "golang-testing", Title: "Testing", Tags: "golang", IsPublished: true, CreatedAt: at(4)},
		{ID: 5, Slug: "go-http", Title: "HTTP", Tags: "Go", IsPublished: true, CreatedAt: at(5)},
		{ID: 6, Slug: "go-errors", Title: "Errors", Tags: "Go", IsPublished: true, CreatedAt: at(6)},
		{ID: 7, Slug: "go-old", Title: "Old", Tags: "Go", IsPublished: true, CreatedAt: at(2)},
	}
}

func TestListPosts_DraftsNeverVisible(t *testing.T) {
	svc, repo := newTestService()
	repo.posts.On("GetAllPosts", mock.Anything).Return(fixturePosts(), nil)

	res, err := svc.ListPosts(context.Background(), blogs.ListPostsRequest{Search: "draft"})
	require.NoError(t, err)
	assert.Empty(t, res.Posts.Items)
	assert.NotContains(t, res.AllTags, "Unreleased")

	res, err = svc.ListPosts(context.Background(), blogs.ListPostsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"go-errors", "go-http", "golang-testing", "docker", "go-old", "go-generics"}, slugs(res.Posts.Items))
	assert.Equal(t, []string{"Docker", "Generics", "Go", "golang"}, res.AllTags)
}

func TestListPosts_SearchAndTag(t *testing.T) {
	svc, repo := newTestService()
	repo.posts.On("GetAllPosts", mock.Anything).Return(fixturePosts(), nil)

	res, err := svc.ListPosts(context.Background(), blogs.ListPostsRequest{Search: "CONTAINERS"})
	require.NoError(t, err)
	assert.Equal(t, []string{"docker"}, slugs(res.Posts.Items))

	res, err = svc.ListPosts(context.Background(), blogs.ListPostsRequest{Tag: "go", Search: "e"})
	require.NoError(t, err)
	for _, p := range res.Posts.Items {
		assert.Contains(t, []string{"go-errors", "golang-testing", "go-generics"}, p.Slug)
	}
}

func TestListPosts_PagesOfSix(t *testing.T) {
	svc, repo := newTestService()
	repo.posts.On("GetAllPosts", mock.Anything).Return(fixturePosts(), nil)

	res, err := svc.ListPosts(context.Background(), blogs.ListPostsRequest{Page: 2})
	require.NoError(t, err)
	assert.Empty(t, res.Posts.Items)
	assert.Equal(t, 1, res.Posts.TotalPages)
	assert.Equal(t, blogs.PostsPerPage, res.Posts.Size)
}

func TestGetPostDetail_RelatedAmongPublished(t *testing.T) {
	svc, repo := newTestService()
	all := fixturePosts()
	repo.posts.On("GetPostBySlug", mock.Anything, "go-generics").Return(all[0], nil)
	repo.posts.On("GetAllPosts", mock.Anything).Return(all, nil)

	res, err := svc.GetPostDetail(context.Background(), "go-generics")
	require.NoError(t, err)

	assert.Equal(t, "go-generics", res.Post.Slug)
	assert.Equal(t, []string{"go-errors", "go-http", "golang-testing"}, slugs(res.Related))
}

func TestGetPostDetail_UnpublishedIsNotFound(t *testing.T) {
	svc, repo := newTestService()
	repo.posts.On("GetPostBySlug", mock.Anything, "draft").Return(fixturePosts()[1], nil)

	_, err := svc.GetPostDetail(context.Background(), "draft")
	assert.ErrorIs(t, err, blogs.ErrPostNotFound)
	repo.posts.AssertNotCalled(t, "GetAllPosts", mock.Anything)
}

func TestGetPostDetail_Missing(t *testing.T) {
	svc, repo := newTestService()
	repo.posts.On("GetPostBySlug", mock.Anything, "nonexistent-slug").Return(entity.BlogPost{}, blogs.ErrPostNotFound)

	_, err := svc.GetPostDetail(context.Background(), "nonexistent-slug")
	assert.ErrorIs(t, err, blogs.ErrPostNotFound)
}

func TestGetRecentPosts(t *testing.T) {
	svc, repo := newTestService()
	repo.posts.On("GetRecentPublishedPosts", mock.Anything, blogs.RecentPostsLimit).
		Return(fixturePosts()[:1], nil)

	posts, err := svc.GetRecentPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestSavePost(t *testing.T) {
	svc, repo := newTestService()
	draft := false
	repo.posts.On("UpsertPost", mock.Anything, mock.MatchedBy(func(p entity.BlogPost) bool {
		return p.Slug == "hello-world-again" && p.Tags == "Go, Web" && !p.IsPublished && p.CreatedAt.Equal(at(7))
	})).Return(int64(11), nil)

	post, err := svc.SavePost(context.Background(), blogs.SavePostRequest{
		Title:       "  Hello Wörld, again!  ",
		Content:     "# Hi",
		Tags:        []string{" Go", "", "Web "},
		IsPublished: &draft,
		CreatedAt:   at(7),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), post.ID)
	assert.Equal(t, "Hello Wörld, again!", post.Title)
	assert.True(t, repo.committed)
}

func TestSavePost_RequiresTitle(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.SavePost(context.Background(), blogs.SavePostRequest{Title: "   "})
	assert.ErrorIs(t, err, blogs.ErrInvalidPostData)
	repo.posts.AssertNotCalled(t, "UpsertPost", mock.Anything, mock.Anything)
}

func TestSavePost_LongSlugCutOnRuneBoundary(t *testing.T) {
	svc, repo := newTestService()
	slug := strings.Repeat("a", blogs.MaxSlugLength-1) + "ünchen"

	var saved entity.BlogPost
	repo.posts.On("UpsertPost", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(entity.BlogPost) }).
		Return(int64(3), nil)

	_, err := svc.SavePost(context.Background(), blogs.SavePostRequest{Title: "Long", Slug: slug})
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(saved.Slug))
	assert.Equal(t, blogs.MaxSlugLength, utf8.RuneCountInString(saved.Slug))
	assert.Equal(t, strings.Repeat("a", blogs.MaxSlugLength-1)+"ü", saved.Slug)
}
