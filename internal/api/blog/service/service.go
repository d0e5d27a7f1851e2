package blogService

import (
	"context"

	blogs "PortfolioGolang/internal/api/blog"
	blogRepository "PortfolioGolang/internal/api/blog/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IBlogService interface {
	ListPosts(ctx context.Context, req blogs.ListPostsRequest) (*blogs.PostListResponse, error)
	GetPostDetail(ctx context.Context, slug string) (*blogs.PostDetailResponse, error)
	GetRecentPosts(ctx context.Context) ([]entity.BlogPost, error)
	SavePost(ctx context.Context, req blogs.SavePostRequest) (entity.BlogPost, error)
}

type blogService struct {
	log      *logrus.Logger
	blogRepo blogRepository.Repository
	utils    utils.IUtils
}

func NewBlogService(
	log *logrus.Logger,
	blogRepo blogRepository.Repository,
	utils utils.IUtils,
) IBlogService {
	return &blogService{
		log:      log,
		blogRepo: blogRepo,
		utils:    utils,
	}
}
