package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	blogs "PortfolioGolang/internal/api/blog"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PostDB struct {
	ID            int64          `db:"id"`
	Title         sql.NullString `db:"title"`
	Slug          sql.NullString `db:"slug"`
	Content       sql.NullString `db:"content"`
	Excerpt       sql.NullString `db:"excerpt"`
	FeaturedImage sql.NullString `db:"featured_image"`
	Tags          sql.NullString `db:"tags"`
	IsPublished   bool           `db:"is_published"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r *postsRepository) GetAllPosts(ctx context.Context) ([]entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var postsList []PostDB

	query, args, err := sqlx.Named(queryGetAllPosts, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &postsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts execution err")
		return nil, err
	}

	return r.makePosts(postsList), nil
}

func (r *postsRepository) GetRecentPublishedPosts(ctx context.Context, limit int) ([]entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var postsList []PostDB

	argsKV := map[string]interface{}{
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryGetRecentPublishedPosts, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentPublishedPosts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &postsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentPublishedPosts execution err")
		return nil, err
	}

	return r.makePosts(postsList), nil
}

func (r *postsRepository) GetPostBySlug(ctx context.Context, slug string) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post PostDB

	argsKV := map[string]interface{}{
		"slug": slug,
	}

	query, args, err := sqlx.Named(queryGetPostBySlug, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostBySlug named query preparation err")
		return entity.BlogPost{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       slug,
			}).Warn("GetPostBySlug no rows found")
			return entity.BlogPost{}, blogs.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostBySlug execution err")
		return entity.BlogPost{}, err
	}

	return r.makePost(post), nil
}

func (r *postsRepository) UpsertPost(ctx context.Context, post entity.BlogPost) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"title":          post.Title,
		"slug":           post.Slug,
		"content":        post.Content,
		"excerpt":        post.Excerpt,
		"featured_image": post.FeaturedImage,
		"tags":           post.Tags,
		"is_published":   post.IsPublished,
		"created_at":     post.CreatedAt,
		"updated_at":     post.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpsertPost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertPost named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       post.Slug,
			"error":      err.Error(),
		}).Error("UpsertPost execution err")
		return 0, err
	}

	return id, nil
}

func (r *postsRepository) makePosts(rows []PostDB) []entity.BlogPost {
	out := make([]entity.BlogPost, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.makePost(row))
	}
	return out
}

func (r *postsRepository) makePost(post PostDB) entity.BlogPost {
	return entity.BlogPost{
		ID:            post.ID,
		Title:         post.Title.String,
		Slug:          post.Slug.String,
		Content:       post.Content.String,
		Excerpt:       post.Excerpt.String,
		FeaturedImage: post.FeaturedImage.String,
		Tags:          post.Tags.String,
		IsPublished:   post.IsPublished,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}
