package blogRepository

const (
	queryGetAllPosts = `
		SELECT
			id,
			title,
			slug,
			content,
			excerpt,
			featured_image,
			tags,
			is_published,
			created_at,
			updated_at
		FROM blog_posts
		ORDER BY created_at DESC, id DESC
	`

	queryGetRecentPublishedPosts = `
		SELECT
			id,
			title,
			slug,
			content,
			excerpt,
			featured_image,
			tags,
			is_published,
			created_at,
			updated_at
		FROM blog_posts
		WHERE is_published = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT :limit
	`

	queryGetPostBySlug = `
		SELECT
			id,
			title,
			slug,
			content,
			excerpt,
			featured_image,
			tags,
			is_published,
			created_at,
			updated_at
		FROM blog_posts
		WHERE slug = :slug
	`

	queryUpsertPost = `
		INSERT INTO blog_posts (
			title,
			slug,
			content,
			excerpt,
			featured_image,
			tags,
			is_published,
			created_at,
			updated_at
		) VALUES (
			:title,
			:slug,
			:content,
			:excerpt,
			:featured_image,
			:tags,
			:is_published,
			:created_at,
			:updated_at
		)
		ON CONFLICT (slug) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			excerpt = excluded.excerpt,
			featured_image = excluded.featured_image,
			tags = excluded.tags,
			is_published = excluded.is_published,
			updated_at = excluded.updated_at
		RETURNING id
	`
)
