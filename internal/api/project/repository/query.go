package projectRepository

const (
	queryGetAllProjects = `
		SELECT
			id,
			title,
			description,
			image,
			tech_stack,
			github_url,
			demo_url,
			is_featured,
			created_date,
			display_order
		FROM projects
		ORDER BY created_date DESC, display_order ASC, id ASC
	`

	queryGetFeaturedProjects = `
		SELECT
			id,
			title,
			description,
			image,
			tech_stack,
			github_url,
			demo_url,
			is_featured,
			created_date,
			display_order
		FROM projects
		WHERE is_featured = TRUE
		ORDER BY created_date DESC, display_order ASC, id ASC
		LIMIT :limit
	`

	queryGetProjectByID = `
		SELECT
			id,
			title,
			description,
			image,
			tech_stack,
			github_url,
			demo_url,
			is_featured,
			created_date,
			display_order
		FROM projects
		WHERE id = :id
	`

	queryGetAllTemplates = `
		SELECT
			id,
			title,
			description,
			url,
			icon,
			template_type,
			uploaded_at
		FROM project_templates
		ORDER BY uploaded_at DESC, id DESC
	`

	queryGetTemplatesByType = `
		SELECT
			id,
			title,
			description,
			url,
			icon,
			template_type,
			uploaded_at
		FROM project_templates
		WHERE template_type = :template_type
		ORDER BY uploaded_at DESC, id DESC
	`

	queryGetTemplateByID = `
		SELECT
			id,
			title,
			description,
			url,
			icon,
			template_type,
			uploaded_at
		FROM project_templates
		WHERE id = :id
	`
)
