package profileRepository

const (
	queryGetProfile = `
		SELECT
			id,
			name,
			title,
			bio,
			profile_image,
			resume,
			email,
			phone,
			location,
			github,
			linkedin,
			twitter,
			instagram,
			created_at
		FROM profiles
		ORDER BY id ASC
		LIMIT 1
	`

	queryGetAllExperiences = `
		SELECT
			id,
			company,
			position,
			description,
			start_date,
			end_date,
			is_current,
			company_logo
		FROM experiences
		ORDER BY start_date DESC, id ASC
	`

	queryGetAllCategories = `
		SELECT
			id,
			name,
			icon,
			display_order
		FROM skill_categories
		ORDER BY display_order ASC, id ASC
	`

	queryGetAllSkills = `
		SELECT
			id,
			category_id,
			name,
			proficiency,
			icon,
			display_order
		FROM skills
		ORDER BY category_id ASC, display_order ASC, id ASC
	`

	queryGetAllServices = `
		SELECT
			id,
			title,
			description,
			icon,
			price_starting,
			is_featured,
			display_order
		FROM services
		ORDER BY display_order ASC, id ASC
	`

	queryGetFeaturedServices = `
		SELECT
			id,
			title,
			description,
			icon,
			price_starting,
			is_featured,
			display_order
		FROM services
		WHERE is_featured = TRUE
		ORDER BY display_order ASC, id ASC
		LIMIT :limit
	`

	queryGetFeaturedTestimonials = `
		SELECT
			id,
			client_name,
			client_designation,
			client_company,
			client_photo,
			review,
			rating,
			is_featured,
			created_at
		FROM testimonials
		WHERE is_featured = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT :limit
	`
)
