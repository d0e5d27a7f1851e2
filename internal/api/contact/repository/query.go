package contactRepository

const (
	queryCreateContact = `
		INSERT INTO contacts (
			name,
			email,
			subject,
			message,
			is_read,
			created_at
		) VALUES (
			:name,
			:email,
			:subject,
			:message,
			:is_read,
			:created_at
		)
		RETURNING id
	`

	queryGetAllContacts = `
		SELECT
			id,
			name,
			email,
			subject,
			message,
			is_read,
			created_at
		FROM contacts
		WHERE (:unread_only = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC, id DESC
	`

	queryGetContactByID = `
		SELECT
			id,
			name,
			email,
			subject,
			message,
			is_read,
			created_at
		FROM contacts
		WHERE id = :id
	`

	queryMarkContactRead = `
		UPDATE contacts
		SET is_read = TRUE
		WHERE id = :id
	`
)
