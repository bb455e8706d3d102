package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			category,
			author,
			content,
			image,
			user_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:category,
			:author,
			:content,
			:image,
			:user_id,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			category,
			author,
			content,
			image,
			user_id,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	queryGetBlogs = `
		SELECT
			id,
			title,
			category,
			author,
			content,
			image,
			user_id,
			created_at,
			updated_at
		FROM blogs
	`

	queryGetBlogsByUserID = `
		SELECT
			id,
			title,
			category,
			author,
			content,
			image,
			user_id,
			created_at,
			updated_at
		FROM blogs
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			category = :category,
			content = :content,
			image = :image,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`
)
