package blogs

import "time"

type CreateBlogRequest struct {
	Title    string `json:"title" validate:"required,max=100"`
	Category string `json:"category" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Image    string `json:"image" validate:"omitempty"`
}

type UpdateBlogRequest struct {
	Title    string `json:"title" validate:"omitempty,max=100"`
	Category string `json:"category" validate:"omitempty"`
	Content  string `json:"content" validate:"omitempty"`
	Image    string `json:"image" validate:"omitempty"`
}

// ListBlogsQuery carries the optional filters of GET /api/blogs.
type ListBlogsQuery struct {
	Category string
	Author   string
}

type BlogResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
