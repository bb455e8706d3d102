package blogs

import (
	"net/http"

	"goblog/pkg/response"
)

var (
	ErrBlogNotFound    = response.NewError(http.StatusNotFound, "blog not found")
	ErrBlogNotOwned    = response.NewError(http.StatusForbidden, "user not authorized to modify this blog")
	ErrInvalidCategory = response.NewError(http.StatusBadRequest, "invalid blog category")
	ErrCreateBlog      = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog      = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrDeleteBlog      = response.NewError(http.StatusInternalServerError, "failed to delete blog")
)
