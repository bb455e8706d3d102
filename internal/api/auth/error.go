package auth

import (
	"net/http"

	"goblog/pkg/response"
)

var (
	ErrEmailAlreadyExists = response.NewError(http.StatusBadRequest, "email already registered")
	ErrInvalidCredentials = response.NewError(http.StatusUnauthorized, "invalid credentials")
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
)
