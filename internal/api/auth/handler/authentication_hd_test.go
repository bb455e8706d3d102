package authHandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goblog/internal/api/auth"
	authHandler "goblog/internal/api/auth/handler"
	"goblog/internal/middleware"
	jwtPkg "goblog/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error)
	loginFn    func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	currentFn  func(ctx context.Context, userID string) (auth.UserResponse, error)
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) GetCurrentUser(ctx context.Context, userID string) (auth.UserResponse, error) {
	return s.currentFn(ctx, userID)
}

func newApp(t *testing.T, svc *stubAuthService) *fiber.App {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	h := authHandler.New(logger, svc, validator.New(), middleware.New(logger))
	h.Start(app.Group("/api"))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestHandleSignup_Created(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
			require.Equal(t, "john@example.com", req.Email)
			return auth.TokenResponse{AccessToken: "signed-token", ExpiresAt: time.Now().Add(time.Hour).Unix()}, nil
		},
	}
	app := newApp(t, svc)

	resp, body := doRequest(t, app, http.MethodPost, "/api/auth/signup", "", auth.RegisterRequest{
		Name:     "John",
		Email:    "john@example.com",
		Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])
	require.Equal(t, "signed-token", body["token"])
}

func TestHandleSignup_InvalidEmail(t *testing.T) {
	app := newApp(t, &stubAuthService{})

	resp, body := doRequest(t, app, http.MethodPost, "/api/auth/signup", "", auth.RegisterRequest{
		Name:     "John",
		Email:    "not-an-email",
		Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, false, body["success"])
}

func TestHandleSignup_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
			return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
		},
	}
	app := newApp(t, svc)

	resp, body := doRequest(t, app, http.MethodPost, "/api/auth/signup", "", auth.RegisterRequest{
		Name:     "John",
		Email:    "john@example.com",
		Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, false, body["success"])
}

func TestHandleLogin_OK(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
			return auth.TokenResponse{AccessToken: "signed-token"}, nil
		},
	}
	app := newApp(t, svc)

	resp, body := doRequest(t, app, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{
		Email:    "john@example.com",
		Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])
	require.Equal(t, "signed-token", body["token"])
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		},
	}
	app := newApp(t, svc)

	resp, body := doRequest(t, app, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, false, body["success"])
}

func TestHandleGetMe_OK(t *testing.T) {
	svc := &stubAuthService{
		currentFn: func(ctx context.Context, userID string) (auth.UserResponse, error) {
			require.Equal(t, "user-1", userID)
			return auth.UserResponse{ID: userID, Name: "John", Email: "john@example.com"}, nil
		},
	}
	app := newApp(t, svc)

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       "user-1",
		"email":    "john@example.com",
		"username": "John",
	}, time.Hour)
	require.NoError(t, err)

	resp, body := doRequest(t, app, http.MethodGet, "/api/auth/me", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	require.Equal(t, "user-1", data["id"])
	require.Equal(t, "John", data["name"])
	require.NotContains(t, data, "password")
}

func TestHandleGetMe_NoToken(t *testing.T) {
	app := newApp(t, &stubAuthService{})

	resp, body := doRequest(t, app, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, false, body["success"])
}
