package authRepository_test

import (
	"context"
	"io"
	"testing"
	"time"

	"goblog/internal/api/auth"
	authRepository "goblog/internal/api/auth/repository"
	"goblog/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (authRepository.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := authRepository.New(sqlx.NewDb(db, "sqlmock"), logger).NewClient(false)
	require.NoError(t, err)
	return client, mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "password", "created_at", "updated_at"}
}

func TestCreateUser(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	user := entity.User{
		ID:        "user-1",
		Name:      "John",
		Email:     "john@example.com",
		Password:  "$2a$10$hash",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(`(?s)INSERT INTO users.+VALUES`).
		WithArgs(user.ID, user.Name, user.Email, user.Password, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, client.Users.CreateUser(context.Background(), user))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	client, mock := newMockRepo(t)

	mock.ExpectExec(`(?s)INSERT INTO users.+VALUES`).
		WillReturnError(&pq.Error{Code: "23505"})

	err := client.Users.CreateUser(context.Background(), entity.User{ID: "user-1", Email: "john@example.com"})
	require.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT.+FROM users.+WHERE id =`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("user-1", "John", "john@example.com", "$2a$10$hash", now, now))

	user, err := client.Users.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "John", user.Name)
	require.Equal(t, "john@example.com", user.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	client, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)SELECT.+FROM users.+WHERE id =`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := client.Users.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, auth.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT.+FROM users.+WHERE email =`).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("user-1", "John", "john@example.com", "$2a$10$hash", now, now))

	user, err := client.Users.GetByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	client, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)SELECT.+FROM users.+WHERE email =`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := client.Users.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, auth.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
