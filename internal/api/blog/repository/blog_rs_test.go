package blogRepository_test

import (
	"context"
	"io"
	"testing"
	"time"

	blogs "goblog/internal/api/blog"
	blogRepository "goblog/internal/api/blog/repository"
	"goblog/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (blogRepository.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	client, err := blogRepository.New(sqlxDB, logger).NewClient(false)
	require.NoError(t, err)

	return client, mock
}

func blogColumns() []string {
	return []string{"id", "title", "category", "author", "content", "image", "user_id", "created_at", "updated_at"}
}

func TestCreateBlog(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	blog := entity.Blog{
		ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Title:     "Hello",
		Category:  entity.CategoryFinance,
		Author:    "John",
		Content:   "body",
		UserID:    "user-1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(`(?s)INSERT INTO blogs.+VALUES`).
		WithArgs(blog.ID, blog.Title, "Finance", blog.Author, blog.Content, "", blog.UserID, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, client.Blogs.CreateBlog(context.Background(), blog))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogByID(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns()).
		AddRow("blog-1", "Hello", "Travel", "Joanna", "body", "", "user-1", now, now)

	mock.ExpectQuery(`(?s)SELECT.+FROM blogs.+WHERE id =`).
		WithArgs("blog-1").
		WillReturnRows(rows)

	blog, err := client.Blogs.GetBlogByID(context.Background(), "blog-1")
	require.NoError(t, err)
	require.Equal(t, "blog-1", blog.ID)
	require.Equal(t, entity.CategoryTravel, blog.Category)
	require.Equal(t, "user-1", blog.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogByID_NotFound(t *testing.T) {
	client, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)SELECT.+FROM blogs.+WHERE id =`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(blogColumns()))

	_, err := client.Blogs.GetBlogByID(context.Background(), "missing")
	require.ErrorIs(t, err, blogs.ErrBlogNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogs_NoFilters(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns()).
		AddRow("blog-2", "Second", "Other", "Jo", "b", "", "user-2", now, now).
		AddRow("blog-1", "First", "Health", "John", "a", "", "user-1", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`(?s)SELECT.+FROM blogs.+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	result, err := client.Blogs.GetBlogs(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogs_CategoryAndAuthorFilters(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns()).
		AddRow("blog-1", "Hello", "Technology", "Joanna", "b", "", "user-1", now, now)

	// Author filter becomes a case-insensitive substring match.
	mock.ExpectQuery(`(?s)SELECT.+FROM blogs.+WHERE category = .+ AND author ILIKE .+ORDER BY created_at DESC`).
		WithArgs("Technology", "%jo%").
		WillReturnRows(rows)

	result, err := client.Blogs.GetBlogs(context.Background(), "Technology", "jo")
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "Joanna", result[0].Author)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogsByUserID(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns()).
		AddRow("blog-1", "Mine", "Career", "John", "b", "", "user-1", now, now)

	mock.ExpectQuery(`(?s)SELECT.+FROM blogs.+WHERE user_id =`).
		WithArgs("user-1").
		WillReturnRows(rows)

	result, err := client.Blogs.GetBlogsByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "user-1", result[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlog(t *testing.T) {
	client, mock := newMockRepo(t)

	now := time.Now()
	blog := entity.Blog{
		ID:        "blog-1",
		Title:     "Updated",
		Category:  entity.CategoryHealth,
		Content:   "new body",
		UpdatedAt: now,
	}

	mock.ExpectExec(`(?s)UPDATE blogs.+SET.+WHERE id =`).
		WithArgs(blog.Title, "Health", blog.Content, "", now, blog.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, client.Blogs.UpdateBlog(context.Background(), blog))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlog_NotFound(t *testing.T) {
	client, mock := newMockRepo(t)

	mock.ExpectExec(`(?s)UPDATE blogs.+SET.+WHERE id =`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.Blogs.UpdateBlog(context.Background(), entity.Blog{ID: "missing"})
	require.ErrorIs(t, err, blogs.ErrBlogNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlog(t *testing.T) {
	client, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM blogs`).
		WithArgs("blog-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, client.Blogs.DeleteBlog(context.Background(), "blog-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlog_NotFound(t *testing.T) {
	client, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM blogs`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.Blogs.DeleteBlog(context.Background(), "missing")
	require.ErrorIs(t, err, blogs.ErrBlogNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
