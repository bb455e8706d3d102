package blogService

import (
	"context"

	authRepository "goblog/internal/api/auth/repository"
	blogs "goblog/internal/api/blog"
	blogRepository "goblog/internal/api/blog/repository"
	"goblog/internal/entity"
	"goblog/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, user entity.UserLoginData) (blogs.BlogResponse, error)
	GetBlogByID(ctx context.Context, id string) (blogs.BlogResponse, error)
	GetBlogs(ctx context.Context, query blogs.ListBlogsQuery) ([]blogs.BlogResponse, error)
	GetMyBlogs(ctx context.Context, user entity.UserLoginData) ([]blogs.BlogResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, user entity.UserLoginData) (blogs.BlogResponse, error)
	DeleteBlog(ctx context.Context, id string, user entity.UserLoginData) error
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogRepository.Repository
	authRepo  authRepository.Repository
	utils     utils.IUtils
}

func New(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	authRepo authRepository.Repository,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		authRepo:  authRepo,
		utils:     utils,
	}
}
