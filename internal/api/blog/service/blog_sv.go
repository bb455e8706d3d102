package blogService

import (
	"errors"
	"time"

	"goblog/internal/api/auth"
	blogs "goblog/internal/api/blog"
	"goblog/internal/entity"
	contextPkg "goblog/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, user entity.UserLoginData) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
		}).Warn("Invalid blog category")
		return blogs.BlogResponse{}, blogs.ErrInvalidCategory
	}

	// The author display name is always resolved server-side from the users
	// store; anything the client sends for author or user_id never reaches
	// this point.
	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	owner, err := authRepo.Users.GetByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    user.ID,
			}).Warn("Token user no longer exists")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to resolve blog author")
		}
		return blogs.BlogResponse{}, err
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.BlogResponse{}, err
	}

	now := time.Now()

	blog := entity.Blog{
		ID:        blogID,
		Title:     req.Title,
		Category:  category,
		Author:    owner.Name,
		Content:   req.Content,
		Image:     req.Image,
		UserID:    owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	return makeBlogResponse(blog), nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.BlogResponse{}, err
	}

	return makeBlogResponse(blog), nil
}

func (s *blogsService) GetBlogs(ctx context.Context, query blogs.ListBlogsQuery) ([]blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogsList, err := repo.Blogs.GetBlogs(ctx, query.Category, query.Author)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   query.Category,
			"author":     query.Author,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, err
	}

	return makeBlogResponses(blogsList), nil
}

func (s *blogsService) GetMyBlogs(ctx context.Context, user entity.UserLoginData) ([]blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogsList, err := repo.Blogs.GetBlogsByUserID(ctx, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
			"error":      err.Error(),
		}).Error("Failed to get user blogs")
		return nil, err
	}

	return makeBlogResponses(blogsList), nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, user entity.UserLoginData) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	// Existence is checked before ownership, so a non-owner learns whether
	// the id exists. That ordering is carried over from the original API.
	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.BlogResponse{}, err
	}

	if existingBlog.UserID != user.ID {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_owner":   existingBlog.UserID,
			"request_user": user.ID,
		}).Warn("User is not the owner of the blog")
		return blogs.BlogResponse{}, blogs.ErrBlogNotOwned
	}

	updated, err := applyBlogUpdate(existingBlog, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
		}).Warn("Invalid blog category")
		return blogs.BlogResponse{}, err
	}

	updated.UpdatedAt = time.Now()

	if err := repo.Blogs.UpdateBlog(ctx, updated); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return blogs.BlogResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	return makeBlogResponse(updated), nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return err
	}

	if existingBlog.UserID != user.ID {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_owner":   existingBlog.UserID,
			"request_user": user.ID,
		}).Warn("User is not the owner of the blog")
		return blogs.ErrBlogNotOwned
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return blogs.ErrDeleteBlog
	}

	return nil
}

// applyBlogUpdate overlays the non-empty request fields onto the stored
// record, re-validating the category against the same set used at creation.
func applyBlogUpdate(blog entity.Blog, req blogs.UpdateBlogRequest) (entity.Blog, error) {
	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Content != "" {
		blog.Content = req.Content
	}
	if req.Image != "" {
		blog.Image = req.Image
	}
	if req.Category != "" {
		category, err := entity.ParseCategory(req.Category)
		if err != nil {
			return entity.Blog{}, blogs.ErrInvalidCategory
		}
		blog.Category = category
	}

	return blog, nil
}

func makeBlogResponse(blog entity.Blog) blogs.BlogResponse {
	return blogs.BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Category:  blog.Category.String(),
		Author:    blog.Author,
		Content:   blog.Content,
		Image:     blog.Image,
		UserID:    blog.UserID,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

func makeBlogResponses(blogsList []entity.Blog) []blogs.BlogResponse {
	responses := make([]blogs.BlogResponse, 0, len(blogsList))
	for _, blog := range blogsList {
		responses = append(responses, makeBlogResponse(blog))
	}
	return responses
}
