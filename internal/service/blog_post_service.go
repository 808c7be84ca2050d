package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

// PostsPerPage is the fixed page size of post search results.
const PostsPerPage = 10

// PostInput is the validated payload for creating or updating a post.
type PostInput struct {
	Title   string
	Content string
	Image   *multipart.FileHeader
}

// BlogPostService exposes blog post operations. Update and Delete require an
// authenticated caller but do not check post ownership, preserving the
// permissive behavior of the original API.
type BlogPostService interface {
	Create(ctx context.Context, caller auth.Identity, in PostInput) (*model.BlogPost, error)
	Update(ctx context.Context, id uint, in PostInput) (*model.BlogPost, error)
	Get(ctx context.Context, id uint) (*model.BlogPost, error)
	Search(ctx context.Context, title string, page int) ([]model.BlogPost, int64, error)
	Delete(ctx context.Context, id uint) error
}

type blogPostService struct {
	postRepo repository.BlogPostRepository
	files    storage.Storage
}

// NewBlogPostService builds a BlogPostService.
func NewBlogPostService(postRepo repository.BlogPostRepository, files storage.Storage) BlogPostService {
	return &blogPostService{postRepo: postRepo, files: files}
}

// Create stores a new post owned by the caller.
func (s *blogPostService) Create(ctx context.Context, caller auth.Identity, in PostInput) (*model.BlogPost, error) {
	post := &model.BlogPost{
		Title:   in.Title,
		Content: in.Content,
		UserID:  caller.ID,
	}

	if in.Image != nil {
		path, err := s.files.Store(in.Image)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		post.Image = &path
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Update replaces title and content and, when a new image is supplied, swaps
// the stored file. The new file is stored before the old one is deleted so a
// failed write never loses the existing image.
func (s *blogPostService) Update(ctx context.Context, id uint, in PostInput) (*model.BlogPost, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		path, err := s.files.Store(in.Image)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		if post.Image != nil {
			if err := s.files.Delete(*post.Image); err != nil {
				return nil, fmt.Errorf("delete old image: %w", err)
			}
		}
		post.Image = &path
	}

	post.Title = in.Title
	post.Content = in.Content

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Get returns a post by id.
func (s *blogPostService) Get(ctx context.Context, id uint) (*model.BlogPost, error) {
	return s.findPost(ctx, id)
}

// Search returns one page of posts matching the title substring, with the
// total match count. Pages below 1 are treated as page 1.
func (s *blogPostService) Search(ctx context.Context, title string, page int) ([]model.BlogPost, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.postRepo.SearchByTitle(ctx, title, page, PostsPerPage)
}

// Delete removes a post and its stored image, if any.
func (s *blogPostService) Delete(ctx context.Context, id uint) error {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return err
	}

	if post.Image != nil {
		if err := s.files.Delete(*post.Image); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}
	if err := s.postRepo.Delete(ctx, post); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *blogPostService) findPost(ctx context.Context, id uint) (*model.BlogPost, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}
