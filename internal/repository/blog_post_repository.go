package repository

import (
	"context"

	"gorm.io/gorm"

	"blogapi/internal/model"
)

// BlogPostRepository defines blog post persistence operations.
type BlogPostRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	Update(ctx context.Context, post *model.BlogPost) error
	FindByID(ctx context.Context, id uint) (*model.BlogPost, error)
	// SearchByTitle returns one page of posts whose title contains title
	// (case-insensitive) together with the total match count. An empty title
	// matches everything.
	SearchByTitle(ctx context.Context, title string, page, perPage int) ([]model.BlogPost, int64, error)
	Delete(ctx context.Context, post *model.BlogPost) error
}

type blogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository builds a GORM-backed repository.
func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) Create(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogPostRepository) Update(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *blogPostRepository) FindByID(ctx context.Context, id uint) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) SearchByTitle(ctx context.Context, title string, page, perPage int) ([]model.BlogPost, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.BlogPost{})
	if title != "" {
		q = q.Where("title LIKE ?", "%"+title+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.BlogPost
	offset := (page - 1) * perPage
	if err := q.Order("id").Limit(perPage).Offset(offset).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *blogPostRepository) Delete(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Delete(post).Error
}
