package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

// UpdateUserInput carries the optionally supplied fields of a profile update.
// Nil means the field was not present in the request.
type UpdateUserInput struct {
	Name      *string
	Email     *string
	Password  *string
	Role      *string
	Image     *multipart.FileHeader
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// UserService exposes profile operations gated by the access policy.
type UserService interface {
	Get(ctx context.Context, caller auth.Identity, id uint) (*model.User, error)
	Update(ctx context.Context, caller auth.Identity, id uint, in UpdateUserInput) (*model.User, error)
	Search(ctx context.Context, query, role string) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	files    storage.Storage
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, files storage.Storage) UserService {
	return &userService{userRepo: userRepo, files: files}
}

// Get returns a user's details when the caller is an admin or the user itself.
func (s *userService) Get(ctx context.Context, caller auth.Identity, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !auth.CanAccess(caller, user.ID) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// Update applies the supplied fields to the target user. Ownership is checked
// before validation-sensitive work; absent fields are left untouched, and a
// single supplied coordinate sets no location.
func (s *userService) Update(ctx context.Context, caller auth.Identity, id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !auth.CanAccess(caller, user.ID) {
		return nil, apperrors.ErrUnauthorized
	}

	if in.Email != nil && *in.Email != user.Email {
		taken, err := s.userRepo.EmailTaken(ctx, *in.Email, user.ID)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, apperrors.ErrEmailTaken
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Image != nil {
		path, err := s.files.Store(in.Image)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		user.Image = &path
	}
	if in.Address != nil {
		user.Address = in.Address
	}
	if in.Latitude != nil && in.Longitude != nil {
		user.Latitude = in.Latitude
		user.Longitude = in.Longitude
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Search filters users by a name-or-email substring and an exact role. Both
// filters are optional and AND-combined; results are not paginated.
func (s *userService) Search(ctx context.Context, query, role string) ([]model.User, error) {
	return s.userRepo.Search(ctx, query, role)
}
