package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

const bcryptCost = 10

// RegisterInput is the validated payload for a registration request.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	Image     *multipart.FileHeader
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	files      storage.Storage
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, files storage.Storage) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		files:      files,
	}
}

// Register creates a new user with a hashed password and issues a token for
// it. A location is only set when both coordinates were supplied; a single
// coordinate is silently ignored.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	taken, err := s.userRepo.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, "", apperrors.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         in.Role,
		Address:      in.Address,
	}

	if in.Image != nil {
		path, err := s.files.Store(in.Image)
		if err != nil {
			return nil, "", fmt.Errorf("store image: %w", err)
		}
		user.Image = &path
	}

	if in.Latitude != nil && in.Longitude != nil {
		user.Latitude = in.Latitude
		user.Longitude = in.Longitude
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent registration may win the unique index race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a token on success.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Logout invalidates the presented token for its remaining lifetime. Tokens
// are stateless, so invalidation is a blacklist entry keyed by JTI.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	ttl := auth.TokenExpiry
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	return s.tokenStore.BlacklistToken(ctx, claims.ID, ttl)
}
