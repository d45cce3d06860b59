package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"civicpulse/internal/auth"
	"civicpulse/internal/errors"
	"civicpulse/internal/model"
	"civicpulse/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and the two credential paths: store-backed
// email+password and the fixed admin pair from configuration.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	AdminLogin(ctx context.Context, username, password string) (token string, err error)
	GetUser(ctx context.Context, id string) (*model.User, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtService    *auth.JWTService
	adminUsername string
	adminPassword string
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, adminUsername, adminPassword string) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Register creates a new citizen account and returns a signed token for it.
func (s *authService) Register(ctx context.Context, email, password, fullName string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, errors.ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
		Role:         model.RoleCitizen,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Login authenticates a stored account and returns a signed token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// AdminLogin checks the fixed credential pair from configuration and issues
// a token for the sentinel admin identity. No user record is involved.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return "", errors.ErrInvalidAdminCredentials
	}

	token, err := s.jwtService.GenerateToken(auth.AdminID, auth.AdminEmail, model.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// GetUser retrieves a stored user by ID. The sentinel admin has no record
// here; callers short-circuit it before asking.
func (s *authService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
