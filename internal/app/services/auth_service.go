package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/app/models/dto"
	"github.com/campusnav/campusnav/internal/app/repositories"
	"github.com/campusnav/campusnav/internal/pkg/apperrors"
	"github.com/campusnav/campusnav/internal/pkg/auth"
)

// AuthService handles registration and login. Validation runs strictly
// before any persistence: a request that fails any check never writes.
type AuthService struct {
	userRepo    repositories.IUserRepository
	jwtService  *auth.JWTService
	emailDomain string
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	emailDomain string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		emailDomain: emailDomain,
		logger:      logger,
	}
}

// Register creates a user account and issues a session token. Checks run in
// order: fields present, passwords match, institutional email domain, email
// unused. Each failure is distinct and happens before the user row exists.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, apperrors.NewBadRequestError("All fields are required")
	}

	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	if !strings.HasSuffix(req.Email, s.emailDomain) {
		return nil, apperrors.ErrInvalidEmailDomain
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashed,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("user creation error: %w", err)
	}
	user.ID = userID

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Int64("userID", user.ID).Msg("User registered")

	return &dto.AuthResponse{
		Message: "User registered successfully",
		User:    dto.UserInfo{ID: user.ID, Email: user.Email},
		Token:   token,
	}, nil
}

// Login authenticates a user. An unknown email and a wrong password yield
// the same ErrInvalidCredentials so callers cannot tell which was wrong.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("All fields are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		User:    dto.UserInfo{ID: user.ID, Email: user.Email},
		Token:   token,
	}, nil
}
