package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"socialfit/internal/config"
	"socialfit/internal/ledger"
	"socialfit/internal/model"
)

// AuthService handles registration, login and access token issuance on top of
// the user directory.
type AuthService struct {
	users  *ledger.UserDirectory
	config *config.Config
}

func NewAuthService(users *ledger.UserDirectory, cfg *config.Config) *AuthService {
	return &AuthService{
		users:  users,
		config: cfg,
	}
}

// Register creates an account and returns the public user plus a signed
// access token.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if req.Role != model.RoleStudent && req.Role != model.RoleTrainer {
		return nil, model.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		PasswordHashed: string(hashed),
		Role:           req.Role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{User: user.Summary(), Token: token}, nil
}

// Login checks credentials and returns the public user plus a signed access
// token. An unknown email and a wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{User: user.Summary(), Token: token}, nil
}

// GetUser returns the full user record for the given id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers returns the public view of every registered user.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	return s.users.List(ctx)
}

func (s *AuthService) generateAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}
