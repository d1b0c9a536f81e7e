package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"socialfit/internal/config"
	"socialfit/internal/ledger"
	"socialfit/internal/model"
	"socialfit/internal/store"
)

func newTestAuthService() *AuthService {
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AccessTokenMaxAge: 3600,
	}
	return NewAuthService(ledger.NewUserDirectory(store.NewMemoryStore()), cfg)
}

func TestAuthService_Register(t *testing.T) {
	s := newTestAuthService()
	ctx := context.Background()

	resp, err := s.Register(ctx, &model.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     model.RoleStudent,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if resp.User.ID == "" {
		t.Error("user id should be generated")
	}
	if resp.Token == "" {
		t.Error("token should be issued")
	}

	// The stored hash verifies against the original password.
	user, err := s.GetUser(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("getUser: %v", err)
	}
	if user.PasswordHashed == "secret123" {
		t.Error("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	// The token carries the user id and verifies with the configured secret.
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["user_id"] != resp.User.ID {
		t.Errorf("token user_id = %v, want %s", claims["user_id"], resp.User.ID)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	s := newTestAuthService()

	_, err := s.Register(context.Background(), &model.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	if !errors.Is(err, model.ErrInvalidRole) {
		t.Fatalf("error = %v, want ErrInvalidRole", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	s := newTestAuthService()
	ctx := context.Background()

	req := &model.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     model.RoleTrainer,
	}
	if _, err := s.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := s.Register(ctx, req)
	if !errors.Is(err, model.ErrEmailExists) {
		t.Fatalf("error = %v, want ErrEmailExists", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	s := newTestAuthService()
	ctx := context.Background()

	registered, err := s.Register(ctx, &model.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     model.RoleStudent,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := s.Login(ctx, &model.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.ID != registered.User.ID {
		t.Errorf("user id = %s, want %s", resp.User.ID, registered.User.ID)
	}
	if resp.Token == "" {
		t.Error("token should be issued")
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	s := newTestAuthService()
	ctx := context.Background()

	if _, err := s.Register(ctx, &model.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     model.RoleStudent,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// An unknown email and a wrong password look the same to the caller.
	cases := []model.LoginRequest{
		{Email: "ana@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret123"},
	}
	for _, req := range cases {
		_, err := s.Login(ctx, &req)
		if !errors.Is(err, model.ErrInvalidCredentials) {
			t.Errorf("login %s: error = %v, want ErrInvalidCredentials", req.Email, err)
		}
	}
}
