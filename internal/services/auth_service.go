package services

import (
	"context"

	"zanara/internal/api"
	"zanara/internal/models"
	"zanara/internal/services/dto"
	"zanara/internal/validator"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.AccountUser, error)
	Login(ctx context.Context, email, password string) (*models.AccountUser, error)
	Me(ctx context.Context) (*models.AccountUser, error)
	Logout()
}

type authService struct {
	client   *api.Client
	validate *validator.Validator
}

func NewAuthService(client *api.Client) AuthService {
	return &authService{
		client:   client,
		validate: validator.New(),
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*models.AccountUser, error) {
	if err := s.validate.Validate(&req); err != nil {
		return nil, err
	}

	var resp dto.AuthResponse
	if err := s.client.Post(ctx, "/auth/register", &req, &resp); err != nil {
		return nil, err
	}
	s.client.Session().Begin(resp.Token, &resp.User)
	return &resp.User, nil
}

// Login authenticates and installs the session: from here on every request
// carries the returned bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (*models.AccountUser, error) {
	req := dto.LoginRequest{Email: email, Password: password}
	if err := s.validate.Validate(&req); err != nil {
		return nil, err
	}

	var resp dto.AuthResponse
	if err := s.client.Post(ctx, "/auth/login", &req, &resp); err != nil {
		return nil, err
	}
	s.client.Session().Begin(resp.Token, &resp.User)
	return &resp.User, nil
}

func (s *authService) Me(ctx context.Context) (*models.AccountUser, error) {
	var user models.AccountUser
	if err := s.client.Get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) Logout() {
	s.client.Session().Clear()
}
