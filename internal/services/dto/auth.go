package dto

import "zanara/internal/models"

type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	FullName         string `json:"full_name" validate:"required"`
	ProfessionalType string `json:"professional_type" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login: a bearer token plus the
// account record it belongs to.
type AuthResponse struct {
	Token string             `json:"token"`
	User  models.AccountUser `json:"user"`
}
