package dto

import "github.com/fadilmartias/placement-portal/internal/model"

// LoginRequest carries no validation tags: a missing email or role simply matches no user.
type LoginRequest struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type RegisterRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required"`
	Role           string   `json:"role" validate:"required"`
	Cgpa           *float64 `json:"cgpa" validate:"required"`
	GraduationYear *int     `json:"graduationYear" validate:"required"`
	Skills         []string `json:"skills"`

	// Input holds the decoded JSON body so extra keys can be echoed back.
	Input map[string]any `json:"-" validate:"-"`
}

// RegisterResponse.User is the request body as sent, minus any password, plus the new id.
type RegisterResponse struct {
	Token string         `json:"token"`
	User  map[string]any `json:"user"`
}
