package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"paynet/pkg/domain"
	"paynet/pkg/platform/validation"
)

// Record is the only durable console state: the upstream session token and
// the auxiliary role string returned at login.
type Record struct {
	Token string `json:"token" yaml:"admin_token"`
	Role  string `json:"role,omitempty" yaml:"role,omitempty"`
}

// AdminClaims is the expected payload of an admin session token. Decoding
// into this type rejects tokens whose claims have the wrong JSON types.
type AdminClaims struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UniqueID string `json:"unique_id"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Admin maps the claims onto the shared identity type.
func (c *AdminClaims) Admin() *domain.Admin {
	a := &domain.Admin{
		ID:       c.ID,
		Name:     c.Name,
		UniqueID: c.UniqueID,
		Email:    c.Email,
		Role:     c.Role,
	}
	if c.ExpiresAt != nil {
		a.ExpiresAt = c.ExpiresAt.Time
	}
	return a
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() error {
	return validation.Validate(r)
}

// LoginResult is what a successful login yields to the transport layer.
type LoginResult struct {
	SessionKey string
	Admin      *domain.Admin
	Role       string
}

// IdentityResponse is the whoami view.
type IdentityResponse struct {
	AdminID       string    `json:"admin_id"`
	AdminName     string    `json:"admin_name"`
	AdminUniqueID string    `json:"admin_unique_id"`
	AdminEmail    string    `json:"admin_email"`
	Role          string    `json:"role,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func NewIdentityResponse(a *domain.Admin) IdentityResponse {
	return IdentityResponse{
		AdminID:       a.ID,
		AdminName:     a.Name,
		AdminUniqueID: a.UniqueID,
		AdminEmail:    a.Email,
		Role:          a.Role,
		ExpiresAt:     a.ExpiresAt,
	}
}
