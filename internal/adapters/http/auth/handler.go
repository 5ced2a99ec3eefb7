package auth

import (
	"context"
	"net/http"

	"healthgate/internal/adapters/http/response"
	domain "healthgate/internal/core/domain/auth"
	httpErrors "healthgate/internal/platform/http"
	"healthgate/internal/platform/logger"
)

type TokenInspector interface {
	VerifyToken(ctx context.Context, raw string) (*domain.Claims, error)
}

type Handler struct {
	tokens TokenInspector
}

func NewHandler(tokens TokenInspector) *Handler {
	return &Handler{tokens: tokens}
}

type ValidationResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

type UserResponse struct {
	Principal   string   `json:"principal"`
	Subject     string   `json:"subject,omitempty"`
	Email       string   `json:"email,omitempty"`
	Name        string   `json:"name,omitempty"`
	Picture     string   `json:"picture,omitempty"`
	Authorities []string `json:"authorities"`
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}

// Validate reports whether the request's bearer token would be accepted.
// A bad token is a valid=false answer, not a 401.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	result := ValidationResponse{}

	if bearer, ok := domain.BearerFromHeader(r.Header.Get("Authorization")).(domain.BearerToken); ok {
		claims, err := h.tokens.VerifyToken(r.Context(), bearer.Raw)
		if err != nil {
			logger.FromContext(r.Context()).Debug("Token validation failed", logger.Error(err))
		} else {
			result = ValidationResponse{Valid: true, Email: claims.Email}
		}
	}

	response.Success(w, r, http.StatusOK, "", result)
	return nil
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) error {
	grant, err := grantFrom(r)
	if err != nil {
		return err
	}

	user := UserResponse{
		Principal:   grant.Principal,
		Authorities: grant.Authorities.Sorted(),
	}
	if grant.Claims != nil {
		user.Subject = grant.Claims.Subject
		user.Email = grant.Claims.Email
		user.Name = grant.Claims.Name
		user.Picture = grant.Claims.Picture
	}

	response.Success(w, r, http.StatusOK, "", user)
	return nil
}

func (h *Handler) Roles(w http.ResponseWriter, r *http.Request) error {
	grant, err := grantFrom(r)
	if err != nil {
		return err
	}

	response.Success(w, r, http.StatusOK, "", RolesResponse{Roles: grant.Roles()})
	return nil
}

func grantFrom(r *http.Request) (*domain.AuthorityGrant, error) {
	grant := domain.GrantFromContext(r.Context())
	if grant == nil {
		return nil, httpErrors.NewUnauthorized(domain.ErrTokenMissing.Error(), nil)
	}
	return grant, nil
}
