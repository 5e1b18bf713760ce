package gateway

import (
	"context"
	"net/http"

	"jobboard/internal/domain/employers"
)

// Auth talks to the public authentication endpoints. It works without a
// stored session; login is how a session comes to exist.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) Auth {
	return Auth{c: c}
}

// LoginResult mirrors the server's login payload.
type LoginResult struct {
	Role     string              `json:"role"`
	Token    string              `json:"token"`
	Email    string              `json:"email"`
	Employer *employers.Employer `json:"employer,omitempty"`
}

func (a Auth) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	err := a.c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &out)
	return out, err
}

func (a Auth) Signup(ctx context.Context, req employers.SignupRequest) (string, error) {
	var out struct {
		UID string `json:"uid"`
	}
	err := a.c.do(ctx, http.MethodPost, "/api/v1/auth/signup", req, &out)
	return out.UID, err
}

func (a Auth) VerifyEmail(ctx context.Context, token string) error {
	return a.c.do(ctx, http.MethodPost, "/api/v1/auth/verify-email", map[string]string{"token": token}, nil)
}

func (a Auth) ForgotPassword(ctx context.Context, email string) error {
	return a.c.do(ctx, http.MethodPost, "/api/v1/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (a Auth) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return a.c.do(ctx, http.MethodPost, "/api/v1/auth/reset-password", body, nil)
}
