package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"jobboard/internal/domain/employers"
	"jobboard/internal/faults"
)

const (
	RoleAdmin    = "admin"
	RoleEmployer = "employer"

	purposeVerifyEmail   = "verify_email"
	purposePasswordReset = "password_reset"

	sessionTTL    = 8 * time.Hour
	verifyTTL     = 48 * time.Hour
	reasonBadAuth = "invalid credentials"
)

type Service struct {
	store     StoreAPI
	employers employers.StoreAPI
	secret    string
	resetTTL  time.Duration
}

func NewService(store StoreAPI, employerStore employers.StoreAPI, secret string, resetTTL time.Duration) *Service {
	return &Service{store: store, employers: employerStore, secret: secret, resetTTL: resetTTL}
}

// LoginResult carries the issued token plus the role-specific profile
// payload the console caches as its session record.
type LoginResult struct {
	Role     string              `json:"role"`
	Token    string              `json:"token"`
	Email    string              `json:"email"`
	Employer *employers.Employer `json:"employer,omitempty"`
}

// Login checks the admin collection first; an email found there never
// falls through to the employer path, even on a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	admin, err := s.store.GetAdminByEmail(ctx, email)
	if err == nil {
		if CheckPassword(admin.PasswordHash, password) != nil {
			return LoginResult{}, &faults.AuthError{Reason: reasonBadAuth}
		}
		token, err := GenerateToken(s.secret, Claims{Role: RoleAdmin, Email: admin.Email}, sessionTTL)
		if err != nil {
			return LoginResult{}, err
		}
		return LoginResult{Role: RoleAdmin, Token: token, Email: admin.Email}, nil
	}
	var notFound *faults.NotFoundError
	if !errors.As(err, &notFound) {
		// Anything other than a missing admin row is an infrastructure
		// failure, not a credential problem.
		return LoginResult{}, err
	}

	employer, err := s.employers.GetByEmail(ctx, email)
	if err != nil {
		if errors.As(err, &notFound) {
			return LoginResult{}, &faults.AuthError{Reason: reasonBadAuth}
		}
		return LoginResult{}, err
	}
	if CheckPassword(employer.PasswordHash, password) != nil {
		return LoginResult{}, &faults.AuthError{Reason: reasonBadAuth}
	}
	if !employer.EmailVerified {
		return LoginResult{}, &faults.AuthError{Reason: "please verify your email"}
	}

	// First successful login after signup marks the account verified.
	if !employer.Verified {
		if err := s.employers.SetVerified(ctx, employer.UID, true); err != nil {
			return LoginResult{}, err
		}
		employer.Verified = true
	}

	token, err := GenerateToken(s.secret, Claims{Role: RoleEmployer, UID: employer.UID, Email: employer.Email}, sessionTTL)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Role: RoleEmployer, Token: token, Email: employer.Email, Employer: &employer}, nil
}

// Signup pre-checks companyName and email before creating anything, so
// the caller gets a DuplicateError and no account. The store's unique
// indexes close the remaining check-then-act window.
func (s *Service) Signup(ctx context.Context, req employers.SignupRequest) (string, string, error) {
	if err := req.Validate(); err != nil {
		return "", "", err
	}

	if taken, err := s.employers.CompanyNameExists(ctx, req.CompanyName); err != nil {
		return "", "", err
	} else if taken {
		return "", "", &faults.DuplicateError{Field: "companyName", Value: req.CompanyName}
	}
	if taken, err := s.employers.EmailExists(ctx, req.Email); err != nil {
		return "", "", err
	} else if taken {
		return "", "", &faults.DuplicateError{Field: "email", Value: req.Email}
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return "", "", err
	}

	uid := uuid.NewString()
	if err := s.employers.Create(ctx, employers.Employer{
		UID:          uid,
		Email:        req.Email,
		CompanyName:  req.CompanyName,
		PasswordHash: hash,
	}); err != nil {
		return "", "", err
	}

	verifyToken, err := NewOpaqueToken()
	if err != nil {
		return "", "", err
	}
	if err := s.store.SaveActionToken(ctx, purposeVerifyEmail, HashToken(verifyToken), uid, time.Now().Add(verifyTTL)); err != nil {
		return "", "", err
	}

	slog.Info("employer signup", "uid", uid, "companyName", req.CompanyName)
	return uid, verifyToken, nil
}

func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	uid, err := s.store.ConsumeActionToken(ctx, purposeVerifyEmail, HashToken(token))
	if err != nil {
		return &faults.AuthError{Reason: "invalid or expired verification link"}
	}
	return s.employers.SetEmailVerified(ctx, uid)
}

// RequestPasswordReset issues a reset token for an employer account.
// Unknown emails are not reported back to the caller.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	employer, err := s.employers.GetByEmail(ctx, email)
	if err != nil {
		slog.Info("password reset requested for unknown email")
		return "", nil
	}

	token, err := NewOpaqueToken()
	if err != nil {
		return "", err
	}
	if err := s.store.SaveActionToken(ctx, purposePasswordReset, HashToken(token), employer.UID, time.Now().Add(s.resetTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	uid, err := s.store.ConsumeActionToken(ctx, purposePasswordReset, HashToken(token))
	if err != nil {
		return &faults.AuthError{Reason: "invalid or expired reset link"}
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.employers.SetPassword(ctx, uid, hash)
}

func validatePassword(password string) error {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if len(password) < 8 || !hasUpper || !hasLower || !hasDigit {
		return &faults.ValidationError{Issues: []faults.FieldIssue{{
			Field:  "newPassword",
			Reason: "must be at least 8 characters with upper and lower case letters and a number",
		}}}
	}
	return nil
}
