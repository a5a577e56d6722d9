package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"companyprofile/internal/domain/admin"
	"companyprofile/internal/pkg/recaptcha"
	"companyprofile/internal/pkg/revocation"
)

// AdminFinder is the only admin lookup login needs.
type AdminFinder interface {
	GetByEmail(ctx context.Context, email string) (*admin.Admin, error)
}

type tokenIssuer interface {
	GenerateToken(adminID int64, email string) (string, error)
}

type Service struct {
	admins    AdminFinder
	jwt       tokenIssuer
	revoked   revocation.List
	recaptcha recaptcha.Verifier
}

// NewService builds the login service. A nil verifier disables the
// reCAPTCHA check.
func NewService(admins AdminFinder, jwt tokenIssuer, revoked revocation.List, verifier recaptcha.Verifier) *Service {
	return &Service{
		admins:    admins,
		jwt:       jwt,
		revoked:   revoked,
		recaptcha: verifier,
	}
}

type LoginResult struct {
	Admin *admin.Admin
	Token string
}

func (s *Service) Login(ctx context.Context, req LoginRequest, remoteIP string) (*LoginResult, error) {
	if s.recaptcha != nil {
		if err := s.recaptcha.Verify(ctx, req.RecaptchaToken, remoteIP); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRecaptchaFailed, err)
		}
	}

	a, err := s.admins.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(a.ID, a.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Admin: a, Token: token}, nil
}

// Logout revokes the token identified by jti until it would have expired.
func (s *Service) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return nil
	}
	return s.revoked.Revoke(ctx, jti, expiresAt)
}
