package admin

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost matches the cost of hashes already stored in the admins table.
const PasswordCost = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Service) List(ctx context.Context) ([]Admin, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateEmail(ctx context.Context, id int64, newEmail string) (*Admin, error) {
	newEmail = strings.TrimSpace(newEmail)
	if newEmail == "" {
		return nil, ErrEmailRequired
	}

	taken, err := s.repo.EmailTakenByOther(ctx, newEmail, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailInUse
	}

	return s.repo.UpdateEmail(ctx, id, newEmail)
}

func (s *Service) UpdatePassword(ctx context.Context, id int64, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

// Upsert creates the account or resets its password when the email exists.
func (s *Service) Upsert(ctx context.Context, email, password string) (*Admin, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, false, ErrEmailRequired
	}
	if password == "" {
		return nil, false, ErrPasswordRequired
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.repo.UpdatePassword(ctx, existing.ID, hash); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	case !errors.Is(err, ErrAdminNotFound):
		return nil, false, err
	}

	a := &Admin{Email: email, Password: hash}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, false, err
	}
	return a, true, nil
}
