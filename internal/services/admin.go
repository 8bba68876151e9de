package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

// AdminTokenKey is the local storage key of the admin token.
const AdminTokenKey = "adminToken"

type adminService struct {
	store     domain.KeyValueStore
	userEmail string
}

// NewAdminService returns an AdminService that keeps the admin token in store and
// identifies every request as userEmail.
func NewAdminService(store domain.KeyValueStore, userEmail string) domain.AdminService {
	return &adminService{store: store, userEmail: strings.TrimSpace(userEmail)}
}

// Login stores the trimmed token. A blank token is rejected and nothing is stored.
func (s *adminService) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrAdminTokenBlank
	}
	if err := s.store.Set(ctx, AdminTokenKey, token); err != nil {
		return fmt.Errorf("save admin token: %w", err)
	}
	return nil
}

func (s *adminService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, AdminTokenKey); err != nil {
		return fmt.Errorf("remove admin token: %w", err)
	}
	return nil
}

func (s *adminService) IsAdmin(ctx context.Context) (bool, error) {
	creds, err := s.Credentials(ctx)
	if err != nil {
		return false, err
	}
	return creds.IsAdmin(), nil
}

// Credentials reads the current token on every call so a login or logout applies to the next request.
func (s *adminService) Credentials(ctx context.Context) (domain.Credentials, error) {
	token, err := s.store.Get(ctx, AdminTokenKey)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Credentials{}, fmt.Errorf("load admin token: %w", err)
	}
	return domain.Credentials{UserEmail: s.userEmail, AdminToken: token}, nil
}
