package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// seedAdminPassword is the legacy-encoded form of the seed admin's initial
// password. It must be changed after first boot.
const seedAdminPassword = "V1ZkU2RHRlhOSGhOYWsw"

// SeedAdmin creates the administrator account on first boot if it does not
// exist. Existing accounts are never touched.
func SeedAdmin(ctx context.Context, users UserRepository, logger *slog.Logger) error {
	if _, err := users.GetByID(ctx, AdminUserID); err == nil {
		logger.Info("admin account exists, skipping seed")
		return nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("checking admin account: %w", err)
	}

	admin := &User{
		ID:       AdminUserID,
		Name:     "admin",
		Email:    "admin@example.com",
		Password: seedAdminPassword,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating seed admin: %w", err)
	}

	logger.Warn("seed admin account created",
		"user_id", AdminUserID,
		"action_required", "change this password immediately",
	)
	return nil
}
