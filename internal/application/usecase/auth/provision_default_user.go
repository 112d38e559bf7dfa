// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ProvisionDefaultUserInput represents the input for default user provisioning.
type ProvisionDefaultUserInput struct {
	Email    string
	FullName string
	Password string
}

// ProvisionDefaultUserOutput represents the output of default user provisioning.
type ProvisionDefaultUserOutput struct {
	User    *entity.User
	Created bool
}

// ProvisionDefaultUserUseCase creates the default user at startup when it does
// not exist yet. The operation is idempotent; query paths never lazily create
// users.
type ProvisionDefaultUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewProvisionDefaultUserUseCase creates a new ProvisionDefaultUserUseCase instance.
func NewProvisionDefaultUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ProvisionDefaultUserUseCase {
	return &ProvisionDefaultUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute ensures the default user exists.
func (uc *ProvisionDefaultUserUseCase) Execute(ctx context.Context, input ProvisionDefaultUserInput) (*ProvisionDefaultUserOutput, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return &ProvisionDefaultUserOutput{User: existing, Created: false}, nil
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default user password: %w", err)
	}

	user := entity.NewUser(input.Email, input.FullName, passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create default user: %w", err)
	}

	slog.Info("provisioned default user", "email", user.Email, "user_id", user.ID)

	return &ProvisionDefaultUserOutput{User: user, Created: true}, nil
}
