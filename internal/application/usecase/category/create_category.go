// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID      uuid.UUID
	Name        string
	Type        entity.TransactionType
	Description string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. Names are unique per user.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			fmt.Sprintf("invalid category type %q", input.Type),
			domainerror.ErrInvalidCategoryType,
		)
	}

	exists, err := uc.categoryRepo.ExistsByUserAndName(ctx, input.UserID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("category %q already exists", input.Name),
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(input.UserID, input.Name, input.Type, input.Description)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
