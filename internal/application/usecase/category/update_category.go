// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil fields are
// left unchanged.
type UpdateCategoryInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Name        *string
	Type        *entity.TransactionType
	Description *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			err,
		)
	}

	if category.UserID != input.UserID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to modify category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	if input.Name != nil && *input.Name != category.Name {
		if *input.Name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameRequired,
				"category name is required",
				domainerror.ErrCategoryNameRequired,
			)
		}
		exists, err := uc.categoryRepo.ExistsByUserAndName(ctx, input.UserID, *input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if exists {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				fmt.Sprintf("category %q already exists", *input.Name),
				domainerror.ErrCategoryNameExists,
			)
		}
		category.Name = *input.Name
	}

	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				fmt.Sprintf("invalid category type %q", *input.Type),
				domainerror.ErrInvalidCategoryType,
			)
		}
		category.Type = *input.Type
	}

	if input.Description != nil {
		category.Description = *input.Description
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
