// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Message string
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion. Transactions keep their category
// reference; aggregations bucket them under "Uncategorized" once the category
// is gone.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
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
			"not authorized to delete category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{Message: "Category deleted successfully"}, nil
}
