package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// GetCategoryInput represents the input for a single category lookup.
type GetCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// GetCategoryUseCase returns one category with its parent and children.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category lookup.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*entity.CategoryNode, error) {
	category, err := owned.Category(ctx, uc.categoryRepo, input.UserID, input.CategoryID, "id")
	if err != nil {
		return nil, err
	}

	node := &entity.CategoryNode{Category: category}

	if category.ParentID != nil {
		parent, err := uc.categoryRepo.FindByID(ctx, *category.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent category: %w", err)
		}
		node.Parent = parent
	}

	if node.Children, err = uc.categoryRepo.FindChildren(ctx, category.ID); err != nil {
		return nil, fmt.Errorf("failed to load subcategories: %w", err)
	}
	return node, nil
}
