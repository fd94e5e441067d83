package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// UpdateCategoryInput represents the input for a category update.
// Nil fields are left unchanged; ClearParent turns the category into a root.
type UpdateCategoryInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Name        *string
	Type        *entity.EntryType
	ParentID    *uuid.UUID
	ClearParent bool
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles renames, type changes and re-parenting.
type UpdateCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	ruleRepo        adapter.RecurringRuleRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	ruleRepo adapter.RecurringRuleRepository,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		ruleRepo:        ruleRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := owned.Category(ctx, uc.categoryRepo, input.UserID, input.CategoryID, "id")
	if err != nil {
		return nil, err
	}

	name := category.Name
	if input.Name != nil {
		if name, err = validateName(*input.Name); err != nil {
			return nil, err
		}
	}

	newType := category.Type
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
		newType = *input.Type
	}
	typeChanged := newType != category.Type

	parentID := category.ParentID
	if input.ClearParent {
		parentID = nil
	} else if input.ParentID != nil {
		parentID = input.ParentID
	}
	parentChanged := !sameParent(parentID, category.ParentID)

	if parentID != nil && (parentChanged || typeChanged) {
		if err := uc.checkParent(ctx, category, *parentID, newType, parentChanged, typeChanged); err != nil {
			return nil, err
		}
	}

	if typeChanged {
		if err := uc.checkTypeChange(ctx, category, newType); err != nil {
			return nil, err
		}
	}

	if name != category.Name || typeChanged {
		existing, err := uc.categoryRepo.FindByNameAndType(ctx, input.UserID, name, newType)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if existing != nil && existing.ID != category.ID {
			return nil, nameTaken()
		}
	}

	category.Name = name
	category.Type = newType
	category.ParentID = parentID
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameTaken()
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}

// checkTypeChange refuses a new type while children, transactions or recurring
// rules still carry the old one.
func (uc *UpdateCategoryUseCase) checkTypeChange(ctx context.Context, category *entity.Category, newType entity.EntryType) error {
	children, err := uc.categoryRepo.FindChildren(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to load subcategories: %w", err)
	}
	for _, child := range children {
		if child.Type != newType {
			return typeMismatch("type", "cannot change type: subcategories have a different type")
		}
	}

	transactionCount, err := uc.transactionRepo.CountByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if transactionCount > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryHasTransactions,
			"type",
			"cannot change type of a category that has transactions",
			domainerror.ErrCategoryHasTransactions,
		)
	}

	ruleCount, err := uc.ruleRepo.CountByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to count category recurring rules: %w", err)
	}
	if ruleCount > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryHasRecurringRules,
			"type",
			"cannot change type of a category that has recurring rules",
			domainerror.ErrCategoryHasRecurringRules,
		)
	}
	return nil
}

// checkParent validates the parent a category will have after the update.
func (uc *UpdateCategoryUseCase) checkParent(ctx context.Context, category *entity.Category, parentID uuid.UUID, newType entity.EntryType, parentChanged, typeChanged bool) error {
	if parentID == category.ID {
		return cycle()
	}

	parent, err := owned.Category(ctx, uc.categoryRepo, category.UserID, parentID, "parent_id")
	if err != nil {
		return err
	}

	if parent.Type != newType {
		if typeChanged && !parentChanged {
			return typeMismatch("type", "cannot change type: parent category has a different type")
		}
		return typeMismatch("parent_id", "parent category must have the same type")
	}

	if parentChanged {
		categories, err := uc.categoryRepo.FindByUser(ctx, category.UserID, nil)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		if NewTree(categories).WouldCycle(category.ID, parentID) {
			return cycle()
		}
	}
	return nil
}

func cycle() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryCycle,
		"parent_id",
		"category cannot be its own ancestor",
		domainerror.ErrCategoryCycle,
	)
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
