package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := conn(ctx, r.db).Create(model.CategoryFromEntity(category)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerror.ErrCategoryNameExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUser retrieves all categories of a user, optionally filtered by type.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID, categoryType *entity.EntryType) ([]*entity.Category, error) {
	query := conn(ctx, r.db).Where("user_id = ?", userID)
	if categoryType != nil {
		query = query.Where("type = ?", string(*categoryType))
	}

	var categoryModels []model.CategoryModel
	if err := query.Order("type ASC").Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	return toCategories(categoryModels), nil
}

// FindByNameAndType retrieves a user's category by name and type.
func (r *categoryRepository) FindByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.EntryType) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := conn(ctx, r.db).
		Where("user_id = ? AND name = ? AND type = ?", userID, name, string(categoryType)).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindChildren retrieves the direct children of a category.
func (r *categoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := conn(ctx, r.db).Where("parent_id = ?", parentID).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	return toCategories(categoryModels), nil
}

// FirstOrCreate returns the user's category with the given name and type, creating it when missing.
func (r *categoryRepository) FirstOrCreate(ctx context.Context, userID uuid.UUID, name string, categoryType entity.EntryType, now time.Time) (*entity.Category, error) {
	now = now.UTC()

	var categoryModel model.CategoryModel
	result := conn(ctx, r.db).
		Where(model.CategoryModel{UserID: userID, Name: name, Type: string(categoryType)}).
		Attrs(model.CategoryModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}).
		FirstOrCreate(&categoryModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	if err := conn(ctx, r.db).Save(model.CategoryFromEntity(category)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerror.ErrCategoryNameExists
		}
		return err
	}
	return nil
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.CategoryModel{}, "id = ?", id).Error
}

func toCategories(categoryModels []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories
}
