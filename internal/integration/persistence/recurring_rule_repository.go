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

// recurringRuleRepository implements the adapter.RecurringRuleRepository interface.
type recurringRuleRepository struct {
	db *gorm.DB
}

// NewRecurringRuleRepository creates a new recurring rule repository instance.
func NewRecurringRuleRepository(db *gorm.DB) adapter.RecurringRuleRepository {
	return &recurringRuleRepository{
		db: db,
	}
}

// Create creates a new recurring rule in the database.
func (r *recurringRuleRepository) Create(ctx context.Context, rule *entity.RecurringRule) error {
	return conn(ctx, r.db).Create(model.RecurringRuleFromEntity(rule)).Error
}

// FindByID retrieves a recurring rule by its ID.
func (r *recurringRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringRule, error) {
	var ruleModel model.RecurringRuleModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&ruleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringRuleNotFound
		}
		return nil, result.Error
	}
	return ruleModel.ToEntity(), nil
}

// FindByUser retrieves a user's rules, optionally filtered by active flag.
func (r *recurringRuleRepository) FindByUser(ctx context.Context, userID uuid.UUID, isActive *bool) ([]*entity.RecurringRule, error) {
	query := conn(ctx, r.db).Where("user_id = ?", userID)
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var ruleModels []model.RecurringRuleModel
	if err := query.Order("next_run_date ASC").Find(&ruleModels).Error; err != nil {
		return nil, err
	}
	return toRecurringRules(ruleModels), nil
}

// FindDue retrieves active rules whose next run date is on or before asOf.
func (r *recurringRuleRepository) FindDue(ctx context.Context, asOf time.Time) ([]*entity.RecurringRule, error) {
	var ruleModels []model.RecurringRuleModel
	result := conn(ctx, r.db).
		Where("is_active = ? AND next_run_date <= ?", true, entity.DateOf(asOf)).
		Order("next_run_date ASC").
		Find(&ruleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecurringRules(ruleModels), nil
}

// CountByAccount counts the rules that post to an account.
func (r *recurringRuleRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return r.count(ctx, "account_id = ?", accountID)
}

// CountByCategory counts the rules that file under a category.
func (r *recurringRuleRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return r.count(ctx, "category_id = ?", categoryID)
}

// Update updates an existing recurring rule in the database.
func (r *recurringRuleRepository) Update(ctx context.Context, rule *entity.RecurringRule) error {
	return conn(ctx, r.db).Save(model.RecurringRuleFromEntity(rule)).Error
}

// Delete removes a recurring rule from the database.
func (r *recurringRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.RecurringRuleModel{}, "id = ?", id).Error
}

func (r *recurringRuleRepository) count(ctx context.Context, query string, arg interface{}) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&model.RecurringRuleModel{}).Where(query, arg).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toRecurringRules(ruleModels []model.RecurringRuleModel) []*entity.RecurringRule {
	rules := make([]*entity.RecurringRule, len(ruleModels))
	for i := range ruleModels {
		rules[i] = ruleModels[i].ToEntity()
	}
	return rules
}
