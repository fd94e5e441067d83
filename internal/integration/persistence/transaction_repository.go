package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return conn(ctx, r.db).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves the transactions matching the filter ordered by date descending.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	query := conn(ctx, r.db).Where("user_id = ?", filter.UserID)

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", entity.DateOf(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", entity.DateOf(*filter.EndDate))
	}

	var transactionModels []model.TransactionModel
	if err := query.Order("date DESC").Order("created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toTransactions(transactionModels), nil
}

// FindByAccount retrieves all transactions recorded against an account.
func (r *transactionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	if err := conn(ctx, r.db).Where("account_id = ?", accountID).Order("date ASC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toTransactions(transactionModels), nil
}

// FindByTransferGroup retrieves the legs sharing a transfer group token.
func (r *transactionRepository) FindByTransferGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	if err := conn(ctx, r.db).Where("transfer_group_id = ?", groupID).Order("type ASC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toTransactions(transactionModels), nil
}

// FindTransferPartner retrieves the other leg of a transfer, or nil for a plain transaction.
func (r *transactionRepository) FindTransferPartner(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	if transaction.TransferGroupID == nil {
		return nil, nil
	}

	var transactionModel model.TransactionModel
	result := conn(ctx, r.db).
		Where("transfer_group_id = ? AND id <> ?", *transaction.TransferGroupID, transaction.ID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// CountByAccount counts the transactions recorded against an account.
func (r *transactionRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return r.count(ctx, "account_id = ?", accountID)
}

// CountByCategory counts the transactions filed under a category.
func (r *transactionRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return r.count(ctx, "category_id = ?", categoryID)
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return conn(ctx, r.db).Save(model.TransactionFromEntity(transaction)).Error
}

// Delete removes transactions from the database.
func (r *transactionRepository) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(ctx, r.db).Delete(&model.TransactionModel{}, "id IN ?", ids).Error
}

func (r *transactionRepository) count(ctx context.Context, query string, arg interface{}) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&model.TransactionModel{}).Where(query, arg).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toTransactions(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions
}
