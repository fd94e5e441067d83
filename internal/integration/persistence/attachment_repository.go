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

// attachmentRepository implements the adapter.AttachmentRepository interface.
type attachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository instance.
func NewAttachmentRepository(db *gorm.DB) adapter.AttachmentRepository {
	return &attachmentRepository{
		db: db,
	}
}

// Create creates a new attachment record in the database.
func (r *attachmentRepository) Create(ctx context.Context, attachment *entity.Attachment) error {
	return conn(ctx, r.db).Create(model.AttachmentFromEntity(attachment)).Error
}

// FindByID retrieves an attachment by its ID.
func (r *attachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Attachment, error) {
	var attachmentModel model.AttachmentModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&attachmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAttachmentNotFound
		}
		return nil, result.Error
	}
	return attachmentModel.ToEntity(), nil
}

// FindByTransactions retrieves the attachments of the given transactions, oldest first.
func (r *attachmentRepository) FindByTransactions(ctx context.Context, transactionIDs ...uuid.UUID) ([]*entity.Attachment, error) {
	if len(transactionIDs) == 0 {
		return nil, nil
	}

	var attachmentModels []model.AttachmentModel
	result := conn(ctx, r.db).
		Where("transaction_id IN ?", transactionIDs).
		Order("created_at ASC").
		Find(&attachmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	attachments := make([]*entity.Attachment, len(attachmentModels))
	for i := range attachmentModels {
		attachments[i] = attachmentModels[i].ToEntity()
	}
	return attachments, nil
}

// Delete removes attachment records from the database.
func (r *attachmentRepository) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(ctx, r.db).Delete(&model.AttachmentModel{}, "id IN ?", ids).Error
}
