package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// GetTransferPartnerInput represents the input for a partner lookup.
type GetTransferPartnerInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// GetTransferPartnerUseCase returns the other leg of a transfer.
type GetTransferPartnerUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransferPartnerUseCase creates a new GetTransferPartnerUseCase instance.
func NewGetTransferPartnerUseCase(transactionRepo adapter.TransactionRepository) *GetTransferPartnerUseCase {
	return &GetTransferPartnerUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the partner leg, or nil when the transaction is not a transfer.
func (uc *GetTransferPartnerUseCase) Execute(ctx context.Context, input GetTransferPartnerInput) (*entity.Transaction, error) {
	transaction, err := owned.Transaction(ctx, uc.transactionRepo, input.UserID, input.TransactionID)
	if err != nil {
		return nil, err
	}
	if !transaction.IsTransfer() {
		return nil, nil
	}

	partner, err := uc.transactionRepo.FindTransferPartner(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to find transfer partner: %w", err)
	}
	return partner, nil
}
