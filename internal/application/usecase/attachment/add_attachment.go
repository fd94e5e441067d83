// Package attachment contains the use cases for files attached to transactions.
package attachment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// DefaultMaxSize is the upload limit used when none is configured.
const DefaultMaxSize int64 = 10 << 20

// AddAttachmentInput represents an upload for one transaction.
type AddAttachmentInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	FileName      string
	Content       io.Reader
}

// AddAttachmentOutput represents the output of an upload.
type AddAttachmentOutput struct {
	Attachment *entity.Attachment
}

// AddAttachmentUseCase stores a file and records it against a transaction.
type AddAttachmentUseCase struct {
	transactionRepo adapter.TransactionRepository
	attachmentRepo  adapter.AttachmentRepository
	storage         adapter.FileStorage
	maxSize         int64
}

// NewAddAttachmentUseCase creates a new AddAttachmentUseCase instance.
func NewAddAttachmentUseCase(
	transactionRepo adapter.TransactionRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
	maxSize int64,
) *AddAttachmentUseCase {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &AddAttachmentUseCase{
		transactionRepo: transactionRepo,
		attachmentRepo:  attachmentRepo,
		storage:         storage,
		maxSize:         maxSize,
	}
}

// Execute performs the upload.
func (uc *AddAttachmentUseCase) Execute(ctx context.Context, input AddAttachmentInput) (*AddAttachmentOutput, error) {
	name := strings.TrimSpace(filepath.Base(input.FileName))
	if input.Content == nil || name == "" || name == "." || name == string(filepath.Separator) {
		return nil, empty()
	}

	transaction, err := owned.Transaction(ctx, uc.transactionRepo, input.UserID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	// Read one byte past the limit so an oversized upload is detectable.
	path, size, err := uc.storage.Save(ctx, name, io.LimitReader(input.Content, uc.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	if size == 0 || size > uc.maxSize {
		uc.discard(ctx, path)
		if size == 0 {
			return nil, empty()
		}
		return nil, domainerror.NewAttachmentError(
			domainerror.ErrCodeAttachmentTooLarge,
			"file",
			fmt.Sprintf("file must not exceed %s", humanize.IBytes(uint64(uc.maxSize))),
			domainerror.ErrAttachmentTooLarge,
		)
	}

	attachment := entity.NewAttachment(transaction.ID, path, name, size)
	if err := uc.attachmentRepo.Create(ctx, attachment); err != nil {
		uc.discard(ctx, path)
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	return &AddAttachmentOutput{
		Attachment: attachment,
	}, nil
}

func (uc *AddAttachmentUseCase) discard(ctx context.Context, path string) {
	if err := uc.storage.Delete(ctx, path); err != nil {
		slog.Warn("Failed to discard attachment file", "error", err, "path", path)
	}
}

func empty() error {
	return domainerror.NewAttachmentError(
		domainerror.ErrCodeAttachmentEmpty,
		"file",
		"a non-empty file is required",
		domainerror.ErrAttachmentEmpty,
	)
}
