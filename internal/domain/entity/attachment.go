package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a file stored alongside a transaction, such as a receipt.
type Attachment struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	Path          string
	OriginalName  string
	Size          int64
	CreatedAt     time.Time
}

// NewAttachment creates a new Attachment entity.
func NewAttachment(transactionID uuid.UUID, path, originalName string, size int64) *Attachment {
	return &Attachment{
		ID:            uuid.New(),
		TransactionID: transactionID,
		Path:          path,
		OriginalName:  originalName,
		Size:          size,
		CreatedAt:     time.Now().UTC(),
	}
}
