package dto

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// AttachmentResponse represents a stored receipt or document.
type AttachmentResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	OriginalName  string    `json:"original_name"`
	Size          int64     `json:"size"`
	SizeHuman     string    `json:"size_human"`
	URL           string    `json:"url"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToAttachmentResponse converts an attachment; url is resolved by the file storage.
func ToAttachmentResponse(attachment *entity.Attachment, url string) AttachmentResponse {
	return AttachmentResponse{
		ID:            attachment.ID.String(),
		TransactionID: attachment.TransactionID.String(),
		OriginalName:  attachment.OriginalName,
		Size:          attachment.Size,
		SizeHuman:     humanize.IBytes(uint64(attachment.Size)),
		URL:           url,
		CreatedAt:     attachment.CreatedAt,
	}
}
