package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// AttachmentModel represents the attachments table in the database.
type AttachmentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Path          string    `gorm:"type:varchar(512);not null"`
	OriginalName  string    `gorm:"type:varchar(255);not null"`
	Size          int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the AttachmentModel.
func (AttachmentModel) TableName() string {
	return "attachments"
}

// ToEntity converts an AttachmentModel to a domain Attachment entity.
func (m *AttachmentModel) ToEntity() *entity.Attachment {
	return &entity.Attachment{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		Path:          m.Path,
		OriginalName:  m.OriginalName,
		Size:          m.Size,
		CreatedAt:     m.CreatedAt,
	}
}

// AttachmentFromEntity creates an AttachmentModel from a domain Attachment entity.
func AttachmentFromEntity(attachment *entity.Attachment) *AttachmentModel {
	return &AttachmentModel{
		ID:            attachment.ID,
		TransactionID: attachment.TransactionID,
		Path:          attachment.Path,
		OriginalName:  attachment.OriginalName,
		Size:          attachment.Size,
		CreatedAt:     attachment.CreatedAt,
	}
}
