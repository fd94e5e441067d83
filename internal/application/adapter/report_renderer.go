package adapter

import (
	"context"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// ReportRenderer turns a computed report into a downloadable document.
type ReportRenderer interface {
	// Render returns the document body and its content type.
	Render(ctx context.Context, report *entity.Report) ([]byte, string, error)

	// Extension returns the file extension of rendered documents, including the dot.
	Extension() string
}
