// Package report contains the transaction report use case.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

const (
	periodDateLayout = "Jan 02, 2006"
	noTransactions   = "No transactions"
)

// GenerateReportInput narrows the transactions that go into a report.
type GenerateReportInput struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	Type      *entity.EntryType
	StartDate *time.Time
	EndDate   *time.Time
}

// GenerateReportOutput is a rendered report ready for download.
type GenerateReportOutput struct {
	Report      *entity.Report
	Content     []byte
	ContentType string
	FileName    string
}

// GenerateReportUseCase builds and renders a transaction report.
type GenerateReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	renderer        adapter.ReportRenderer
	clock           adapter.Clock
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	renderer adapter.ReportRenderer,
	clock adapter.Clock,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		renderer:        renderer,
		clock:           clock,
	}
}

// Execute computes the report and renders it.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type",
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, entity.TransactionFilter{
		UserID:    input.UserID,
		AccountID: input.AccountID,
		Type:      input.Type,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	accounts, err := uc.accountRepo.FindByFilter(ctx, adapter.AccountFilter{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	accountNames := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	now := uc.clock.Now()
	report := Build(transactions, accountNames, categoryNames, now)

	content, contentType, err := uc.renderer.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &GenerateReportOutput{
		Report:      report,
		Content:     content,
		ContentType: contentType,
		FileName:    "transactions-report-" + now.Format("2006-01-02") + uc.renderer.Extension(),
	}, nil
}

// Build totals the transactions and labels the period they cover.
// Transactions are expected newest first and keep that order.
func Build(transactions []*entity.Transaction, accountNames, categoryNames map[uuid.UUID]string, generatedAt time.Time) *entity.Report {
	report := &entity.Report{
		GeneratedAt:   generatedAt,
		Lines:         make([]entity.ReportLine, 0, len(transactions)),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		PeriodLabel:   noTransactions,
	}

	var first, last time.Time
	for i, t := range transactions {
		report.Lines = append(report.Lines, entity.ReportLine{
			Transaction:  t,
			AccountName:  accountNames[t.AccountID],
			CategoryName: categoryNames[t.CategoryID],
		})

		switch t.Type {
		case entity.EntryTypeIncome:
			report.TotalIncome = report.TotalIncome.Add(t.Amount)
		case entity.EntryTypeExpense:
			report.TotalExpenses = report.TotalExpenses.Add(t.Amount)
		}

		if i == 0 || t.Date.Before(first) {
			first = t.Date
		}
		if i == 0 || t.Date.After(last) {
			last = t.Date
		}
	}

	report.NetBalance = report.TotalIncome.Sub(report.TotalExpenses)
	if len(transactions) > 0 {
		report.PeriodLabel = first.Format(periodDateLayout) + " - " + last.Format(periodDateLayout)
	}
	return report
}
