package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/report"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// ReportController handles report downloads.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(generateUseCase *report.GenerateReportUseCase) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
	}
}

// Transactions handles GET /reports/transactions requests.
// Accepts the same account_id, type, start_date and end_date filters as the transaction list.
func (c *ReportController) Transactions(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	dateCode := string(domainerror.ErrCodeInvalidTransactionDate)
	input := report.GenerateReportInput{UserID: userID}

	if input.AccountID, ok = queryUUID(ctx, "account_id", string(domainerror.ErrCodeMissingTransactionFields)); !ok {
		return
	}
	if input.StartDate, ok = queryDate(ctx, "start_date", dateCode); !ok {
		return
	}
	if input.EndDate, ok = queryDate(ctx, "end_date", dateCode); !ok {
		return
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.EntryType(typeStr)
		input.Type = &txnType
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "generate report")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
