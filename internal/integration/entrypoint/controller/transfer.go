package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/transfer"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/dto"
)

// TransferController handles transfers between two of a user's accounts.
type TransferController struct {
	createUseCase *transfer.CreateTransferUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(createUseCase *transfer.CreateTransferUseCase) *TransferController {
	return &TransferController{
		createUseCase: createUseCase,
	}
}

// Create handles POST /transfers requests.
func (c *TransferController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	code := string(domainerror.ErrCodeMissingTransactionFields)
	fromAccountID, ok := parseUUID(ctx, req.FromAccountID, "from_account_id", code)
	if !ok {
		return
	}
	toAccountID, ok := parseUUID(ctx, req.ToAccountID, "to_account_id", code)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transfer.CreateTransferInput{
		UserID:        userID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        req.Amount,
		Note:          req.Note,
		Date:          req.Date.Value(),
	})
	if err != nil {
		handleDomainError(ctx, err, "create transfer")
		return
	}

	ctx.JSON(http.StatusCreated, dto.DataWithMessage(
		dto.ToTransferResponse(output.Outgoing, output.Incoming),
		"Transfer recorded",
	))
}
