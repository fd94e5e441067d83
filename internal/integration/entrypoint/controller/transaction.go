package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/transaction"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/transfer"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction-related HTTP requests.
type TransactionController struct {
	listUseCase    *transaction.ListTransactionsUseCase
	getUseCase     *transaction.GetTransactionUseCase
	createUseCase  *transaction.CreateTransactionUseCase
	updateUseCase  *transaction.UpdateTransactionUseCase
	deleteUseCase  *transaction.DeleteTransactionUseCase
	partnerUseCase *transfer.GetTransferPartnerUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	partnerUseCase *transfer.GetTransferPartnerUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		partnerUseCase: partnerUseCase,
	}
}

// List handles GET /transactions requests.
// Supports account_id, category_id, type, start_date and end_date filters.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	code := string(domainerror.ErrCodeMissingTransactionFields)
	input := transaction.ListTransactionsInput{UserID: userID}

	if input.AccountID, ok = queryUUID(ctx, "account_id", code); !ok {
		return
	}
	if input.CategoryID, ok = queryUUID(ctx, "category_id", code); !ok {
		return
	}
	if input.StartDate, ok = queryDate(ctx, "start_date", string(domainerror.ErrCodeInvalidTransactionDate)); !ok {
		return
	}
	if input.EndDate, ok = queryDate(ctx, "end_date", string(domainerror.ErrCodeInvalidTransactionDate)); !ok {
		return
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.EntryType(typeStr)
		input.Type = &txnType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "list transactions")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToTransactionListResponse(output.Transactions)))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	txn, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleDomainError(ctx, err, "get transaction")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToTransactionResponse(txn)))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	if req.TransferGroupID != nil {
		handleDomainError(ctx, domainerror.NewTransactionError(
			domainerror.ErrCodeTransferLegImmutable,
			"transfer_group_id",
			"transfers must be created through /transfers",
			nil,
		), "create transaction")
		return
	}

	code := string(domainerror.ErrCodeMissingTransactionFields)
	accountID, ok := parseUUID(ctx, req.AccountID, "account_id", code)
	if !ok {
		return
	}
	categoryID, ok := parseUUID(ctx, req.CategoryID, "category_id", code)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:       userID,
		AccountID:    accountID,
		CategoryID:   categoryID,
		Type:         entity.EntryType(req.Type),
		Amount:       req.Amount,
		Date:         req.Date.Value(),
		Note:         req.Note,
		Counterparty: req.Counterparty,
	})
	if err != nil {
		handleDomainError(ctx, err, "create transaction")
		return
	}

	ctx.JSON(http.StatusCreated, dto.Data(dto.ToTransactionResponse(output.Transaction)))
}

// Update handles PATCH /transactions/:id requests.
// Amount and date edits on a transfer leg are mirrored to its partner.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	categoryID, ok := parseOptionalUUID(ctx, req.CategoryID, "category_id", string(domainerror.ErrCodeMissingTransactionFields))
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		CategoryID:    categoryID,
		Amount:        req.Amount,
		Date:          req.Date.Value(),
		Note:          req.Note,
		Counterparty:  req.Counterparty,
	})
	if err != nil {
		handleDomainError(ctx, err, "update transaction")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToTransactionResponse(output.Transaction)))
}

// Delete handles DELETE /transactions/:id requests.
// Deleting a transfer leg removes both legs.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleDomainError(ctx, err, "delete transaction")
		return
	}

	deleted := make([]string, 0, len(output.DeletedIDs))
	for _, id := range output.DeletedIDs {
		deleted = append(deleted, id.String())
	}

	ctx.JSON(http.StatusOK, dto.DataWithMessage(dto.DeleteTransactionResponse{DeletedIDs: deleted}, "Transaction deleted"))
}

// TransferPartner handles GET /transactions/:id/transfer-partner requests.
// Answers 404 when the transaction is not part of a transfer.
func (c *TransactionController) TransferPartner(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	partner, err := c.partnerUseCase.Execute(ctx.Request.Context(), transfer.GetTransferPartnerInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleDomainError(ctx, err, "find transfer partner")
		return
	}
	if partner == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "transaction is not part of a transfer",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
			Field: "id",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToTransactionResponse(partner)))
}
