package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/account"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/dto"
)

// AccountController handles account-related HTTP requests.
type AccountController struct {
	listUseCase    *account.ListAccountsUseCase
	createUseCase  *account.CreateAccountUseCase
	updateUseCase  *account.UpdateAccountUseCase
	deleteUseCase  *account.DeleteAccountUseCase
	balanceUseCase *account.GetAccountBalanceUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	createUseCase *account.CreateAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	balanceUseCase *account.GetAccountBalanceUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		balanceUseCase: balanceUseCase,
	}
}

// List handles GET /accounts requests.
// Supports ?q= for a name search and ?is_active= for filtering.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	isActive, ok := queryBool(ctx, "is_active")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID:   userID,
		Query:    strings.TrimSpace(ctx.Query("q")),
		IsActive: isActive,
	})
	if err != nil {
		handleDomainError(ctx, err, "list accounts")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToAccountListResponse(output.Accounts)))
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingAccountFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		UserID:          userID,
		Name:            req.Name,
		Type:            entity.AccountType(req.Type),
		StartingBalance: req.StartingBalance,
	})
	if err != nil {
		handleDomainError(ctx, err, "create account")
		return
	}

	// A new account has no transactions, so its balance is its starting balance.
	ctx.JSON(http.StatusCreated, dto.Data(dto.ToAccountWithBalanceResponse(&entity.AccountWithBalance{
		Account:        output.Account,
		CurrentBalance: output.Account.StartingBalance,
	})))
}

// Get handles GET /accounts/:id requests.
func (c *AccountController) Get(ctx *gin.Context) {
	c.respondWithBalance(ctx)
}

// Balance handles GET /accounts/:id/balance requests.
func (c *AccountController) Balance(ctx *gin.Context) {
	c.respondWithBalance(ctx)
}

func (c *AccountController) respondWithBalance(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "id", "account")
	if !ok {
		return
	}

	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), account.GetAccountBalanceInput{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		handleDomainError(ctx, err, "compute account balance")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToAccountWithBalanceResponse(output)))
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "id", "account")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingAccountFields))
		return
	}

	input := account.UpdateAccountInput{
		UserID:          userID,
		AccountID:       accountID,
		Name:            req.Name,
		StartingBalance: req.StartingBalance,
		IsActive:        req.IsActive,
	}
	if req.Type != nil {
		accountType := entity.AccountType(*req.Type)
		input.Type = &accountType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "update account")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToAccountResponse(output.Account)))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "id", "account")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{
		UserID:    userID,
		AccountID: accountID,
	}); err != nil {
		handleDomainError(ctx, err, "delete account")
		return
	}

	ctx.Status(http.StatusNoContent)
}
