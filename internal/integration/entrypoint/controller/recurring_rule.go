package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/recurring"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/dto"
)

// RecurringRuleController handles recurring rule HTTP requests.
type RecurringRuleController struct {
	listUseCase    *recurring.ListRecurringRulesUseCase
	getUseCase     *recurring.GetRecurringRuleUseCase
	createUseCase  *recurring.CreateRecurringRuleUseCase
	updateUseCase  *recurring.UpdateRecurringRuleUseCase
	deleteUseCase  *recurring.DeleteRecurringRuleUseCase
	executeUseCase *recurring.ExecuteRuleUseCase
}

// NewRecurringRuleController creates a new recurring rule controller instance.
func NewRecurringRuleController(
	listUseCase *recurring.ListRecurringRulesUseCase,
	getUseCase *recurring.GetRecurringRuleUseCase,
	createUseCase *recurring.CreateRecurringRuleUseCase,
	updateUseCase *recurring.UpdateRecurringRuleUseCase,
	deleteUseCase *recurring.DeleteRecurringRuleUseCase,
	executeUseCase *recurring.ExecuteRuleUseCase,
) *RecurringRuleController {
	return &RecurringRuleController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		executeUseCase: executeUseCase,
	}
}

// List handles GET /recurring-rules requests.
func (c *RecurringRuleController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	isActive, ok := queryBool(ctx, "is_active")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringRulesInput{
		UserID:   userID,
		IsActive: isActive,
	})
	if err != nil {
		handleDomainError(ctx, err, "list recurring rules")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToRecurringRuleListResponse(output.Rules)))
}

// Get handles GET /recurring-rules/:id requests.
func (c *RecurringRuleController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	ruleID, ok := parseIDParam(ctx, "id", "recurring rule")
	if !ok {
		return
	}

	rule, err := c.getUseCase.Execute(ctx.Request.Context(), recurring.GetRecurringRuleInput{
		UserID: userID,
		RuleID: ruleID,
	})
	if err != nil {
		handleDomainError(ctx, err, "get recurring rule")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToRecurringRuleResponse(rule)))
}

// Create handles POST /recurring-rules requests.
func (c *RecurringRuleController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecurringRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingRuleFields))
		return
	}

	code := string(domainerror.ErrCodeMissingRuleFields)
	accountID, ok := parseUUID(ctx, req.AccountID, "account_id", code)
	if !ok {
		return
	}
	categoryID, ok := parseUUID(ctx, req.CategoryID, "category_id", code)
	if !ok {
		return
	}

	input := recurring.CreateRecurringRuleInput{
		UserID:     userID,
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       entity.EntryType(req.Type),
		Amount:     req.Amount,
		Frequency:  entity.Frequency(req.Frequency),
		EndDate:    req.EndDate.Value(),
		Note:       req.Note,
	}
	if req.StartDate != nil {
		input.StartDate = req.StartDate.Time
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "create recurring rule")
		return
	}

	ctx.JSON(http.StatusCreated, dto.Data(dto.ToRecurringRuleResponse(output.Rule)))
}

// Update handles PATCH /recurring-rules/:id requests.
func (c *RecurringRuleController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	ruleID, ok := parseIDParam(ctx, "id", "recurring rule")
	if !ok {
		return
	}

	var req dto.UpdateRecurringRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingRuleFields))
		return
	}

	code := string(domainerror.ErrCodeMissingRuleFields)
	accountID, ok := parseOptionalUUID(ctx, req.AccountID, "account_id", code)
	if !ok {
		return
	}
	categoryID, ok := parseOptionalUUID(ctx, req.CategoryID, "category_id", code)
	if !ok {
		return
	}

	input := recurring.UpdateRecurringRuleInput{
		UserID:       userID,
		RuleID:       ruleID,
		AccountID:    accountID,
		CategoryID:   categoryID,
		Amount:       req.Amount,
		StartDate:    req.StartDate.Value(),
		NextRunDate:  req.NextRunDate.Value(),
		Note:         req.Note,
		EndDate:      req.EndDate.Value.Value(),
		ClearEndDate: req.EndDate.IsNull(),
		IsActive:     req.IsActive,
	}
	if req.Type != nil {
		ruleType := entity.EntryType(*req.Type)
		input.Type = &ruleType
	}
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "update recurring rule")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToRecurringRuleResponse(output.Rule)))
}

// Delete handles DELETE /recurring-rules/:id requests.
// Transactions already produced by the rule are kept.
func (c *RecurringRuleController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	ruleID, ok := parseIDParam(ctx, "id", "recurring rule")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringRuleInput{
		UserID: userID,
		RuleID: ruleID,
	}); err != nil {
		handleDomainError(ctx, err, "delete recurring rule")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Execute handles POST /recurring-rules/:id/execute requests.
// The rule must be due; it fires once and advances its next run date.
func (c *RecurringRuleController) Execute(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	ruleID, ok := parseIDParam(ctx, "id", "recurring rule")
	if !ok {
		return
	}

	output, err := c.executeUseCase.Execute(ctx.Request.Context(), recurring.ExecuteRuleInput{
		UserID: userID,
		RuleID: ruleID,
	})
	if err != nil {
		handleDomainError(ctx, err, "execute recurring rule")
		return
	}

	ctx.JSON(http.StatusCreated, dto.Data(dto.ExecuteRuleResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Rule:        dto.ToRecurringRuleResponse(output.Rule),
		Exhausted:   output.Exhausted,
	}))
}
