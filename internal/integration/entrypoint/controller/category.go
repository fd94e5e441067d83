package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/category"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/dto"
)

// CategoryController handles category-related HTTP requests.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	getUseCase    *category.GetCategoryUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	getUseCase *category.GetCategoryUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
// Supports an optional ?type=income|expense filter.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := category.ListCategoriesInput{UserID: userID}
	if typeStr := ctx.Query("type"); typeStr != "" {
		categoryType := entity.EntryType(typeStr)
		input.Type = &categoryType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "list categories")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToCategoryListResponse(output.Categories)))
}

// Get handles GET /categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(ctx, "id", "category")
	if !ok {
		return
	}

	node, err := c.getUseCase.Execute(ctx.Request.Context(), category.GetCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	})
	if err != nil {
		handleDomainError(ctx, err, "get category")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToCategoryNodeResponse(node)))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	parentID, ok := parseOptionalUUID(ctx, req.ParentID, "parent_id", string(domainerror.ErrCodeMissingCategoryFields))
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:   userID,
		Name:     req.Name,
		Type:     entity.EntryType(req.Type),
		ParentID: parentID,
	})
	if err != nil {
		handleDomainError(ctx, err, "create category")
		return
	}

	ctx.JSON(http.StatusCreated, dto.Data(dto.ToCategoryResponse(output.Category)))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(ctx, "id", "category")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	input := category.UpdateCategoryInput{
		UserID:      userID,
		CategoryID:  categoryID,
		Name:        req.Name,
		ClearParent: req.ParentID.IsNull(),
	}
	if req.Type != nil {
		categoryType := entity.EntryType(*req.Type)
		input.Type = &categoryType
	}
	if req.ParentID.Value != nil {
		parentID, ok := parseUUID(ctx, *req.ParentID.Value, "parent_id", string(domainerror.ErrCodeMissingCategoryFields))
		if !ok {
			return
		}
		input.ParentID = &parentID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "update category")
		return
	}

	ctx.JSON(http.StatusOK, dto.Data(dto.ToCategoryResponse(output.Category)))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(ctx, "id", "category")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	}); err != nil {
		handleDomainError(ctx, err, "delete category")
		return
	}

	ctx.Status(http.StatusNoContent)
}
