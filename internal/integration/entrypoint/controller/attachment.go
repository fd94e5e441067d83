package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/attachment"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/dto"
)

// attachmentFormField is the multipart field carrying the uploaded file.
const attachmentFormField = "file"

// AttachmentController handles receipts and documents attached to transactions.
type AttachmentController struct {
	listUseCase   *attachment.ListAttachmentsUseCase
	addUseCase    *attachment.AddAttachmentUseCase
	deleteUseCase *attachment.DeleteAttachmentUseCase
	storage       adapter.FileStorage
}

// NewAttachmentController creates a new attachment controller instance.
func NewAttachmentController(
	listUseCase *attachment.ListAttachmentsUseCase,
	addUseCase *attachment.AddAttachmentUseCase,
	deleteUseCase *attachment.DeleteAttachmentUseCase,
	storage adapter.FileStorage,
) *AttachmentController {
	return &AttachmentController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
		storage:       storage,
	}
}

// List handles GET /transactions/:id/attachments requests.
func (c *AttachmentController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	attachments, err := c.listUseCase.Execute(ctx.Request.Context(), attachment.ListAttachmentsInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleDomainError(ctx, err, "list attachments")
		return
	}

	response := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		response = append(response, dto.ToAttachmentResponse(a, c.storage.URL(a.Path)))
	}

	ctx.JSON(http.StatusOK, dto.Data(response))
}

// Upload handles POST /transactions/:id/attachments multipart requests.
func (c *AttachmentController) Upload(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile(attachmentFormField)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A file is required",
			Code:  string(domainerror.ErrCodeAttachmentEmpty),
			Field: attachmentFormField,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleDomainError(ctx, err, "open uploaded file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("Failed to close uploaded file", "error", closeErr)
		}
	}()

	output, err := c.addUseCase.Execute(ctx.Request.Context(), attachment.AddAttachmentInput{
		UserID:        userID,
		TransactionID: transactionID,
		FileName:      fileHeader.Filename,
		Content:       file,
	})
	if err != nil {
		handleDomainError(ctx, err, "add attachment")
		return
	}

	ctx.JSON(http.StatusCreated, dto.Data(dto.ToAttachmentResponse(output.Attachment, c.storage.URL(output.Attachment.Path))))
}

// Delete handles DELETE /transactions/:id/attachments/:attachment_id requests.
func (c *AttachmentController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}
	attachmentID, ok := parseIDParam(ctx, "attachment_id", "attachment")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), attachment.DeleteAttachmentInput{
		UserID:        userID,
		TransactionID: transactionID,
		AttachmentID:  attachmentID,
	}); err != nil {
		handleDomainError(ctx, err, "delete attachment")
		return
	}

	ctx.Status(http.StatusNoContent)
}
