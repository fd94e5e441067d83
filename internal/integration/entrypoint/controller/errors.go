package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/dto"
)

// handleDomainError writes the error envelope for any ledger error.
// Errors without a code are logged and reported as internal errors.
func handleDomainError(ctx *gin.Context, err error, operation string) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	coded, ok := domainerror.AsCoded(err)
	if !ok {
		slog.Error("Failed to "+operation, "error", err, "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	statusCode := getStatusCodeForKind(coded.Kind())
	if statusCode == http.StatusInternalServerError {
		slog.Error("Failed to "+operation, "error", err, "code", coded.ErrorCode(), "path", ctx.FullPath())
	}

	ctx.JSON(statusCode, dto.ErrorResponse{
		Error: coded.ErrorMessage(),
		Code:  coded.ErrorCode(),
		Field: coded.ErrorField(),
	})
}

// getStatusCodeForKind maps error kinds to HTTP status codes.
func getStatusCodeForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindValidation:
		return http.StatusUnprocessableEntity
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
