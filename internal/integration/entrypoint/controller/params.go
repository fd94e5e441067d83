package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/middleware"
)

// requireUserID reads the authenticated user and answers 401 when absent.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a UUID path parameter and answers 400 when it is malformed.
func parseIDParam(ctx *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
			Field: param,
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseUUID parses an identifier taken from a request body or query string.
func parseUUID(ctx *gin.Context, value, field, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: field + " must be a valid UUID",
			Code:  code,
			Field: field,
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUID parses value when it is present.
func parseOptionalUUID(ctx *gin.Context, value *string, field, code string) (*uuid.UUID, bool) {
	if value == nil {
		return nil, true
	}
	id, ok := parseUUID(ctx, *value, field, code)
	if !ok {
		return nil, false
	}
	return &id, true
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(ctx *gin.Context, name, code string) (*uuid.UUID, bool) {
	raw, present := ctx.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	return parseOptionalUUID(ctx, &raw, name, code)
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(ctx *gin.Context, name, code string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	date, err := dto.ParseDate(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: name + " must use the " + dto.DateLayout + " format",
			Code:  code,
			Field: name,
		})
		return nil, false
	}
	return &date, true
}

// queryBool parses an optional boolean query parameter.
func queryBool(ctx *gin.Context, name string) (*bool, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: name + " must be true or false",
			Field: name,
		})
		return nil, false
	}
	return &value, true
}

// respondInvalidBody answers 400 for a body that could not be decoded.
func respondInvalidBody(ctx *gin.Context, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  code,
	})
}
