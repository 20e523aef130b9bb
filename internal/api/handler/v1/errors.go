package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/drivent-api/internal/api/middleware"
	"github.com/vietanh2810/drivent-api/internal/domain"
)

// renderServiceErr maps a service error to a response by its kind. op names the failing
// call for the server log.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, domain.ErrPaymentRequired):
		response.RenderErr(ctx, response.ErrPaymentRequired(err))
	case errors.Is(err, domain.ErrForbidden):
		response.RenderErr(ctx, response.ErrPermissionDenied(err))
	case errors.Is(err, domain.ErrUnauthorized):
		response.RenderErr(ctx, response.ErrUnauthorized(err))
	case errors.Is(err, domain.ErrConflict):
		response.RenderErr(ctx, response.ErrConflict(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func userIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	v, _ := ctx.Get(middleware.ContextUserIDKey)
	userID, ok := v.(uint)
	if !ok || userID == 0 {
		return 0, response.ErrUnauthorized(errors.New("missing authenticated user"))
	}

	return userID, nil
}

// parseID parses a positive decimal id.
func parseID(name, raw string) (uint, *response.Err) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrInvalidParam(name, raw)
	}

	return uint(id), nil
}
