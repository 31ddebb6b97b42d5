package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcourse/quizcourse/internal/api/memstore"
	"github.com/quizcourse/quizcourse/internal/api/middleware"
	"github.com/quizcourse/quizcourse/internal/api/response"
)

var errNoUserInContext = errors.New("no authenticated user in context")

func userIDFromContext(ctx *gin.Context) (string, *response.Err) {
	userID := ctx.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", response.ErrUnauthorized(errNoUserInContext)
	}

	return userID, nil
}

// renderStoreErr maps store sentinels onto HTTP statuses. A token for a user
// that no longer exists is treated as unauthenticated.
func renderStoreErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, memstore.ErrUserNotFound):
		response.RenderErr(ctx, response.ErrUnauthorized(err))
	case errors.Is(err, memstore.ErrFolderNotFound):
		response.RenderErr(ctx, response.ErrNotFound("folder", "id", ctx.Param("id")))
	case errors.Is(err, memstore.ErrGameNotFound):
		response.RenderErr(ctx, &response.Err{HTTPStatusCode: http.StatusNotFound, Detail: "game not found", Err: err})
	case errors.Is(err, memstore.ErrNotOwner):
		response.RenderErr(ctx, response.ErrPermissionDenied(err))
	case errors.Is(err, memstore.ErrGameNotInFolder):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
