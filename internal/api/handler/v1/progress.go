package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
)

type ProgressStore interface {
	Progress(ctx context.Context, userID, folderID string) (domain.Progress, error)
	SaveProgress(ctx context.Context, userID, folderID, gameID string, correct bool) (domain.Progress, error)
}

type ProgressHandler struct {
	store ProgressStore
}

func NewProgressHandler(store ProgressStore) *ProgressHandler {
	return &ProgressHandler{
		store: store,
	}
}

func (h *ProgressHandler) HandleGetProgress(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	progress, err := h.store.Progress(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		renderStoreErr(ctx, "v1.HandleGetProgress -> h.store.Progress", err)
		return
	}

	ctx.JSON(http.StatusOK, progress)
}

func (h *ProgressHandler) HandleSaveProgress(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	progress, err := h.store.SaveProgress(ctx.Request.Context(), userID, ctx.Param("id"), ctx.Param("gameID"), req.Correct)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleSaveProgress -> h.store.SaveProgress", err)
		return
	}

	ctx.JSON(http.StatusOK, progress)
}
