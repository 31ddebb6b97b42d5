package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
)

type ReportStore interface {
	CreateReport(ctx context.Context, userID string, req request.ReportRequest) (domain.Report, error)
}

type ReportHandler struct {
	store ReportStore
}

func NewReportHandler(store ReportStore) *ReportHandler {
	return &ReportHandler{
		store: store,
	}
}

func (h *ReportHandler) HandleCreateReport(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.store.CreateReport(ctx.Request.Context(), userID, req)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleCreateReport -> h.store.CreateReport", err)
		return
	}

	ctx.JSON(http.StatusCreated, report)
}
