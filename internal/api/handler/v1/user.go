package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
)

type UserStore interface {
	FindUser(ctx context.Context, userID string) (domain.User, error)
	SetInterests(ctx context.Context, userID string, interests []string) (domain.User, error)
	Dashboard(ctx context.Context, userID string) (domain.Dashboard, error)
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{
		store: store,
	}
}

// HandleMe godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Router       /users/me [get]
// @Security BearerAuth
func (h *UserHandler) HandleMe(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.store.FindUser(ctx.Request.Context(), userID)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleMe -> h.store.FindUser", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleUpdateInterests(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateInterestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.store.SetInterests(ctx.Request.Context(), userID, req.Interests)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleUpdateInterests -> h.store.SetInterests", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleDashboard(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	dashboard, err := h.store.Dashboard(ctx.Request.Context(), userID)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleDashboard -> h.store.Dashboard", err)
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}
