package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
)

type GameStore interface {
	GamesByFolder(ctx context.Context, folderID string) ([]domain.Game, error)
	FindGame(ctx context.Context, gameID string) (domain.Game, error)
	MarkPlayed(ctx context.Context, userID, gameID string) (domain.User, error)
}

type GameHandler struct {
	store GameStore
}

func NewGameHandler(store GameStore) *GameHandler {
	return &GameHandler{
		store: store,
	}
}

func (h *GameHandler) HandleGamesByFolder(ctx *gin.Context) {
	games, err := h.store.GamesByFolder(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderStoreErr(ctx, "v1.HandleGamesByFolder -> h.store.GamesByFolder", err)
		return
	}

	ctx.JSON(http.StatusOK, games)
}

func (h *GameHandler) HandleGetGame(ctx *gin.Context) {
	game, err := h.store.FindGame(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderStoreErr(ctx, "v1.HandleGetGame -> h.store.FindGame", err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

// HandleMarkPlayed godoc
// @Summary      Add a game to the user's played games
// @Tags         games
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.Err
// @Router       /games/{id}/mark-played [post]
// @Security BearerAuth
func (h *GameHandler) HandleMarkPlayed(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.store.MarkPlayed(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		renderStoreErr(ctx, "v1.HandleMarkPlayed -> h.store.MarkPlayed", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
