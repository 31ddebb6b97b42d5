package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
)

type FolderStore interface {
	ListFolders(ctx context.Context, userID string) ([]domain.Folder, error)
	FindFolder(ctx context.Context, folderID string) (domain.Folder, error)
	FolderWithGames(ctx context.Context, folderID string) (domain.FolderWithGames, error)
	CreateFolder(ctx context.Context, userID string, req request.CreateFolderRequest) (domain.Folder, error)
	UpdateFolder(ctx context.Context, userID, folderID string, req request.UpdateFolderRequest) (domain.Folder, error)
	DeleteFolder(ctx context.Context, userID, folderID string) error
	GenerateGames(ctx context.Context, userID, folderID string, req request.GenerateGamesRequest) ([]domain.Game, error)
	RandomFolder(ctx context.Context) (domain.FolderWithGames, error)
}

type FolderHandler struct {
	store FolderStore
}

func NewFolderHandler(store FolderStore) *FolderHandler {
	return &FolderHandler{
		store: store,
	}
}

// HandleListFolders godoc
// @Summary      List the folders owned by the authenticated user
// @Tags         folders
// @Success      200  {array}   domain.Folder
// @Router       /folders/ [get]
// @Security BearerAuth
func (h *FolderHandler) HandleListFolders(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	folders, err := h.store.ListFolders(ctx.Request.Context(), userID)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleListFolders -> h.store.ListFolders", err)
		return
	}

	ctx.JSON(http.StatusOK, folders)
}

func (h *FolderHandler) HandleGetFolder(ctx *gin.Context) {
	folder, err := h.store.FindFolder(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderStoreErr(ctx, "v1.HandleGetFolder -> h.store.FindFolder", err)
		return
	}

	ctx.JSON(http.StatusOK, folder)
}

func (h *FolderHandler) HandleGetFolderWithGames(ctx *gin.Context) {
	fg, err := h.store.FolderWithGames(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderStoreErr(ctx, "v1.HandleGetFolderWithGames -> h.store.FolderWithGames", err)
		return
	}

	ctx.JSON(http.StatusOK, fg)
}

// HandleCreateFolder godoc
// @Summary      Create a folder
// @Tags         folders
// @Param        input  body      request.CreateFolderRequest  true  "Folder details"
// @Success      201    {object}  domain.Folder
// @Failure      400    {object}  response.Err
// @Router       /folders/ [post]
// @Security BearerAuth
func (h *FolderHandler) HandleCreateFolder(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateFolderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	folder, err := h.store.CreateFolder(ctx.Request.Context(), userID, req)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleCreateFolder -> h.store.CreateFolder", err)
		return
	}

	ctx.JSON(http.StatusCreated, folder)
}

func (h *FolderHandler) HandleUpdateFolder(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateFolderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	folder, err := h.store.UpdateFolder(ctx.Request.Context(), userID, ctx.Param("id"), req)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleUpdateFolder -> h.store.UpdateFolder", err)
		return
	}

	ctx.JSON(http.StatusOK, folder)
}

func (h *FolderHandler) HandleDeleteFolder(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.store.DeleteFolder(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		renderStoreErr(ctx, "v1.HandleDeleteFolder -> h.store.DeleteFolder", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGenerateGames godoc
// @Summary      Generate more games for a folder
// @Tags         ai
// @Param        input  body      request.GenerateGamesRequest  true  "Generation options"
// @Success      200    {object}  response.GenerateGamesResponse
// @Failure      403    {object}  response.Err
// @Router       /ai/generate-from-folder/{id} [post]
// @Security BearerAuth
func (h *FolderHandler) HandleGenerateGames(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.GenerateGamesRequest{
		Duration:   domain.DefaultGenerationDuration,
		Difficulty: domain.DifficultySame,
		Language:   domain.LanguageEnglish,
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	folderID := ctx.Param("id")
	games, err := h.store.GenerateGames(ctx.Request.Context(), userID, folderID, req)
	if err != nil {
		renderStoreErr(ctx, "v1.HandleGenerateGames -> h.store.GenerateGames", err)
		return
	}

	ctx.JSON(http.StatusOK, response.GenerateGamesResponse{
		FolderID: folderID,
		Games:    games,
	})
}

func (h *FolderHandler) HandleRandomFolder(ctx *gin.Context) {
	fg, err := h.store.RandomFolder(ctx.Request.Context())
	if err != nil {
		renderStoreErr(ctx, "v1.HandleRandomFolder -> h.store.RandomFolder", err)
		return
	}

	ctx.JSON(http.StatusOK, fg)
}
