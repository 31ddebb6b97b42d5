package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
)

// GenerateGames asks the backend to generate more games for an existing folder.
func (c *Client) GenerateGames(ctx context.Context, folderID string, req request.GenerateGamesRequest) (response.GenerateGamesResponse, error) {
	var resp response.GenerateGamesResponse
	path := "/ai/generate-from-folder/" + url.PathEscape(folderID)
	if err := c.doJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		return response.GenerateGamesResponse{}, fmt.Errorf("c.GenerateGames -> %w", err)
	}

	return resp, nil
}

func (c *Client) RandomFolderWithGames(ctx context.Context) (domain.FolderWithGames, error) {
	var fg domain.FolderWithGames
	if err := c.doJSON(ctx, http.MethodGet, "/ai/folders/random/with-games", nil, &fg); err != nil {
		return domain.FolderWithGames{}, fmt.Errorf("c.RandomFolderWithGames -> %w", err)
	}

	return fg, nil
}
