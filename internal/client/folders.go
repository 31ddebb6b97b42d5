package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func (c *Client) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	var folders []domain.Folder
	if err := c.doJSON(ctx, http.MethodGet, "/folders/", nil, &folders); err != nil {
		return nil, fmt.Errorf("c.ListFolders -> %w", err)
	}

	return folders, nil
}

func (c *Client) GetFolder(ctx context.Context, folderID string) (domain.Folder, error) {
	var folder domain.Folder
	if err := c.doJSON(ctx, http.MethodGet, "/folders/"+url.PathEscape(folderID), nil, &folder); err != nil {
		return domain.Folder{}, fmt.Errorf("c.GetFolder -> %w", err)
	}

	return folder, nil
}

func (c *Client) GetFolderWithGames(ctx context.Context, folderID string) (domain.FolderWithGames, error) {
	var fg domain.FolderWithGames
	path := "/folders/" + url.PathEscape(folderID) + "/with-games"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &fg); err != nil {
		return domain.FolderWithGames{}, fmt.Errorf("c.GetFolderWithGames -> %w", err)
	}

	return fg, nil
}

func (c *Client) CreateFolder(ctx context.Context, req request.CreateFolderRequest) (domain.Folder, error) {
	var folder domain.Folder
	if err := c.doJSON(ctx, http.MethodPost, "/folders/", req, &folder); err != nil {
		return domain.Folder{}, fmt.Errorf("c.CreateFolder -> %w", err)
	}

	return folder, nil
}

func (c *Client) UpdateFolder(ctx context.Context, folderID string, req request.UpdateFolderRequest) (domain.Folder, error) {
	var folder domain.Folder
	path := "/folders/update/" + url.PathEscape(folderID)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &folder); err != nil {
		return domain.Folder{}, fmt.Errorf("c.UpdateFolder -> %w", err)
	}

	return folder, nil
}

func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	path := "/folders/delete/" + url.PathEscape(folderID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("c.DeleteFolder -> %w", err)
	}

	return nil
}
