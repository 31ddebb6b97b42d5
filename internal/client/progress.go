package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func (c *Client) GetProgress(ctx context.Context, folderID string) (domain.Progress, error) {
	progress := domain.NewProgress(folderID)
	if err := c.doJSON(ctx, http.MethodGet, "/progress/"+url.PathEscape(folderID), nil, &progress); err != nil {
		return domain.Progress{}, fmt.Errorf("c.GetProgress -> %w", err)
	}

	return progress, nil
}

func (c *Client) SaveProgress(ctx context.Context, folderID, gameID string, correct bool) (domain.Progress, error) {
	progress := domain.NewProgress(folderID)
	path := "/progress/" + url.PathEscape(folderID) + "/" + url.PathEscape(gameID)
	err := c.doJSON(ctx, http.MethodPut, path, request.SaveProgressRequest{Correct: correct}, &progress)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("c.SaveProgress -> %w", err)
	}

	return progress, nil
}
