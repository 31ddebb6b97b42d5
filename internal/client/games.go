package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quizcourse/quizcourse/internal/domain"
)

func (c *Client) GamesByFolder(ctx context.Context, folderID string) ([]domain.Game, error) {
	var games []domain.Game
	if err := c.doJSON(ctx, http.MethodGet, "/games/folder/"+url.PathEscape(folderID), nil, &games); err != nil {
		return nil, fmt.Errorf("c.GamesByFolder -> %w", err)
	}

	return games, nil
}

func (c *Client) GetGame(ctx context.Context, gameID string) (domain.Game, error) {
	var game domain.Game
	if err := c.doJSON(ctx, http.MethodGet, "/games/"+url.PathEscape(gameID), nil, &game); err != nil {
		return domain.Game{}, fmt.Errorf("c.GetGame -> %w", err)
	}

	return game, nil
}

// MarkGamePlayed adds the game to the user's playedGameIds.
func (c *Client) MarkGamePlayed(ctx context.Context, gameID string) (domain.User, error) {
	var user domain.User
	path := "/games/" + url.PathEscape(gameID) + "/mark-played"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &user); err != nil {
		return domain.User{}, fmt.Errorf("c.MarkGamePlayed -> %w", err)
	}

	return user, nil
}
