package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return domain.User{}, fmt.Errorf("c.Me -> %w", err)
	}

	return user, nil
}

func (c *Client) UpdateInterests(ctx context.Context, interests []string) (domain.User, error) {
	var user domain.User
	err := c.doJSON(ctx, http.MethodPut, "/users/me/interests", request.UpdateInterestsRequest{
		Interests: interests,
	}, &user)
	if err != nil {
		return domain.User{}, fmt.Errorf("c.UpdateInterests -> %w", err)
	}

	return user, nil
}
