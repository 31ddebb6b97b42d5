package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quizcourse/quizcourse/internal/domain"
)

func (c *Client) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	var d domain.Dashboard
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard", nil, &d); err != nil {
		return domain.Dashboard{}, fmt.Errorf("c.Dashboard -> %w", err)
	}

	return d, nil
}
