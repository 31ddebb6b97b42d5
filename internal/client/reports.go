package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func (c *Client) CreateReport(ctx context.Context, req request.ReportRequest) (domain.Report, error) {
	var report domain.Report
	if err := c.doJSON(ctx, http.MethodPost, "/reports", req, &report); err != nil {
		return domain.Report{}, fmt.Errorf("c.CreateReport -> %w", err)
	}

	return report, nil
}
