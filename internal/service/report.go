package service

import (
	"context"
	"fmt"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

type ReportAPI interface {
	CreateReport(ctx context.Context, req request.ReportRequest) (domain.Report, error)
}

type ReportService struct {
	api ReportAPI
}

func NewReportService(api ReportAPI) *ReportService {
	return &ReportService{api: api}
}

func (s *ReportService) Create(ctx context.Context, req request.ReportRequest) (domain.Report, error) {
	if err := req.Validate(); err != nil {
		return domain.Report{}, err
	}

	report, err := s.api.CreateReport(ctx, req)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.api.CreateReport -> %w", err)
	}

	return report, nil
}
