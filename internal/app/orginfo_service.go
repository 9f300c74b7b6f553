// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/telemetry"
	"github.com/jsamuelsen11/oktaorginfo/internal/ports"
)

// Compile-time check that OrgInfoService implements ports.OrgInfoService.
var _ ports.OrgInfoService = (*OrgInfoService)(nil)

// OrgInfoService implements ports.OrgInfoService by delegating to the
// OrgInfoClient port. It adds structured logging and the lookup counter but
// makes no decisions of its own: one call, one outbound request.
type OrgInfoService struct {
	client  ports.OrgInfoClient
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewOrgInfoService creates an OrgInfoService. A nil logger discards output;
// nil metrics skips recording.
func NewOrgInfoService(client ports.OrgInfoClient, metrics *telemetry.Metrics, logger *slog.Logger) *OrgInfoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OrgInfoService{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// GetOrgInfo fetches the organization metadata published at metadataURL.
func (s *OrgInfoService) GetOrgInfo(ctx context.Context, metadataURL string) (*domain.OrgInfo, error) {
	s.logger.InfoContext(ctx, "fetching organization metadata", slog.String("url", metadataURL))

	info, err := s.client.FetchOrgInfo(ctx, metadataURL)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch organization metadata",
			slog.String("operation", "GetOrgInfo"),
			slog.String("url", metadataURL),
			slog.Any("error", err),
		)
		s.record(ctx, "error", "")
		return nil, err
	}

	s.logger.DebugContext(ctx, "organization metadata fetched",
		slog.String("org_id", info.ID),
		slog.String("org_type", info.OrgType()),
		slog.String("cell", info.CellName()),
	)
	s.record(ctx, "success", info.OrgType())
	return info, nil
}

func (s *OrgInfoService) record(ctx context.Context, result, orgType string) {
	if s.metrics == nil {
		return
	}
	s.metrics.LookupTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResult.String(result),
		telemetry.AttrOrgType.String(orgType),
	))
}
