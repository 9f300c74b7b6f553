package acl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/oktaorginfo/internal/adapters/clients/acl/orginfo"
	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/httpclient"
	"github.com/jsamuelsen11/oktaorginfo/internal/ports"
)

// Compile-time interface check.
var _ ports.OrgInfoClient = (*OrgInfoClient)(nil)

// OrgInfoClient is the outbound adapter for an Okta tenant's public
// /.well-known/okta-organization document. It implements
// [ports.OrgInfoClient].
//
// The response is translated into a [domain.OrgInfo] by the ACL translator in
// sub-package [orginfo]. HTTP errors are mapped to domain errors by
// [TranslateHTTPError].
type OrgInfoClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewOrgInfoClient creates an OrgInfoClient that sends requests through the
// given [httpclient.Client]. There is no base URL: every call carries the full
// metadata URL built from the user's input.
func NewOrgInfoClient(client *httpclient.Client, logger *slog.Logger) *OrgInfoClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OrgInfoClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// FetchOrgInfo issues one unauthenticated GET to metadataURL and returns the
// translated organization metadata.
//
// A body that is not valid JSON, or that lacks the org ID or organization
// link, yields an error wrapping [domain.ErrMalformedResponse].
func (c *OrgInfoClient) FetchOrgInfo(ctx context.Context, metadataURL string) (*domain.OrgInfo, error) {
	var dto orginfo.OrganizationDTO
	if err := c.req.Get(ctx, metadataURL, &dto); err != nil {
		return nil, err
	}

	info := orginfo.ToDomainOrgInfo(&dto)
	if err := info.Validate(); err != nil {
		c.logger.WarnContext(ctx, "incomplete organization document",
			slog.String("url", metadataURL),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	return &info, nil
}
