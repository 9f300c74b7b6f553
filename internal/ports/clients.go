package ports

import (
	"context"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
)

// OrgInfoClient defines the client port for a tenant's well-known
// organization endpoint. Implemented by the ACL adapter.
type OrgInfoClient interface {
	// FetchOrgInfo issues one unauthenticated GET to metadataURL and returns
	// the translated organization metadata.
	// Returns a *domain.FetchError for non-success statuses and
	// domain.ErrMalformedResponse when the body cannot be used.
	FetchOrgInfo(ctx context.Context, metadataURL string) (*domain.OrgInfo, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
