package ports

import (
	"context"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
)

// OrgInfoService defines the service port for organization lookups.
// Implemented by the application layer; called by the controller.
type OrgInfoService interface {
	// GetOrgInfo fetches metadata from an already-normalized metadata URL.
	// Exactly one outbound request is made per call; there are no retries.
	GetOrgInfo(ctx context.Context, metadataURL string) (*domain.OrgInfo, error)
}
