package ports

import (
	"context"
	"time"

	"github.com/brainsync/catalog/internal/models"
)

type IdentityProvider interface {
	Verify(ctx context.Context, token string) (*models.Identity, error)
	Issue(ctx context.Context, identity models.Identity, ttl time.Duration) (string, error)
}
