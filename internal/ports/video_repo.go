package ports

import (
	"context"

	"github.com/brainsync/catalog/internal/models"
)

type VideoRepository interface {
	// Insert assigns id and created_at; both are set exactly once.
	Insert(ctx context.Context, video *models.Video) (*models.Video, error)

	// GetByID returns (nil, nil) when no record exists.
	GetByID(ctx context.Context, id string) (*models.Video, error)

	// ListAll returns the whole catalog, newest first.
	ListAll(ctx context.Context) ([]models.Video, error)

	// ListByCategory matches category exactly, newest first.
	ListByCategory(ctx context.Context, category string) ([]models.Video, error)

	// Delete reports whether a record was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}
