package ports

import (
	"context"

	"github.com/brainsync/catalog/internal/models"
)

type CatalogEvent struct {
	Action string // "created" или "deleted"
	Video  models.Video
}

type CatalogService interface {
	ListAll(ctx context.Context) ([]models.Video, error)
	GetByID(ctx context.Context, id string) (*models.Video, error)
	ListByCategory(ctx context.Context, category string) ([]models.Video, error)
	Create(ctx context.Context, video *models.Video) (*models.Video, error)
	Delete(ctx context.Context, id string) (*models.Video, error)
	Events() <-chan CatalogEvent
}
