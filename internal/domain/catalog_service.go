package domain

import (
	"context"
	"errors"
	"log"

	"github.com/brainsync/catalog/internal/models"
	"github.com/brainsync/catalog/internal/ports"
)

var ErrNotFound = errors.New("video not found")

type CatalogService struct {
	repo   ports.VideoRepository
	events chan ports.CatalogEvent
}

func NewCatalogService(repo ports.VideoRepository) *CatalogService {
	return &CatalogService{
		repo:   repo,
		events: make(chan ports.CatalogEvent, 100),
	}
}

func (s *CatalogService) Events() <-chan ports.CatalogEvent { return s.events }

func (s *CatalogService) ListAll(ctx context.Context) ([]models.Video, error) {
	return s.repo.ListAll(ctx)
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*models.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}
	return video, nil
}

func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]models.Video, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *CatalogService) Create(ctx context.Context, video *models.Video) (*models.Video, error) {
	created, err := s.repo.Insert(ctx, video)
	if err != nil {
		return nil, err
	}

	s.emit(ports.CatalogEvent{Action: "created", Video: *created})
	return created, nil
}

// Delete возвращает удалённую запись. Повторный delete по тому же id — ErrNotFound.
func (s *CatalogService) Delete(ctx context.Context, id string) (*models.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !removed {
		// кто-то успел удалить между GetByID и Delete
		return nil, ErrNotFound
	}

	s.emit(ports.CatalogEvent{Action: "deleted", Video: *video})
	return video, nil
}

func (s *CatalogService) emit(ev ports.CatalogEvent) {
	select {
	case s.events <- ev:
	default:
		// фид необязателен: при переполненном буфере событие теряем, CRUD не блокируем
		log.Printf("[catalog][DROP] action=%s id=%s reason=event_buffer_full", ev.Action, ev.Video.ID)
	}
}
