package view

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/brainsync/catalog/internal/models"
)

var (
	ErrNotFound     = errors.New("video not found")
	ErrMissingField = errors.New("missing required field")
	ErrBadShape     = errors.New("malformed video record")
)

// Client ходит в каталог по HTTP. Ретраев и таймаутов нет,
// дедлайны задаёт вызывающий через ctx.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (c *Client) List(ctx context.Context) ([]models.Video, error) {
	return c.fetchList(ctx, "/api/videos")
}

func (c *Client) ListByCategory(ctx context.Context, category string) ([]models.Video, error) {
	return c.fetchList(ctx, "/api/videos/category/"+url.PathEscape(category))
}

func (c *Client) Get(ctx context.Context, id string) (*models.Video, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/videos/"+url.PathEscape(id), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var video models.Video
	if err := json.Unmarshal(body, &video); err != nil {
		return nil, fmt.Errorf("decode video: %w", err)
	}
	if err := validateShape(video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Create проверяет обязательные поля до похода в сеть:
// сервер их не валидирует, граница живёт на клиенте.
func (c *Client) Create(ctx context.Context, video models.Video) (*models.Video, error) {
	required := map[string]string{
		"title":       video.Title,
		"description": video.Description,
		"category":    video.Category,
		"videoUrl":    video.VideoURL,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	payload, err := json.Marshal(video)
	if err != nil {
		return nil, fmt.Errorf("encode video: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/api/videos", payload, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var created models.Video
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decode created video: %w", err)
	}
	if err := validateShape(created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/videos/"+url.PathEscape(id), nil, http.StatusOK)
	return err
}

func (c *Client) fetchList(ctx context.Context, path string) ([]models.Video, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var videos []models.Video
	if err := json.Unmarshal(body, &videos); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	for i := range videos {
		if err := validateShape(videos[i]); err != nil {
			return nil, err
		}
	}
	return videos, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, want int) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != want {
		var apiMsg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiMsg) == nil && apiMsg.Message != "" {
			return nil, fmt.Errorf("catalog responded %d: %s", resp.StatusCode, apiMsg.Message)
		}
		return nil, fmt.Errorf("catalog responded %d", resp.StatusCode)
	}

	return body, nil
}

// Запись без id или created_at считается битой целиком.
func validateShape(v models.Video) error {
	if v.ID == "" {
		return fmt.Errorf("%w: empty id", ErrBadShape)
	}
	if v.CreatedAt.IsZero() {
		return fmt.Errorf("%w: empty createdAt", ErrBadShape)
	}
	return nil
}
