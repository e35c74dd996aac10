package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/brainsync/catalog/internal/models"
	"github.com/brainsync/catalog/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresVideoRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresVideoRepo(pool *pgxpool.Pool) ports.VideoRepository {
	return &PostgresVideoRepo{pool: pool}
}

func (r *PostgresVideoRepo) Insert(ctx context.Context, video *models.Video) (*models.Video, error) {
	video.ID = uuid.NewString()

	query := `
		INSERT INTO videos (id, title, description, category, instructor, instructor_id, video_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	row := r.pool.QueryRow(ctx, query,
		video.ID,
		video.Title,
		video.Description,
		video.Category,
		video.Instructor,
		video.InstructorID,
		video.VideoURL,
	)
	if err := row.Scan(&video.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}
	return video, nil
}

func (r *PostgresVideoRepo) GetByID(ctx context.Context, id string) (*models.Video, error) {
	query := `
		SELECT id, title, description, category, instructor, instructor_id, video_url, created_at
		FROM videos
		WHERE id = $1
	`

	var v models.Video

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.Category,
		&v.Instructor,
		&v.InstructorID,
		&v.VideoURL,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get video by id: %w", err)
	}

	return &v, nil
}

func (r *PostgresVideoRepo) ListAll(ctx context.Context) ([]models.Video, error) {
	query := `
		SELECT id, title, description, category, instructor, instructor_id, video_url, created_at
		FROM videos
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	return scanVideos(rows)
}

func (r *PostgresVideoRepo) ListByCategory(ctx context.Context, category string) ([]models.Video, error) {
	query := `
		SELECT id, title, description, category, instructor, instructor_id, video_url, created_at
		FROM videos
		WHERE category = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list videos by category: %w", err)
	}
	defer rows.Close()

	return scanVideos(rows)
}

func (r *PostgresVideoRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete video: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanVideos(rows pgx.Rows) ([]models.Video, error) {
	videos := make([]models.Video, 0)
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(
			&v.ID,
			&v.Title,
			&v.Description,
			&v.Category,
			&v.Instructor,
			&v.InstructorID,
			&v.VideoURL,
			&v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}
