package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"noorcms/internal/models"
)

type TagRepositoryImpl struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) *TagRepositoryImpl {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *models.Tag) error {
	if tag.TagID == "" {
		tag.TagID = uuid.New().String()
	}

	query := `INSERT INTO tags (tag_id, name, slug) VALUES (:tag_id, :name, :slug)`

	_, err := r.db.NamedExecContext(ctx, query, tag)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return nil
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, tagID string) (*models.Tag, error) {
	query := `SELECT tag_id, name, slug FROM tags WHERE tag_id = $1`

	var tag models.Tag
	err := r.db.GetContext(ctx, &tag, query, tagID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &tag, nil
}

// GetByNameOrSlug matches the name case-insensitively so "News" collides with "news".
func (r *TagRepositoryImpl) GetByNameOrSlug(ctx context.Context, name, slug string) (*models.Tag, error) {
	query := `SELECT tag_id, name, slug FROM tags WHERE LOWER(name) = LOWER($1) OR slug = $2`

	var tag models.Tag
	err := r.db.GetContext(ctx, &tag, query, name, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &tag, nil
}

func (r *TagRepositoryImpl) List(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}

	query := `
        SELECT t.tag_id, t.name, t.slug, COUNT(pt.post_id) AS post_count
        FROM tags t
        LEFT JOIN post_tags pt ON pt.tag_id = t.tag_id
        GROUP BY t.tag_id, t.name, t.slug
        ORDER BY t.name
    `

	if err := r.db.SelectContext(ctx, &tags, query); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return tags, nil
}

// NamesInUse returns distinct tag names attached to at least one post,
// restricted to published posts when publishedOnly is set.
func (r *TagRepositoryImpl) NamesInUse(ctx context.Context, publishedOnly bool) ([]string, error) {
	names := []string{}

	query := `
        SELECT DISTINCT t.name FROM tags t
        JOIN post_tags pt ON pt.tag_id = t.tag_id
        JOIN posts p ON p.post_id = pt.post_id
        ORDER BY t.name
    `
	if publishedOnly {
		query = `
        SELECT DISTINCT t.name FROM tags t
        JOIN post_tags pt ON pt.tag_id = t.tag_id
        JOIN posts p ON p.post_id = pt.post_id
        WHERE p.status = 'published'
        ORDER BY t.name
    `
	}

	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("failed to list tag names: %w", err)
	}

	return names, nil
}

func (r *TagRepositoryImpl) Delete(ctx context.Context, tagID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE tag_id = $1`, tagID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
