package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"noorcms/internal/models"
)

// uniqueViolation is the Postgres error code for a duplicate key.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	query := `
        INSERT INTO posts
        (post_id, title, slug, excerpt, content, status, featured_image, published_at, author_id, created_at)
        VALUES
        (:post_id, :title, :slug, :excerpt, :content, :status, :featured_image, :published_at, :author_id, :created_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE slug = $1 AND status = 'published'`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) ListAll(ctx context.Context, status string) ([]models.Post, error) {
	posts := []models.Post{}

	var err error
	if status != "" {
		query := `SELECT * FROM posts WHERE status = $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &posts, query, status)
	} else {
		query := `SELECT * FROM posts ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &posts, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ListPublished(ctx context.Context, limit int, excludeSlug string) ([]models.Post, error) {
	posts := []models.Post{}

	query := `
        SELECT * FROM posts
        WHERE status = 'published' AND slug <> $1
        ORDER BY published_at DESC NULLS LAST, created_at DESC
    `

	var err error
	if limit > 0 {
		err = r.db.SelectContext(ctx, &posts, query+` LIMIT $2`, excludeSlug, limit)
	} else {
		err = r.db.SelectContext(ctx, &posts, query, excludeSlug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			slug = :slug,
			excerpt = :excerpt,
			content = :content,
			status = :status,
			featured_image = :featured_image,
			published_at = :published_at
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
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

// SetTags replaces the tag set attached to a post.
func (r *PostRepositoryImpl) SetTags(ctx context.Context, postID string, tagIDs []string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to detach tags: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)`, postID, tagID)
		if err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}

	return nil
}

func (r *PostRepositoryImpl) TagNames(ctx context.Context, postID string) ([]string, error) {
	names := []string{}

	query := `
        SELECT t.name FROM tags t
        JOIN post_tags pt ON pt.tag_id = t.tag_id
        WHERE pt.post_id = $1
        ORDER BY t.name
    `

	if err := r.db.SelectContext(ctx, &names, query, postID); err != nil {
		return nil, fmt.Errorf("failed to list post tags: %w", err)
	}

	return names, nil
}
