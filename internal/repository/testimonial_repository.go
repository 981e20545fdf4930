package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"noorcms/internal/models"
)

type TestimonialRepositoryImpl struct {
	db *sqlx.DB
}

func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepositoryImpl {
	return &TestimonialRepositoryImpl{db: db}
}

func (r *TestimonialRepositoryImpl) Create(ctx context.Context, testimonial *models.Testimonial) error {
	if testimonial.TestimonialID == "" {
		testimonial.TestimonialID = uuid.New().String()
	}
	testimonial.CreatedAt = time.Now()

	query := `
        INSERT INTO testimonials
        (testimonial_id, name, email, content, rating, location, status, created_at)
        VALUES
        (:testimonial_id, :name, :email, :content, :rating, :location, :status, :created_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, testimonial)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return nil
}

func (r *TestimonialRepositoryImpl) GetByID(ctx context.Context, testimonialID string) (*models.Testimonial, error) {
	query := `SELECT * FROM testimonials WHERE testimonial_id = $1`

	var testimonial models.Testimonial
	err := r.db.GetContext(ctx, &testimonial, query, testimonialID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	return &testimonial, nil
}

func (r *TestimonialRepositoryImpl) List(ctx context.Context, status string) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}

	var err error
	if status != "" {
		query := `SELECT * FROM testimonials WHERE status = $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &testimonials, query, status)
	} else {
		query := `SELECT * FROM testimonials ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &testimonials, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return testimonials, nil
}

func (r *TestimonialRepositoryImpl) Update(ctx context.Context, testimonial *models.Testimonial) error {
	query := `
		UPDATE testimonials SET
			name = :name,
			email = :email,
			content = :content,
			rating = :rating,
			location = :location,
			status = :status
		WHERE testimonial_id = :testimonial_id
	`

	result, err := r.db.NamedExecContext(ctx, query, testimonial)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
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

func (r *TestimonialRepositoryImpl) Delete(ctx context.Context, testimonialID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE testimonial_id = $1`, testimonialID)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
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
