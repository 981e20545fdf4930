package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"

	"noorcms/internal/models"
)

type FaqRepositoryImpl struct {
	db *sqlx.DB
}

func NewFaqRepository(db *sqlx.DB) *FaqRepositoryImpl {
	return &FaqRepositoryImpl{db: db}
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, faq *models.Faq) error {
	// xids are k-sortable, so the id tie-break in List follows creation order.
	if faq.FaqID == "" {
		faq.FaqID = xid.New().String()
	}
	faq.CreatedAt = time.Now()

	query := `
        INSERT INTO faqs
        (faq_id, question, answer, category, sort_order, is_published, created_at)
        VALUES
        (:faq_id, :question, :answer, :category, :sort_order, :is_published, :created_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, faq)
	if err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}

	return nil
}

func (r *FaqRepositoryImpl) GetByID(ctx context.Context, faqID string) (*models.Faq, error) {
	query := `SELECT * FROM faqs WHERE faq_id = $1`

	var faq models.Faq
	err := r.db.GetContext(ctx, &faq, query, faqID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}

	return &faq, nil
}

// List returns FAQs in display order: sort_order ascending, then newest first.
// The id tie-break keeps rows created in the same instant in insertion order,
// which holds because ids are creation-ordered xids.
func (r *FaqRepositoryImpl) List(ctx context.Context, category string, publishedOnly bool) ([]models.Faq, error) {
	faqs := []models.Faq{}

	query := `SELECT * FROM faqs`
	conditions := ""
	args := []interface{}{}

	if publishedOnly {
		conditions = ` WHERE is_published = true`
	}
	if category != "" {
		if conditions == "" {
			conditions = ` WHERE category = $1`
		} else {
			conditions += ` AND category = $1`
		}
		args = append(args, category)
	}

	query += conditions + ` ORDER BY sort_order ASC, created_at DESC, faq_id ASC`

	if err := r.db.SelectContext(ctx, &faqs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	return faqs, nil
}

func (r *FaqRepositoryImpl) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}

	query := `SELECT DISTINCT category FROM faqs ORDER BY category`

	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list faq categories: %w", err)
	}

	return categories, nil
}

func (r *FaqRepositoryImpl) Update(ctx context.Context, faq *models.Faq) error {
	query := `
		UPDATE faqs SET
			question = :question,
			answer = :answer,
			category = :category,
			sort_order = :sort_order,
			is_published = :is_published
		WHERE faq_id = :faq_id
	`

	result, err := r.db.NamedExecContext(ctx, query, faq)
	if err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
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

func (r *FaqRepositoryImpl) Delete(ctx context.Context, faqID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE faq_id = $1`, faqID)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
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
