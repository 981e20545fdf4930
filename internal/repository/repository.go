package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"noorcms/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
	// ErrInvalidCredentials covers both an unknown admin and a wrong password,
	// so login responses don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error)
	ListAll(ctx context.Context, status string) ([]models.Post, error)
	ListPublished(ctx context.Context, limit int, excludeSlug string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	SetTags(ctx context.Context, postID string, tagIDs []string) error
	TagNames(ctx context.Context, postID string) ([]string, error)
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, tagID string) (*models.Tag, error)
	GetByNameOrSlug(ctx context.Context, name, slug string) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	NamesInUse(ctx context.Context, publishedOnly bool) ([]string, error)
	Delete(ctx context.Context, tagID string) error
}

type FaqRepository interface {
	Create(ctx context.Context, faq *models.Faq) error
	GetByID(ctx context.Context, faqID string) (*models.Faq, error)
	List(ctx context.Context, category string, publishedOnly bool) ([]models.Faq, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, faq *models.Faq) error
	Delete(ctx context.Context, faqID string) error
}

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, testimonialID string) (*models.Testimonial, error)
	List(ctx context.Context, status string) ([]models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, testimonialID string) error
}

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.Admin, error)
}

type Repository struct {
	Post        PostRepository
	Tag         TagRepository
	Faq         FaqRepository
	Testimonial TestimonialRepository
	Admin       AdminRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:        NewPostRepository(db),
		Tag:         NewTagRepository(db),
		Faq:         NewFaqRepository(db),
		Testimonial: NewTestimonialRepository(db),
		Admin:       NewAdminRepository(db),
	}
}
