package service

import (
	"context"
	"fmt"

	"noorcms/internal/models"
	"noorcms/internal/repository"
)

type CreateTestimonialRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Content  string  `json:"content"`
	Rating   *int    `json:"rating"`
	Location *string `json:"location"`
	Status   string  `json:"status"`
}

// UpdateTestimonialRequest carries partial updates; nil fields keep the stored value.
type UpdateTestimonialRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Content  *string `json:"content"`
	Rating   *int    `json:"rating"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
}

type TestimonialService interface {
	// SubmitTestimonial handles the public form: status is always forced to pending.
	SubmitTestimonial(ctx context.Context, req CreateTestimonialRequest) (*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*models.Testimonial, error)
	GetTestimonial(ctx context.Context, testimonialID string) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context, status string) ([]models.Testimonial, error)
	ApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonialID string, req UpdateTestimonialRequest) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, testimonialID string) error
}

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

func (t *testimonialService) buildTestimonial(req CreateTestimonialRequest) (*models.Testimonial, error) {
	if req.Name == "" || req.Content == "" {
		return nil, fmt.Errorf("%w: name and content are required", ErrValidation)
	}

	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	return &models.Testimonial{
		Name:     req.Name,
		Email:    req.Email,
		Content:  req.Content,
		Rating:   rating,
		Location: req.Location,
	}, nil
}

func (t *testimonialService) SubmitTestimonial(ctx context.Context, req CreateTestimonialRequest) (*models.Testimonial, error) {
	testimonial, err := t.buildTestimonial(req)
	if err != nil {
		return nil, err
	}

	// Public submissions never go live unmoderated, whatever the client sent.
	testimonial.Status = models.TestimonialStatusPending

	if err := t.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (t *testimonialService) CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*models.Testimonial, error) {
	testimonial, err := t.buildTestimonial(req)
	if err != nil {
		return nil, err
	}

	testimonial.Status = req.Status
	if testimonial.Status == "" {
		testimonial.Status = models.TestimonialStatusPending
	}

	if err := t.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (t *testimonialService) GetTestimonial(ctx context.Context, testimonialID string) (*models.Testimonial, error) {
	return t.testimonialRepo.GetByID(ctx, testimonialID)
}

func (t *testimonialService) ListTestimonials(ctx context.Context, status string) ([]models.Testimonial, error) {
	return t.testimonialRepo.List(ctx, status)
}

func (t *testimonialService) ApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return t.testimonialRepo.List(ctx, models.TestimonialStatusApproved)
}

func (t *testimonialService) UpdateTestimonial(ctx context.Context, testimonialID string, req UpdateTestimonialRequest) (*models.Testimonial, error) {
	testimonial, err := t.testimonialRepo.GetByID(ctx, testimonialID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		testimonial.Name = *req.Name
	}
	if req.Email != nil {
		testimonial.Email = req.Email
	}
	if req.Content != nil {
		testimonial.Content = *req.Content
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
		}
		testimonial.Rating = *req.Rating
	}
	if req.Location != nil {
		testimonial.Location = req.Location
	}
	if req.Status != nil {
		testimonial.Status = *req.Status
	}

	if err := t.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (t *testimonialService) DeleteTestimonial(ctx context.Context, testimonialID string) error {
	return t.testimonialRepo.Delete(ctx, testimonialID)
}
