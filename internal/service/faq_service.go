package service

import (
	"context"
	"fmt"

	"noorcms/internal/models"
	"noorcms/internal/repository"
)

type CreateFaqRequest struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	SortOrder   int    `json:"order"`
	IsPublished *bool  `json:"isPublished"`
}

// UpdateFaqRequest carries partial updates; nil fields keep the stored value.
type UpdateFaqRequest struct {
	Question    *string `json:"question"`
	Answer      *string `json:"answer"`
	Category    *string `json:"category"`
	SortOrder   *int    `json:"order"`
	IsPublished *bool   `json:"isPublished"`
}

type FaqListing struct {
	Faqs       []models.Faq `json:"faqs"`
	Categories []string     `json:"categories"`
}

type FaqService interface {
	CreateFaq(ctx context.Context, req CreateFaqRequest) (*models.Faq, error)
	GetFaq(ctx context.Context, faqID string) (*models.Faq, error)
	ListFaqs(ctx context.Context, category string) (*FaqListing, error)
	PublicFaqs(ctx context.Context, category string) ([]models.Faq, error)
	UpdateFaq(ctx context.Context, faqID string, req UpdateFaqRequest) (*models.Faq, error)
	DeleteFaq(ctx context.Context, faqID string) error
}

type faqService struct {
	faqRepo repository.FaqRepository
}

func NewFaqService(faqRepo repository.FaqRepository) FaqService {
	return &faqService{faqRepo: faqRepo}
}

func (f *faqService) CreateFaq(ctx context.Context, req CreateFaqRequest) (*models.Faq, error) {
	if req.Question == "" || req.Answer == "" {
		return nil, fmt.Errorf("%w: question and answer are required", ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	faq := &models.Faq{
		Question:    req.Question,
		Answer:      req.Answer,
		Category:    category,
		SortOrder:   req.SortOrder,
		IsPublished: isPublished,
	}

	if err := f.faqRepo.Create(ctx, faq); err != nil {
		return nil, err
	}

	return faq, nil
}

func (f *faqService) GetFaq(ctx context.Context, faqID string) (*models.Faq, error) {
	return f.faqRepo.GetByID(ctx, faqID)
}

func (f *faqService) ListFaqs(ctx context.Context, category string) (*FaqListing, error) {
	faqs, err := f.faqRepo.List(ctx, category, false)
	if err != nil {
		return nil, err
	}

	categories, err := f.faqRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &FaqListing{Faqs: faqs, Categories: categories}, nil
}

func (f *faqService) PublicFaqs(ctx context.Context, category string) ([]models.Faq, error) {
	return f.faqRepo.List(ctx, category, true)
}

func (f *faqService) UpdateFaq(ctx context.Context, faqID string, req UpdateFaqRequest) (*models.Faq, error) {
	faq, err := f.faqRepo.GetByID(ctx, faqID)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.Category != nil {
		faq.Category = *req.Category
	}
	if req.SortOrder != nil {
		faq.SortOrder = *req.SortOrder
	}
	if req.IsPublished != nil {
		faq.IsPublished = *req.IsPublished
	}

	if err := f.faqRepo.Update(ctx, faq); err != nil {
		return nil, err
	}

	return faq, nil
}

func (f *faqService) DeleteFaq(ctx context.Context, faqID string) error {
	return f.faqRepo.Delete(ctx, faqID)
}
