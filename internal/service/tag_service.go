package service

import (
	"context"
	"fmt"

	"noorcms/internal/models"
	"noorcms/internal/repository"
)

type CreateTagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TagService interface {
	CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	DeleteTag(ctx context.Context, tagID string) error
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (t *tagService) CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: slug cannot be derived from name", ErrValidation)
	}

	// Reject before inserting when either the name or the derived slug is taken.
	existing, err := t.tagRepo.GetByNameOrSlug(ctx, req.Name, slug)
	if err != nil && err != repository.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrConflict
	}

	tag := &models.Tag{Name: req.Name, Slug: slug}
	if err := t.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (t *tagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return t.tagRepo.List(ctx)
}

func (t *tagService) DeleteTag(ctx context.Context, tagID string) error {
	return t.tagRepo.Delete(ctx, tagID)
}
