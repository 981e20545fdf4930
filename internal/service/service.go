package service

import (
	"errors"
	"net/http"

	"noorcms/internal/config"
	"noorcms/internal/repository"
	"noorcms/internal/storage"
)

// ErrValidation marks request payload problems detected before any write.
var ErrValidation = errors.New("validation failed")

type Service struct {
	Auth        AuthService
	Post        PostService
	Tag         TagService
	Faq         FaqService
	Testimonial TestimonialService
	Upload      UploadService
	Newsletter  NewsletterService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:        NewAuthService(rep.Admin, cfg),
		Post:        NewPostService(rep.Post, rep.Tag),
		Tag:         NewTagService(rep.Tag),
		Faq:         NewFaqService(rep.Faq),
		Testimonial: NewTestimonialService(rep.Testimonial),
		Upload:      NewUploadService(storage, cfg),
		Newsletter:  NewNewsletterService(cfg, http.DefaultClient),
	}
}
