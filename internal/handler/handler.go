package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"noorcms/internal/config"
	"noorcms/internal/service"
)

type Handlers struct {
	AuthService        service.AuthService
	PostService        service.PostService
	TagService         service.TagService
	FaqService         service.FaqService
	TestimonialService service.TestimonialService
	UploadService      service.UploadService
	NewsletterService  service.NewsletterService
	Cfg                *config.Config
	Validate           *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:        services.Auth,
		PostService:        services.Post,
		TagService:         services.Tag,
		FaqService:         services.Faq,
		TestimonialService: services.Testimonial,
		UploadService:      services.Upload,
		NewsletterService:  services.Newsletter,
		Cfg:                config,
		Validate:           validator.New(),
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, MessageResponse{Message: "ok"}, http.StatusOK)
}
