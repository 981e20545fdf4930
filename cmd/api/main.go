package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"noorcms/cmd/app"
	"noorcms/internal/config"
	handlers "noorcms/internal/handler"
	"noorcms/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	r := mux.NewRouter()

	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	// public API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/blog", handler.GetBlog).Methods(http.MethodGet)
	api.HandleFunc("/blog/{slug}", handler.GetBlogPost).Methods(http.MethodGet)
	api.HandleFunc("/faqs", handler.GetPublicFaqs).Methods(http.MethodGet)
	api.HandleFunc("/testimonials", handler.GetApprovedTestimonials).Methods(http.MethodGet)
	api.HandleFunc("/testimonials", handler.SubmitTestimonial).Methods(http.MethodPost)
	api.HandleFunc("/newsletter", handler.Subscribe).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	// admin API, session required before anything else runs
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.SessionGuard(cfg)))

	admin.HandleFunc("/posts", handler.ListPosts).Methods(http.MethodGet)
	admin.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	admin.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	admin.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	admin.HandleFunc("/tags", handler.ListTags).Methods(http.MethodGet)
	admin.HandleFunc("/tags", handler.CreateTag).Methods(http.MethodPost)
	admin.HandleFunc("/tags/{id}", handler.DeleteTag).Methods(http.MethodDelete)

	admin.HandleFunc("/faqs", handler.ListFaqs).Methods(http.MethodGet)
	admin.HandleFunc("/faqs", handler.CreateFaq).Methods(http.MethodPost)
	admin.HandleFunc("/faqs/{id}", handler.GetFaq).Methods(http.MethodGet)
	admin.HandleFunc("/faqs/{id}", handler.UpdateFaq).Methods(http.MethodPut)
	admin.HandleFunc("/faqs/{id}", handler.DeleteFaq).Methods(http.MethodDelete)

	admin.HandleFunc("/testimonials", handler.ListTestimonials).Methods(http.MethodGet)
	admin.HandleFunc("/testimonials", handler.CreateTestimonial).Methods(http.MethodPost)
	admin.HandleFunc("/testimonials/{id}", handler.GetTestimonial).Methods(http.MethodGet)
	admin.HandleFunc("/testimonials/{id}", handler.UpdateTestimonial).Methods(http.MethodPut)
	admin.HandleFunc("/testimonials/{id}", handler.DeleteTestimonial).Methods(http.MethodDelete)

	admin.HandleFunc("/upload", handler.Upload).Methods(http.MethodPost)

	// uploaded assets (local backend)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Upload.Dir))))

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware(cfg.AllowedOrigin),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)

	srv := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
