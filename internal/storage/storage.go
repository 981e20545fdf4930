package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"noorcms/internal/config"
)

type Storage interface {
	Save(ctx context.Context, objectName, contentType string, file io.Reader, size int64) (string, error)
	Delete(ctx context.Context, objectName string) error
}

// NewStorage picks the upload backend from config.
func NewStorage(cfg *config.Config) (Storage, error) {
	if cfg.Upload.Backend == "minio" {
		return NewMinIOClient(cfg)
	}
	return NewLocalStorage(cfg)
}

// LocalStorage writes uploads to a directory served as static assets.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(cfg *config.Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorage{
		dir:     cfg.Upload.Dir,
		baseURL: cfg.Upload.BaseURL,
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, objectName, contentType string, file io.Reader, size int64) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(objectName))

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.baseURL + "/" + filepath.Base(objectName), nil
}

func (s *LocalStorage) Delete(ctx context.Context, objectName string) error {
	path := filepath.Join(s.dir, filepath.Base(objectName))
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}
