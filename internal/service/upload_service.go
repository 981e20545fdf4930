package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/xid"

	"noorcms/internal/config"
	"noorcms/internal/storage"
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type UploadService interface {
	Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (*UploadResult, error)
}

type uploadService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewUploadService(storage storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{storage: storage, cfg: cfg}
}

func (u *uploadService) Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (*UploadResult, error) {
	if !allowedUploadTypes[contentType] {
		return nil, fmt.Errorf("%w: unsupported file type, allowed: JPEG, PNG, GIF, WebP", ErrValidation)
	}

	if size > u.cfg.Upload.MaxSize {
		return nil, fmt.Errorf("%w: file too large (max %d MB)", ErrValidation, u.cfg.Upload.MaxSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}

	objectName := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), xid.New().String(), ext)

	url, err := u.storage.Save(ctx, objectName, contentType, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &UploadResult{URL: url, Filename: objectName}, nil
}
