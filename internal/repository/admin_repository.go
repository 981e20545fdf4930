package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"noorcms/internal/models"
)

type AdminRepositoryImpl struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepositoryImpl {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT * FROM admins WHERE email = $1`

	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}

func (r *AdminRepositoryImpl) VerifyPassword(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
