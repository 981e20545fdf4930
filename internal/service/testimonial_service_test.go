package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noorcms/internal/models"
	"noorcms/internal/repository"
)

type mockTestimonialRepo struct {
	mock.Mock
}

func (m *mockTestimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *mockTestimonialRepo) GetByID(ctx context.Context, testimonialID string) (*models.Testimonial, error) {
	args := m.Called(ctx, testimonialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepo) List(ctx context.Context, status string) ([]models.Testimonial, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepo) Update(ctx context.Context, testimonial *models.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *mockTestimonialRepo) Delete(ctx context.Context, testimonialID string) error {
	args := m.Called(ctx, testimonialID)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

func TestSubmitTestimonial_ForcesPendingStatus(t *testing.T) {
	repo := new(mockTestimonialRepo)
	svc := NewTestimonialService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(ts *models.Testimonial) bool {
		return ts.Status == models.TestimonialStatusPending
	})).Return(nil)

	// client tries to smuggle an approved status past moderation
	created, err := svc.SubmitTestimonial(context.Background(), CreateTestimonialRequest{
		Name:    "Amina",
		Content: "My kids love Ask Noor",
		Status:  "approved",
	})

	require.NoError(t, err)
	assert.Equal(t, models.TestimonialStatusPending, created.Status)
	repo.AssertExpectations(t)
}

func TestSubmitTestimonial_RatingBounds(t *testing.T) {
	tests := []struct {
		name    string
		rating  *int
		wantErr bool
	}{
		{name: "rating 0 rejected", rating: intPtr(0), wantErr: true},
		{name: "rating 6 rejected", rating: intPtr(6), wantErr: true},
		{name: "rating 1 accepted", rating: intPtr(1), wantErr: false},
		{name: "rating 5 accepted", rating: intPtr(5), wantErr: false},
		{name: "omitted rating defaults to 5", rating: nil, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockTestimonialRepo)
			svc := NewTestimonialService(repo)

			if !tt.wantErr {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			}

			created, err := svc.SubmitTestimonial(context.Background(), CreateTestimonialRequest{
				Name:    "Sara",
				Content: "Great stories",
				Rating:  tt.rating,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				if tt.rating == nil {
					assert.Equal(t, 5, created.Rating)
				} else {
					assert.Equal(t, *tt.rating, created.Rating)
				}
			}
		})
	}
}

func TestSubmitTestimonial_RequiredFields(t *testing.T) {
	repo := new(mockTestimonialRepo)
	svc := NewTestimonialService(repo)

	_, err := svc.SubmitTestimonial(context.Background(), CreateTestimonialRequest{Name: "Sara"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SubmitTestimonial(context.Background(), CreateTestimonialRequest{Content: "no name"})
	assert.ErrorIs(t, err, ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateTestimonial_NotFound(t *testing.T) {
	repo := new(mockTestimonialRepo)
	svc := NewTestimonialService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	name := "New Name"
	_, err := svc.UpdateTestimonial(context.Background(), "missing", UpdateTestimonialRequest{Name: &name})

	assert.ErrorIs(t, err, repository.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateTestimonial_PartialUpdate(t *testing.T) {
	repo := new(mockTestimonialRepo)
	svc := NewTestimonialService(repo)

	existing := &models.Testimonial{
		TestimonialID: "t1",
		Name:          "Amina",
		Content:       "Original content",
		Rating:        4,
		Status:        models.TestimonialStatusPending,
	}

	repo.On("GetByID", mock.Anything, "t1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	status := models.TestimonialStatusApproved
	updated, err := svc.UpdateTestimonial(context.Background(), "t1", UpdateTestimonialRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, models.TestimonialStatusApproved, updated.Status)
	// omitted fields keep their stored values
	assert.Equal(t, "Amina", updated.Name)
	assert.Equal(t, "Original content", updated.Content)
	assert.Equal(t, 4, updated.Rating)
}
