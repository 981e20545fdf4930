package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noorcms/internal/models"
	"noorcms/internal/repository"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *mockPostRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *mockPostRepo) ListAll(ctx context.Context, status string) ([]models.Post, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *mockPostRepo) ListPublished(ctx context.Context, limit int, excludeSlug string) ([]models.Post, error) {
	args := m.Called(ctx, limit, excludeSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *mockPostRepo) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *mockPostRepo) SetTags(ctx context.Context, postID string, tagIDs []string) error {
	args := m.Called(ctx, postID, tagIDs)
	return args.Error(0)
}

func (m *mockPostRepo) TagNames(ctx context.Context, postID string) ([]string, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func strPtr(v string) *string { return &v }

func TestCreatePost_DerivesSlugAndDefaultsToDraft(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("Create", mock.Anything, mock.MatchedBy(func(post *models.Post) bool {
		return post.Slug == "my-first-post" && post.Status == models.PostStatusDraft && post.PublishedAt == nil
	})).Return(nil)
	postRepo.On("TagNames", mock.Anything, mock.Anything).Return([]string{}, nil)

	post, err := svc.CreatePost(context.Background(), CreatePostRequest{Title: "My First Post"})

	require.NoError(t, err)
	assert.Equal(t, "my-first-post", post.Slug)
	assert.Equal(t, models.PostStatusDraft, post.Status)
}

func TestCreatePost_RequiresTitle(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	_, err := svc.CreatePost(context.Background(), CreatePostRequest{})

	assert.ErrorIs(t, err, ErrValidation)
	postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePost_CreatesMissingTags(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tagRepo.On("GetByNameOrSlug", mock.Anything, "Bedtime Stories", "bedtime-stories").
		Return(nil, repository.ErrNotFound)
	tagRepo.On("Create", mock.Anything, mock.MatchedBy(func(tag *models.Tag) bool {
		return tag.Slug == "bedtime-stories"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Tag).TagID = "t1"
	}).Return(nil)
	postRepo.On("SetTags", mock.Anything, mock.Anything, []string{"t1"}).Return(nil)
	postRepo.On("TagNames", mock.Anything, mock.Anything).Return([]string{"Bedtime Stories"}, nil)

	post, err := svc.CreatePost(context.Background(), CreatePostRequest{
		Title: "Sleepy Time",
		Tags:  []string{"Bedtime Stories"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Bedtime Stories"}, post.Tags)
	tagRepo.AssertExpectations(t)
}

func TestUpdatePost_PublishingSetsPublishedAt(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	existing := &models.Post{
		PostID: "p1",
		Title:  "Draft Post",
		Slug:   "draft-post",
		Status: models.PostStatusDraft,
	}

	postRepo.On("GetByID", mock.Anything, "p1").Return(existing, nil)
	postRepo.On("Update", mock.Anything, mock.MatchedBy(func(post *models.Post) bool {
		return post.Status == models.PostStatusPublished && post.PublishedAt != nil
	})).Return(nil)
	postRepo.On("TagNames", mock.Anything, "p1").Return([]string{}, nil)

	post, err := svc.UpdatePost(context.Background(), "p1", UpdatePostRequest{
		Status: strPtr(models.PostStatusPublished),
	})

	require.NoError(t, err)
	assert.NotNil(t, post.PublishedAt)
	// omitted fields keep their stored values
	assert.Equal(t, "Draft Post", post.Title)
}

func TestUpdatePost_TagFailureLeavesRowUnchanged(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	existing := &models.Post{PostID: "p1", Title: "Post", Slug: "post", Status: models.PostStatusDraft}

	postRepo.On("GetByID", mock.Anything, "p1").Return(existing, nil)
	tagRepo.On("GetByNameOrSlug", mock.Anything, "stories", "stories").
		Return(nil, errors.New("connection reset"))

	tags := []string{"stories"}
	_, err := svc.UpdatePost(context.Background(), "p1", UpdatePostRequest{
		Title: strPtr("New Title"),
		Tags:  &tags,
	})

	require.Error(t, err)
	postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePost_NotFound(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.UpdatePost(context.Background(), "missing", UpdatePostRequest{Title: strPtr("X")})

	assert.ErrorIs(t, err, repository.ErrNotFound)
	postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPublicPostBySlug_ComposesRelatedContent(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	current := &models.Post{PostID: "p1", Slug: "current", Status: models.PostStatusPublished}

	postRepo.On("GetPublishedBySlug", mock.Anything, "current").Return(current, nil)
	postRepo.On("TagNames", mock.Anything, "p1").Return([]string{"stories"}, nil)
	postRepo.On("ListPublished", mock.Anything, 5, "current").
		Return([]models.Post{{PostID: "p2", Slug: "other"}}, nil)
	tagRepo.On("NamesInUse", mock.Anything, true).Return([]string{"faith", "stories"}, nil)

	view, err := svc.PublicPostBySlug(context.Background(), "current")

	require.NoError(t, err)
	assert.Equal(t, "current", view.Post.Slug)
	require.Len(t, view.RecentPosts, 1)
	assert.Equal(t, []string{"faith", "stories"}, view.AllTags)
}

func TestPublicPostBySlug_NotFound(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("GetPublishedBySlug", mock.Anything, "missing").
		Return(nil, repository.ErrNotFound)

	_, err := svc.PublicPostBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
