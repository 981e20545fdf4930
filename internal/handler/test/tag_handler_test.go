package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noorcms/internal/models"
	"noorcms/internal/repository"
	"noorcms/internal/service"
)

func TestCreateTag_ReturnsCreatedTag(t *testing.T) {
	h, _, tagSvc, _, _, _, _ := newHandlers()

	tagSvc.On("CreateTag", mock.Anything, service.CreateTagRequest{Name: "Hello World"}).
		Return(&models.Tag{TagID: "t1", Name: "Hello World", Slug: "hello-world"}, nil)

	body, _ := json.Marshal(map[string]string{"name": "Hello World"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/tags", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.CreateTag(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var tag models.Tag
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tag))
	assert.Equal(t, "hello-world", tag.Slug)
}

func TestCreateTag_DuplicateIs409(t *testing.T) {
	h, _, tagSvc, _, _, _, _ := newHandlers()

	tagSvc.On("CreateTag", mock.Anything, mock.Anything).
		Return(nil, repository.ErrConflict)

	body, _ := json.Marshal(map[string]string{"name": "Hello World"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/tags", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.CreateTag(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestListTags_ReturnsTagsWithCounts(t *testing.T) {
	h, _, tagSvc, _, _, _, _ := newHandlers()

	tagSvc.On("ListTags", mock.Anything).
		Return([]models.Tag{
			{TagID: "t1", Name: "stories", Slug: "stories", PostCount: 3},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/tags", nil)
	rr := httptest.NewRecorder()

	h.ListTags(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var tags []models.Tag
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tags))
	require.Len(t, tags, 1)
	assert.Equal(t, 3, tags[0].PostCount)
}
