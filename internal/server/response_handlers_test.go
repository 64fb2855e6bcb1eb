package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"okuyan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateResponse(t *testing.T) {
	mockRepo := new(MockPostRepository)
	app, s := newTestServer(mockRepo)
	app.Post("/posts/:id/responses", s.CreateResponse)

	parent := &models.Post{ID: 1, Author: models.AuthorSude, Content: "entry"}
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(parent, nil)
	mockRepo.On("AddResponse", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Response).ID = 7
	}).Return(nil)

	body := bytes.NewReader([]byte(`{"author":"Ertan","content":"a reply","musicUrl":"https://example.com/song"}`))
	req := httptest.NewRequest(http.MethodPost, "/posts/1/responses", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// The reply is the whole parent post, not just the new response.
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
}

func TestCreateResponse_MissingParent(t *testing.T) {
	mockRepo := new(MockPostRepository)
	app, s := newTestServer(mockRepo)
	app.Post("/posts/:id/responses", s.CreateResponse)

	mockRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	body := bytes.NewReader([]byte(`{"author":"Ertan","content":"orphan"}`))
	req := httptest.NewRequest(http.MethodPost, "/posts/404/responses", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Post not found", envelope["error"])
	mockRepo.AssertNotCalled(t, "AddResponse", mock.Anything, mock.Anything)
}

func TestUpdateResponse_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	app, s := newTestServer(mockRepo)
	app.Put("/posts/:postId/responses/:responseId", s.UpdateResponse)

	parent := &models.Post{ID: 1, Author: models.AuthorSude, Content: "entry"}
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(parent, nil)
	mockRepo.On("GetResponse", mock.Anything, uint(1), uint(99)).Return(nil, gorm.ErrRecordNotFound)

	body := bytes.NewReader([]byte(`{"content":"edited"}`))
	req := httptest.NewRequest(http.MethodPut, "/posts/1/responses/99", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Response not found", envelope["error"])
}

func TestUpdateResponse_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	app, s := newTestServer(mockRepo)
	app.Put("/posts/:postId/responses/:responseId", s.UpdateResponse)

	parent := &models.Post{ID: 1, Author: models.AuthorSude, Content: "entry"}
	existing := &models.Response{ID: 2, PostID: 1, Author: models.AuthorErtan, Content: "old", MusicURL: "https://example.com/keep"}
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(parent, nil)
	mockRepo.On("GetResponse", mock.Anything, uint(1), uint(2)).Return(existing, nil)
	mockRepo.On("UpdateResponse", mock.Anything, mock.Anything).Return(nil)

	// musicUrl absent in the body: the stored one must survive.
	body := bytes.NewReader([]byte(`{"content":"edited"}`))
	req := httptest.NewRequest(http.MethodPut, "/posts/1/responses/2", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "edited", existing.Content)
	assert.Equal(t, "https://example.com/keep", existing.MusicURL)
}

func TestDeleteResponse_MissingResponseIsNoOp(t *testing.T) {
	mockRepo := new(MockPostRepository)
	app, s := newTestServer(mockRepo)
	app.Delete("/posts/:postId/responses/:responseId", s.DeleteResponse)

	parent := &models.Post{ID: 1, Author: models.AuthorSude, Content: "entry"}
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(parent, nil)
	mockRepo.On("DeleteResponse", mock.Anything, uint(1), uint(12345)).Return(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/1/responses/12345", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, true, envelope["success"])
}
