package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/service"
	mockUsecase "landhub/internal/mocks/usecase"
	"landhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	uc := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(uc, testLogger())
	e := newTestEcho()

	uc.On("Upload", mock.Anything, mock.MatchedBy(func(input *usecase.UploadInput) bool {
		return input.Filename == "plot.jpg" && input.Folder == "listings" && input.Size > 0
	})).Return(&service.StoredObject{
		URL: "https://cdn.example.com/listings/abc.jpg",
		Key: "listings/abc.jpg",
	}, nil)

	body, contentType := multipartUpload(t, map[string]string{"folder": "listings"}, "plot.jpg", []byte("image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url"`)
	assert.Contains(t, rec.Body.String(), `"public_id"`)
}

func TestUploadHandler_Upload_MissingFile(t *testing.T) {
	uc := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(uc, testLogger())
	e := newTestEcho()

	body, contentType := multipartUpload(t, map[string]string{"folder": "listings"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUploadHandler_Upload_TooLarge(t *testing.T) {
	uc := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(uc, testLogger())
	e := newTestEcho()

	uc.On("Upload", mock.Anything, mock.AnythingOfType("*usecase.UploadInput")).
		Return(nil, domainerrors.ErrFileTooLarge)

	body, contentType := multipartUpload(t, nil, "huge.jpg", []byte("pretend this is huge"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
