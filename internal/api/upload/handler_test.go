package upload

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"remcua-backend/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	kinds []string
	names []string
	fail  bool
}

func (f *fakeStore) Upload(ctx context.Context, kind, fileName string, file io.Reader, size int64, contentType string) (string, error) {
	if f.fail {
		return "", assert.AnError
	}
	f.kinds = append(f.kinds, kind)
	f.names = append(f.names, fileName)
	return "http://media.local/media/" + kind + "/" + fileName, nil
}

func (f *fakeStore) Remove(ctx context.Context, objectName string) error { return nil }

func uploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload/from-device", FromDevice)
	r.POST("/upload/video", Video)
	r.POST("/upload/multiple-from-device", MultipleFromDevice)
	r.POST("/upload/editor", Editor)
	return r
}

func multipartBody(t *testing.T, field, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestFromDevice(t *testing.T) {
	store := &fakeStore{}
	storage.Default = store
	r := uploadRouter()

	body, contentType := multipartBody(t, "image", "rem.jpg", "image/jpeg", []byte("jpegdata"))
	req := httptest.NewRequest(http.MethodPost, "/upload/from-device", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{storage.KindImage}, store.kinds)
	assert.Contains(t, rr.Body.String(), `"url"`)
}

func TestFromDeviceMissingFile(t *testing.T) {
	storage.Default = &fakeStore{}
	r := uploadRouter()

	req := httptest.NewRequest(http.MethodPost, "/upload/from-device", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// A video/* file through the editor hook must take the video path, never
// the image path.
func TestEditorDispatchesVideoByMIME(t *testing.T) {
	store := &fakeStore{}
	storage.Default = store
	r := uploadRouter()

	body, contentType := multipartBody(t, "file", "clip.mp4", "video/mp4", []byte("mp4data"))
	req := httptest.NewRequest(http.MethodPost, "/upload/editor", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{storage.KindVideo}, store.kinds)
	assert.Contains(t, rr.Body.String(), `"default"`)
}

func TestEditorDefaultsToImagePath(t *testing.T) {
	store := &fakeStore{}
	storage.Default = store
	r := uploadRouter()

	body, contentType := multipartBody(t, "file", "photo.png", "image/png", []byte("pngdata"))
	req := httptest.NewRequest(http.MethodPost, "/upload/editor", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{storage.KindImage}, store.kinds)
}

func TestMultipleFromDevice(t *testing.T) {
	store := &fakeStore{}
	storage.Default = store
	r := uploadRouter()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range []string{"a.jpg", "b.jpg"} {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images[]"; filename="`+name+`"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("data"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/multiple-from-device", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, store.names)
	assert.Contains(t, rr.Body.String(), `"urls"`)
}

func TestVideoEndpointUsesVideoPath(t *testing.T) {
	store := &fakeStore{}
	storage.Default = store
	r := uploadRouter()

	body, contentType := multipartBody(t, "video", "clip.mp4", "video/mp4", []byte("mp4data"))
	req := httptest.NewRequest(http.MethodPost, "/upload/video", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{storage.KindVideo}, store.kinds)
}

func TestUploadFailureSurfacesError(t *testing.T) {
	storage.Default = &fakeStore{fail: true}
	r := uploadRouter()

	body, contentType := multipartBody(t, "image", "rem.jpg", "image/jpeg", []byte("jpegdata"))
	req := httptest.NewRequest(http.MethodPost, "/upload/from-device", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
