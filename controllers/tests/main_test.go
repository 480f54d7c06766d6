package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"Friender/middleware"
	models "Friender/models/postgres"
	"Friender/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubUploader stands in for S3. It records what was uploaded and can be
// told to fail.
type stubUploader struct {
	keys []string
	fail bool
}

func (s *stubUploader) Upload(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	if s.fail {
		return "", errors.New("stub upload failure")
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	s.keys = append(s.keys, key)
	return "https://testbucket.s3.us-west-1.amazonaws.com/" + key, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *stubUploader) {
	t.Helper()
	t.Setenv("KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.User{}, models.Like{}, models.Dislike{}))

	uploader := &stubUploader{}
	r := gin.New()
	middleware.SetUpMiddleware(r)
	routes.SetupRoutes(r, db, uploader)
	return r, uploader
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

func signupUser(t *testing.T, r *gin.Engine, username string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/signup", gin.H{
		"username":  username,
		"password":  "pw1",
		"email":     username + "@x.com",
		"firstname": "First",
		"lastname":  "Last",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

// profileForm builds the multipart body PATCH /profile expects.
func profileForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	part, err := mw.CreateFormFile("image_url", "me.jpg")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("fake jpeg bytes"))
	require.NoError(t, err)

	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}
