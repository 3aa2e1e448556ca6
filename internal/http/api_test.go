package http

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inventory-api/internal/auth"
	"inventory-api/internal/repository/sqlite"
	"inventory-api/internal/service"
	"inventory-api/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryStorage struct {
	objects map[string]int64
}

func (m *memoryStorage) PutObject(_ context.Context, body io.Reader, opts storage.PutOptions) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.objects[opts.Key] = int64(len(data))
	return "s3://" + opts.Bucket + "/" + opts.Key, nil
}

func (m *memoryStorage) ListObjects(_ context.Context, _ string, prefix string) ([]storage.ObjectInfo, error) {
	out := []storage.ObjectInfo{}
	for key, size := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, storage.ObjectInfo{Key: key, Size: size})
		}
	}
	return out, nil
}

func (m *memoryStorage) GetObjectURL(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	return "https://" + bucket + ".example/" + key, nil
}

type testServer struct {
	router *gin.Engine
	db     *sql.DB
	store  *sqlite.Store
	tokens *auth.TokenService
}

func newTestServer(t *testing.T, store storage.Service) *testServer {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos, err := sqlite.NewStore(context.Background(), db)
	require.NoError(t, err)

	tokens, err := auth.NewTokenService("api-test-secret")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := service.NewUserService(repos.Users, auth.NewPasswordHasher(bcrypt.MinCost), tokens)
	categories := service.NewCategoryService(repos.Categories)
	products := service.NewProductService(repos.Products, repos.Categories)
	bucket := ""
	if store != nil {
		bucket = "exports"
	}
	exports := service.NewExportService(categories, products, store, bucket, "snapshots")

	router := gin.New()
	NewHandler(users, categories, products, exports, tokens, logger).RegisterRoutes(router)

	return &testServer{router: router, db: db, store: repos, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/users/register", "", gin.H{
		"name": "Doe", "firstName": "Jane", "email": email, "password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestLiveness(t *testing.T) {
	srv := newTestServer(t, nil)

	w := srv.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, LivenessMessage, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	w := srv.do(t, http.MethodOptions, "/api/categories", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, nil)

	w := srv.do(t, http.MethodGet, "/api/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorageFailuresReturn500(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.register(t, "broken@example.com")
	require.NoError(t, srv.db.Close())

	w := srv.do(t, http.MethodGet, "/api/categories", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"query categories: sql: database is closed"}`, w.Body.String())

	w = srv.do(t, http.MethodGet, "/api/products", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"query products: sql: database is closed"}`, w.Body.String())

	w = srv.do(t, http.MethodPost, "/api/users/login", "", gin.H{"email": "broken@example.com", "password": "secret"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"scan user: sql: database is closed"}`, w.Body.String())

	w = srv.do(t, http.MethodPost, "/api/categories", token, gin.H{"title": "t", "description": "d"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "insert category")
}
