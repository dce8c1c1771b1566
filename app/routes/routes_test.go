package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"pressroom/app/audit"
	"pressroom/app/auth"
	"pressroom/app/config"
	"pressroom/app/models"
	"pressroom/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	*httptest.Server
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	dir := t.TempDir()
	cfg := &config.Config{
		StaticDir:         filepath.Join(dir, "static"),
		PostsDir:          filepath.Join(dir, "posts"),
		JobsFile:          filepath.Join(dir, "jobs.json"),
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		LoginRateLimit:    100,
		LoginRateWindow:   time.Minute,
	}

	logger := zap.NewNop()
	auditLog, err := audit.Open(filepath.Join(dir, "audit"))
	require.NoError(t, err)
	t.Cleanup(func() { auditLog.Close() })

	postRepo := repositories.NewFilePostRepository(cfg.PostsDir, logger)
	jobRepo := repositories.NewFileJobRepository(cfg.JobsFile, logger)
	gateway := auth.NewGateway(cfg.JWTSecret, cfg.TokenTTL)

	router := Setup(cfg, logger, postRepo, jobRepo, gateway, auditLog)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	ts := &testServer{Server: srv}
	ts.token = ts.login(t, "admin", "hunter2")
	return ts
}

func (ts *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	body, status := ts.do(t, http.MethodPost, "/api/auth/login", "",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(t, http.StatusOK, status)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) ([]byte, int) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data, resp.StatusCode
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	body, status := ts.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", string(body))
}

func TestMutationsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/posts"},
		{http.MethodPut, "/api/posts/some-post"},
		{http.MethodDelete, "/api/posts/some-post"},
		{http.MethodPost, "/api/jobs"},
		{http.MethodPut, "/api/jobs/123"},
		{http.MethodDelete, "/api/jobs/123"},
		{http.MethodGet, "/api/admin/posts"},
		{http.MethodGet, "/api/admin/jobs"},
		{http.MethodGet, "/api/admin/audit"},
	} {
		_, status := ts.do(t, tc.method, tc.path, "", `{}`)
		assert.Equal(t, http.StatusUnauthorized, status, "%s %s", tc.method, tc.path)
	}

	// Reads stay public.
	_, status := ts.do(t, http.MethodGet, "/api/posts", "", "")
	assert.Equal(t, http.StatusOK, status)
	_, status = ts.do(t, http.MethodGet, "/api/jobs", "", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestPostLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Create.
	body, status := ts.do(t, http.MethodPost, "/api/posts", ts.token,
		`{"slug":"product-launch","title":"Product Launch","content":"We are live.\n","tags":["news"]}`)
	require.Equal(t, http.StatusCreated, status, string(body))

	// Duplicate slug is rejected.
	_, status = ts.do(t, http.MethodPost, "/api/posts", ts.token,
		`{"slug":"product-launch","title":"Again","content":"x\n"}`)
	assert.Equal(t, http.StatusConflict, status)

	// Public read.
	body, status = ts.do(t, http.MethodGet, "/api/posts/product-launch", "", "")
	require.Equal(t, http.StatusOK, status)
	var post models.Post
	require.NoError(t, json.Unmarshal(body, &post))
	assert.Equal(t, "Product Launch", post.Title)
	assert.Equal(t, models.DefaultAuthor, post.Author)

	// Partial update keeps untouched fields.
	body, status = ts.do(t, http.MethodPut, "/api/posts/product-launch", ts.token, `{"featured":true}`)
	require.Equal(t, http.StatusOK, status, string(body))
	body, _ = ts.do(t, http.MethodGet, "/api/posts/product-launch", "", "")
	require.NoError(t, json.Unmarshal(body, &post))
	assert.True(t, post.Featured)
	assert.Equal(t, "We are live.\n", post.Content)

	// Delete, then the record is gone.
	_, status = ts.do(t, http.MethodDelete, "/api/posts/product-launch", ts.token, "")
	assert.Equal(t, http.StatusNoContent, status)
	_, status = ts.do(t, http.MethodGet, "/api/posts/product-launch", "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestJobLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Create a posting; the server assigns the ID.
	body, status := ts.do(t, http.MethodPost, "/api/jobs", ts.token,
		`{"title":"QA Engineer","department":"Engineering","location":"Remote","salary":"competitive"}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	var created struct {
		Job models.JobPosting `json:"job"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	id := created.Job.ID
	require.NotEmpty(t, id)
	assert.True(t, created.Job.IsActive)
	assert.Equal(t, time.Now().Format(models.DateLayout), created.Job.PostedDate)
	assert.Equal(t, models.DefaultJobType, created.Job.Type)

	// Close the posting with a one-field update.
	body, status = ts.do(t, http.MethodPut, "/api/jobs/"+id, ts.token, `{"isActive":false}`)
	require.Equal(t, http.StatusOK, status, string(body))

	// The stored record kept everything else.
	body, status = ts.do(t, http.MethodGet, "/api/jobs/"+id, "", "")
	require.Equal(t, http.StatusOK, status)
	var job models.JobPosting
	require.NoError(t, json.Unmarshal(body, &job))
	assert.False(t, job.IsActive)
	assert.Equal(t, "QA Engineer", job.Title)
	assert.Equal(t, "competitive", job.Salary)

	// Closed postings drop out of the public listing but not the admin one.
	body, _ = ts.do(t, http.MethodGet, "/api/jobs", "", "")
	var public struct {
		Jobs []models.JobPosting `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(body, &public))
	assert.Empty(t, public.Jobs)

	body, status = ts.do(t, http.MethodGet, "/api/admin/jobs", ts.token, "")
	require.Equal(t, http.StatusOK, status)
	var all struct {
		Jobs []models.JobPosting `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(body, &all))
	assert.Len(t, all.Jobs, 1)

	// Delete, then the record is gone.
	_, status = ts.do(t, http.MethodDelete, "/api/jobs/"+id, ts.token, "")
	assert.Equal(t, http.StatusNoContent, status)
	_, status = ts.do(t, http.MethodGet, "/api/jobs/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAuditTrailRecordsMutations(t *testing.T) {
	ts := newTestServer(t)

	_, status := ts.do(t, http.MethodPost, "/api/posts", ts.token,
		`{"slug":"audited","title":"Audited","content":"x\n"}`)
	require.Equal(t, http.StatusCreated, status)
	_, status = ts.do(t, http.MethodDelete, "/api/posts/audited", ts.token, "")
	require.Equal(t, http.StatusNoContent, status)

	body, status := ts.do(t, http.MethodGet, "/api/admin/audit", ts.token, "")
	require.Equal(t, http.StatusOK, status)
	var resp struct {
		Entries []audit.Entry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "delete", resp.Entries[0].Action)
	assert.Equal(t, "create", resp.Entries[1].Action)
	assert.Equal(t, "admin", resp.Entries[0].Actor)
	assert.Equal(t, "audited", resp.Entries[0].Key)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	ts := newTestServer(t)
	_, status := ts.do(t, http.MethodPost, "/api/auth/login", "",
		`{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestResponsesCarryRequestID(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/posts")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
