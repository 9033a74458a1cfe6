package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zanara/internal/api"
	"zanara/internal/config"
	"zanara/internal/devserver"
	"zanara/internal/models"
	"zanara/internal/services/dto"
	"zanara/internal/session"
)

// TestServer wraps an httptest server running the dev API on the
// in-memory store, plus the config a client stack needs to talk to it.
type TestServer struct {
	Server *httptest.Server
	Store  devserver.Store
	Config *config.Config
}

// NewTestServer starts a fresh dev API for one test. Each test gets its
// own store, so tests stay independent and parallel-safe.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret-0123456789"
	cfg.JWT.TTL = 60
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/files"
	cfg.Upload.MaxSize = 64 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "video/mp4"}

	store := devserver.NewMemStore()
	server := httptest.NewServer(devserver.NewRouter(cfg, store))
	t.Cleanup(server.Close)

	cfg.API.BaseURL = server.URL
	cfg.API.MediaBaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second

	return &TestServer{
		Server: server,
		Store:  store,
		Config: cfg,
	}
}

// NewClientStack builds a session and API client bound to this server.
func (ts *TestServer) NewClientStack() (*session.Store, *api.Client) {
	sess := session.NewStore()
	return sess, api.NewClient(ts.Config, sess)
}

// SendRequest performs a raw JSON request against the server and returns
// the response plus its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}

// RegisterUser creates an account through the API and returns its token
// and account record.
func RegisterUser(t *testing.T, ts *TestServer, email, fullName, professionalType string) (string, models.AccountUser) {
	t.Helper()

	res, body := ts.SendRequest(t, "POST", "/auth/register", "", map[string]interface{}{
		"email":             email,
		"password":          "password-123",
		"full_name":         fullName,
		"professional_type": professionalType,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed (%d): %s", res.StatusCode, body)
	}

	var resp dto.AuthResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}
	return resp.Token, resp.User
}
