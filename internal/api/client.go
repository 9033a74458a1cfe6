package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"zanara/internal/config"
	"zanara/internal/logger"
	"zanara/internal/session"
	"zanara/pkg/apperrors"
)

// Client is the single configured HTTP client for the Zanara API. All
// service-layer calls go through it: one base URL, bearer token attached
// from the session store, error classification into the apperrors taxonomy,
// and central 401 detection.
type Client struct {
	baseURL      string
	mediaBaseURL string
	http         *http.Client
	session      *session.Store
}

func NewClient(cfg *config.Config, sess *session.Store) *Client {
	timeout := cfg.API.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.API.BaseURL, "/"),
		mediaBaseURL: strings.TrimRight(cfg.API.MediaBaseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		session:      sess,
	}
}

// Session exposes the backing session store.
func (c *Client) Session() *session.Store {
	return c.session
}

// Get issues a GET with optional query parameters, decoding into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.InternalError(err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachToken(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NetworkError(err)
	}
	defer resp.Body.Close()

	return c.decodeResponse(resp, out)
}

func (c *Client) attachToken(req *http.Request) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeResponse maps non-2xx responses into the error taxonomy and decodes
// successful bodies into out. A 401 from any endpoint invalidates the
// session once; callers never handle token expiry individually.
func (c *Client) decodeResponse(resp *http.Response, out interface{}) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NetworkError(err)
	}

	if resp.StatusCode >= 400 {
		appErr := apperrors.FromResponse(resp.StatusCode, respBody)
		if resp.StatusCode == http.StatusUnauthorized {
			c.session.Invalidate()
		}
		logger.Debug("api request failed",
			"status", resp.StatusCode,
			"code", appErr.Code,
			"url", resp.Request.URL.Path,
		)
		return appErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternalError, "api", "Malformed API response", resp.StatusCode)
	}
	return nil
}

// MediaURL resolves a stored media path against the media base URL.
// Absolute URLs pass through untouched.
func (c *Client) MediaURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.mediaBaseURL + "/" + strings.TrimLeft(path, "/")
}
