// Package api is the REST client for the platform API. Every request
// flows through a transport pipeline that stamps the bearer token, the
// selected organizer id, and a request id; list reads are served through a
// purgeable response cache that is dropped on tenant switches.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"

	"github.com/openpos/poscon/internal/orgcontext"
	"github.com/openpos/poscon/internal/session"
)

// Config holds client configuration.
type Config struct {
	// BaseURL is the platform API root, e.g. https://pos.example.com
	BaseURL string

	// Timeout bounds each HTTP request. Zero means 30 seconds.
	Timeout time.Duration

	// Base overrides the innermost transport. Nil means
	// http.DefaultTransport.
	Base http.RoundTripper
}

// Client calls the platform API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *purgeableCache
}

// NewClient creates a client whose requests are scoped by the given
// session and organization-context stores.
func NewClient(cfg Config, sessions *session.Store, orgs *orgcontext.Store) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	cache := newPurgeableCache()

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(sessions, orgs, cache, cfg.Base),
		},
		cache: cache,
	}
}

// PurgeCache drops every cached response. Wired to the auth controller's
// reset signal so no tenant-scoped data outlives a tenant switch.
func (c *Client) PurgeCache() {
	c.cache.Purge()
	log.Debug().Msg("response cache purged")
}

// envelope is the uniform {data, error} wrapper the API returns for
// non-paged endpoints.
type envelope[T any] struct {
	Data  T         `json:"data"`
	Error *APIError `json:"error"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// statusError maps a failed response onto the error taxonomy. The
// envelope's detail, when present, wins over the canned message.
func statusError(status int, apiErr *APIError) error {
	detail := ""
	if apiErr != nil {
		detail = apiErr.Error()
	}

	wrap := func(sentinel error) error {
		if detail == "" {
			return sentinel
		}
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	switch status {
	case http.StatusUnauthorized:
		return wrap(ErrInvalidCredentials)
	case http.StatusForbidden:
		return wrap(ErrAccessDenied)
	case http.StatusNotFound:
		return wrap(ErrNotFound)
	}

	if apiErr != nil {
		return apiErr
	}
	return &APIError{Message: fmt.Sprintf("server error: %d", status)}
}

// doEnvelope performs the request and unwraps the {data, error} envelope.
// A present error field is a failure regardless of the status code.
func doEnvelope[T any](c *Client, req *http.Request) (T, error) {
	var zero T

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &ConnectivityError{Err: err}
	}

	var env envelope[T]
	if jsonErr := json.Unmarshal(body, &env); jsonErr != nil {
		if resp.StatusCode >= 400 {
			return zero, statusError(resp.StatusCode, nil)
		}
		return zero, fmt.Errorf("failed to decode response: %w", jsonErr)
	}

	if env.Error != nil || resp.StatusCode >= 400 {
		return zero, statusError(resp.StatusCode, env.Error)
	}

	return env.Data, nil
}

// doRaw performs the request and decodes the body directly, without the
// envelope. Used by the paged list endpoints.
func doRaw[T any](c *Client, req *http.Request) (T, error) {
	var zero T

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var env envelope[json.RawMessage]
		_ = json.NewDecoder(resp.Body).Decode(&env)
		return zero, statusError(resp.StatusCode, env.Error)
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}

	return out, nil
}

// getJSON is an envelope GET with bounded retry. Only transport failures
// are retried; anything the service answered is permanent. Writes and auth
// calls never come through here, so retry stays confined to idempotent
// reads.
func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return retryGet(ctx, func() (T, error) {
		req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			var zero T
			return zero, err
		}
		return doEnvelope[T](c, req)
	})
}

// getRaw is a no-envelope GET with bounded retry.
func getRaw[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return retryGet(ctx, func() (T, error) {
		req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			var zero T
			return zero, err
		}
		return doRaw[T](c, req)
	})
}

func retryGet[T any](ctx context.Context, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, func() (T, error) {
		out, err := op()
		if err != nil {
			var connErr *ConnectivityError
			if !errors.As(err, &connErr) {
				return out, backoff.Permanent(err)
			}
			log.Debug().Err(err).Msg("retrying request")
		}
		return out, err
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(3),
	)
}

// postJSON performs an envelope POST. Never retried.
func postJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return zero, err
	}
	return doEnvelope[T](c, req)
}

// putJSON performs an envelope PUT. Never retried.
func putJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return zero, err
	}
	return doEnvelope[T](c, req)
}

// deleteJSON performs an envelope DELETE. Never retried.
func deleteJSON(ctx context.Context, c *Client, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	_, err = doEnvelope[json.RawMessage](c, req)
	return err
}

func pageQuery(page, pageSize int) url.Values {
	return url.Values{
		"page":     {fmt.Sprint(page)},
		"pageSize": {fmt.Sprint(pageSize)},
	}
}
