package api

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gregjones/httpcache"

	"github.com/openpos/poscon/internal/orgcontext"
	"github.com/openpos/poscon/internal/session"
)

// HeaderOrganizerID carries the tenant scope on every outgoing request.
// Tenant-scoped endpoints read it instead of an explicit parameter.
const HeaderOrganizerID = "X-Organizer-Id"

// HeaderRequestID correlates a request across client and server logs.
const HeaderRequestID = "X-Request-Id"

// organizerTransport stamps the selected organizer id onto every outgoing
// request. Requests pass through unmodified while no organizer is
// selected. Method, body and other headers are never touched.
type organizerTransport struct {
	orgs *orgcontext.Store
	next http.RoundTripper
}

func (t *organizerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if id := t.orgs.SelectedOrganizer(); id != "" {
		req = req.Clone(req.Context())
		req.Header.Set(HeaderOrganizerID, id)
	}
	return t.next.RoundTrip(req)
}

// bearerTransport attaches the session's bearer token when one is present.
type bearerTransport struct {
	sessions *session.Store
	next     http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.sessions.Token(); token != "" && req.Header.Get("Authorization") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.next.RoundTrip(req)
}

// requestIDTransport stamps a fresh request id on each outgoing request.
type requestIDTransport struct {
	next http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(HeaderRequestID, uuid.NewString())
	return t.next.RoundTrip(req)
}

// purgeableCache is an in-memory httpcache.Cache that can be dropped
// wholesale. The cache keys responses by URL only, so entries fetched
// under one tenant scope must not survive a tenant switch; Purge is wired
// to the controller's reset signal.
type purgeableCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newPurgeableCache() *purgeableCache {
	return &purgeableCache{entries: make(map[string][]byte)}
}

// Get implements httpcache.Cache.
func (c *purgeableCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Set implements httpcache.Cache.
func (c *purgeableCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Delete implements httpcache.Cache.
func (c *purgeableCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Purge drops every cached response.
func (c *purgeableCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
}

var _ httpcache.Cache = (*purgeableCache)(nil)

// newTransport builds the outbound pipeline. Innermost to outermost:
// the base transport, the response cache, the bearer stage, the organizer
// scoper, and the request-id stamp.
func newTransport(sessions *session.Store, orgs *orgcontext.Store, cache *purgeableCache, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	caching := httpcache.NewTransport(cache)
	caching.Transport = base

	return &requestIDTransport{
		next: &organizerTransport{
			orgs: orgs,
			next: &bearerTransport{
				sessions: sessions,
				next:     caching,
			},
		},
	}
}
