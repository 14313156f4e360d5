package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpos/poscon/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions, orgs := newStores(t)
	return NewClient(Config{BaseURL: server.URL}, sessions, orgs), server
}

func TestClient_Login(t *testing.T) {
	t.Run("decodes the envelope payload", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alice", body["username"])
			assert.Equal(t, "pw", body["password"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"token":"tok-1","user":{"username":"alice","organizationId":"org-1","roles":[],"permissions":[]}},"error":null}`))
		}))

		result, err := client.Login(context.Background(), "alice", "pw")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", result.Token)
		assert.Equal(t, "alice", result.User.Username)
		assert.Equal(t, "org-1", result.User.OrganizationID)
	})

	t.Run("envelope error wins over a 200 status", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":null,"error":{"message":"account locked"}}`))
		}))

		_, err := client.Login(context.Background(), "alice", "pw")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "account locked")
	})

	t.Run("401 maps to invalid credentials with the envelope detail", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"data":null,"error":{"detail":"wrong password"}}`))
		}))

		_, err := client.Login(context.Background(), "alice", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Contains(t, err.Error(), "wrong password")
	})

	t.Run("unreachable server is a connectivity error", func(t *testing.T) {
		sessions, orgs := newStores(t)
		client := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, sessions, orgs)

		_, err := client.Login(context.Background(), "alice", "pw")
		require.Error(t, err)

		var connErr *ConnectivityError
		assert.ErrorAs(t, err, &connErr)
	})
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{"forbidden", http.StatusForbidden, `{"data":null,"error":{"message":"not yours"}}`, ErrAccessDenied},
		{"not found", http.StatusNotFound, `{"data":null,"error":{"detail":"no such category"}}`, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.GetCategory(context.Background(), "cat-1")
			require.ErrorIs(t, err, tt.sentinel)
		})
	}

	t.Run("other statuses surface the envelope error", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"data":null,"error":{"detail":"database on fire"}}`))
		}))

		_, err := client.CreateCategory(context.Background(), models.CategoryRequest{Name: "Drinks"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database on fire")
	})
}

func TestClient_PagedList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/category/paged", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items":[{"id":"cat-1","name":"Drinks","isActive":true}],
			"totalItems":11,"pageNumber":2,"pageSize":5,"totalPages":3
		}`))
	}))

	page, err := client.ListCategories(context.Background(), 2, 5)
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Equal(t, "Drinks", page.Items[0].Name)
	assert.Equal(t, 11, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
}

func TestClient_Delete(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/category/cat-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":null,"error":null}`))
	}))

	require.NoError(t, client.DeleteCategory(context.Background(), "cat-1"))
}
