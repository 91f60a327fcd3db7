// ABOUTME: Tests for the HTTP client core
// ABOUTME: Uses httptest to verify headers, 401 handling, and error propagation

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/holgerweigert/verleih/internal/session"
)

func newTestClient(url string, store session.Store) *Client {
	if store == nil {
		store = session.NewMemoryStore()
	}
	return New(url, store)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Product{})
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	store.Set("tok-123")

	c := newTestClient(server.URL, store)
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected Authorization 'Bearer tok-123', got %q", gotAuth)
	}
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]Product{})
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasAuth {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_SetsContentTypeAndRequestID(t *testing.T) {
	var contentType, requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode(Stats{})
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	if _, err := c.Stats(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", contentType)
	}
	if requestID == "" {
		t.Error("expected an X-Request-Id header")
	}
}

func TestClient_401ClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	store.Set("stale-token")

	c := newTestClient(server.URL, store)
	_, err := c.Rentals(context.Background(), FilterActive)
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected error to match ErrUnauthorized, got %v", err)
	}

	if _, ok := store.Token(); ok {
		t.Error("expected session store to be cleared after 401")
	}
}

func TestClient_Non401KeepsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	store.Set("tok")

	c := newTestClient(server.URL, store)
	_, err := c.Stats(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Errorf("500 must not classify as unauthorized: %v", err)
	}
	if _, ok := store.Token(); !ok {
		t.Error("expected session to survive a non-401 failure")
	}
}

func TestClient_ErrorCarriesStatusAndMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "customer not found"})
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	_, err := c.Customer(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "customer not found" {
		t.Errorf("expected backend message, got %q", apiErr.Message)
	}
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	_, err := c.Stats(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", apiErr.StatusCode)
	}
}

func TestClient_ConnectionError(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1", nil)
	_, err := c.Stats(context.Background())
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(Stats{})
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	if _, err := c.Stats(ctx); err == nil {
		t.Error("expected error for canceled context, got nil")
	}
}

func TestClient_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(Stats{})
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := c.Stats(ctx); err == nil {
		t.Error("expected error for timed out context, got nil")
	}
}
