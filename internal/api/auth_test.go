// ABOUTME: Tests for login and logout
// ABOUTME: Verifies token persistence rules and validation before network I/O

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/holgerweigert/verleih/internal/session"
)

func TestLogin_PersistsToken(t *testing.T) {
	var gotBody LoginRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("expected POST /auth/login, got %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(LoginResponse{Token: "tok-abc", Username: "hans"})
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	c := newTestClient(server.URL, store)

	resp, err := c.Login(context.Background(), "hans", "geheim")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token != "tok-abc" {
		t.Errorf("expected token in response, got %q", resp.Token)
	}
	if gotBody.Username != "hans" || gotBody.Password != "geheim" {
		t.Errorf("unexpected login body: %+v", gotBody)
	}

	token, ok := store.Token()
	if !ok || token != "tok-abc" {
		t.Errorf("expected persisted token tok-abc, got %q (ok=%v)", token, ok)
	}
}

func TestLogin_RejectedLeavesStoreUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	c := newTestClient(server.URL, store)

	_, err := c.Login(context.Background(), "hans", "falsch")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Error("rejected login must not persist a token")
	}
}

func TestLogin_MissingTokenInBodyIsAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 OK but no token: still a failed login.
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	c := newTestClient(server.URL, store)

	_, err := c.Login(context.Background(), "hans", "geheim")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for tokenless 2xx, got %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Error("store must stay untouched when the body carries no token")
	}
}

func TestLogin_BlankCredentialsRejectedBeforeNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)

	for _, creds := range [][2]string{{"", "pw"}, {"user", ""}, {"  ", "pw"}} {
		_, err := c.Login(context.Background(), creds[0], creds[1])
		if !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials for %q/%q, got %v", creds[0], creds[1], err)
		}
	}
	if requests != 0 {
		t.Errorf("validation failures must not hit the network, saw %d requests", requests)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set("tok")

	c := newTestClient("http://unused.invalid", store)
	c.Logout()

	if _, ok := store.Token(); ok {
		t.Error("expected session cleared after logout")
	}
}

func TestLogout_EmptySessionIsFine(t *testing.T) {
	store := session.NewMemoryStore()
	c := newTestClient("http://unused.invalid", store)
	c.Logout() // must not panic or fail
	if _, ok := store.Token(); ok {
		t.Error("store must stay empty")
	}
}
