// ABOUTME: Persistent storage for the API session token
// ABOUTME: File-backed store in the XDG config directory plus an in-memory variant

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store holds at most one opaque bearer token. Set overwrites
// unconditionally, Clear removes it, and Token on an empty store
// reports absence rather than an error. Subscribe delivers a
// notification whenever the token changes.
type Store interface {
	Token() (string, bool)
	Set(token string) error
	Clear() error
	Subscribe() <-chan struct{}
}

// notifier fans out change notifications to subscribers.
// Sends never block: a subscriber that has not drained its channel
// still holds one pending notification.
type notifier struct {
	mu   sync.Mutex
	subs []chan struct{}
}

// Subscribe registers a new change listener.
func (n *notifier) Subscribe() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan struct{}, 1)
	n.subs = append(n.subs, ch)
	return ch
}

func (n *notifier) notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

const sessionFileName = "session.json"

type sessionData struct {
	Token string `json:"token"`
}

// FileStore persists the token as a JSON file under a config directory.
// The file is created with 0600 since it holds a credential.
type FileStore struct {
	configDir string
	notifier
}

// NewFileStore creates a store rooted at the given config directory.
// The directory is created lazily on first Set.
func NewFileStore(configDir string) *FileStore {
	return &FileStore{configDir: configDir}
}

// DefaultConfigDir returns the config directory following XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "verleih")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "verleih")
}

func (s *FileStore) sessionFile() string {
	return filepath.Join(s.configDir, sessionFileName)
}

// Token reads the persisted token. A missing or unreadable file means
// no session.
func (s *FileStore) Token() (string, bool) {
	data, err := os.ReadFile(s.sessionFile())
	if err != nil {
		return "", false
	}
	var sess sessionData
	if err := json.Unmarshal(data, &sess); err != nil {
		return "", false
	}
	if sess.Token == "" {
		return "", false
	}
	return sess.Token, true
}

// Set persists the token, overwriting any previous one.
func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.Marshal(sessionData{Token: token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.sessionFile(), data, 0600); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Clear removes the persisted token. Clearing an empty store is not
// an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.sessionFile())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	s.notify()
	return nil
}

// MemoryStore is an in-process Store for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	present bool
	notifier
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.present
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	s.token = token
	s.present = true
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.present = false
	s.mu.Unlock()
	s.notify()
	return nil
}
