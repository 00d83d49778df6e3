package memory

import (
	"encoding/json"
	"sync"
	"time"

	"bookmart/internal/domain"
	"bookmart/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ChatHistoryStore implements the port
var _ output.ChatHistoryStore = (*ChatHistoryStore)(nil)

// historyEntry holds one session's transcript serialized as a JSON text
// blob, mirroring the session-transport contract (opaque string per key).
type historyEntry struct {
	blob    string
	savedAt time.Time
}

// ChatHistoryStore struct - Output adapter for in-memory transcript storage.
// Uses sync.Map for thread-safe concurrent access across sessions. Writes to
// the same session are last-writer-wins; expiry is lazy on load.
type ChatHistoryStore struct {
	entries sync.Map
	ttl     time.Duration
}

// NewChatHistoryStore creates a new in-memory history store.
// ttl: duration after which an untouched transcript expires
func NewChatHistoryStore(ttl time.Duration) *ChatHistoryStore {
	return &ChatHistoryStore{
		ttl: ttl,
	}
}

// GetTTL returns the configured transcript time-to-live
func (m *ChatHistoryStore) GetTTL() time.Duration {
	return m.ttl
}

// LoadHistory returns the session transcript in chronological order.
// An absent, expired or corrupt transcript yields an empty slice - a broken
// session must never fail the turn-processing path. Expired and corrupt
// entries are deleted (lazy cleanup).
func (m *ChatHistoryStore) LoadHistory(sessionID string) ([]domain.ChatMessage, error) {
	value, exists := m.entries.Load(sessionID)
	if !exists {
		return []domain.ChatMessage{}, nil
	}

	entry, ok := value.(historyEntry)
	if !ok {
		m.entries.Delete(sessionID)
		return []domain.ChatMessage{}, nil
	}

	if time.Since(entry.savedAt) > m.ttl {
		m.entries.Delete(sessionID)
		return []domain.ChatMessage{}, nil
	}

	var history []domain.ChatMessage
	if err := json.Unmarshal([]byte(entry.blob), &history); err != nil {
		logrus.Warnf("Corrupt chat transcript for session %s, treating as empty: %v", sessionID, err)
		m.entries.Delete(sessionID)
		return []domain.ChatMessage{}, nil
	}

	return history, nil
}

// SaveHistory replaces the session's transcript and refreshes its expiry.
func (m *ChatHistoryStore) SaveHistory(sessionID string, history []domain.ChatMessage) error {
	blob, err := json.Marshal(history)
	if err != nil {
		return err
	}

	m.entries.Store(sessionID, historyEntry{
		blob:    string(blob),
		savedAt: time.Now(),
	})

	return nil
}

// ClearHistory removes the session's transcript. Idempotent - clearing an
// absent session is not an error.
func (m *ChatHistoryStore) ClearHistory(sessionID string) error {
	m.entries.Delete(sessionID)
	return nil
}
