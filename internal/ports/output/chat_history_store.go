package output

import "bookmart/internal/domain"

// ChatHistoryStore interface - Output port
// Session-scoped transcript storage. The transcript is an append-only
// sequence of turns serialized per session id; ownership of session lifetime
// (expiry) lies with the implementation. Implementations must be safe for
// concurrent access across sessions; same-session writes are
// last-writer-wins.
type ChatHistoryStore interface {
	// LoadHistory returns the transcript for the session in chronological
	// order. An absent, expired or corrupt transcript yields an empty slice,
	// never a fault; an error is returned only for storage access failures.
	LoadHistory(sessionID string) ([]domain.ChatMessage, error)

	// SaveHistory replaces the session's transcript. Round-trip with
	// LoadHistory preserves order, sender and text exactly.
	SaveHistory(sessionID string, history []domain.ChatMessage) error

	// ClearHistory removes the session's transcript. Idempotent.
	ClearHistory(sessionID string) error
}
