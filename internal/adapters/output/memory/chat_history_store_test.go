package memory

import (
	"testing"
	"time"

	"bookmart/internal/domain"
)

const testTTL = 30 * time.Minute

// TestSaveLoadRoundTrip tests that load(save(turns)) reproduces the turns in
// order with sender and text preserved exactly
func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewChatHistoryStore(testTTL)

	turns := []domain.ChatMessage{
		{Sender: domain.ChatSenderUser, Text: "Do you have Dune?"},
		{Sender: domain.ChatSenderBot, Text: "Yes, we stock Dune."},
		{Sender: domain.ChatSenderUser, Text: "Show my cart"},
		{Sender: domain.ChatSenderBot, Text: "Your cart is empty."},
	}

	if err := store.SaveHistory("s-1", turns); err != nil {
		t.Fatalf("expected no error on save, got: %v", err)
	}

	loaded, err := store.LoadHistory("s-1")
	if err != nil {
		t.Fatalf("expected no error on load, got: %v", err)
	}

	if len(loaded) != len(turns) {
		t.Fatalf("expected %d turns, got %d", len(turns), len(loaded))
	}
	for i := range turns {
		if loaded[i] != turns[i] {
			t.Errorf("turn %d: expected %+v, got %+v", i, turns[i], loaded[i])
		}
	}
}

// TestLoadAbsentSessionReturnsEmpty tests that a session never saved loads
// as an empty transcript, not an error
func TestLoadAbsentSessionReturnsEmpty(t *testing.T) {
	store := NewChatHistoryStore(testTTL)

	loaded, err := store.LoadHistory("never-saved")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty transcript, got %d turns", len(loaded))
	}
}

// TestLoadCorruptBlobReturnsEmpty tests that an undeserializable blob is
// treated as an empty transcript and cleaned up
func TestLoadCorruptBlobReturnsEmpty(t *testing.T) {
	store := NewChatHistoryStore(testTTL)

	store.entries.Store("s-1", historyEntry{blob: "{not valid json", savedAt: time.Now()})

	loaded, err := store.LoadHistory("s-1")
	if err != nil {
		t.Fatalf("expected no error for corrupt blob, got: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty transcript for corrupt blob, got %d turns", len(loaded))
	}

	if _, exists := store.entries.Load("s-1"); exists {
		t.Error("expected corrupt entry to be deleted")
	}
}

// TestLoadExpiredSessionReturnsEmpty tests lazy expiry against the
// configured TTL
func TestLoadExpiredSessionReturnsEmpty(t *testing.T) {
	store := NewChatHistoryStore(5 * time.Minute)

	store.entries.Store("s-1", historyEntry{
		blob:    `[{"sender":"user","text":"hello"}]`,
		savedAt: time.Now().Add(-6 * time.Minute),
	})

	loaded, err := store.LoadHistory("s-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected expired transcript to load empty, got %d turns", len(loaded))
	}

	if _, exists := store.entries.Load("s-1"); exists {
		t.Error("expected expired entry to be deleted")
	}
}

// TestLoadFreshSessionWithinTTL tests that a transcript younger than the TTL
// survives
func TestLoadFreshSessionWithinTTL(t *testing.T) {
	store := NewChatHistoryStore(5 * time.Minute)

	store.entries.Store("s-1", historyEntry{
		blob:    `[{"sender":"user","text":"hello"}]`,
		savedAt: time.Now().Add(-4 * time.Minute),
	})

	loaded, err := store.LoadHistory("s-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Text != "hello" {
		t.Errorf("expected the saved turn back, got %+v", loaded)
	}
}

// TestClearHistoryIsIdempotent tests clearing present and absent sessions
func TestClearHistoryIsIdempotent(t *testing.T) {
	store := NewChatHistoryStore(testTTL)

	if err := store.SaveHistory("s-1", []domain.ChatMessage{{Sender: domain.ChatSenderUser, Text: "hi"}}); err != nil {
		t.Fatalf("expected no error on save, got: %v", err)
	}

	if err := store.ClearHistory("s-1"); err != nil {
		t.Errorf("expected no error clearing existing session, got: %v", err)
	}
	if err := store.ClearHistory("s-1"); err != nil {
		t.Errorf("expected no error clearing already-cleared session, got: %v", err)
	}

	loaded, _ := store.LoadHistory("s-1")
	if len(loaded) != 0 {
		t.Errorf("expected empty transcript after clear, got %d turns", len(loaded))
	}
}

// TestSaveOverwritesPreviousTranscript tests last-writer-wins semantics
func TestSaveOverwritesPreviousTranscript(t *testing.T) {
	store := NewChatHistoryStore(testTTL)

	first := []domain.ChatMessage{{Sender: domain.ChatSenderUser, Text: "first"}}
	second := []domain.ChatMessage{
		{Sender: domain.ChatSenderUser, Text: "second"},
		{Sender: domain.ChatSenderBot, Text: "reply"},
	}

	store.SaveHistory("s-1", first)
	store.SaveHistory("s-1", second)

	loaded, err := store.LoadHistory("s-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Text != "second" {
		t.Errorf("expected the second transcript, got %+v", loaded)
	}
}
