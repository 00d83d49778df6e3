package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", "5432")
	os.Setenv("POSTGRES_USERNAME", "test")
	os.Setenv("POSTGRES_PASSWORD", "test")
	os.Setenv("POSTGRES_DATABASE", "test")
	os.Setenv("POSTGRES_SSLMODE", "false")
	os.Setenv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com")
	os.Setenv("GEMINI_MODEL", "test-model")
	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("GEMINI_TIMEOUT", "30")
	os.Setenv("SESSION_TTL", "0")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("POSTGRES_HOST")
	os.Unsetenv("POSTGRES_PORT")
	os.Unsetenv("POSTGRES_USERNAME")
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("POSTGRES_DATABASE")
	os.Unsetenv("POSTGRES_SSLMODE")
	os.Unsetenv("GEMINI_ENDPOINT")
	os.Unsetenv("GEMINI_MODEL")
	os.Unsetenv("GEMINI_API_KEY")
	os.Unsetenv("GEMINI_TIMEOUT")
	os.Unsetenv("SESSION_TTL")
}

// TestGeminiStructFieldsUnmarshal tests that Gemini struct fields are properly unmarshaled
func TestGeminiStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	os.Setenv("GEMINI_API_KEY", "secret")
	os.Setenv("GEMINI_TIMEOUT", "45")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Expected Gemini.Model to be gemini-2.5-flash, got %s", cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey != "secret" {
		t.Errorf("Expected Gemini.APIKey to be secret, got %s", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Timeout != 45 {
		t.Errorf("Expected Gemini.Timeout to be 45, got %d", cfg.Gemini.Timeout)
	}
}

// TestSessionZeroTTLRequiresApplicationDefault tests that a zero TTL passes
// through; the application layer applies its default when it sees zero
func TestSessionZeroTTLRequiresApplicationDefault(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SESSION_TTL", "0")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Session.TTL != 0 {
		t.Errorf("Expected Session.TTL to be 0, got %d", cfg.Session.TTL)
	}
}

// TestSessionConfigAccess tests config access via configs.GetViper().Session
func TestSessionConfigAccess(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SESSION_TTL", "45")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Session.TTL != 45 {
		t.Errorf("Expected cfg.Session.TTL to be 45, got %d", cfg.Session.TTL)
	}
}
