package output

import "bookmart/internal/domain"

// BookRepository interface - Output port
// Defines what the application needs from the book catalog store.
type BookRepository interface {
	// GetBooks returns catalog entries joined with genre and stock, filtered
	// by an optional name prefix and genre. Books without a stock row report
	// quantity 0.
	GetBooks(condition domain.QueryBookRequest) ([]domain.BookResponse, error)

	// Genres returns all genres.
	Genres() ([]domain.GenreResponse, error)

	// ListCatalog returns the whole catalog flattened for the assistant's
	// knowledge snapshot. Read-only; called fresh on every open-domain turn.
	ListCatalog() ([]domain.KnowledgeItem, error)
}
