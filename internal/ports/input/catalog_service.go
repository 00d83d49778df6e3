package input

import "bookmart/internal/domain"

// CatalogService interface - Input port (use case)
// Defines what the application can do with the book catalog.
type CatalogService interface {
	GetBooks(condition domain.QueryBookRequest) ([]domain.BookResponse, error)
	GetGenres() ([]domain.GenreResponse, error)
}
