package application

import (
	"bookmart/internal/domain"
	"bookmart/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// CatalogService struct - Application service implementing catalog use cases
type CatalogService struct {
	repo output.BookRepository
}

// NewCatalogService func - Creates new catalog service
func NewCatalogService(repo output.BookRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetBooks func - Use case: List books with search and genre filtering
func (s *CatalogService) GetBooks(condition domain.QueryBookRequest) ([]domain.BookResponse, error) {
	result, err := s.repo.GetBooks(condition)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// GetGenres func - Use case: List genres
func (s *CatalogService) GetGenres() ([]domain.GenreResponse, error) {
	return s.repo.Genres()
}
