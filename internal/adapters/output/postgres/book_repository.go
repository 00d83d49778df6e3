package postgres

import (
	"strings"

	"bookmart/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookRepository struct - Secondary/Driven adapter for PostgreSQL
type BookRepository struct {
	dbGorm *gorm.DB
}

// NewBookRepository func - Creates new PostgreSQL catalog repository and
// runs schema migration
func NewBookRepository(dbGorm *gorm.DB) *BookRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &BookRepository{
		dbGorm: dbGorm,
	}
}

// GetBooks func - Retrieves catalog entries with genre and stock joined,
// filtered by optional name prefix and genre
func (p *BookRepository) GetBooks(condition domain.QueryBookRequest) ([]domain.BookResponse, error) {
	var books []domain.Book

	tx := p.dbGorm.Preload("Genre").Preload("Stock")
	if condition.SearchTerm != nil && strings.TrimSpace(*condition.SearchTerm) != "" {
		term := strings.ToLower(strings.TrimSpace(*condition.SearchTerm))
		tx = tx.Where("LOWER(book_name) LIKE ?", term+"%")
	}
	if condition.GenreID != nil {
		tx = tx.Where("genre_id = ?", *condition.GenreID)
	}

	if err := tx.Find(&books).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	responses := make([]domain.BookResponse, len(books))
	for i, book := range books {
		quantity := 0
		if book.Stock != nil {
			quantity = book.Stock.Quantity
		}
		responses[i] = domain.BookResponse{
			ID:         book.ID,
			BookName:   book.BookName,
			AuthorName: book.AuthorName,
			Price:      book.Price,
			Image:      book.Image,
			GenreID:    book.GenreID,
			GenreName:  book.Genre.GenreName,
			Quantity:   quantity,
		}
	}
	return responses, nil
}

// Genres func - Retrieves all genres
func (p *BookRepository) Genres() ([]domain.GenreResponse, error) {
	var genres []domain.Genre
	if err := p.dbGorm.Find(&genres).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	responses := make([]domain.GenreResponse, len(genres))
	for i, genre := range genres {
		responses[i] = domain.GenreResponse{
			ID:        genre.ID,
			GenreName: genre.GenreName,
		}
	}
	return responses, nil
}

// ListCatalog func - Flattens the whole catalog for the assistant's
// knowledge snapshot. Called fresh on every open-domain turn.
func (p *BookRepository) ListCatalog() ([]domain.KnowledgeItem, error) {
	var books []domain.Book
	if err := p.dbGorm.Preload("Stock").Find(&books).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	items := make([]domain.KnowledgeItem, len(books))
	for i, book := range books {
		quantity := 0
		if book.Stock != nil {
			quantity = book.Stock.Quantity
		}
		items[i] = domain.KnowledgeItem{
			Title:         book.BookName,
			Author:        book.AuthorName,
			Price:         book.Price,
			StockQuantity: quantity,
		}
	}
	return items, nil
}
