package http

import (
	"bookmart/internal/domain"
	"bookmart/internal/ports/input"
	"bookmart/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.CatalogService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.CatalogService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// GetBooks func
/* list books */
// GetBooks godoc
// @Summary List books
// @Description List books, optionally filtered by name prefix and genre
// @Tags CATALOG
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/books [get]
// @Produce json
// @param search_term query string false "name prefix"
// @param genre_id query string false "uuid"
func (hdl *HTTPHandler) GetBooks(c *fiber.Ctx) error {
	condition := QueryBookRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	// Convert HTTP query request to domain query request
	domainCondition := domain.QueryBookRequest{
		SearchTerm: condition.SearchTerm,
		GenreID:    condition.GenreID,
	}
	result, err := hdl.srv.GetBooks(domainCondition)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	// Convert domain response to HTTP response
	data := make([]BookResponse, len(result))
	for i, book := range result {
		data[i] = BookResponse{
			ID:         book.ID,
			BookName:   book.BookName,
			AuthorName: book.AuthorName,
			Price:      book.Price,
			Image:      book.Image,
			GenreID:    book.GenreID,
			GenreName:  book.GenreName,
			Quantity:   book.Quantity,
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// GetGenres func
/* list genres */
// GetGenres godoc
// @Summary List genres
// @Description List all book genres
// @Tags CATALOG
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/genres [get]
// @Produce json
func (hdl *HTTPHandler) GetGenres(c *fiber.Ctx) error {
	result, err := hdl.srv.GetGenres()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]GenreResponse, len(result))
	for i, genre := range result {
		data[i] = GenreResponse{
			ID:        genre.ID,
			GenreName: genre.GenreName,
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}
