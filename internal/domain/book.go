package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Book struct - Core catalog entity
type Book struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;"`
	BookName   string    `gorm:"type:varchar(100);not null;"`
	AuthorName string    `gorm:"type:varchar(100);not null;"`
	Price      float64   `gorm:"type:numeric(10,2);not null;"`
	Image      string    `gorm:"type:text"`
	GenreID    uuid.UUID `gorm:"type:uuid;not null;"`
	Genre      Genre
	Stock      *Stock
	CreatedAt  time.Time `gorm:"type:timestamp"`
	UpdatedAt  time.Time `gorm:"type:timestamp"`
}

// TableName func
func (b *Book) TableName() string {
	return "books"
}

// BeforeCreate hook - generates UUID before creating
func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID, err = uuid.NewRandom() // v4
	}
	return err
}

// Genre struct - Book category entity
type Genre struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;"`
	GenreName string    `gorm:"type:varchar(40);not null;"`
}

// TableName func
func (g *Genre) TableName() string {
	return "genres"
}

// BeforeCreate hook - generates UUID before creating
func (g *Genre) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID, err = uuid.NewRandom()
	}
	return err
}

// Stock struct - Per-book stock level. A book without a stock row is treated
// as quantity 0 when listed.
type Stock struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;"`
	BookID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity int       `gorm:"not null;default:0"`
}

// TableName func
func (s *Stock) TableName() string {
	return "stocks"
}

// BeforeCreate hook - generates UUID before creating
func (s *Stock) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID, err = uuid.NewRandom()
	}
	return err
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}
	err := db.AutoMigrate(
		&Genre{},
		&Book{},
		&Stock{},
		&OrderStatus{},
		&Order{},
		&OrderDetail{},
		&ShoppingCart{},
		&CartDetail{},
		&Feedback{},
	)
	if err != nil {
		logrus.Errorln(err)
		panic(err)
	}
}
