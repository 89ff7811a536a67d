package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products under a unique, non-blank name.
// Categories are created explicitly or implicitly when a product references an
// unknown category name; they are never renamed.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is a catalog entry. Every product references an existing category.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImgURL      string          `json:"imgUrl,omitempty"`
	Category    Category        `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
