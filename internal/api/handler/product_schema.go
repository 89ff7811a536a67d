package handler

import "github.com/shopspring/decimal"

// productRequest is the payload for POST /products and PUT /products/:id.
// Price is validated by hand in the handler: the validator has no numeric
// comparisons for decimal.Decimal.
type productRequest struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"       validate:"gte=0"`
	Category    string          `json:"category"    validate:"required"`
	ImgURL      string          `json:"imgUrl"`
}

// patchProductRequest is the payload for PATCH /products/:id. Every field is
// optional; nil means "leave unchanged". Unknown JSON keys simply do not bind.
type patchProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
	ImgURL      *string          `json:"imgUrl"`
}
