package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type MedicineRequest struct {
	Name  string          `json:"name" validate:"required"`
	Stock int             `json:"stock" validate:"gte=0"`
	Price decimal.Decimal `json:"price" validate:"nonnegative"`
}

type MedicineResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}
