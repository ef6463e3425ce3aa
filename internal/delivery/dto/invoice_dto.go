package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceRequest struct {
	PatientID string          `json:"patient_id" validate:"required,uuid"`
	Total     decimal.Decimal `json:"total" validate:"nonnegative"`
	Status    string          `json:"status" validate:"omitempty,oneof=unpaid paid"`
}

type InvoiceResponse struct {
	ID        string          `json:"id"`
	PatientID string          `json:"patient_id"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
