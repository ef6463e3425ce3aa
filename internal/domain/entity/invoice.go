package entity

import "github.com/shopspring/decimal"

type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
)

type Invoice struct {
	Base      `bson:",inline"`
	PatientID string          `gorm:"type:uuid;not null;index" bson:"patient_id"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" bson:"total"`
	Status    InvoiceStatus   `gorm:"type:varchar(16);not null;index" bson:"status"`
}

func (Invoice) TableName() string {
	return "invoices"
}
