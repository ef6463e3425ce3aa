package entity

import "github.com/shopspring/decimal"

type Medicine struct {
	Base  `bson:",inline"`
	Name  string          `gorm:"type:varchar(255);not null" bson:"name"`
	Stock int             `gorm:"default:0" bson:"stock"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" bson:"price"`
}

func (Medicine) TableName() string {
	return "medicines"
}
