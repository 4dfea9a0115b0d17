package models

import "time"

// Data stock status values.
const (
	StockActive  = "active"
	StockSold    = "sold"
	StockInvalid = "invalid"
	StockLocked  = "locked"
)

// DataStock is one fulfillment credential for a variant. Linking a stock row
// to a transaction is an administrative step; checkout never touches it.
type DataStock struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	VariantID      uint       `gorm:"column:variant_id;not null;index" json:"variant_id"`
	TransactionID  *uint      `gorm:"column:transaction_id;index" json:"transaction_id,omitempty"`
	Status         string     `gorm:"type:enum('active','sold','invalid','locked');default:'active'" json:"status"`
	ExpiredLicense *string    `gorm:"column:expired_license;type:text" json:"expired_license,omitempty"`
	Note           *string    `gorm:"type:text" json:"note,omitempty"`
	ExpiredAt      *time.Time `gorm:"column:expired_at" json:"expired_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

func (DataStock) TableName() string {
	return "data_stocks"
}
