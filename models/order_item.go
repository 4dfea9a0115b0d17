package models

import "time"

// Order item status values.
const (
	ItemPending  = "pending"
	ItemSent     = "sent"
	ItemReceived = "received"
)

// OrderItem snapshots the unit price at purchase time; later variant price
// changes never touch it. Rows are created only by checkout.
type OrderItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TransactionID uint      `gorm:"column:transaction_id;not null;index" json:"transaction_id"`
	UserID        uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	VariantID     uint      `gorm:"column:variant_id;not null;index" json:"variant_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Price         float64   `gorm:"type:decimal(15,2);not null" json:"price"`
	Status        string    `gorm:"type:enum('pending','sent','received');default:'pending'" json:"status"`
	Note          *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
