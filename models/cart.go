package models

import "time"

// Cart holds one line per (user, product, variant); add-to-cart merges
// quantities instead of inserting duplicates.
type Cart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_cart_line" json:"user_id"`
	ProductID uint      `gorm:"column:product_id;not null;uniqueIndex:idx_cart_line" json:"product_id"`
	VariantID uint      `gorm:"column:variant_id;not null;uniqueIndex:idx_cart_line" json:"variant_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Checked   bool      `gorm:"default:true" json:"checked"`
	Note      *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cart) TableName() string {
	return "carts"
}
