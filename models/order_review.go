package models

import "time"

// OrderReview holds one review per transaction; ownership is resolved
// through the transaction's order items.
type OrderReview struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TransactionID uint      `gorm:"column:transaction_id;uniqueIndex;not null" json:"transaction_id"`
	Rating        string    `gorm:"type:enum('1','2','3','4','5');not null" json:"rating"`
	Review        *string   `gorm:"type:text" json:"review,omitempty"`
	Status        string    `gorm:"type:enum('y','n');default:'y'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (OrderReview) TableName() string {
	return "order_reviews"
}
