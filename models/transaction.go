package models

import "time"

// Transaction status values. See checkout.SetStatus for the allowed
// transitions.
const (
	TxPending   = "pending"
	TxPaid      = "paid"
	TxProcessed = "processed"
	TxCompleted = "completed"
	TxCancelled = "cancelled"
)

// Transaction is an immutable order header; only Status and ActivityAt
// change after checkout. Price is the pre-coupon total, Amount the final
// charge.
type Transaction struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Invoice    string     `gorm:"size:50;uniqueIndex;not null" json:"invoice"`
	Buyer      string     `gorm:"size:100;not null" json:"buyer"`
	Contact    string     `gorm:"size:100;not null" json:"contact"`
	Quantity   int        `gorm:"not null" json:"quantity"`
	Price      float64    `gorm:"type:decimal(15,2);not null" json:"price"`
	Fees       float64    `gorm:"type:decimal(15,2);not null;default:0" json:"fees"`
	Amount     float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	CouponCode *string    `gorm:"column:coupon_code;size:100" json:"coupon_code,omitempty"`
	Note       *string    `gorm:"type:text" json:"note,omitempty"`
	Status     string     `gorm:"type:enum('pending','paid','processed','completed','cancelled');default:'pending'" json:"status"`
	IPAddress  *string    `gorm:"column:ip_address;size:45" json:"ip_address,omitempty"`
	ActivityAt *time.Time `gorm:"column:activity_at" json:"activity_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations
	Items []OrderItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}
