package models

import "time"

// Coupon types.
const (
	CouponPercent = "percent"
	CouponAmount  = "amount"
)

// Coupon. The code customers type lives in Description; Used counts
// redemptions and must stay <= Limit when Limit is set.
type Coupon struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Type          string     `gorm:"type:enum('percent','amount');not null" json:"type"`
	Value         float64    `gorm:"type:decimal(15,2);not null" json:"value"`
	MaxValue      *float64   `gorm:"column:max_value;type:decimal(15,2)" json:"max_value,omitempty"`
	MinPurchase   *float64   `gorm:"column:min_purchase;type:decimal(15,2)" json:"min_purchase,omitempty"`
	Limit         *uint      `gorm:"column:limit" json:"limit,omitempty"`
	Used          uint       `gorm:"default:0" json:"used"`
	StartsAt      *time.Time `gorm:"column:starts_at" json:"starts_at,omitempty"`
	ExpiresAt     *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
	LoginRequired bool       `gorm:"column:login_required;default:false" json:"login_required"`
	Status        bool       `gorm:"default:true" json:"status"`
	Description   string     `gorm:"size:100;uniqueIndex;not null" json:"description"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Coupon) TableName() string {
	return "coupons"
}
