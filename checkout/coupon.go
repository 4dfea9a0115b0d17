package checkout

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/models"
)

// Absent, disabled and out-of-window codes all collapse into the same
// not-found outcome; callers cannot tell them apart.
var (
	ErrCouponNotFound     = apperr.NotFound("Coupon not found or expired")
	ErrCouponLimitReached = apperr.BadRequest("Coupon usage limit reached")
)

// CouponResult is a successful evaluation: the matched coupon and the
// discount it yields against the given total.
type CouponResult struct {
	Coupon   models.Coupon
	Discount float64
}

// CouponDiscount computes the discount a coupon grants on totalPrice.
// Percent coupons clamp to MaxValue when set; amount coupons are flat and
// may exceed the total.
func CouponDiscount(c *models.Coupon, totalPrice float64) float64 {
	if c.Type == models.CouponPercent {
		discount := totalPrice * c.Value / 100
		if c.MaxValue != nil && discount > *c.MaxValue {
			discount = *c.MaxValue
		}
		return discount
	}
	return c.Value
}

// EvaluateCoupon validates a code against status, the inclusive
// [starts_at, expires_at] window, the usage limit and the minimum purchase,
// and computes the discount. It never mutates the coupon; redemption
// bookkeeping belongs to the checkout transaction.
func EvaluateCoupon(tx *gorm.DB, code string, totalPrice float64, now time.Time) (*CouponResult, error) {
	var coupon models.Coupon
	err := tx.
		Where("description = ? AND status = ?", code, true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("expires_at IS NULL OR expires_at >= ?", now).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	if coupon.Limit != nil && coupon.Used >= *coupon.Limit {
		return nil, ErrCouponLimitReached
	}
	if coupon.MinPurchase != nil && totalPrice < *coupon.MinPurchase {
		return nil, apperr.BadRequest(fmt.Sprintf("Minimum purchase for this coupon is %g", *coupon.MinPurchase))
	}

	return &CouponResult{Coupon: coupon, Discount: CouponDiscount(&coupon, totalPrice)}, nil
}
