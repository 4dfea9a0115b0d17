package checkout

import (
	"testing"

	"digistore/models"
)

func fptr(v float64) *float64 { return &v }

func TestCouponDiscount_PercentClampedToMaxValue(t *testing.T) {
	c := &models.Coupon{Type: models.CouponPercent, Value: 20, MaxValue: fptr(20)}
	got := CouponDiscount(c, 180)
	if got != 20 {
		t.Fatalf("expected clamp to 20, got %v", got)
	}
}

func TestCouponDiscount_PercentBelowCap(t *testing.T) {
	c := &models.Coupon{Type: models.CouponPercent, Value: 10, MaxValue: fptr(100)}
	got := CouponDiscount(c, 180)
	if got != 18 {
		t.Fatalf("expected 18, got %v", got)
	}
}

func TestCouponDiscount_PercentWithoutCap(t *testing.T) {
	c := &models.Coupon{Type: models.CouponPercent, Value: 50}
	got := CouponDiscount(c, 300)
	if got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}

func TestCouponDiscount_FlatAmount(t *testing.T) {
	c := &models.Coupon{Type: models.CouponAmount, Value: 25}
	got := CouponDiscount(c, 180)
	if got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestCouponDiscount_FlatAmountMayExceedTotal(t *testing.T) {
	// A flat coupon is not clamped against the total; the final amount can
	// go negative and callers keep that value.
	c := &models.Coupon{Type: models.CouponAmount, Value: 500}
	total := 180.0
	discount := CouponDiscount(c, total)
	if discount != 500 {
		t.Fatalf("expected 500, got %v", discount)
	}
	if final := total - discount; final != -320 {
		t.Fatalf("expected final -320, got %v", final)
	}
}
