// Package checkout implements the cart-to-transaction pipeline: aggregating
// checked cart lines, evaluating coupons, creating the transaction with its
// order items atomically, and driving the transaction status lifecycle.
package checkout

import (
	"fmt"

	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/models"
)

// ErrEmptyCart is returned when a checkout finds no checked cart lines.
var ErrEmptyCart = apperr.BadRequest("No items in cart selected for checkout")

// Line is one checked cart row joined with live variant pricing. UnitPrice
// already includes the variant's own discount but never the coupon discount,
// which applies at transaction level.
type Line struct {
	CartID    uint
	ProductID uint
	VariantID uint
	Quantity  int
	UnitPrice float64
	Note      *string
}

// EffectiveUnitPrice applies a variant-level discount to its base price.
// The result is intentionally not clamped at zero.
func EffectiveUnitPrice(price, discount float64, kind string) float64 {
	if discount <= 0 {
		return price
	}
	if kind == models.DiscountPercent {
		return price - price*discount/100
	}
	return price - discount
}

type checkoutRow struct {
	CartID       uint
	ProductID    uint
	VariantID    uint
	Quantity     int
	Note         *string
	Price        float64
	Discount     float64
	DiscountKind string
	MinOrder     int
	Status       string
}

// checkoutSetQuery builds the checked-lines select. Locking clauses applied
// by the caller (checkout locks the rows FOR UPDATE) carry through.
func checkoutSetQuery(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Table("carts").
		Select(`carts.id AS cart_id, carts.product_id, carts.variant_id, carts.quantity, carts.note,
			pv.price, pv.discount, pv.discount_percent AS discount_kind, pv.min_order, pv.status`).
		Joins("LEFT JOIN product_variants pv ON carts.variant_id = pv.id").
		Where("carts.user_id = ? AND carts.checked = ?", userID, true)
}

// LoadCheckoutSet returns the user's checked cart lines priced against the
// live variant rows. An empty cart is not an error here; the caller decides.
// Nothing is mutated.
func LoadCheckoutSet(tx *gorm.DB, userID uint) ([]Line, error) {
	var rows []checkoutRow
	if err := checkoutSetQuery(tx, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		if row.Status != models.VariantOn {
			return nil, apperr.Unavailable(fmt.Sprintf("Product variant %d is not available", row.VariantID))
		}
		if row.Quantity < row.MinOrder {
			return nil, apperr.BadRequest(fmt.Sprintf("Minimum order for variant %d is %d", row.VariantID, row.MinOrder))
		}
		lines = append(lines, Line{
			CartID:    row.CartID,
			ProductID: row.ProductID,
			VariantID: row.VariantID,
			Quantity:  row.Quantity,
			UnitPrice: EffectiveUnitPrice(row.Price, row.Discount, row.DiscountKind),
			Note:      row.Note,
		})
	}
	return lines, nil
}
