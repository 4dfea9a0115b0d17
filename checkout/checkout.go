package checkout

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"digistore/apperr"
	"digistore/models"
	"digistore/utils"
)

// Input carries the buyer-supplied checkout fields.
type Input struct {
	Buyer      string
	Contact    string
	CouponCode *string
	Note       *string
	IPAddress  string
}

// Summary is what a successful checkout reports back.
type Summary struct {
	TransactionID uint    `json:"transaction_id"`
	Invoice       string  `json:"invoice"`
	TotalQuantity int     `json:"total_quantity"`
	TotalPrice    float64 `json:"total_price"`
	Discount      float64 `json:"discount"`
	FinalAmount   float64 `json:"final_amount"`
}

const invoiceRetries = 3

// Run converts the user's checked cart lines into a pending transaction with
// one order item per line, redeems the coupon if one applies, and clears the
// checked lines — all inside a single database transaction. Any failure
// rolls the whole operation back.
//
// An unknown or expired coupon code does not abort checkout; it applies as
// zero discount. Limit-reached and minimum-purchase failures still abort,
// and the strict behavior lives in the validate endpoint.
func Run(db *gorm.DB, userID uint, in Input) (*Summary, error) {
	var out *Summary

	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock the checked cart rows: two concurrent checkouts by the same
		// user must not both convert the same lines into order items.
		lines, err := LoadCheckoutSet(tx.Clauses(clause.Locking{Strength: "UPDATE"}), userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var totalQuantity int
		var totalPrice float64
		for _, ln := range lines {
			totalQuantity += ln.Quantity
			totalPrice += ln.UnitPrice * float64(ln.Quantity)
		}
		// Totals land in decimal(15,2) columns.
		totalPrice = utils.RoundMoney(totalPrice)

		var discount float64
		if in.CouponCode != nil && *in.CouponCode != "" {
			// Lock the coupon row for the whole check-and-increment so two
			// concurrent checkouts cannot both pass a limit of one.
			locked := tx.Clauses(clause.Locking{Strength: "UPDATE"})
			res, err := EvaluateCoupon(locked, *in.CouponCode, totalPrice, time.Now())
			switch {
			case errors.Is(err, ErrCouponNotFound):
				// stale or mistyped code: checkout proceeds without discount
			case err != nil:
				return err
			default:
				discount = utils.RoundMoney(res.Discount)
				if err := tx.Model(&models.Coupon{}).
					Where("id = ?", res.Coupon.ID).
					UpdateColumn("used", gorm.Expr("used + ?", 1)).Error; err != nil {
					return err
				}
			}
		}

		// Not floored at zero: a flat coupon larger than the total produces a
		// negative amount, matching historical billing output.
		finalAmount := utils.RoundMoney(totalPrice - discount)

		var trx models.Transaction
		for attempt := 0; ; attempt++ {
			trx = models.Transaction{
				Invoice:    utils.GenerateInvoice(),
				Buyer:      in.Buyer,
				Contact:    in.Contact,
				Quantity:   totalQuantity,
				Price:      totalPrice,
				Amount:     finalAmount,
				CouponCode: in.CouponCode,
				Note:       in.Note,
				Status:     models.TxPending,
			}
			if in.IPAddress != "" {
				ip := in.IPAddress
				trx.IPAddress = &ip
			}
			err := tx.Create(&trx).Error
			if err == nil {
				break
			}
			if apperr.IsDuplicate(err) && attempt < invoiceRetries {
				continue
			}
			return err
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, ln := range lines {
			items = append(items, models.OrderItem{
				TransactionID: trx.ID,
				UserID:        userID,
				VariantID:     ln.VariantID,
				Quantity:      ln.Quantity,
				Price:         ln.UnitPrice,
				Status:        models.ItemPending,
				Note:          ln.Note,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		// Unchecked lines survive checkout.
		if err := tx.Where("user_id = ? AND checked = ?", userID, true).
			Delete(&models.Cart{}).Error; err != nil {
			return err
		}

		out = &Summary{
			TransactionID: trx.ID,
			Invoice:       trx.Invoice,
			TotalQuantity: totalQuantity,
			TotalPrice:    totalPrice,
			Discount:      discount,
			FinalAmount:   finalAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
