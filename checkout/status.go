package checkout

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"digistore/apperr"
	"digistore/models"
)

// RoleAdmin matches models.User.Role for administrators.
const RoleAdmin = "admin"

// Forward progression ranks. Cancelled sits outside the chain.
var statusRank = map[string]int{
	models.TxPending:   0,
	models.TxPaid:      1,
	models.TxProcessed: 2,
	models.TxCompleted: 3,
}

// ValidStatus reports whether s is a known transaction status.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok || s == models.TxCancelled
}

// CanTransition decides whether an admin may move a transaction from current
// to requested. Same-state writes are idempotent no-ops and always allowed;
// completed and cancelled are terminal; the chain only moves forward.
// Non-admin actors never reach this: their single permitted move
// (cancel-while-pending-and-owner) is checked in SetStatus.
func CanTransition(current, requested string) error {
	if current == requested {
		return nil
	}
	if requested == models.TxCancelled {
		if current == models.TxCompleted {
			return apperr.BadRequest("Cannot cancel completed transaction")
		}
		return nil
	}
	if current == models.TxCancelled || current == models.TxCompleted {
		return apperr.BadRequest(fmt.Sprintf("Cannot change status of a %s transaction", current))
	}
	if statusRank[requested] < statusRank[current] {
		return apperr.BadRequest(fmt.Sprintf("Cannot move transaction from %s back to %s", current, requested))
	}
	return nil
}

// SetStatus applies a status change with its side effects in one database
// transaction. The transition into completed increments each owning
// product's sold counter by the item quantity exactly once; repeating the
// call is a no-op. Every accepted write stamps activity_at.
func SetStatus(db *gorm.DB, id uint, newStatus, actorRole string, actorUserID uint) error {
	if !ValidStatus(newStatus) {
		return apperr.BadRequest(fmt.Sprintf("Invalid status. Allowed values: %s, %s, %s, %s, %s",
			models.TxPending, models.TxPaid, models.TxProcessed, models.TxCompleted, models.TxCancelled))
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var trx models.Transaction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&trx, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Transaction not found")
			}
			return err
		}

		// Updates below assigns the new values onto trx, so every decision
		// about the transition has to read the status captured here.
		oldStatus := trx.Status

		if actorRole != RoleAdmin {
			var owned int64
			if err := tx.Model(&models.OrderItem{}).
				Where("transaction_id = ? AND user_id = ?", id, actorUserID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned == 0 {
				return apperr.Forbidden("Access denied to this transaction")
			}
			if newStatus != models.TxCancelled {
				return apperr.Forbidden("Only administrators can change transaction status")
			}
			if oldStatus != models.TxPending {
				return apperr.Forbidden("Only pending transactions can be cancelled by users")
			}
		}

		if err := CanTransition(oldStatus, newStatus); err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&trx).Updates(map[string]interface{}{
			"status":      newStatus,
			"activity_at": now,
		}).Error; err != nil {
			return err
		}

		if soldIncrementDue(oldStatus, newStatus) {
			if err := incrementSoldCounters(tx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// soldIncrementDue reports whether moving oldStatus to newStatus is the
// transition into completed that owes the sold-counter increment. Repeated
// completions fail this check and leave the counters alone.
func soldIncrementDue(oldStatus, newStatus string) bool {
	return newStatus == models.TxCompleted && oldStatus != models.TxCompleted
}

type soldRow struct {
	ProductID uint
	Quantity  int
}

// incrementSoldCounters adds each order item's quantity to its owning
// product's sold counter. Runs as relative SQL increments so concurrent
// completions of different transactions never lose updates.
func incrementSoldCounters(tx *gorm.DB, transactionID uint) error {
	var rows []soldRow
	err := tx.Table("order_items").
		Select("pv.product_id AS product_id, order_items.quantity").
		Joins("LEFT JOIN product_variants pv ON order_items.variant_id = pv.id").
		Where("order_items.transaction_id = ?", transactionID).
		Scan(&rows).Error
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := tx.Model(&models.Product{}).
			Where("id = ?", row.ProductID).
			UpdateColumn("sold", gorm.Expr("sold + ?", row.Quantity)).Error; err != nil {
			return err
		}
	}
	return nil
}
