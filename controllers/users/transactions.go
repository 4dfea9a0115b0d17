package users

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"digistore/apperr"
	"digistore/checkout"
	"digistore/database"
	"digistore/metrics"
	"digistore/middleware"
	"digistore/models"
	"digistore/utils"
)

type checkoutRequest struct {
	Buyer      string  `json:"buyer"`
	Contact    string  `json:"contact"`
	CouponCode *string `json:"coupon_code"`
	Note       *string `json:"note"`
}

// CheckoutHandler converts the caller's checked cart into a transaction.
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Buyer = utils.SanitizeInput(req.Buyer)
	req.Contact = utils.SanitizeInput(req.Contact)
	if err := utils.RequireFields(map[string]string{
		"buyer":   req.Buyer,
		"contact": req.Contact,
	}); err != nil {
		utils.WriteError(w, err)
		return
	}

	summary, err := checkout.Run(database.DB, userID, checkout.Input{
		Buyer:      req.Buyer,
		Contact:    req.Contact,
		CouponCode: utils.SanitizePtr(req.CouponCode),
		Note:       utils.SanitizePtr(req.Note),
		IPAddress:  middleware.ClientIP(r),
	})
	if err != nil {
		metrics.CheckoutFailures.WithLabelValues(strconv.Itoa(apperr.StatusOf(err))).Inc()
		utils.WriteError(w, err)
		return
	}

	metrics.CheckoutsTotal.Inc()
	utils.WriteCreated(w, summary, "Checkout successful")
}

// MyTransactions lists the caller's transactions newest first. Ownership is
// resolved through order items since the header has no user column.
func MyTransactions(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)
	page, limit, offset := utils.ParsePagination(r)

	base := database.DB.Model(&models.Transaction{}).
		Where("id IN (?)", database.DB.Model(&models.OrderItem{}).
			Select("DISTINCT transaction_id").Where("user_id = ?", userID))

	if status := r.URL.Query().Get("status"); status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var txs []models.Transaction
	if err := base.Preload("Items").Preload("Items.Variant").
		Order("created_at desc").Limit(limit).Offset(offset).
		Find(&txs).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, txs, utils.BuildPagination(page, limit, total), "Transactions retrieved")
}

func ownsTransaction(userID, transactionID uint) (bool, error) {
	var owned int64
	err := database.DB.Model(&models.OrderItem{}).
		Where("transaction_id = ? AND user_id = ?", transactionID, userID).
		Count(&owned).Error
	return owned > 0, err
}

// GetTransaction returns one transaction; admins see any, users only their own.
func GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid transaction id"))
		return
	}

	var trx models.Transaction
	if err := database.DB.Preload("Items").Preload("Items.Variant").
		First(&trx, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Transaction not found"))
		return
	}

	if utils.GetUserRole(r) != checkout.RoleAdmin {
		userID, _ := utils.GetUserID(r)
		owned, err := ownsTransaction(userID, trx.ID)
		if err != nil {
			utils.WriteError(w, apperr.Internal(err))
			return
		}
		if !owned {
			utils.WriteError(w, apperr.Forbidden("Access denied to this transaction"))
			return
		}
	}

	utils.WriteSuccess(w, trx, "Transaction retrieved")
}

// GetTransactionByInvoice mirrors GetTransaction for invoice lookups.
func GetTransactionByInvoice(w http.ResponseWriter, r *http.Request) {
	invoice := mux.Vars(r)["invoice"]

	var trx models.Transaction
	if err := database.DB.Preload("Items").Preload("Items.Variant").
		Where("invoice = ?", invoice).First(&trx).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Transaction not found"))
		return
	}

	if utils.GetUserRole(r) != checkout.RoleAdmin {
		userID, _ := utils.GetUserID(r)
		owned, err := ownsTransaction(userID, trx.ID)
		if err != nil {
			utils.WriteError(w, apperr.Internal(err))
			return
		}
		if !owned {
			utils.WriteError(w, apperr.Forbidden("Access denied to this transaction"))
			return
		}
	}

	utils.WriteSuccess(w, trx, "Transaction retrieved")
}

// CancelTransaction lets the owner cancel while pending; admins can cancel
// any non-completed transaction.
func CancelTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid transaction id"))
		return
	}

	userID, _ := utils.GetUserID(r)
	role := utils.GetUserRole(r)

	if err := checkout.SetStatus(database.DB, uint(id), models.TxCancelled, role, userID); err != nil {
		utils.WriteError(w, err)
		return
	}

	metrics.StatusTransitions.WithLabelValues(models.TxCancelled).Inc()
	utils.WriteSuccess(w, nil, "Transaction cancelled")
}
