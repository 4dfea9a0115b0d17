package admins

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"digistore/apperr"
	"digistore/checkout"
	"digistore/database"
	"digistore/metrics"
	"digistore/models"
	"digistore/utils"
)

var transactionSortColumns = map[string]string{
	"created_at": "created_at",
	"invoice":    "invoice",
	"status":     "status",
	"amount":     "amount",
}

// ListTransactions is the admin view over all transactions with filtering,
// whitelisted sorting and pagination.
func ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)
	q := r.URL.Query()

	query := database.DB.Model(&models.Transaction{})
	if status := q.Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if invoice := q.Get("invoice"); invoice != "" {
		query = query.Where("invoice LIKE ?", "%"+invoice+"%")
	}
	if buyer := q.Get("buyer"); buyer != "" {
		query = query.Where("buyer LIKE ?", "%"+buyer+"%")
	}

	sortCol := "created_at"
	if col, ok := transactionSortColumns[q.Get("sort")]; ok {
		sortCol = col
	}
	order := "desc"
	if q.Get("order") == "asc" {
		order = "asc"
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var txs []models.Transaction
	if err := query.Preload("Items").Order(sortCol + " " + order).
		Limit(limit).Offset(offset).Find(&txs).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, txs, utils.BuildPagination(page, limit, total), "Transactions retrieved")
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateTransactionStatus drives the admin side of the lifecycle. Moving a
// transaction into completed increments the product sold counters.
func UpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid transaction id"))
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if !checkout.ValidStatus(req.Status) {
		utils.WriteError(w, apperr.BadRequest("Invalid status"))
		return
	}

	userID, _ := utils.GetUserID(r)
	if err := checkout.SetStatus(database.DB, uint(id), req.Status, checkout.RoleAdmin, userID); err != nil {
		utils.WriteError(w, err)
		return
	}

	metrics.StatusTransitions.WithLabelValues(req.Status).Inc()
	utils.WriteSuccess(w, map[string]interface{}{"status": req.Status}, "Transaction status updated")
}
