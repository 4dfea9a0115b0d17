package admins

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

func ListOrderItems(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)
	q := r.URL.Query()

	query := database.DB.Model(&models.OrderItem{})
	if status := q.Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if txID := q.Get("transaction_id"); txID != "" {
		query = query.Where("transaction_id = ?", txID)
	}
	if userID := q.Get("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var items []models.OrderItem
	if err := query.Preload("Variant").Order("created_at desc").
		Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, items, utils.BuildPagination(page, limit, total), "Order items retrieved")
}

func GetOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid order item id"))
		return
	}

	var item models.OrderItem
	if err := database.DB.Preload("Variant").First(&item, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Order item not found"))
		return
	}

	utils.WriteSuccess(w, item, "Order item retrieved")
}

type orderItemStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

// UpdateOrderItemStatus moves a fulfillment line between pending, sent and
// received.
func UpdateOrderItemStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid order item id"))
		return
	}

	var req orderItemStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if err := utils.ValidateEnum(req.Status,
		[]string{models.ItemPending, models.ItemSent, models.ItemReceived}, "status"); err != nil {
		utils.WriteError(w, err)
		return
	}

	var item models.OrderItem
	if err := database.DB.First(&item, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Order item not found"))
		return
	}

	item.Status = req.Status
	if req.Note != nil {
		item.Note = utils.SanitizePtr(req.Note)
	}
	if err := database.DB.Save(&item).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, item, "Order item updated")
}
