package users

import (
	"net/http"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

// MyOrderItems lists the caller's order items with their variant snapshot.
func MyOrderItems(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)
	page, limit, offset := utils.ParsePagination(r)

	query := database.DB.Model(&models.OrderItem{}).Where("user_id = ?", userID)
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
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
