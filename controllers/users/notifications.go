package users

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

// MyNotifications lists the caller's notifications plus global broadcasts
// (user_id = 0).
func MyNotifications(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)
	page, limit, offset := utils.ParsePagination(r)

	query := database.DB.Model(&models.Notification{}).
		Where("user_id = ? OR user_id = 0", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var notifications []models.Notification
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).
		Find(&notifications).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, notifications, utils.BuildPagination(page, limit, total), "Notifications retrieved")
}

func GetNotification(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid notification id"))
		return
	}

	var notification models.Notification
	if err := database.DB.Where("id = ? AND (user_id = ? OR user_id = 0)", id, userID).
		First(&notification).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Notification not found"))
		return
	}

	utils.WriteSuccess(w, notification, "Notification retrieved")
}

// DeleteMyNotifications removes every notification addressed to the caller.
// Broadcasts stay.
func DeleteMyNotifications(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	if err := database.DB.Where("user_id = ?", userID).
		Delete(&models.Notification{}).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "Notifications cleared")
}
