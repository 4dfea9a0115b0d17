package admins

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

func ListNotifications(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)

	query := database.DB.Model(&models.Notification{})
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

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

type notificationRequest struct {
	UserID  uint   `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateNotification sends a notification to one user.
func CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Title = utils.SanitizeInput(req.Title)
	if err := utils.RequireFields(map[string]string{
		"title":   req.Title,
		"content": req.Content,
	}); err != nil {
		utils.WriteError(w, err)
		return
	}
	if req.UserID == 0 {
		utils.WriteError(w, apperr.Validation("Validation failed", map[string]string{
			"user_id": "user_id is required",
		}))
		return
	}

	var user models.User
	if err := database.DB.First(&user, req.UserID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	notification := models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, notification, "Notification created")
}

type broadcastRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BroadcastNotification fans out one row per active user in a single
// transaction.
func BroadcastNotification(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Title = utils.SanitizeInput(req.Title)
	if err := utils.RequireFields(map[string]string{
		"title":   req.Title,
		"content": req.Content,
	}); err != nil {
		utils.WriteError(w, err)
		return
	}

	var created int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var userIDs []uint
		if err := tx.Model(&models.User{}).Where("status = ?", "active").
			Pluck("id", &userIDs).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}
		notifications := make([]models.Notification, 0, len(userIDs))
		for _, id := range userIDs {
			notifications = append(notifications, models.Notification{
				UserID:  id,
				Title:   req.Title,
				Content: req.Content,
			})
		}
		created = len(notifications)
		return tx.CreateInBatches(&notifications, 500).Error
	})
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, map[string]interface{}{"created": created}, "Broadcast sent")
}

func DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid notification id"))
		return
	}

	res := database.DB.Delete(&models.Notification{}, id)
	if res.Error != nil {
		utils.WriteError(w, apperr.Internal(res.Error))
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteError(w, apperr.NotFound("Notification not found"))
		return
	}

	utils.WriteSuccess(w, nil, "Notification deleted")
}
