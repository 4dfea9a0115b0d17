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

func ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)
	q := r.URL.Query()

	query := database.DB.Model(&models.User{})
	if role := q.Get("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := q.Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := q.Get("search"); search != "" {
		query = query.Where("name LIKE ? OR username LIKE ? OR email LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var users []models.User
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).
		Find(&users).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, users, utils.BuildPagination(page, limit, total), "Users retrieved")
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid user id"))
		return
	}
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}
	utils.WriteSuccess(w, user, "User retrieved")
}

type userRoleRequest struct {
	Role string `json:"role"`
}

func UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid user id"))
		return
	}

	var req userRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if err := utils.ValidateEnum(req.Role, []string{"user", "reseller", "admin"}, "role"); err != nil {
		utils.WriteError(w, err)
		return
	}

	actorID, _ := utils.GetUserID(r)
	if uint(id) == actorID {
		utils.WriteError(w, apperr.BadRequest("Cannot change your own role"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	if err := database.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	user.Role = req.Role

	utils.WriteSuccess(w, user, "User role updated")
}

type userStatusRequest struct {
	Status string `json:"status"`
}

func UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid user id"))
		return
	}

	var req userStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if err := utils.ValidateEnum(req.Status, []string{"active", "inactive", "banned"}, "status"); err != nil {
		utils.WriteError(w, err)
		return
	}

	actorID, _ := utils.GetUserID(r)
	if uint(id) == actorID {
		utils.WriteError(w, apperr.BadRequest("Cannot change your own status"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	if err := database.DB.Model(&user).Update("status", req.Status).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	user.Status = req.Status

	utils.WriteSuccess(w, user, "User status updated")
}

type userBalanceRequest struct {
	Balance float64 `json:"balance"`
}

func UpdateUserBalance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid user id"))
		return
	}

	var req userBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if req.Balance < 0 {
		utils.WriteError(w, apperr.BadRequest("Balance must not be negative"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	if err := database.DB.Model(&user).Update("balance", req.Balance).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	user.Balance = req.Balance

	utils.WriteSuccess(w, user, "User balance updated")
}

// DeleteUser removes a user and their cart and notifications. Order items
// stay for bookkeeping.
func DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid user id"))
		return
	}

	actorID, _ := utils.GetUserID(r)
	if uint(id) == actorID {
		utils.WriteError(w, apperr.BadRequest("Cannot delete your own account"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "User deleted")
}
