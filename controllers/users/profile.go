package users

import (
	"encoding/json"
	"net/http"
	"strings"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

func GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	utils.WriteSuccess(w, user, "Profile retrieved")
}

type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	if req.Name != nil {
		name := utils.SanitizeInput(*req.Name)
		if name == "" {
			utils.WriteError(w, apperr.BadRequest("Name must not be empty"))
			return
		}
		user.Name = name
	}
	if req.Email != nil {
		email := strings.ToLower(utils.SanitizeInput(*req.Email))
		if err := utils.ValidateEmail(email); err != nil {
			utils.WriteError(w, err)
			return
		}
		user.Email = email
	}
	if req.Phone != nil {
		user.Phone = utils.SanitizePtr(req.Phone)
	}

	if err := database.DB.Save(&user).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("Email already in use"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, user, "Profile updated")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if err := utils.RequireFields(map[string]string{
		"current_password": req.CurrentPassword,
		"new_password":     req.NewPassword,
	}); err != nil {
		utils.WriteError(w, err)
		return
	}
	if len(req.NewPassword) < 6 {
		utils.WriteError(w, apperr.BadRequest("Password must be at least 6 characters"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	if !user.ValidatePassword(req.CurrentPassword) {
		utils.WriteError(w, apperr.Forbidden("Current password is incorrect"))
		return
	}

	user.Password = req.NewPassword
	if err := user.HashPassword(); err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	if err := database.DB.Model(&user).Update("password", user.Password).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "Password changed")
}
