package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

type RegisterRequest struct {
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Name = utils.SanitizeInput(req.Name)
	req.Username = strings.ToLower(utils.SanitizeInput(req.Username))
	req.Email = strings.ToLower(utils.SanitizeInput(req.Email))
	req.Phone = utils.SanitizePtr(req.Phone)

	if err := utils.RequireFields(map[string]string{
		"name":     req.Name,
		"username": req.Username,
		"email":    req.Email,
		"password": req.Password,
	}); err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		utils.WriteError(w, err)
		return
	}
	if len(req.Password) < 6 {
		utils.WriteError(w, apperr.BadRequest("Password must be at least 6 characters"))
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}
	if err := utils.ValidateEnum(role, []string{"user", "reseller", "admin"}, "role"); err != nil {
		utils.WriteError(w, err)
		return
	}

	db := database.DB

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ? OR username = ?", req.Email, req.Username).
		Count(&count).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	if count > 0 {
		utils.WriteError(w, apperr.Conflict("Email or username already registered"))
		return
	}

	user := models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Phone:    req.Phone,
		Status:   "active",
	}
	if err := user.HashPassword(); err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	if err := db.Create(&user).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	refresh, err := utils.GenerateRefreshToken(db, user.ID)
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, map[string]interface{}{
		"token":         token,
		"refresh_token": refresh,
		"user":          user,
	}, "Registration successful")
}
