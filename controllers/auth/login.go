package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/database"
	"digistore/middleware"
	"digistore/models"
	"digistore/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Email = strings.ToLower(utils.SanitizeInput(req.Email))
	if err := utils.RequireFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}); err != nil {
		utils.WriteError(w, err)
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password so emails cannot be enumerated.
			utils.WriteError(w, apperr.Unauthorized("Invalid email or password"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	if locked, ttl := middleware.IsAccountLocked(user.ID); locked {
		utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{
			Success: false,
			Message: fmt.Sprintf("Account temporarily locked, try again in %d seconds", int(ttl.Seconds())+1),
		})
		return
	}

	if !user.ValidatePassword(req.Password) {
		middleware.RecordFailedLogin(user.ID)
		utils.WriteError(w, apperr.Unauthorized("Invalid email or password"))
		return
	}

	if user.Status != "active" {
		utils.WriteError(w, apperr.Forbidden("Account is not active"))
		return
	}

	middleware.ResetFailedLogin(user.ID)

	token, err := utils.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	refresh, err := utils.GenerateRefreshToken(database.DB, user.ID)
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, map[string]interface{}{
		"token":         token,
		"refresh_token": refresh,
		"user":          user,
	}, "Login successful")
}
