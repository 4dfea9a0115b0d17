package auth

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshHandler exchanges a live refresh token for a new access token and a
// rotated refresh token. The presented token is revoked in the same database
// transaction that stores its replacement.
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if err := utils.RequireFields(map[string]string{"refresh_token": req.RefreshToken}); err != nil {
		utils.WriteError(w, err)
		return
	}

	rt, err := utils.ValidateRefreshToken(database.DB, req.RefreshToken)
	if err != nil {
		utils.WriteError(w, apperr.Unauthorized("Invalid refresh token"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, rt.UserID).Error; err != nil {
		utils.WriteError(w, apperr.Unauthorized("Invalid refresh token"))
		return
	}
	if user.Status != "active" {
		utils.WriteError(w, apperr.Forbidden("Account is not active"))
		return
	}

	var rotated string
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RefreshToken{}).
			Where("id = ?", rt.ID).
			Update("revoked", true).Error; err != nil {
			return err
		}
		token, err := utils.GenerateRefreshToken(tx, rt.UserID)
		if err != nil {
			return err
		}
		rotated = token
		return nil
	})
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	access, err := utils.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, map[string]interface{}{
		"token":         access,
		"refresh_token": rotated,
	}, "Token refreshed")
}
