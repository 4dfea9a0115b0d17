package auth

import (
	"net/http"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

func MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteError(w, apperr.Unauthorized("Unauthorized"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "User not found"))
		return
	}

	utils.WriteSuccess(w, user, "OK")
}
