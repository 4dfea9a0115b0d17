package controllers

import (
	"net/http"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

// GetSettings returns the single storefront settings row.
func GetSettings(w http.ResponseWriter, r *http.Request) {
	var setting models.Setting
	if err := database.DB.Take(&setting).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Settings not found"))
		return
	}
	utils.WriteSuccess(w, setting, "Settings retrieved")
}
