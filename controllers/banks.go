package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

func ListBanks(w http.ResponseWriter, r *http.Request) {
	var banks []models.Bank
	if err := database.DB.Where("status = ?", "active").
		Order("type asc").Find(&banks).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	utils.WriteSuccess(w, banks, "Banks retrieved")
}

func GetBank(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid bank id"))
		return
	}
	var bank models.Bank
	if err := database.DB.First(&bank, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Bank not found"))
		return
	}
	utils.WriteSuccess(w, bank, "Bank retrieved")
}
