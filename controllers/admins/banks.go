package admins

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

type bankRequest struct {
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	NeedLogin   *bool    `json:"need_login"`
	FeesKind    string   `json:"fees_percent_amount"`
	Fees        *float64 `json:"fees"`
	MinPrice    *float64 `json:"min_price"`
	Minimum     *float64 `json:"minimum"`
	Image       *string  `json:"image"`
	Icon        *string  `json:"icon"`
	InvertIcon  *bool    `json:"invert_icon"`
	Description *string  `json:"description"`
}

func ListAllBanks(w http.ResponseWriter, r *http.Request) {
	var banks []models.Bank
	if err := database.DB.Order("type asc").Find(&banks).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	utils.WriteSuccess(w, banks, "Banks retrieved")
}

func CreateBank(w http.ResponseWriter, r *http.Request) {
	var req bankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Type = utils.SanitizeInput(req.Type)
	if err := utils.RequireFields(map[string]string{"type": req.Type}); err != nil {
		utils.WriteError(w, err)
		return
	}

	bank := models.Bank{
		Type:     req.Type,
		Status:   "active",
		FeesKind: "percent",
	}
	if err := applyBankFields(&bank, &req); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := database.DB.Create(&bank).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, bank, "Bank created")
}

func applyBankFields(bank *models.Bank, req *bankRequest) error {
	if req.Status != "" {
		if err := utils.ValidateEnum(req.Status, []string{"active", "inactive"}, "status"); err != nil {
			return err
		}
		bank.Status = req.Status
	}
	if req.FeesKind != "" {
		if err := utils.ValidateEnum(req.FeesKind, []string{"percent", "fixed"}, "fees kind"); err != nil {
			return err
		}
		bank.FeesKind = req.FeesKind
	}
	if req.Fees != nil {
		if *req.Fees < 0 {
			return apperr.BadRequest("Fees must not be negative")
		}
		bank.Fees = *req.Fees
	}
	if req.MinPrice != nil {
		bank.MinPrice = *req.MinPrice
	}
	if req.Minimum != nil {
		bank.Minimum = *req.Minimum
	}
	if req.NeedLogin != nil {
		bank.NeedLogin = *req.NeedLogin
	}
	if req.InvertIcon != nil {
		bank.InvertIcon = *req.InvertIcon
	}
	if req.Image != nil {
		bank.Image = utils.SanitizePtr(req.Image)
	}
	if req.Icon != nil {
		bank.Icon = utils.SanitizePtr(req.Icon)
	}
	if req.Description != nil {
		bank.Description = utils.SanitizePtr(req.Description)
	}
	return nil
}

func UpdateBank(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid bank id"))
		return
	}

	var req bankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var bank models.Bank
	if err := database.DB.First(&bank, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Bank not found"))
		return
	}

	if t := utils.SanitizeInput(req.Type); t != "" {
		bank.Type = t
	}
	if err := applyBankFields(&bank, &req); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := database.DB.Save(&bank).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, bank, "Bank updated")
}

func DeleteBank(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid bank id"))
		return
	}

	res := database.DB.Delete(&models.Bank{}, id)
	if res.Error != nil {
		utils.WriteError(w, apperr.Internal(res.Error))
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteError(w, apperr.NotFound("Bank not found"))
		return
	}

	utils.WriteSuccess(w, nil, "Bank deleted")
}
