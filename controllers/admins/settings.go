package admins

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

type settingsRequest struct {
	WebsiteName  *string `json:"website_name"`
	WebsiteTitle *string `json:"website_title"`
	Logo         *string `json:"logo"`
	Favicon      *string `json:"favicon"`
	FaviconText  *string `json:"favicon_text"`
	Taxvoice     *string `json:"taxvoice"`
	Description  *string `json:"description"`
	Email        *string `json:"email"`
	Whatsapp     *string `json:"whatsapp"`
	Instagram    *string `json:"instagram"`
	Facebook     *string `json:"facebook"`
	Youtube      *string `json:"youtube"`
	Twitter      *string `json:"twitter"`
	Telegram     *string `json:"telegram"`
}

// UpdateSettings patches the single settings row, creating it if the table
// is still empty.
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var setting models.Setting
	if err := database.DB.Take(&setting).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, apperr.Internal(err))
			return
		}
		setting = models.Setting{WebsiteName: "digistore", WebsiteTitle: "digistore"}
	}

	if req.WebsiteName != nil {
		name := utils.SanitizeInput(*req.WebsiteName)
		if name == "" {
			utils.WriteError(w, apperr.BadRequest("website_name must not be empty"))
			return
		}
		setting.WebsiteName = name
	}
	if req.WebsiteTitle != nil {
		title := utils.SanitizeInput(*req.WebsiteTitle)
		if title == "" {
			utils.WriteError(w, apperr.BadRequest("website_title must not be empty"))
			return
		}
		setting.WebsiteTitle = title
	}
	if req.Logo != nil {
		setting.Logo = utils.SanitizePtr(req.Logo)
	}
	if req.Favicon != nil {
		setting.Favicon = utils.SanitizePtr(req.Favicon)
	}
	if req.FaviconText != nil {
		setting.FaviconText = utils.SanitizePtr(req.FaviconText)
	}
	if req.Taxvoice != nil {
		setting.Taxvoice = utils.SanitizePtr(req.Taxvoice)
	}
	if req.Description != nil {
		setting.Description = utils.SanitizePtr(req.Description)
	}
	if req.Email != nil {
		setting.Email = utils.SanitizePtr(req.Email)
	}
	if req.Whatsapp != nil {
		setting.Whatsapp = utils.SanitizePtr(req.Whatsapp)
	}
	if req.Instagram != nil {
		setting.Instagram = utils.SanitizePtr(req.Instagram)
	}
	if req.Facebook != nil {
		setting.Facebook = utils.SanitizePtr(req.Facebook)
	}
	if req.Youtube != nil {
		setting.Youtube = utils.SanitizePtr(req.Youtube)
	}
	if req.Twitter != nil {
		setting.Twitter = utils.SanitizePtr(req.Twitter)
	}
	if req.Telegram != nil {
		setting.Telegram = utils.SanitizePtr(req.Telegram)
	}

	if err := database.DB.Save(&setting).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, setting, "Settings updated")
}
