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

type newsRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Image         *string  `json:"image"`
	Content       string   `json:"content"`
	PriceReseller *float64 `json:"price_reseller"`
}

func CreateNews(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Title = utils.SanitizeInput(req.Title)
	if err := utils.RequireFields(map[string]string{
		"title":   req.Title,
		"content": req.Content,
	}); err != nil {
		utils.WriteError(w, err)
		return
	}

	slug := slugify(req.Slug)
	if slug == "" {
		slug = slugify(req.Title)
	}

	item := models.News{
		Title:         req.Title,
		Slug:          slug,
		Image:         utils.SanitizePtr(req.Image),
		Content:       req.Content,
		PriceReseller: req.PriceReseller,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("News slug already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, item, "News created")
}

func UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid news id"))
		return
	}

	var req newsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var item models.News
	if err := database.DB.First(&item, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "News not found"))
		return
	}

	if title := utils.SanitizeInput(req.Title); title != "" {
		item.Title = title
	}
	if slug := slugify(req.Slug); slug != "" {
		item.Slug = slug
	}
	if req.Image != nil {
		item.Image = utils.SanitizePtr(req.Image)
	}
	if req.Content != "" {
		item.Content = req.Content
	}
	if req.PriceReseller != nil {
		item.PriceReseller = req.PriceReseller
	}

	if err := database.DB.Save(&item).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("News slug already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, item, "News updated")
}

func DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid news id"))
		return
	}

	res := database.DB.Delete(&models.News{}, id)
	if res.Error != nil {
		utils.WriteError(w, apperr.Internal(res.Error))
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteError(w, apperr.NotFound("News not found"))
		return
	}

	utils.WriteSuccess(w, nil, "News deleted")
}
