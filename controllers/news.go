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

func ListNews(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)

	query := database.DB.Model(&models.News{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var news []models.News
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).
		Find(&news).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, news, utils.BuildPagination(page, limit, total), "News retrieved")
}

func GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid news id"))
		return
	}
	var item models.News
	if err := database.DB.First(&item, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "News not found"))
		return
	}
	utils.WriteSuccess(w, item, "News retrieved")
}

func GetNewsBySlug(w http.ResponseWriter, r *http.Request) {
	var item models.News
	if err := database.DB.Where("slug = ?", mux.Vars(r)["slug"]).
		First(&item).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "News not found"))
		return
	}
	utils.WriteSuccess(w, item, "News retrieved")
}
