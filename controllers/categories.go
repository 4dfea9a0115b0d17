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

func ListCategories(w http.ResponseWriter, r *http.Request) {
	var categories []models.Category
	if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	utils.WriteSuccess(w, categories, "Categories retrieved")
}

func GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid category id"))
		return
	}
	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Category not found"))
		return
	}
	utils.WriteSuccess(w, category, "Category retrieved")
}

func GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := database.DB.Where("slug = ?", mux.Vars(r)["slug"]).
		First(&category).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Category not found"))
		return
	}
	utils.WriteSuccess(w, category, "Category retrieved")
}
