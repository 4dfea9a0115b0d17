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

type categoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

func CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Name = utils.SanitizeInput(req.Name)
	if err := utils.RequireFields(map[string]string{"name": req.Name}); err != nil {
		utils.WriteError(w, err)
		return
	}

	slug := slugify(req.Slug)
	if slug == "" {
		slug = slugify(req.Name)
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: utils.SanitizePtr(req.Description),
	}
	if err := database.DB.Create(&category).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("Category slug already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, category, "Category created")
}

func UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid category id"))
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Category not found"))
		return
	}

	if name := utils.SanitizeInput(req.Name); name != "" {
		category.Name = name
	}
	if slug := slugify(req.Slug); slug != "" {
		category.Slug = slug
	}
	if req.Description != nil {
		category.Description = utils.SanitizePtr(req.Description)
	}

	if err := database.DB.Save(&category).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("Category slug already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, category, "Category updated")
}

// DeleteCategory refuses to remove a category that still has products.
func DeleteCategory(w http.ResponseWriter, r *http.Request) {
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

	var inUse int64
	if err := database.DB.Model(&models.Product{}).
		Where("category_id = ?", category.ID).Count(&inUse).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	if inUse > 0 {
		utils.WriteError(w, apperr.Conflict("Category still has products"))
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "Category deleted")
}
