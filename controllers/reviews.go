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

// ListReviews lists published reviews, newest first.
func ListReviews(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)

	query := database.DB.Model(&models.OrderReview{}).Where("status = ?", "y")
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var reviews []models.OrderReview
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).
		Find(&reviews).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, reviews, utils.BuildPagination(page, limit, total), "Reviews retrieved")
}

func GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid review id"))
		return
	}
	var review models.OrderReview
	if err := database.DB.Where("status = ?", "y").First(&review, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Review not found"))
		return
	}
	utils.WriteSuccess(w, review, "Review retrieved")
}

func GetReviewByTransaction(w http.ResponseWriter, r *http.Request) {
	txID, err := strconv.Atoi(mux.Vars(r)["transaction_id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid transaction id"))
		return
	}
	var review models.OrderReview
	if err := database.DB.Where("transaction_id = ? AND status = ?", txID, "y").
		First(&review).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Review not found"))
		return
	}
	utils.WriteSuccess(w, review, "Review retrieved")
}
