package users

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"digistore/apperr"
	"digistore/checkout"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

type reviewRequest struct {
	TransactionID uint    `json:"transaction_id"`
	Rating        int     `json:"rating"`
	Review        *string `json:"review"`
}

// CreateReview adds one review per owned, completed transaction.
func CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if req.TransactionID == 0 {
		utils.WriteError(w, apperr.Validation("Validation failed", map[string]string{
			"transaction_id": "transaction_id is required",
		}))
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.WriteError(w, apperr.BadRequest("Rating must be between 1 and 5"))
		return
	}

	var trx models.Transaction
	if err := database.DB.First(&trx, req.TransactionID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Transaction not found"))
		return
	}

	owned, err := ownsTransaction(userID, trx.ID)
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	if !owned {
		utils.WriteError(w, apperr.Forbidden("Access denied to this transaction"))
		return
	}
	if trx.Status != models.TxCompleted && trx.Status != models.TxProcessed {
		utils.WriteError(w, apperr.BadRequest("Only processed or completed transactions can be reviewed"))
		return
	}

	review := models.OrderReview{
		TransactionID: trx.ID,
		Rating:        strconv.Itoa(req.Rating),
		Review:        utils.SanitizePtr(req.Review),
		Status:        "y",
	}
	if err := database.DB.Create(&review).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("Transaction already reviewed"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, review, "Review created")
}

type updateReviewRequest struct {
	Rating *int    `json:"rating"`
	Review *string `json:"review"`
}

// UpdateReview edits an owned review.
func UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid review id"))
		return
	}

	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var review models.OrderReview
	if err := database.DB.First(&review, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Review not found"))
		return
	}

	owned, err := ownsTransaction(userID, review.TransactionID)
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	if !owned {
		utils.WriteError(w, apperr.Forbidden("Access denied to this review"))
		return
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			utils.WriteError(w, apperr.BadRequest("Rating must be between 1 and 5"))
			return
		}
		review.Rating = strconv.Itoa(*req.Rating)
	}
	if req.Review != nil {
		review.Review = utils.SanitizePtr(req.Review)
	}

	if err := database.DB.Save(&review).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, review, "Review updated")
}

// DeleteReview removes an owned review; admins may remove any.
func DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid review id"))
		return
	}

	var review models.OrderReview
	if err := database.DB.First(&review, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Review not found"))
		return
	}

	if utils.GetUserRole(r) != checkout.RoleAdmin {
		owned, err := ownsTransaction(userID, review.TransactionID)
		if err != nil {
			utils.WriteError(w, apperr.Internal(err))
			return
		}
		if !owned {
			utils.WriteError(w, apperr.Forbidden("Access denied to this review"))
			return
		}
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "Review deleted")
}
