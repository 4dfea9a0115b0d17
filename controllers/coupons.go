package controllers

import (
	"net/http"
	"time"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

// ListActiveCoupons exposes enabled coupons currently inside their usage
// window that still have redemptions left.
func ListActiveCoupons(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	var coupons []models.Coupon
	err := database.DB.
		Where("status = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("expires_at IS NULL OR expires_at >= ?", now).
		Where("`limit` IS NULL OR used < `limit`").
		Order("created_at desc").
		Find(&coupons).Error
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, coupons, "Active coupons retrieved")
}
