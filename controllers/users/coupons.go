package users

import (
	"encoding/json"
	"net/http"
	"time"

	"digistore/apperr"
	"digistore/checkout"
	"digistore/database"
	"digistore/utils"
)

type validateCouponRequest struct {
	Code       string  `json:"code"`
	TotalPrice float64 `json:"total_price"`
}

// ValidateCoupon is the strict validation path: unlike checkout, an unknown
// or expired code fails here.
func ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req validateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Code = utils.SanitizeInput(req.Code)
	if err := utils.RequireFields(map[string]string{"code": req.Code}); err != nil {
		utils.WriteError(w, err)
		return
	}
	if req.TotalPrice < 0 {
		utils.WriteError(w, apperr.BadRequest("total_price must not be negative"))
		return
	}

	result, err := checkout.EvaluateCoupon(database.DB, req.Code, req.TotalPrice, time.Now())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	discount := utils.RoundMoney(result.Discount)
	utils.WriteSuccess(w, map[string]interface{}{
		"coupon":          result.Coupon,
		"discount_amount": discount,
		"final_price":     utils.RoundMoney(req.TotalPrice - discount),
	}, "Coupon is valid")
}
