package admins

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

type couponRequest struct {
	Code          string     `json:"code"`
	Type          string     `json:"type"`
	Value         float64    `json:"value"`
	MaxValue      *float64   `json:"max_value"`
	MinPurchase   *float64   `json:"min_purchase"`
	Limit         *uint      `json:"limit"`
	StartsAt      *time.Time `json:"starts_at"`
	ExpiresAt     *time.Time `json:"expires_at"`
	LoginRequired *bool      `json:"login_required"`
	Status        *bool      `json:"status"`
}

func ListCoupons(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)

	query := database.DB.Model(&models.Coupon{})
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status == "true" || status == "1")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var coupons []models.Coupon
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).
		Find(&coupons).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, coupons, utils.BuildPagination(page, limit, total), "Coupons retrieved")
}

func GetCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid coupon id"))
		return
	}
	var coupon models.Coupon
	if err := database.DB.First(&coupon, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Coupon not found"))
		return
	}
	utils.WriteSuccess(w, coupon, "Coupon retrieved")
}

// CreateCoupon inserts a coupon; the customer-facing code lives in the
// description column.
func CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Code = utils.SanitizeInput(req.Code)
	if err := utils.RequireFields(map[string]string{"code": req.Code}); err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := utils.ValidateEnum(req.Type,
		[]string{models.CouponPercent, models.CouponAmount}, "coupon type"); err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := utils.ValidatePositive(req.Value, "value"); err != nil {
		utils.WriteError(w, err)
		return
	}
	if req.StartsAt != nil && req.ExpiresAt != nil && req.ExpiresAt.Before(*req.StartsAt) {
		utils.WriteError(w, apperr.BadRequest("expires_at must not precede starts_at"))
		return
	}

	coupon := models.Coupon{
		Description: req.Code,
		Type:        req.Type,
		Value:       req.Value,
		MaxValue:    req.MaxValue,
		MinPurchase: req.MinPurchase,
		Limit:       req.Limit,
		StartsAt:    req.StartsAt,
		ExpiresAt:   req.ExpiresAt,
		Status:      true,
	}
	if req.LoginRequired != nil {
		coupon.LoginRequired = *req.LoginRequired
	}
	if req.Status != nil {
		coupon.Status = *req.Status
	}

	if err := database.DB.Create(&coupon).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("Coupon code already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, coupon, "Coupon created")
}

func UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid coupon id"))
		return
	}

	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var coupon models.Coupon
	if err := database.DB.First(&coupon, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Coupon not found"))
		return
	}

	if code := utils.SanitizeInput(req.Code); code != "" {
		coupon.Description = code
	}
	if req.Type != "" {
		if err := utils.ValidateEnum(req.Type,
			[]string{models.CouponPercent, models.CouponAmount}, "coupon type"); err != nil {
			utils.WriteError(w, err)
			return
		}
		coupon.Type = req.Type
	}
	if req.Value != 0 {
		if err := utils.ValidatePositive(req.Value, "value"); err != nil {
			utils.WriteError(w, err)
			return
		}
		coupon.Value = req.Value
	}
	if req.MaxValue != nil {
		coupon.MaxValue = req.MaxValue
	}
	if req.MinPurchase != nil {
		coupon.MinPurchase = req.MinPurchase
	}
	if req.Limit != nil {
		coupon.Limit = req.Limit
	}
	if req.StartsAt != nil {
		coupon.StartsAt = req.StartsAt
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = req.ExpiresAt
	}
	if req.LoginRequired != nil {
		coupon.LoginRequired = *req.LoginRequired
	}
	if req.Status != nil {
		coupon.Status = *req.Status
	}
	if coupon.StartsAt != nil && coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(*coupon.StartsAt) {
		utils.WriteError(w, apperr.BadRequest("expires_at must not precede starts_at"))
		return
	}

	if err := database.DB.Save(&coupon).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("Coupon code already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, coupon, "Coupon updated")
}

func DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid coupon id"))
		return
	}

	res := database.DB.Delete(&models.Coupon{}, id)
	if res.Error != nil {
		utils.WriteError(w, apperr.Internal(res.Error))
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteError(w, apperr.NotFound("Coupon not found"))
		return
	}

	utils.WriteSuccess(w, nil, "Coupon deleted")
}
