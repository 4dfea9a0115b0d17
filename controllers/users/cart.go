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

type cartLineView struct {
	models.Cart
	ProductName string  `json:"product_name"`
	VariantName string  `json:"variant_name"`
	SKU         string  `json:"sku"`
	ItemPrice   float64 `json:"item_price"`
	ItemTotal   float64 `json:"item_total"`
}

// GetCart returns the user's cart with live effective pricing per line and
// a summary over the checked lines.
func GetCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	var carts []models.Cart
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at asc").Find(&carts).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	lines := make([]cartLineView, 0, len(carts))
	var checkedTotal float64
	var checkedQuantity int
	for _, c := range carts {
		var variant models.ProductVariant
		if err := database.DB.Preload("Product").First(&variant, c.VariantID).Error; err != nil {
			continue
		}
		unit := utils.RoundMoney(checkout.EffectiveUnitPrice(variant.Price, variant.Discount, variant.DiscountKind))
		line := cartLineView{
			Cart:        c,
			VariantName: variant.Name,
			SKU:         variant.SKU,
			ItemPrice:   unit,
			ItemTotal:   utils.RoundMoney(unit * float64(c.Quantity)),
		}
		if variant.Product != nil {
			line.ProductName = variant.Product.Name
		}
		if c.Checked {
			checkedTotal += line.ItemTotal
			checkedQuantity += c.Quantity
		}
		lines = append(lines, line)
	}

	utils.WriteSuccess(w, map[string]interface{}{
		"items":            lines,
		"checked_quantity": checkedQuantity,
		"checked_total":    checkedTotal,
	}, "Cart retrieved")
}

type addCartRequest struct {
	ProductID uint    `json:"product_id"`
	VariantID uint    `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	Note      *string `json:"note"`
}

// AddToCart inserts a cart line, merging quantities when the same
// (product, variant) pair is already in the cart.
func AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	var req addCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if req.ProductID == 0 || req.VariantID == 0 {
		utils.WriteError(w, apperr.Validation("Validation failed", map[string]string{
			"product_id": "product_id is required",
			"variant_id": "variant_id is required",
		}))
		return
	}
	if req.Quantity < 1 {
		utils.WriteError(w, apperr.BadRequest("Quantity must be at least 1"))
		return
	}

	var variant models.ProductVariant
	if err := database.DB.First(&variant, req.VariantID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Variant not found"))
		return
	}
	if variant.ProductID != req.ProductID {
		utils.WriteError(w, apperr.BadRequest("Variant does not belong to the given product"))
		return
	}
	if variant.Status != models.VariantOn {
		utils.WriteError(w, apperr.Unavailable("Variant is not available"))
		return
	}
	if req.Quantity < variant.MinOrder {
		utils.WriteError(w, apperr.BadRequest("Quantity is below the minimum order for this variant"))
		return
	}

	var existing models.Cart
	err := database.DB.Where("user_id = ? AND product_id = ? AND variant_id = ?",
		userID, req.ProductID, req.VariantID).First(&existing).Error
	if err == nil {
		existing.Quantity += req.Quantity
		if req.Note != nil {
			existing.Note = utils.SanitizePtr(req.Note)
		}
		if err := database.DB.Save(&existing).Error; err != nil {
			utils.WriteError(w, apperr.Internal(err))
			return
		}
		utils.WriteSuccess(w, existing, "Cart updated")
		return
	}

	line := models.Cart{
		UserID:    userID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
		Checked:   true,
		Note:      utils.SanitizePtr(req.Note),
	}
	if err := database.DB.Create(&line).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Cart line not found"))
		return
	}

	utils.WriteCreated(w, line, "Added to cart")
}

type updateCartRequest struct {
	Quantity *int    `json:"quantity"`
	Checked  *bool   `json:"checked"`
	Note     *string `json:"note"`
}

// UpdateCartLine changes quantity, checked flag or note on one owned line.
func UpdateCartLine(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid cart id"))
		return
	}

	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var line models.Cart
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).
		First(&line).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Cart line not found"))
		return
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			utils.WriteError(w, apperr.BadRequest("Quantity must be at least 1"))
			return
		}
		line.Quantity = *req.Quantity
	}
	if req.Checked != nil {
		line.Checked = *req.Checked
	}
	if req.Note != nil {
		line.Note = utils.SanitizePtr(req.Note)
	}

	if err := database.DB.Save(&line).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, line, "Cart updated")
}

// DeleteCartLine removes one owned line.
func DeleteCartLine(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid cart id"))
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Cart{})
	if res.Error != nil {
		utils.WriteError(w, apperr.Internal(res.Error))
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteError(w, apperr.NotFound("Cart line not found"))
		return
	}

	utils.WriteSuccess(w, nil, "Cart line removed")
}

// ClearCart removes all of the user's lines.
func ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	if err := database.DB.Where("user_id = ?", userID).
		Delete(&models.Cart{}).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "Cart cleared")
}

type toggleCheckRequest struct {
	Checked bool `json:"checked"`
}

// ToggleCheckAll flips the checked flag on every line at once.
func ToggleCheckAll(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserID(r)

	var req toggleCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	if err := database.DB.Model(&models.Cart{}).
		Where("user_id = ?", userID).
		Update("checked", req.Checked).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "Cart updated")
}
