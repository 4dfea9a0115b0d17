package admins

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

type variantRequest struct {
	ProductID       uint     `json:"product_id"`
	SKU             string   `json:"sku"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DiscountKind    string   `json:"discount_percent"`
	Discount        *float64 `json:"discount"`
	MinOrder        *int     `json:"min_order"`
	Status          string   `json:"status"`
	Label           *string  `json:"label"`
	IsLabelRequired *bool    `json:"is_label_required"`
	Note            *string  `json:"note"`
	SellerNote      *string  `json:"seller_note"`
	Description     *string  `json:"description"`
	Sort            *int     `json:"sort"`
}

// CreateVariant adds a purchasable SKU under an existing product. SKUs are
// stored upper-cased.
func CreateVariant(w http.ResponseWriter, r *http.Request) {
	var req variantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Name = utils.SanitizeInput(req.Name)
	req.SKU = strings.ToUpper(utils.SanitizeInput(req.SKU))
	if err := utils.RequireFields(map[string]string{
		"name": req.Name,
		"sku":  req.SKU,
	}); err != nil {
		utils.WriteError(w, err)
		return
	}
	if req.ProductID == 0 {
		utils.WriteError(w, apperr.Validation("Validation failed", map[string]string{
			"product_id": "product_id is required",
		}))
		return
	}
	if err := utils.ValidatePositive(req.Price, "price"); err != nil {
		utils.WriteError(w, err)
		return
	}

	var product models.Product
	if err := database.DB.First(&product, req.ProductID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Product not found"))
		return
	}

	variant := models.ProductVariant{
		ProductID:    req.ProductID,
		SKU:          req.SKU,
		Name:         req.Name,
		Price:        req.Price,
		DiscountKind: models.DiscountPercent,
		Status:       models.VariantOn,
		MinOrder:     1,
	}
	if err := applyVariantFields(&variant, &req); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := database.DB.Create(&variant).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("SKU already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, variant, "Variant created")
}

func applyVariantFields(variant *models.ProductVariant, req *variantRequest) error {
	if req.DiscountKind != "" {
		if err := utils.ValidateEnum(req.DiscountKind,
			[]string{models.DiscountPercent, models.DiscountNominal}, "discount kind"); err != nil {
			return err
		}
		variant.DiscountKind = req.DiscountKind
	}
	if req.Discount != nil {
		if *req.Discount < 0 {
			return apperr.BadRequest("Discount must not be negative")
		}
		variant.Discount = *req.Discount
	}
	if req.MinOrder != nil {
		if *req.MinOrder < 1 {
			return apperr.BadRequest("min_order must be at least 1")
		}
		variant.MinOrder = *req.MinOrder
	}
	if req.Status != "" {
		if err := utils.ValidateEnum(req.Status,
			[]string{models.VariantOn, models.VariantOff, models.VariantOut}, "status"); err != nil {
			return err
		}
		variant.Status = req.Status
	}
	if req.Label != nil {
		variant.Label = utils.SanitizePtr(req.Label)
	}
	if req.IsLabelRequired != nil {
		variant.IsLabelRequired = *req.IsLabelRequired
	}
	if req.Note != nil {
		variant.Note = utils.SanitizePtr(req.Note)
	}
	if req.SellerNote != nil {
		variant.SellerNote = utils.SanitizePtr(req.SellerNote)
	}
	if req.Description != nil {
		variant.Description = utils.SanitizePtr(req.Description)
	}
	if req.Sort != nil {
		variant.Sort = *req.Sort
	}
	return nil
}

// UpdateVariant applies partial changes to a variant.
func UpdateVariant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid variant id"))
		return
	}

	var req variantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var variant models.ProductVariant
	if err := database.DB.First(&variant, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Variant not found"))
		return
	}

	if name := utils.SanitizeInput(req.Name); name != "" {
		variant.Name = name
	}
	if sku := strings.ToUpper(utils.SanitizeInput(req.SKU)); sku != "" {
		variant.SKU = sku
	}
	if req.Price != 0 {
		if err := utils.ValidatePositive(req.Price, "price"); err != nil {
			utils.WriteError(w, err)
			return
		}
		variant.Price = req.Price
	}
	if err := applyVariantFields(&variant, &req); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := database.DB.Save(&variant).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("SKU already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, variant, "Variant updated")
}

// DeleteVariant removes a variant and orphan-deletes its cart lines.
func DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid variant id"))
		return
	}

	var variant models.ProductVariant
	if err := database.DB.First(&variant, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Variant not found"))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("variant_id = ?", variant.ID).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&variant).Error
	})
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "Variant deleted")
}
