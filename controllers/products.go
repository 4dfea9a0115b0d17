package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

var productSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"sort":       "sort",
	"view":       "view",
	"sold":       "sold",
}

// ListProducts is the public catalog listing with filter, search and
// whitelisted sorting.
func ListProducts(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)
	q := r.URL.Query()

	query := database.DB.Model(&models.Product{}).Preload("Category").Preload("Variants")

	if cat := q.Get("category_id"); cat != "" {
		query = query.Where("category_id = ?", cat)
	}
	if status := q.Get("status"); status != "" {
		query = query.Where("status = ?", status == "true" || status == "1")
	} else {
		query = query.Where("status = ?", true)
	}
	if search := q.Get("search"); search != "" {
		query = query.Where("name LIKE ? OR slug LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	sortCol := "sort"
	if col, ok := productSortColumns[q.Get("sort")]; ok {
		sortCol = col
	}
	order := "asc"
	if q.Get("order") == "desc" {
		order = "desc"
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var products []models.Product
	if err := query.Order(sortCol + " " + order).Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, products, utils.BuildPagination(page, limit, total), "Products retrieved")
}

// GetProduct returns one product by numeric id and bumps its view counter.
func GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid product id"))
		return
	}

	var product models.Product
	if err := database.DB.Preload("Category").Preload("Variants").
		First(&product, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Product not found"))
		return
	}

	// view counter moves relative to the stored value, never read-modify-write
	if err := database.DB.Model(&product).
		UpdateColumn("view", gorm.Expr("view + ?", 1)).Error; err == nil {
		product.View++
	}

	utils.WriteSuccess(w, product, "Product retrieved")
}

// GetProductBySlug mirrors GetProduct for slug lookups.
func GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var product models.Product
	if err := database.DB.Preload("Category").Preload("Variants").
		Where("slug = ?", slug).First(&product).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Product not found"))
		return
	}

	if err := database.DB.Model(&product).
		UpdateColumn("view", gorm.Expr("view + ?", 1)).Error; err == nil {
		product.View++
	}

	utils.WriteSuccess(w, product, "Product retrieved")
}

// GetVariantsByProduct lists a product's variants ordered by sort.
func GetVariantsByProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid product id"))
		return
	}

	var variants []models.ProductVariant
	if err := database.DB.Where("product_id = ?", id).
		Order("sort asc").Find(&variants).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, variants, "Variants retrieved")
}

// GetVariant returns one variant by id.
func GetVariant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid variant id"))
		return
	}

	var variant models.ProductVariant
	if err := database.DB.Preload("Product").First(&variant, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Variant not found"))
		return
	}

	utils.WriteSuccess(w, variant, "Variant retrieved")
}

// GetVariantBySKU looks a variant up by its upper-cased SKU.
func GetVariantBySKU(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	var variant models.ProductVariant
	if err := database.DB.Preload("Product").
		Where("sku = UPPER(?)", sku).First(&variant).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Variant not found"))
		return
	}

	utils.WriteSuccess(w, variant, "Variant retrieved")
}
