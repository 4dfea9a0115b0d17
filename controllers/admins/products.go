package admins

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"digistore/apperr"
	"digistore/database"
	"digistore/models"
	"digistore/utils"
)

type productRequest struct {
	CategoryID  uint    `json:"category_id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Status      *bool   `json:"status"`
	Sort        *int    `json:"sort"`
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// CreateProduct inserts a catalog product after checking the category exists
// and the slug is free.
func CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	req.Name = utils.SanitizeInput(req.Name)
	if err := utils.RequireFields(map[string]string{"name": req.Name}); err != nil {
		utils.WriteError(w, err)
		return
	}
	if req.CategoryID == 0 {
		utils.WriteError(w, apperr.Validation("Validation failed", map[string]string{
			"category_id": "category_id is required",
		}))
		return
	}

	var category models.Category
	if err := database.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Category not found"))
		return
	}

	slug := slugify(req.Slug)
	if slug == "" {
		slug = slugify(req.Name)
	}

	product := models.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        slug,
		Description: utils.SanitizePtr(req.Description),
		Status:      true,
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Sort != nil {
		product.Sort = *req.Sort
	}

	if err := database.DB.Create(&product).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("Product slug already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, product, "Product created")
}

// UpdateProduct applies partial changes to a product.
func UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid product id"))
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Product not found"))
		return
	}

	if req.CategoryID != 0 {
		var category models.Category
		if err := database.DB.First(&category, req.CategoryID).Error; err != nil {
			utils.WriteError(w, apperr.FromDB(err, "Category not found"))
			return
		}
		product.CategoryID = req.CategoryID
	}
	if name := utils.SanitizeInput(req.Name); name != "" {
		product.Name = name
	}
	if slug := slugify(req.Slug); slug != "" {
		product.Slug = slug
	}
	if req.Description != nil {
		product.Description = utils.SanitizePtr(req.Description)
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Sort != nil {
		product.Sort = *req.Sort
	}

	if err := database.DB.Save(&product).Error; err != nil {
		if apperr.IsDuplicate(err) {
			utils.WriteError(w, apperr.Conflict("Product slug already exists"))
			return
		}
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, product, "Product updated")
}

// DeleteProduct removes a product together with its variants and any cart
// lines pointing at them.
func DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid product id"))
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Product not found"))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductVariant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, nil, "Product deleted")
}

const maxImageBytes = 5 << 20

// UploadProductImage stores an image in the object bucket and records its
// public URL on the product.
func UploadProductImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid product id"))
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Product not found"))
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("image file is required"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		utils.WriteError(w, apperr.BadRequest("Unsupported image type"))
		return
	}
	if header.Size > maxImageBytes {
		utils.WriteError(w, apperr.BadRequest("Image exceeds the 5 MiB limit"))
		return
	}

	key := fmt.Sprintf("products/%d/%d%s", product.ID, time.Now().UnixMilli(), ext)
	if err := utils.UploadObject(key, file, header.Size); err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	// best effort cleanup of the previous object
	if product.Image != nil {
		_ = utils.DeleteObject(strings.TrimPrefix(*product.Image, utils.PublicURL("")))
	}

	url := utils.PublicURL(key)
	if err := database.DB.Model(&product).Update("image", url).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}
	product.Image = &url

	utils.WriteSuccess(w, product, "Image uploaded")
}
