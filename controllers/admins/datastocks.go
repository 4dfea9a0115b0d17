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

var stockStatuses = []string{
	models.StockActive, models.StockSold, models.StockInvalid, models.StockLocked,
}

func ListDataStocks(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := utils.ParsePagination(r)
	q := r.URL.Query()

	query := database.DB.Model(&models.DataStock{})
	if variantID := q.Get("variant_id"); variantID != "" {
		query = query.Where("variant_id = ?", variantID)
	}
	if status := q.Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	var stocks []models.DataStock
	if err := query.Preload("Variant").Order("created_at desc").
		Limit(limit).Offset(offset).Find(&stocks).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WritePaginated(w, stocks, utils.BuildPagination(page, limit, total), "Data stocks retrieved")
}

type stockView struct {
	models.DataStock
	Invoice *string `json:"invoice,omitempty"`
}

// GetDataStock includes the consuming transaction's invoice when linked.
func GetDataStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid data stock id"))
		return
	}

	var stock models.DataStock
	if err := database.DB.Preload("Variant").First(&stock, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Data stock not found"))
		return
	}

	view := stockView{DataStock: stock}
	if stock.TransactionID != nil {
		var trx models.Transaction
		if err := database.DB.Select("invoice").First(&trx, *stock.TransactionID).Error; err == nil {
			view.Invoice = &trx.Invoice
		}
	}

	utils.WriteSuccess(w, view, "Data stock retrieved")
}

// DataStockCounts reports per-status counts for one variant.
func DataStockCounts(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.Atoi(mux.Vars(r)["variant_id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid variant id"))
		return
	}

	type countRow struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var rows []countRow
	if err := database.DB.Model(&models.DataStock{}).
		Select("status, COUNT(*) AS count").
		Where("variant_id = ?", variantID).
		Group("status").Scan(&rows).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	counts := map[string]int64{}
	for _, s := range stockStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	utils.WriteSuccess(w, counts, "Data stock counts retrieved")
}

type stockRequest struct {
	VariantID      uint       `json:"variant_id"`
	TransactionID  *uint      `json:"transaction_id"`
	Status         string     `json:"status"`
	ExpiredLicense *string    `json:"expired_license"`
	Note           *string    `json:"note"`
	ExpiredAt      *time.Time `json:"expired_at"`
}

func buildStock(req *stockRequest) (*models.DataStock, error) {
	if req.VariantID == 0 {
		return nil, apperr.Validation("Validation failed", map[string]string{
			"variant_id": "variant_id is required",
		})
	}
	var variant models.ProductVariant
	if err := database.DB.First(&variant, req.VariantID).Error; err != nil {
		return nil, apperr.FromDB(err, "Variant not found")
	}

	stock := &models.DataStock{
		VariantID:      req.VariantID,
		Status:         models.StockActive,
		ExpiredLicense: utils.SanitizePtr(req.ExpiredLicense),
		Note:           utils.SanitizePtr(req.Note),
		ExpiredAt:      req.ExpiredAt,
	}
	if req.Status != "" {
		if err := utils.ValidateEnum(req.Status, stockStatuses, "status"); err != nil {
			return nil, err
		}
		stock.Status = req.Status
	}
	return stock, nil
}

func CreateDataStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	stock, err := buildStock(&req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := database.DB.Create(stock).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, stock, "Data stock created")
}

type bulkStockRequest struct {
	Items []stockRequest `json:"items"`
}

// BulkCreateDataStocks inserts a batch of stock rows atomically.
func BulkCreateDataStocks(w http.ResponseWriter, r *http.Request) {
	var req bulkStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}
	if len(req.Items) == 0 {
		utils.WriteError(w, apperr.BadRequest("items must not be empty"))
		return
	}

	stocks := make([]models.DataStock, 0, len(req.Items))
	for i := range req.Items {
		stock, err := buildStock(&req.Items[i])
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		stocks = append(stocks, *stock)
	}

	if err := database.DB.Create(&stocks).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteCreated(w, map[string]interface{}{"created": len(stocks)}, "Data stocks created")
}

func UpdateDataStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid data stock id"))
		return
	}

	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid JSON body"))
		return
	}

	var stock models.DataStock
	if err := database.DB.First(&stock, id).Error; err != nil {
		utils.WriteError(w, apperr.FromDB(err, "Data stock not found"))
		return
	}

	if req.Status != "" {
		if err := utils.ValidateEnum(req.Status, stockStatuses, "status"); err != nil {
			utils.WriteError(w, err)
			return
		}
		stock.Status = req.Status
	}
	if req.TransactionID != nil {
		var trx models.Transaction
		if err := database.DB.First(&trx, *req.TransactionID).Error; err != nil {
			utils.WriteError(w, apperr.FromDB(err, "Transaction not found"))
			return
		}
		stock.TransactionID = req.TransactionID
	}
	if req.ExpiredLicense != nil {
		stock.ExpiredLicense = utils.SanitizePtr(req.ExpiredLicense)
	}
	if req.Note != nil {
		stock.Note = utils.SanitizePtr(req.Note)
	}
	if req.ExpiredAt != nil {
		stock.ExpiredAt = req.ExpiredAt
	}

	if err := database.DB.Save(&stock).Error; err != nil {
		utils.WriteError(w, apperr.Internal(err))
		return
	}

	utils.WriteSuccess(w, stock, "Data stock updated")
}

func DeleteDataStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperr.BadRequest("Invalid data stock id"))
		return
	}

	res := database.DB.Delete(&models.DataStock{}, id)
	if res.Error != nil {
		utils.WriteError(w, apperr.Internal(res.Error))
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteError(w, apperr.NotFound("Data stock not found"))
		return
	}

	utils.WriteSuccess(w, nil, "Data stock deleted")
}
