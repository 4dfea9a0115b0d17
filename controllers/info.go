package controllers

import (
	"net/http"
	"time"

	"digistore/database"
	"digistore/utils"
)

var startedAt = time.Now()

// RootHandler documents the API surface for whoever lands on /.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, map[string]interface{}{
		"name": "digistore API",
		"endpoints": map[string]string{
			"auth":          "/api/auth",
			"users":         "/api/users",
			"categories":    "/api/categories",
			"products":      "/api/products",
			"variants":      "/api/variants",
			"cart":          "/api/cart",
			"coupons":       "/api/coupons",
			"transactions":  "/api/transactions",
			"order_items":   "/api/order-items",
			"data_stocks":   "/api/data-stocks",
			"banks":         "/api/banks",
			"news":          "/api/news",
			"notifications": "/api/notifications",
			"settings":      "/api/settings",
			"reviews":       "/api/reviews",
			"health":        "/health",
			"metrics":       "/metrics",
		},
	}, "Welcome")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	dbHealthy := false
	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil && sqlDB.Ping() == nil {
			dbHealthy = true
		}
	}

	status := http.StatusOK
	if !dbHealthy {
		status = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, status, utils.APIResponse{
		Success: dbHealthy,
		Message: "health",
		Data: map[string]interface{}{
			"database":       dbHealthy,
			"uptime_seconds": int64(time.Since(startedAt).Seconds()),
		},
	})
}
