package controllers

import (
	"net/http"
	"runtime"
	"time"

	"digistore/database"
	"digistore/utils"
)

// ResourcesHandler returns a runtime snapshot for the admin dashboard.
func ResourcesHandler(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	data := map[string]interface{}{
		"goroutines":     runtime.NumGoroutine(),
		"heap_alloc_mb":  float64(m.HeapAlloc) / (1 << 20),
		"heap_sys_mb":    float64(m.HeapSys) / (1 << 20),
		"num_gc":         m.NumGC,
		"go_version":     runtime.Version(),
		"uptime_seconds": int64(time.Since(startedAt).Seconds()),
	}

	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil {
			stats := sqlDB.Stats()
			data["db_open_connections"] = stats.OpenConnections
			data["db_in_use"] = stats.InUse
			data["db_idle"] = stats.Idle
			data["db_wait_count"] = stats.WaitCount
		}
	}

	utils.WriteSuccess(w, data, "Resource snapshot")
}
