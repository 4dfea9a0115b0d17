package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"digistore/controllers"
	"digistore/controllers/admins"
	"digistore/middleware"
)

// AdminRoutes registers the admin surface. Catalog writes are open to
// resellers too; everything else requires the admin role.
func AdminRoutes(api *mux.Router) {
	adminLimiter := middleware.NewIPRateLimiter(500, time.Minute)

	asAdmin := func(h http.HandlerFunc) http.Handler {
		return adminLimiter.Middleware(middleware.AuthMiddleware(middleware.AdminOnly(h)))
	}
	asSeller := func(h http.HandlerFunc) http.Handler {
		return adminLimiter.Middleware(middleware.AuthMiddleware(middleware.AdminOrReseller(h)))
	}

	// Users
	api.Handle("/users", asAdmin(admins.ListUsers)).Methods(http.MethodGet)
	api.Handle("/users/{id:[0-9]+}", asAdmin(admins.GetUser)).Methods(http.MethodGet)
	api.Handle("/users/{id:[0-9]+}/role", asAdmin(admins.UpdateUserRole)).Methods(http.MethodPut)
	api.Handle("/users/{id:[0-9]+}/status", asAdmin(admins.UpdateUserStatus)).Methods(http.MethodPut)
	api.Handle("/users/{id:[0-9]+}/balance", asAdmin(admins.UpdateUserBalance)).Methods(http.MethodPut)
	api.Handle("/users/{id:[0-9]+}", asAdmin(admins.DeleteUser)).Methods(http.MethodDelete)

	// Categories
	api.Handle("/categories", asAdmin(admins.CreateCategory)).Methods(http.MethodPost)
	api.Handle("/categories/{id:[0-9]+}", asAdmin(admins.UpdateCategory)).Methods(http.MethodPut)
	api.Handle("/categories/{id:[0-9]+}", asAdmin(admins.DeleteCategory)).Methods(http.MethodDelete)

	// Products
	api.Handle("/products", asSeller(admins.CreateProduct)).Methods(http.MethodPost)
	api.Handle("/products/{id:[0-9]+}", asSeller(admins.UpdateProduct)).Methods(http.MethodPut)
	api.Handle("/products/{id:[0-9]+}", asAdmin(admins.DeleteProduct)).Methods(http.MethodDelete)
	api.Handle("/products/{id:[0-9]+}/image", asAdmin(admins.UploadProductImage)).Methods(http.MethodPost)

	// Variants
	api.Handle("/variants", asSeller(admins.CreateVariant)).Methods(http.MethodPost)
	api.Handle("/variants/{id:[0-9]+}", asSeller(admins.UpdateVariant)).Methods(http.MethodPut)
	api.Handle("/variants/{id:[0-9]+}", asAdmin(admins.DeleteVariant)).Methods(http.MethodDelete)

	// Coupons
	api.Handle("/coupons", asAdmin(admins.ListCoupons)).Methods(http.MethodGet)
	api.Handle("/coupons", asAdmin(admins.CreateCoupon)).Methods(http.MethodPost)
	api.Handle("/coupons/{id:[0-9]+}", asAdmin(admins.GetCoupon)).Methods(http.MethodGet)
	api.Handle("/coupons/{id:[0-9]+}", asAdmin(admins.UpdateCoupon)).Methods(http.MethodPut)
	api.Handle("/coupons/{id:[0-9]+}", asAdmin(admins.DeleteCoupon)).Methods(http.MethodDelete)

	// Transactions
	api.Handle("/transactions", asAdmin(admins.ListTransactions)).Methods(http.MethodGet)
	api.Handle("/transactions/{id:[0-9]+}/status", asAdmin(admins.UpdateTransactionStatus)).Methods(http.MethodPut)

	// Order items
	api.Handle("/order-items", asAdmin(admins.ListOrderItems)).Methods(http.MethodGet)
	api.Handle("/order-items/{id:[0-9]+}", asAdmin(admins.GetOrderItem)).Methods(http.MethodGet)
	api.Handle("/order-items/{id:[0-9]+}/status", asAdmin(admins.UpdateOrderItemStatus)).Methods(http.MethodPut)

	// Data stocks
	api.Handle("/data-stocks", asAdmin(admins.ListDataStocks)).Methods(http.MethodGet)
	api.Handle("/data-stocks/bulk", asAdmin(admins.BulkCreateDataStocks)).Methods(http.MethodPost)
	api.Handle("/data-stocks/counts/{variant_id:[0-9]+}", asAdmin(admins.DataStockCounts)).Methods(http.MethodGet)
	api.Handle("/data-stocks/{id:[0-9]+}", asAdmin(admins.GetDataStock)).Methods(http.MethodGet)
	api.Handle("/data-stocks", asAdmin(admins.CreateDataStock)).Methods(http.MethodPost)
	api.Handle("/data-stocks/{id:[0-9]+}", asAdmin(admins.UpdateDataStock)).Methods(http.MethodPut)
	api.Handle("/data-stocks/{id:[0-9]+}", asAdmin(admins.DeleteDataStock)).Methods(http.MethodDelete)

	// Banks
	api.Handle("/banks/all", asAdmin(admins.ListAllBanks)).Methods(http.MethodGet)
	api.Handle("/banks", asAdmin(admins.CreateBank)).Methods(http.MethodPost)
	api.Handle("/banks/{id:[0-9]+}", asAdmin(admins.UpdateBank)).Methods(http.MethodPut)
	api.Handle("/banks/{id:[0-9]+}", asAdmin(admins.DeleteBank)).Methods(http.MethodDelete)

	// News
	api.Handle("/news", asAdmin(admins.CreateNews)).Methods(http.MethodPost)
	api.Handle("/news/{id:[0-9]+}", asAdmin(admins.UpdateNews)).Methods(http.MethodPut)
	api.Handle("/news/{id:[0-9]+}", asAdmin(admins.DeleteNews)).Methods(http.MethodDelete)

	// Notifications
	api.Handle("/notifications/all", asAdmin(admins.ListNotifications)).Methods(http.MethodGet)
	api.Handle("/notifications/send", asAdmin(admins.CreateNotification)).Methods(http.MethodPost)
	api.Handle("/notifications/broadcast", asAdmin(admins.BroadcastNotification)).Methods(http.MethodPost)
	api.Handle("/notifications/{id:[0-9]+}/admin", asAdmin(admins.DeleteNotification)).Methods(http.MethodDelete)

	// Settings
	api.Handle("/settings", asAdmin(admins.UpdateSettings)).Methods(http.MethodPut)

	// Monitoring
	api.Handle("/monitoring/resources", asAdmin(controllers.ResourcesHandler)).Methods(http.MethodGet)
}
