package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"digistore/controllers"
	"digistore/controllers/auth"
	"digistore/controllers/users"
	"digistore/middleware"
)

// UsersRoutes registers the public and authenticated (non-admin) surface.
func UsersRoutes(api *mux.Router) {
	// login/register get a tighter window than the rest of the API
	authLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	apiLimiter := middleware.NewIPRateLimiter(200, time.Minute)

	withAuth := func(h http.HandlerFunc) http.Handler {
		return apiLimiter.Middleware(middleware.AuthMiddleware(h))
	}
	public := func(h http.HandlerFunc) http.Handler {
		return apiLimiter.Middleware(h)
	}

	// Auth
	api.Handle("/auth/register", authLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/auth/login", authLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/auth/refresh", authLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/auth/logout", withAuth(auth.LogoutHandler)).Methods(http.MethodPost)
	api.Handle("/auth/me", withAuth(auth.MeHandler)).Methods(http.MethodGet)

	// Profile
	api.Handle("/users/profile", withAuth(users.GetProfile)).Methods(http.MethodGet)
	api.Handle("/users/profile", withAuth(users.UpdateProfile)).Methods(http.MethodPut)
	api.Handle("/users/change-password", withAuth(users.ChangePassword)).Methods(http.MethodPost)

	// Public catalog
	api.Handle("/categories", public(controllers.ListCategories)).Methods(http.MethodGet)
	api.Handle("/categories/slug/{slug}", public(controllers.GetCategoryBySlug)).Methods(http.MethodGet)
	api.Handle("/categories/{id:[0-9]+}", public(controllers.GetCategory)).Methods(http.MethodGet)
	api.Handle("/products", public(controllers.ListProducts)).Methods(http.MethodGet)
	api.Handle("/products/slug/{slug}", public(controllers.GetProductBySlug)).Methods(http.MethodGet)
	api.Handle("/products/{id:[0-9]+}", public(controllers.GetProduct)).Methods(http.MethodGet)
	api.Handle("/products/{id:[0-9]+}/variants", public(controllers.GetVariantsByProduct)).Methods(http.MethodGet)
	api.Handle("/variants/sku/{sku}", public(controllers.GetVariantBySKU)).Methods(http.MethodGet)
	api.Handle("/variants/{id:[0-9]+}", public(controllers.GetVariant)).Methods(http.MethodGet)

	// Public content
	api.Handle("/news", public(controllers.ListNews)).Methods(http.MethodGet)
	api.Handle("/news/slug/{slug}", public(controllers.GetNewsBySlug)).Methods(http.MethodGet)
	api.Handle("/news/{id:[0-9]+}", public(controllers.GetNews)).Methods(http.MethodGet)
	api.Handle("/banks", public(controllers.ListBanks)).Methods(http.MethodGet)
	api.Handle("/banks/{id:[0-9]+}", public(controllers.GetBank)).Methods(http.MethodGet)
	api.Handle("/settings", public(controllers.GetSettings)).Methods(http.MethodGet)
	api.Handle("/coupons/active", public(controllers.ListActiveCoupons)).Methods(http.MethodGet)

	// Public reviews
	api.Handle("/reviews", public(controllers.ListReviews)).Methods(http.MethodGet)
	api.Handle("/reviews/transaction/{transaction_id:[0-9]+}", public(controllers.GetReviewByTransaction)).Methods(http.MethodGet)
	api.Handle("/reviews/{id:[0-9]+}", public(controllers.GetReview)).Methods(http.MethodGet)

	// Cart
	api.Handle("/cart", withAuth(users.GetCart)).Methods(http.MethodGet)
	api.Handle("/cart", withAuth(users.AddToCart)).Methods(http.MethodPost)
	api.Handle("/cart/check-all", withAuth(users.ToggleCheckAll)).Methods(http.MethodPut)
	api.Handle("/cart/{id:[0-9]+}", withAuth(users.UpdateCartLine)).Methods(http.MethodPut)
	api.Handle("/cart/{id:[0-9]+}", withAuth(users.DeleteCartLine)).Methods(http.MethodDelete)
	api.Handle("/cart", withAuth(users.ClearCart)).Methods(http.MethodDelete)

	// Coupons (strict validation path)
	api.Handle("/coupons/validate", withAuth(users.ValidateCoupon)).Methods(http.MethodPost)

	// Transactions
	api.Handle("/transactions/checkout", withAuth(users.CheckoutHandler)).Methods(http.MethodPost)
	api.Handle("/transactions/my-transactions", withAuth(users.MyTransactions)).Methods(http.MethodGet)
	api.Handle("/transactions/invoice/{invoice}", withAuth(users.GetTransactionByInvoice)).Methods(http.MethodGet)
	api.Handle("/transactions/{id:[0-9]+}", withAuth(users.GetTransaction)).Methods(http.MethodGet)
	api.Handle("/transactions/{id:[0-9]+}/cancel", withAuth(users.CancelTransaction)).Methods(http.MethodPost)

	// Order items (own)
	api.Handle("/order-items/my", withAuth(users.MyOrderItems)).Methods(http.MethodGet)

	// Notifications
	api.Handle("/notifications", withAuth(users.MyNotifications)).Methods(http.MethodGet)
	api.Handle("/notifications/{id:[0-9]+}", withAuth(users.GetNotification)).Methods(http.MethodGet)
	api.Handle("/notifications", withAuth(users.DeleteMyNotifications)).Methods(http.MethodDelete)

	// Reviews (write)
	api.Handle("/reviews", withAuth(users.CreateReview)).Methods(http.MethodPost)
	api.Handle("/reviews/{id:[0-9]+}", withAuth(users.UpdateReview)).Methods(http.MethodPut)
	api.Handle("/reviews/{id:[0-9]+}", withAuth(users.DeleteReview)).Methods(http.MethodDelete)
}
