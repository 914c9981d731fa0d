package routes

import (
	"net/http"

	"smartduka/auth"
	"smartduka/booking"
	"smartduka/cart"
	"smartduka/middleware"
	"smartduka/orders"
	"smartduka/pay"
	"smartduka/products"
	"smartduka/ratelim"
	"smartduka/realtime"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler) {
	router.POST("/api/auth/register", ratelim.RateLimit(h.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(h.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.PUT("/api/profile", middleware.Authenticate(h.UpdateProfile))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:slug", products.GetProductBySlug)
	router.POST("/api/admin/products/:productid/image", middleware.Authenticate(products.UploadProductImage))
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.GET("/api/cart", middleware.OptionalAuth(h.GetState))
	router.POST("/api/cart", middleware.OptionalAuth(h.AddToCart))
	router.DELETE("/api/cart/:productid", middleware.OptionalAuth(h.RemoveFromCart))
	router.PATCH("/api/cart", middleware.OptionalAuth(h.UpdateQuantity))
	router.POST("/api/cart/clear", middleware.OptionalAuth(h.ClearCart))
	router.POST("/api/wishlist/:productid", middleware.OptionalAuth(h.ToggleWishlist))
	router.POST("/api/compare/:productid", middleware.OptionalAuth(h.ToggleCompare))
	router.DELETE("/api/compare", middleware.OptionalAuth(h.ClearCompare))
	router.POST("/api/checkout/state", middleware.OptionalAuth(h.UpdateCheckoutState))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler) {
	router.POST("/api/orders", ratelim.RateLimit(middleware.OptionalAuth(h.PlaceOrder)))
	router.GET("/api/orders", middleware.OptionalAuth(h.GetHistory))
	router.GET("/api/orders/:orderid", middleware.OptionalAuth(h.GetOrder))
	router.GET("/api/orders/:orderid/qr", h.TrackingQR)
	router.POST("/api/admin/orders/:orderid/dispatch", middleware.Authenticate(h.DispatchOrder))
	router.POST("/api/admin/orders/:orderid/deliver", middleware.Authenticate(h.MarkDelivered))
}

func AddPaymentRoutes(router *httprouter.Router, svc *pay.Service) {
	router.POST("/api/payments/stkpush", ratelim.RateLimit(middleware.OptionalAuth(svc.TriggerSTKPush)))
	router.POST("/api/payments/callback", svc.PaymentCallback)
}

func AddBookingRoutes(router *httprouter.Router) {
	router.POST("/api/installation/quote", booking.GetQuote)
	router.POST("/api/bookings", ratelim.RateLimit(booking.CreateBooking))
}

func AddRealtimeRoutes(router *httprouter.Router, ws *realtime.Handler, fleet *realtime.Fleet) {
	router.GET("/ws/orders/:orderid", ws.TrackOrder)
	router.POST("/api/admin/telemetry/:orderid/start", middleware.Authenticate(fleet.StartTelemetry))
	router.POST("/api/admin/telemetry/:orderid/stop", middleware.Authenticate(fleet.StopTelemetry))
}
