package routes

import (
	"restaurant-ordering-api/handlers"
	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Catalog (no auth needed)
		public.GET("/menu", h.GetMenu)
		public.GET("/items", h.GetItems)

		// Pricing
		public.POST("/price-quote", h.PriceQuote)

		// Cart, scoped by order context (type/table/area query signals)
		public.GET("/cart", h.GetCart)
		public.POST("/cart/items", h.AddCartItem)
		public.PUT("/cart/items/quantity", h.UpdateCartQuantity)
		public.DELETE("/cart/items", h.RemoveCartItem)
		public.DELETE("/cart", h.ClearCart)

		// Checkout and tracking
		public.POST("/orders", h.PlaceOrder)
		public.GET("/order-status", h.GetOrderStatus)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", h.GetProfile)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api/staff")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
	{
		staff.GET("/orders", h.GetStaffOrders)
		staff.PUT("/updateorderstatus", h.UpdateOrderStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/menu", h.AddMenuItem)
		admin.PUT("/menu/:itemId", h.UpdateMenuItem)
		admin.DELETE("/menu/:itemId", h.DeleteMenuItem)

		admin.GET("/orders", h.AdminGetAllOrders)
		admin.PUT("/orders/force-status", h.AdminForceOrderStatus)
		admin.GET("/users", h.AdminGetAllUsers)
	}
}
