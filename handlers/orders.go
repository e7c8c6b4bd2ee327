package handlers

import (
	"net/http"
	"strings"

	"restaurant-ordering-api/cart"
	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/models"
	"restaurant-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlaceOrderRequest struct {
	CustomerName   string            `json:"customerName" binding:"required"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Area           string            `json:"area"`
	TableNumber    string            `json:"tableNumber"`
	OrderType      models.OrderType  `json:"ordertype" binding:"required"`
	DeliveryCharge float64           `json:"deliveryCharge"`
	PaymentMethod  string            `json:"paymentMethod"`
	Items          []models.CartItem `json:"items" binding:"required,min=1"`
	TotalAmount    float64           `json:"totalAmount"`
}

// PlaceOrder submits a checkout. The order is created at Received; the
// submitting context's cart is cleared only after the order is safely
// persisted, so a failed submission never loses the cart.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.OrderType {
	case models.OrderTypeDineIn, models.OrderTypeDelivery, models.OrderTypePickup:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ordertype. Must be: dinein, delivery, or pickup"})
		return
	}
	if req.OrderType == models.OrderTypeDineIn && req.TableNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dine-in orders require a table number"})
		return
	}
	if req.OrderType == models.OrderTypeDelivery && req.Area == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery orders require an area"})
		return
	}

	// Server-side total: unit prices times quantities plus the
	// delivery charge. The client's figure is advisory only.
	var total float64
	for i, item := range req.Items {
		if item.Quantity < 1 {
			req.Items[i].Quantity = 1
			item.Quantity = 1
		}
		total += item.Price * float64(item.Quantity)
	}
	total += req.DeliveryCharge

	order := models.Order{
		OrderNumber:    newOrderNumber(),
		Status:         models.StatusReceived,
		OrderType:      req.OrderType,
		CustomerName:   req.CustomerName,
		Email:          req.Email,
		Phone:          req.Phone,
		Area:           req.Area,
		TableNumber:    req.TableNumber,
		PaymentMethod:  req.PaymentMethod,
		DeliveryCharge: req.DeliveryCharge,
		TotalAmount:    total,
		Items:          req.Items,
	}

	if err := h.DB.Create(&order).Error; err != nil {
		h.Logger.Error("order create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:  order.ID,
		ToStatus: models.StatusReceived,
		Note:     "Order placed by customer",
	}
	h.DB.Create(&history)

	// Clear the submitting context's cart now that the order exists.
	ctx := orderContext(order)
	if store, err := cart.NewStore(h.Carts, ctx); err == nil {
		if err := store.Clear(); err != nil {
			h.Logger.Warn("cart clear after checkout failed", zap.String("key", ctx.StorageKey()), zap.Error(err))
		}
	}

	h.Logger.Info("order placed",
		zap.String("orderNumber", order.OrderNumber),
		zap.String("ordertype", string(order.OrderType)),
		zap.Float64("totalAmount", order.TotalAmount),
	)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetOrderStatus is the customer tracking fetch: one order by number,
// or a table's active orders
func (h *Handler) GetOrderStatus(c *gin.Context) {
	if orderNumber := c.Query("orderNumber"); orderNumber != "" {
		var order models.Order
		if err := h.DB.Preload("StatusHistory").Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
		return
	}

	if tableID := c.Query("tableId"); tableID != "" {
		var orders []models.Order
		h.DB.Where("table_number = ? AND order_type = ?", tableID, models.OrderTypeDineIn).
			Order("created_at desc").
			Find(&orders)
		c.JSON(http.StatusOK, gin.H{"orders": orders})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "orderNumber or tableId query parameter required"})
}

// GetStaffOrders returns the dashboard order listing with a per-status
// summary (staff only)
func (h *Handler) GetStaffOrders(c *gin.Context) {
	var orders []models.Order
	query := h.DB

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if orderType := c.Query("type"); orderType != "" {
		query = query.Where("order_type = ?", orderType)
	}
	if active := c.Query("active"); active == "true" {
		query = query.Where("status NOT IN ?", []models.OrderStatus{models.StatusCompleted, models.StatusCancelled})
	}
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	OrderNumber string             `json:"orderNumber" binding:"required"`
	Status      models.OrderStatus `json:"status" binding:"required"`
	Note        string             `json:"note"`
}

// UpdateOrderStatus advances an order through the lifecycle (staff
// only). The transition is checked against the allowed-transition
// table before anything is written.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := h.DB.Where("order_number = ?", req.OrderNumber).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.OrderType, order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.OrderType, order.Status),
		})
		return
	}

	prevStatus := order.Status
	h.DB.Model(&order).Update("status", req.Status)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  middleware.GetUserID(c),
		Note:       req.Note,
	}
	h.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"orderNumber":     order.OrderNumber,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}

// GetStateMachineInfo returns the full lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	info := make([]gin.H, 0)
	for _, t := range statemachine.GetAllTransitions() {
		if t.From == t.To {
			continue
		}
		info = append(info, gin.H{"from": string(t.From), "to": string(t.To)})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{string(models.StatusCompleted), string(models.StatusCancelled)},
		"description":     "Restaurant Order Lifecycle State Machine",
	})
}

func orderContext(order models.Order) models.OrderContext {
	switch order.OrderType {
	case models.OrderTypeDineIn:
		return models.OrderContext{OrderType: order.OrderType, Identifier: order.TableNumber}
	case models.OrderTypeDelivery:
		return models.OrderContext{OrderType: order.OrderType, Identifier: order.Area}
	default:
		return models.OrderContext{OrderType: models.OrderTypePickup, Identifier: cart.PickupIdentifier}
	}
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
