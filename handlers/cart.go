package handlers

import (
	"net/http"

	"restaurant-ordering-api/cart"
	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// contextStore resolves the request's order context from its query
// signals and opens the cart bound to it. Each context's cart is
// isolated; carts never merge across contexts.
func (h *Handler) contextStore(c *gin.Context) (*cart.Store, bool) {
	ctx := cart.Resolve(cart.Signals{
		TypeHint: c.Query("type"),
		Table:    c.Query("table"),
		Area:     c.Query("area"),
	}, h.Identifiers)

	store, err := cart.NewStore(h.Carts, ctx)
	if err != nil {
		h.Logger.Error("cart load failed", zap.String("key", ctx.StorageKey()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return store, true
}

func cartResponse(store *cart.Store) gin.H {
	items := store.Items()
	return gin.H{
		"context":     store.Context(),
		"count":       len(items),
		"items":       items,
		"totalAmount": store.TotalAmount(),
	}
}

// GetCart returns the cart for the request's order context
func (h *Handler) GetCart(c *gin.Context) {
	store, ok := h.contextStore(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse(store))
}

// AddCartItem adds a priced line to the context's cart, merging into
// an existing line with the same identity
func (h *Handler) AddCartItem(c *gin.Context) {
	store, ok := h.contextStore(c)
	if !ok {
		return
	}

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.ID == "" || item.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart item requires id and title"})
		return
	}
	if item.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart item price cannot be negative"})
		return
	}

	if err := store.Add(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(store))
}

type UpdateQuantityRequest struct {
	ID         string   `json:"id" binding:"required"`
	Quantity   int      `json:"quantity"`
	Variations []string `json:"variations"`
}

// UpdateCartQuantity sets a line's quantity, floored at 1
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	store, ok := h.contextStore(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.UpdateQuantity(req.ID, req.Quantity, req.Variations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(store))
}

type RemoveItemRequest struct {
	ID         string   `json:"id" binding:"required"`
	Variations []string `json:"variations"`
}

// RemoveCartItem removes the lines matching (id, variations)
func (h *Handler) RemoveCartItem(c *gin.Context) {
	store, ok := h.contextStore(c)
	if !ok {
		return
	}

	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.Remove(req.ID, req.Variations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(store))
}

// ClearCart empties the cart for the request's context only
func (h *Handler) ClearCart(c *gin.Context) {
	store, ok := h.contextStore(c)
	if !ok {
		return
	}
	if err := store.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(store))
}
