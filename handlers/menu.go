package handlers

import (
	"net/http"

	"restaurant-ordering-api/models"
	"restaurant-ordering-api/variation"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the menu (public), optionally filtered by category
// or search term
func (h *Handler) GetMenu(c *gin.Context) {
	var items []models.MenuItem
	query := h.DB

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if inStock := c.Query("in_stock"); inStock == "true" {
		query = query.Where("status = ?", models.MenuStatusInStock)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// GetItems returns the menu items of a category mapped into normalized
// variation options, the form platter categories consume. An empty
// category yields an empty array, never an error.
func (h *Handler) GetItems(c *gin.Context) {
	var items []models.MenuItem
	query := h.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Find(&items)

	options := variation.OptionsFromMenuItems(items)
	c.JSON(http.StatusOK, gin.H{
		"count": len(options),
		"items": options,
	})
}

type MenuItemRequest struct {
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Price       float64                  `json:"price" binding:"required,min=0"`
	Category    string                   `json:"category"`
	Status      string                   `json:"status"`
	Image       string                   `json:"image"`
	IsPlatter   bool                     `json:"is_platter"`
	Variations  []models.SimpleVariation `json:"variations"`
}

// AddMenuItem creates a catalog item (admin only)
func (h *Handler) AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = models.MenuStatusInStock
	}

	item := models.MenuItem{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Status:      req.Status,
		Image:       req.Image,
		IsPlatter:   req.IsPlatter,
		Variations:  req.Variations,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": item})
}

// UpdateMenuItem updates a catalog item (admin only)
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.Title = req.Title
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	if req.Status != "" {
		item.Status = req.Status
	}
	item.Image = req.Image
	item.IsPlatter = req.IsPlatter
	item.Variations = req.Variations

	if err := h.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a catalog item (admin only)
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	if err := h.DB.Delete(&models.MenuItem{}, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
