package handlers

import (
	"net/http"

	"restaurant-ordering-api/models"
	"restaurant-ordering-api/variation"

	"github.com/gin-gonic/gin"
)

type CategoryChoice struct {
	CategoryID string `json:"categoryId" binding:"required"`
	OptionID   string `json:"optionId" binding:"required"`
}

type PriceQuoteRequest struct {
	BasePrice  float64                `json:"basePrice" binding:"min=0"`
	Config     models.VariationConfig `json:"config"`
	Simple     []string               `json:"simple"`
	Categories []CategoryChoice       `json:"categories"`
}

// PriceQuote replays a selection set through the selector engine and
// returns the validated state with its total price. Unknown option ids
// are ignored, matching the engine's stale-catalog behavior.
func (h *Handler) PriceQuote(c *gin.Context) {
	var req PriceQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selector := variation.NewSelector(req.Config)

	for _, id := range req.Simple {
		for _, v := range req.Config.SimpleVariations {
			if v.ID == id {
				selector.SelectSimple(v)
				break
			}
		}
	}
	for _, choice := range req.Categories {
		for _, category := range req.Config.Categories {
			if category.ID != choice.CategoryID {
				continue
			}
			for _, opt := range category.Options {
				if opt.ID == choice.OptionID {
					selector.SelectCategory(category.ID, opt)
					break
				}
			}
			break
		}
	}

	result := selector.Validate()
	c.JSON(http.StatusOK, gin.H{
		"isValid":    result.IsValid,
		"errors":     result.Errors,
		"warnings":   result.Warnings,
		"totalPrice": selector.TotalPrice(req.BasePrice),
		"variations": selector.Flatten(),
		"selections": selector.Selections(),
	})
}
