package models

import "strings"

// SelectionMode controls how many options may be chosen at once
type SelectionMode string

const (
	SelectionSingle   SelectionMode = "single"
	SelectionMultiple SelectionMode = "multiple"
)

// VariationOption is one selectable modifier in its normalized form.
// Catalog items and legacy option shapes are converted into this type
// once at the boundary; the engine never branches on shape.
type VariationOption struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// VariationCategory groups options under a named heading (e.g. "Meat").
type VariationCategory struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Type          SelectionMode     `json:"type"`
	Required      bool              `json:"required"`
	MaxSelections int               `json:"maxSelections,omitempty"` // 0 means uncapped
	Options       []VariationOption `json:"options"`
}

// SimpleVariation is a flat modifier attached directly to a menu item.
type SimpleVariation struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// VariationConfig is the per-item selection configuration. In practice
// exactly one of SimpleVariations or Categories is populated (menu item
// vs. platter), though both are permitted.
type VariationConfig struct {
	SimpleVariations        []SimpleVariation   `json:"simpleVariations,omitempty"`
	SimpleSelection         SelectionMode       `json:"simpleSelection,omitempty"`
	Categories              []VariationCategory `json:"categories,omitempty"`
	AllowMultipleCategories bool                `json:"allowMultipleCategories"`
	TotalMaxSelections      int                 `json:"totalMaxSelections,omitempty"` // 0 means uncapped
}

// SelectedVariation is one chosen modifier. CategoryID is empty for
// simple variations.
type SelectedVariation struct {
	CategoryID string  `json:"categoryId,omitempty"`
	OptionID   string  `json:"optionId"`
	OptionName string  `json:"optionName"`
	Price      float64 `json:"price"`
}

// VariationSelections is the in-progress selection state for one item
// configuration session. It is discarded once converted into a CartItem.
type VariationSelections struct {
	Simple     []SelectedVariation            `json:"simple"`
	Categories map[string][]SelectedVariation `json:"categories"`
}

// ValidationResult is derived on every selection change, never stored.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// CartItem is the flattened, human-readable form of a completed
// selection. Price is the unit price after variations are applied.
type CartItem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Price      float64  `json:"price"`
	Quantity   int      `json:"quantity"`
	Image      string   `json:"image,omitempty"`
	Variations []string `json:"variations,omitempty"`
}

// OrderContext is the (orderType, identifier) pair that scopes a cart
// to a specific table, delivery area or pickup session.
type OrderContext struct {
	OrderType  OrderType `json:"orderType"`
	Identifier string    `json:"identifier"`
}

// StorageKey returns the persisted-cart key for this context.
// Whitespace in the identifier is replaced with underscores.
func (c OrderContext) StorageKey() string {
	sanitized := strings.Join(strings.Fields(c.Identifier), "_")
	return "cart-" + string(c.OrderType) + "-" + sanitized
}
