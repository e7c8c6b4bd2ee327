package variation

import (
	"strconv"

	"restaurant-ordering-api/models"
)

// OptionsFromMenuItems maps catalog menu items into normalized
// variation options: id, title as name, price, and availability from
// the stock status. Used when a platter category binds catalog items.
func OptionsFromMenuItems(items []models.MenuItem) []models.VariationOption {
	options := make([]models.VariationOption, 0, len(items))
	for _, item := range items {
		options = append(options, models.VariationOption{
			ID:        strconv.FormatUint(uint64(item.ID), 10),
			Name:      item.Title,
			Price:     item.Price,
			Available: item.InStock(),
		})
	}
	return options
}

// NormalizeOption converts a raw option of either the current
// {id, name, price} shape or the legacy {uuid, title/name} shape into
// a VariationOption. The second return is false when the raw value
// carries no usable identity or name. All shape handling lives here;
// the selector engine only ever sees the normalized type.
func NormalizeOption(raw map[string]any) (models.VariationOption, bool) {
	opt := models.VariationOption{Available: true}

	if id, ok := stringField(raw, "id"); ok {
		opt.ID = id
	} else if uuid, ok := stringField(raw, "uuid"); ok {
		opt.ID = uuid
	}

	if name, ok := stringField(raw, "name"); ok {
		opt.Name = name
	} else if title, ok := stringField(raw, "title"); ok {
		opt.Name = title
	}

	if price, ok := raw["price"]; ok {
		switch v := price.(type) {
		case float64:
			opt.Price = v
		case int:
			opt.Price = float64(v)
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				opt.Price = parsed
			}
		}
	}
	if opt.Price < 0 {
		opt.Price = 0
	}

	if available, ok := raw["available"].(bool); ok {
		opt.Available = available
	} else if status, ok := stringField(raw, "status"); ok {
		opt.Available = status == models.MenuStatusInStock
	}

	if opt.ID == "" || opt.Name == "" {
		return models.VariationOption{}, false
	}
	return opt, true
}

// NormalizeOptions filters and converts a raw option list, dropping
// entries NormalizeOption rejects.
func NormalizeOptions(raw []map[string]any) []models.VariationOption {
	options := make([]models.VariationOption, 0, len(raw))
	for _, r := range raw {
		if opt, ok := NormalizeOption(r); ok {
			options = append(options, opt)
		}
	}
	return options
}

func stringField(raw map[string]any, key string) (string, bool) {
	v, ok := raw[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
