package variation

import (
	"fmt"

	"restaurant-ordering-api/models"
)

// SelectResult reports the outcome of one select/deselect action.
// Cap rejections carry a user-facing warning; unknown options are
// silent no-ops (catalog data arrives asynchronously, so a stale
// option id must never blow up the session).
type SelectResult struct {
	Accepted bool   `json:"accepted"`
	Warning  string `json:"warning,omitempty"`
}

// Selector converts a VariationConfig plus a sequence of select and
// deselect actions into a validated selection state and a total price.
// One Selector serves one item configuration session; it is discarded
// once the selection has been converted into a cart item.
type Selector struct {
	config     models.VariationConfig
	selections models.VariationSelections
	warnings   []string
}

func NewSelector(cfg models.VariationConfig) *Selector {
	return &Selector{
		config: cfg,
		selections: models.VariationSelections{
			Simple:     []models.SelectedVariation{},
			Categories: map[string][]models.SelectedVariation{},
		},
	}
}

// SelectSimple applies a flat-modifier action. In single mode the new
// option replaces any previous choice; in multiple mode it toggles
// membership, bounded by TotalMaxSelections.
func (s *Selector) SelectSimple(v models.SimpleVariation) SelectResult {
	selected := models.SelectedVariation{
		OptionID:   v.ID,
		OptionName: v.Name,
		Price:      v.Price,
	}

	if s.config.SimpleSelection != models.SelectionMultiple {
		s.selections.Simple = []models.SelectedVariation{selected}
		return SelectResult{Accepted: true}
	}

	if idx := indexOf(s.selections.Simple, v.ID); idx >= 0 {
		s.selections.Simple = append(s.selections.Simple[:idx], s.selections.Simple[idx+1:]...)
		return SelectResult{Accepted: true}
	}

	if limit := s.config.TotalMaxSelections; limit > 0 && len(s.selections.Simple) >= limit {
		warning := fmt.Sprintf("max %d selections", limit)
		s.warnings = append(s.warnings, warning)
		return SelectResult{Warning: warning}
	}

	s.selections.Simple = append(s.selections.Simple, selected)
	return SelectResult{Accepted: true}
}

// SelectCategory applies an action against a category-bound option.
// Unknown category or option ids are silent no-ops.
func (s *Selector) SelectCategory(categoryID string, opt models.VariationOption) SelectResult {
	category := s.findCategory(categoryID)
	if category == nil || !categoryHasOption(*category, opt.ID) {
		return SelectResult{}
	}

	if !s.config.AllowMultipleCategories {
		// Selecting within one category clears the others.
		for id := range s.selections.Categories {
			if id != categoryID {
				delete(s.selections.Categories, id)
			}
		}
	}

	selected := models.SelectedVariation{
		CategoryID: categoryID,
		OptionID:   opt.ID,
		OptionName: opt.Name,
		Price:      opt.Price,
	}
	current := s.selections.Categories[categoryID]

	if category.Type != models.SelectionMultiple {
		s.selections.Categories[categoryID] = []models.SelectedVariation{selected}
		return SelectResult{Accepted: true}
	}

	if idx := indexOf(current, opt.ID); idx >= 0 {
		current = append(current[:idx], current[idx+1:]...)
		if len(current) == 0 {
			delete(s.selections.Categories, categoryID)
		} else {
			s.selections.Categories[categoryID] = current
		}
		return SelectResult{Accepted: true}
	}

	if limit := category.MaxSelections; limit > 0 && len(current) >= limit {
		warning := fmt.Sprintf("max %d selections for %s", limit, category.Name)
		s.warnings = append(s.warnings, warning)
		return SelectResult{Warning: warning}
	}

	s.selections.Categories[categoryID] = append(current, selected)
	return SelectResult{Accepted: true}
}

// SetConfig swaps in a recomputed configuration (e.g. after a catalog
// refetch) and prunes selections that no longer resolve, emitting a
// warning per pruned option.
func (s *Selector) SetConfig(cfg models.VariationConfig) {
	s.config = cfg

	kept := s.selections.Simple[:0]
	for _, sel := range s.selections.Simple {
		if simpleExists(cfg.SimpleVariations, sel.OptionID) {
			kept = append(kept, sel)
		} else {
			s.warnings = append(s.warnings, fmt.Sprintf("%s is no longer available", sel.OptionName))
		}
	}
	s.selections.Simple = kept

	for categoryID, sels := range s.selections.Categories {
		category := s.findCategory(categoryID)
		var remaining []models.SelectedVariation
		for _, sel := range sels {
			if category != nil && categoryHasOption(*category, sel.OptionID) {
				remaining = append(remaining, sel)
			} else {
				s.warnings = append(s.warnings, fmt.Sprintf("%s is no longer available", sel.OptionName))
			}
		}
		if len(remaining) == 0 {
			delete(s.selections.Categories, categoryID)
		} else {
			s.selections.Categories[categoryID] = remaining
		}
	}
}

// Validate recomputes the validation state: every required category
// with no selection contributes an error.
func (s *Selector) Validate() models.ValidationResult {
	result := models.ValidationResult{
		Errors:   []string{},
		Warnings: append([]string{}, s.warnings...),
	}
	for _, category := range s.config.Categories {
		if category.Required && len(s.selections.Categories[category.ID]) == 0 {
			result.Errors = append(result.Errors, category.Name+" is required")
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result
}

// TotalPrice is the base price plus every selected modifier. The sum
// is commutative, so the result is independent of selection order.
func (s *Selector) TotalPrice(basePrice float64) float64 {
	total := basePrice
	for _, sel := range s.selections.Simple {
		total += sel.Price
	}
	for _, sels := range s.selections.Categories {
		for _, sel := range sels {
			total += sel.Price
		}
	}
	return total
}

// Flatten produces the display form of the current selections: option
// names only, category headings dropped. Order follows the config, not
// the click sequence, so equal selection sets flatten identically.
func (s *Selector) Flatten() []string {
	var flat []string
	for _, sel := range s.selections.Simple {
		flat = append(flat, sel.OptionName)
	}
	for _, category := range s.config.Categories {
		for _, sel := range s.selections.Categories[category.ID] {
			flat = append(flat, sel.OptionName)
		}
	}
	return flat
}

// Selections returns a copy of the in-progress selection state.
func (s *Selector) Selections() models.VariationSelections {
	out := models.VariationSelections{
		Simple:     append([]models.SelectedVariation{}, s.selections.Simple...),
		Categories: map[string][]models.SelectedVariation{},
	}
	for id, sels := range s.selections.Categories {
		out.Categories[id] = append([]models.SelectedVariation{}, sels...)
	}
	return out
}

// CartItem converts the completed selection into a priced cart line.
// The unit price replaces the item's base price.
func (s *Selector) CartItem(id, title, image string, basePrice float64) models.CartItem {
	return models.CartItem{
		ID:         id,
		Title:      title,
		Image:      image,
		Price:      s.TotalPrice(basePrice),
		Quantity:   1,
		Variations: s.Flatten(),
	}
}

func (s *Selector) findCategory(id string) *models.VariationCategory {
	for i := range s.config.Categories {
		if s.config.Categories[i].ID == id {
			return &s.config.Categories[i]
		}
	}
	return nil
}

func categoryHasOption(category models.VariationCategory, optionID string) bool {
	for _, opt := range category.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

func simpleExists(variations []models.SimpleVariation, id string) bool {
	for _, v := range variations {
		if v.ID == id {
			return true
		}
	}
	return false
}

func indexOf(sels []models.SelectedVariation, optionID string) int {
	for i, sel := range sels {
		if sel.OptionID == optionID {
			return i
		}
	}
	return -1
}
