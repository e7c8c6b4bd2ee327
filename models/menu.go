package models

import "time"

// MenuItemStatus values stored on catalog items
const (
	MenuStatusInStock    = "in stock"
	MenuStatusOutOfStock = "out of stock"
)

type MenuItem struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description"`
	Price       float64           `json:"price" gorm:"not null"`
	Category    string            `json:"category" gorm:"index"`
	Status      string            `json:"status" gorm:"default:'in stock'"`
	Image       string            `json:"image"`
	IsPlatter   bool              `json:"is_platter" gorm:"default:false"`
	Variations  []SimpleVariation `json:"variations,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// InStock reports whether the item is currently orderable
func (m MenuItem) InStock() bool {
	return m.Status == MenuStatusInStock
}
