package models

import "time"

// OrderStatus represents all possible states of an order's lifecycle
type OrderStatus string

const (
	StatusReceived       OrderStatus = "Received"
	StatusPreparing      OrderStatus = "Preparing"
	StatusReady          OrderStatus = "Ready"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusCompleted      OrderStatus = "Completed"
	StatusCancelled      OrderStatus = "Cancelled"
)

// OrderType scopes an order to its fulfilment mode
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dinein"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type Order struct {
	ID             uint                 `json:"id" gorm:"primaryKey"`
	OrderNumber    string               `json:"orderNumber" gorm:"uniqueIndex;not null"`
	Status         OrderStatus          `json:"status" gorm:"not null;default:'Received'"`
	OrderType      OrderType            `json:"ordertype" gorm:"not null"`
	CustomerName   string               `json:"customerName"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	Area           string               `json:"area"`
	TableNumber    string               `json:"tableNumber"`
	PaymentMethod  string               `json:"paymentMethod"`
	DeliveryCharge float64              `json:"deliveryCharge"`
	TotalAmount    float64              `json:"totalAmount"`
	Items          []CartItem           `json:"items" gorm:"serializer:json"`
	StatusHistory  []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// OrderStatusHistory tracks every status change — audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
