package entity

import "time"

type OrderStatus string

const (
	OrderIncoming  OrderStatus = "incoming"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderRejected  OrderStatus = "rejected"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderIncoming, OrderPreparing, OrderReady, OrderCompleted, OrderRejected,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type OrderType string

const (
	OrderDelivery OrderType = "delivery"
	OrderPickup   OrderType = "pickup"
	OrderDineIn   OrderType = "dine_in"
)

// OrderLine is a denormalized snapshot of a purchased position,
// not a live reference into the menu.
type OrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type Customer struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Floor     string `json:"floor,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// Order lives through incoming -> preparing -> ready -> completed, or is
// rejected straight from incoming. Each lifecycle timestamp is set exactly
// once, when the status first advances past the corresponding state; the
// rejected path and the accepted path are mutually exclusive.
type Order struct {
	ID          string      `json:"id"`
	OrderNumber int         `json:"orderNumber"`
	Status      OrderStatus `json:"status"`
	OrderType   OrderType   `json:"orderType"`
	Customer    Customer    `json:"customer"`
	Items       []OrderLine `json:"items"`
	ItemsCount  int         `json:"itemsCount"`
	TotalPrice  int64       `json:"totalPrice"`
	DeliveryFee int64       `json:"deliveryFee"`

	CreatedAt    time.Time  `json:"createdAt"`
	AcceptedAt   *time.Time `json:"acceptedAt,omitempty"`
	ReadyAt      *time.Time `json:"readyAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	RejectedAt   *time.Time `json:"rejectedAt,omitempty"`
	RejectReason string     `json:"rejectReason,omitempty"`
}
