package entity

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func ParseOrderStatus(value string) (OrderStatus, bool) {
	switch OrderStatus(value) {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(value), true
	default:
		return "", false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

func ParsePaymentStatus(value string) (PaymentStatus, bool) {
	switch PaymentStatus(value) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return PaymentStatus(value), true
	default:
		return "", false
	}
}

// Order is a customer purchase. TotalAmount always equals the sum of
// its item subtotals.
type Order struct {
	Base
	OrderNumber   string        `db:"order_number"`
	CustomerID    uuid.UUID     `db:"customer_id"`
	TotalAmount   float64       `db:"total_amount"`
	Status        OrderStatus   `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	Notes         *string       `db:"notes"`
}

// OrderItem references exactly one of a product or a service.
type OrderItem struct {
	BaseSimple
	OrderID   uuid.UUID  `db:"order_id"`
	ProductID *uuid.UUID `db:"product_id"`
	ServiceID *uuid.UUID `db:"service_id"`
	Quantity  int        `db:"quantity"`
	Price     float64    `db:"price"`
	Subtotal  float64    `db:"subtotal"`
}
