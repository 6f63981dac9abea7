package response

import (
	"time"

	"petconnect/internal/data/entity"
)

type OrderItem struct {
	ID        string  `json:"id"`
	ProductID *string `json:"productId,omitempty"`
	ServiceID *string `json:"serviceId,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	CustomerID    string      `json:"customerId"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	Notes         *string     `json:"notes,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func FromOrderItem(item *entity.OrderItem) OrderItem {
	out := OrderItem{
		ID:       item.ID.String(),
		Quantity: item.Quantity,
		Price:    item.Price,
		Subtotal: item.Subtotal,
	}
	if item.ProductID != nil {
		id := item.ProductID.String()
		out.ProductID = &id
	}
	if item.ServiceID != nil {
		id := item.ServiceID.String()
		out.ServiceID = &id
	}
	return out
}

func FromOrder(order *entity.Order, items []*entity.OrderItem) Order {
	out := Order{
		ID:            order.ID.String(),
		OrderNumber:   order.OrderNumber,
		CustomerID:    order.CustomerID.String(),
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	for _, item := range items {
		out.Items = append(out.Items, FromOrderItem(item))
	}
	return out
}

func FromOrders(orders []*entity.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromOrder(order, nil))
	}
	return out
}
