package request

// OrderItem is one order line. Exactly one of ProductID and ServiceID
// must be set; the usecase enforces that.
type OrderItem struct {
	ProductID *string `json:"productId" validate:"omitempty,uuid4"`
	ServiceID *string `json:"serviceId" validate:"omitempty,uuid4"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}

type CreateOrder struct {
	Items []OrderItem `json:"items" validate:"required,min=1,dive"`
	Notes *string     `json:"notes" validate:"omitempty,max=500"`
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETED CANCELLED"`
}

type UpdatePaymentStatus struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=PENDING PAID FAILED"`
}
