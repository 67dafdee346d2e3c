package model

type Event interface {
	GetId() string
}

type OrderCreatedEvent struct {
	EventID       string  `json:"event_id"`
	OrderID       int64   `json:"order_id"`
	OrderCode     string  `json:"order_code"`
	BranchID      *int64  `json:"branch_id,omitempty"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
}

func (e *OrderCreatedEvent) GetId() string {
	return e.EventID
}
