package entity

import "time"

// Order statuses. PENDING and REJECTED are legacy states still present in
// historical rows; new orders start at RECEIVED.
const (
	OrderStatusPending   = "pending"
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusRejected  = "rejected"
)

type Order struct {
	OrderID           int64      `db:"order_id"`
	BranchID          *int64     `db:"branch_id"`
	CustomerID        int64      `db:"customer_id"`
	CustomerAddressID int64      `db:"customer_address_id"`
	PromotionID       *int64     `db:"promotion_id"`
	CustomerNote      *string    `db:"customer_note"`
	OrderCode         string     `db:"order_code"`
	OrderStatus       string     `db:"order_status"`
	TotalAmount       float64    `db:"total_amount"`
	FloristPhotoURL   *string    `db:"florist_photo_url"`
	RiderPhotoURL     *string    `db:"rider_photo_url"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         *time.Time `db:"updated_at"`
}

// OrderDetail is the tracking view: one order joined with its branch and
// receiver address.
type OrderDetail struct {
	OrderID         int64   `db:"order_id"`
	OrderCode       string  `db:"order_code"`
	OrderStatus     string  `db:"order_status"`
	TotalAmount     float64 `db:"total_amount"`
	CustomerNote    *string `db:"customer_note"`
	BranchName      *string `db:"branch_name"`
	ReceiverName    *string `db:"receiver_name"`
	ReceiverPhone   *string `db:"receiver_phone"`
	ReceiverAddress *string `db:"receiver_address"`
}

// OrderCartLine is one shopping-cart row joined with product info and the
// aggregated customizations for tracking.
type OrderCartLine struct {
	ShoppingCartID  int64   `db:"shopping_cart_id"`
	ProductID       int64   `db:"product_id"`
	ProductName     string  `db:"product_name"`
	ProductTypeName string  `db:"product_type_name"`
	Qty             int     `db:"qty"`
	PriceTotal      float64 `db:"price_total"`
	Flowers         *string `db:"flowers"`
	VaseColorName   *string `db:"vase_color_name"`
}
