package model

import "encoding/json"

// Payment method discriminators. Exactly one evidence payload accompanies
// the matching method; the usecase checks the pairing exhaustively.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCredit   = "credit"
)

type SubmitOrderRequest struct {
	BranchID     *int64            `json:"branch_id"`
	BranchName   string            `json:"branch,omitempty" validate:"max=100"`
	Pickup       bool              `json:"pickup"`
	Customer     CustomerPayload   `json:"customer"`
	Receiver     *ReceiverPayload  `json:"receiver"`
	PromotionID  *int64            `json:"promotion_id"`
	CustomerNote string            `json:"customer_note" validate:"max=500"`
	TotalAmount  float64           `json:"total_amount" validate:"gte=0"`
	Payment      PaymentPayload    `json:"payment"`
	Items        []CartItemPayload `json:"items" validate:"required,min=1,dive"`
}

type CustomerPayload struct {
	Name  string `json:"name" validate:"max=100"`
	Phone string `json:"phone" validate:"max=20"`
}

type ReceiverPayload struct {
	Name       string `json:"name" validate:"max=100"`
	Phone      string `json:"phone" validate:"max=20"`
	Address    string `json:"address" validate:"max=500"`
	ProvinceID *int64 `json:"province_id"`
}

// PaymentPayload is a tagged union over {cash, transfer, credit}.
type PaymentPayload struct {
	Method   string                   `json:"method" validate:"required,oneof=cash transfer credit"`
	Transfer *TransferEvidencePayload `json:"transfer,omitempty"`
	Card     *CardEvidencePayload     `json:"card,omitempty"`
}

// TransferEvidencePayload carries the verification result the slip checker
// returned for a bank/QR transfer.
type TransferEvidencePayload struct {
	TransRef       string          `json:"trans_ref" validate:"required,max=100"`
	SenderName     string          `json:"sender_name" validate:"max=100"`
	SenderBank     string          `json:"sender_bank" validate:"max=100"`
	TransTimestamp string          `json:"trans_timestamp"`
	RawPayload     json.RawMessage `json:"raw_payload"`
}

type CardEvidencePayload struct {
	CardNumber string `json:"card_number" validate:"required,min=8,max=23"`
}

type CartItemPayload struct {
	ProductID      int64   `json:"product_id" validate:"required"`
	Qty            int     `json:"qty" validate:"gte=0"`
	PriceTotal     float64 `json:"price_total" validate:"gte=0"`
	BouquetStyleID *int64  `json:"bouquet_style_id"`
	VaseColorID    *int64  `json:"vase_color_id"`
	FlowerTypeIDs  []int64 `json:"flowers"`
}

type SubmitOrderResponse struct {
	OrderID   int64  `json:"order_id"`
	OrderCode string `json:"order_code"`
}

type TrackOrderRequest struct {
	OrderCode string `json:"order_code" validate:"required,len=11,startswith=ORD"`
}

type TrackOrderResponse struct {
	Order   OrderSummary   `json:"order"`
	Records []CartLineView `json:"records"`
}

type OrderSummary struct {
	OrderID         int64   `json:"order_id"`
	OrderCode       string  `json:"order_code"`
	OrderStatus     string  `json:"order_status"`
	TotalAmount     float64 `json:"total_amount"`
	CustomerNote    string  `json:"customer_note,omitempty"`
	BranchName      string  `json:"branch_name,omitempty"`
	ReceiverName    string  `json:"receiver_name,omitempty"`
	ReceiverPhone   string  `json:"receiver_phone,omitempty"`
	ReceiverAddress string  `json:"receiver_address,omitempty"`
}

type CartLineView struct {
	ShoppingCartID  int64   `json:"shopping_cart_id"`
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductTypeName string  `json:"product_type_name"`
	Qty             int     `json:"qty"`
	PriceTotal      float64 `json:"price_total"`
	Flowers         string  `json:"flowers,omitempty"`
	VaseColorName   string  `json:"vase_color_name,omitempty"`
}

type UpdateOrderStatusRequest struct {
	OrderCode string `json:"-" validate:"required,len=11,startswith=ORD"`
	Status    string `json:"status" validate:"required,oneof=received preparing shipping delivered rejected"`
}

type UpdateOrderStatusResponse struct {
	OrderCode string `json:"order_code"`
	Status    string `json:"status"`
}
