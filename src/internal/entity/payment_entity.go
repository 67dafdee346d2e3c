package entity

import "time"

// Payment method ids as seeded in payment_method.
const (
	PaymentMethodCash     int64 = 1
	PaymentMethodTransfer int64 = 2
	PaymentMethodCredit   int64 = 3
)

type Payment struct {
	PaymentID       int64     `db:"payment_id"`
	OrderID         int64     `db:"order_id"`
	PaymentMethodID int64     `db:"payment_method_id"`
	PaidAt          time.Time `db:"paid_at"`
}

// PaymentEvidence stores the verification payload of a bank transfer.
// TransRef carries a unique index; it is the duplicate-slip safeguard.
type PaymentEvidence struct {
	PaymentEvidenceID int64      `db:"payment_evidence_id"`
	PaymentID         int64      `db:"payment_id"`
	TransRef          string     `db:"trans_ref"`
	SenderName        *string    `db:"sender_name"`
	SenderBank        *string    `db:"sender_bank"`
	TransTimestamp    *time.Time `db:"trans_timestamp"`
	RawPayload        []byte     `db:"raw_payload"`
}

type PaymentCardEvidence struct {
	PaymentCardEvidenceID int64  `db:"payment_card_evidence_id"`
	PaymentID             int64  `db:"payment_id"`
	MaskedCardNumber      string `db:"masked_card_number"`
}
