package model

type BranchFilterRequest struct {
	RegionID *int64 `query:"region_id"`
}

type VaseFilterRequest struct {
	ProductTypeID int64 `query:"product_type_id"`
}

// SlipVerification is the structured result of the external slip checker,
// forwarded to the storefront together with the duplicate flag.
type SlipVerification struct {
	Success        bool    `json:"success"`
	Amount         float64 `json:"amount"`
	TransRef       string  `json:"trans_ref"`
	SenderName     string  `json:"sender_name"`
	SenderBank     string  `json:"sender_bank"`
	TransTimestamp string  `json:"trans_timestamp"`
	RawPayload     []byte  `json:"-"`
}

type CheckSlipResponse struct {
	Verification SlipVerification `json:"verification"`
	Duplicate    bool             `json:"duplicate"`
}
