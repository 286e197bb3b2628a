package models

// SubmitTransactionRequest is the inbound partner submission. All fields
// are caller-supplied and untrusted until the pipeline has run.
type SubmitTransactionRequest struct {
	PartnerKey      string       `json:"partnerKey"`
	PartnerRefNo    string       `json:"partnerRefNo"`
	PartnerPassword string       `json:"partnerPassword"` // base64-encoded secret
	TotalAmount     int64        `json:"totalAmount"`      // minor units (cents)
	Items           []ItemDetail `json:"items,omitempty"`
	Timestamp       string       `json:"timestamp"`
	Sig             string       `json:"sig"`
}

type ItemDetail struct {
	PartnerItemRef string `json:"partnerItemRef"`
	Name           string `json:"name"`
	Qty            int    `json:"qty"`
	UnitPrice      int64  `json:"unitPrice"` // minor units
}

// TransactionResponse is the wire reply. The optional fields are pointers
// so they are omitted, not emitted as null, when not applicable: amounts
// only on success, resultMessage only on rejection or informational
// replies.
type TransactionResponse struct {
	Result        int    `json:"result"` // 1 accepted, 0 rejected
	TotalAmount   *int64 `json:"totalAmount,omitempty"`
	TotalDiscount *int64 `json:"totalDiscount,omitempty"`
	FinalAmount   *int64 `json:"finalAmount,omitempty"`
	ResultMessage string `json:"resultMessage,omitempty"`
}

// Accepted builds a success response carrying the pricing.
func Accepted(total, discount, final int64) TransactionResponse {
	return TransactionResponse{
		Result:        1,
		TotalAmount:   &total,
		TotalDiscount: &discount,
		FinalAmount:   &final,
	}
}

// Rejected builds a failure response with a message only.
func Rejected(msg string) TransactionResponse {
	return TransactionResponse{Result: 0, ResultMessage: msg}
}
