package models

import "time"

// Decision is the audit record of one pipeline run. Write-only from the
// request path; nothing reads it back into validation.
type Decision struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id,omitempty"`
	PartnerKey   string    `json:"partner_key"`
	PartnerRefNo string    `json:"partner_ref_no"`
	Accepted     bool      `json:"accepted"`
	Reason       string    `json:"reason,omitempty"`
	TotalAmount  int64     `json:"total_amount"`
	Discount     int64     `json:"discount"`
	FinalAmount  int64     `json:"final_amount"`
	CreatedAt    time.Time `json:"created_at"`
}
