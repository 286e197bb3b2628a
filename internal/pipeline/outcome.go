package pipeline

// Reason identifies which validation step rejected a submission.
type Reason string

const (
	ReasonMalformedTimestamp  Reason = "malformed_timestamp"
	ReasonExpired             Reason = "expired"
	ReasonAccessDenied        Reason = "access_denied"
	ReasonMalformedCredential Reason = "malformed_credential"
	ReasonSignatureMismatch   Reason = "signature_mismatch"
	ReasonInvalidQuantity     Reason = "invalid_quantity"
	ReasonInvalidUnitPrice    Reason = "invalid_unit_price"
	ReasonAmountMismatch      Reason = "amount_mismatch"
	ReasonInternal            Reason = "internal_error"
)

// Partner-facing messages, kept stable for interoperability.
const (
	msgMalformedTimestamp  = "Timestamp is invalid or missing."
	msgExpired             = "Expired."
	msgAccessDenied        = "Access Denied!"
	msgMalformedCredential = "PartnerPassword is not a valid Base64 string."
	msgInvalidTotal        = "Invalid Total Amount."
	msgInternal            = "Unexpected error."
)

// Rejection is a terminal validation failure. Steps return nil on success.
type Rejection struct {
	Reason  Reason
	Message string
}

// Outcome is the pipeline's tagged result: either an accepted submission
// with its pricing, or a rejection with a reason. Never both.
type Outcome struct {
	Accepted    bool
	TotalAmount int64
	Discount    int64
	FinalAmount int64
	Reason      Reason
	Message     string
}

func rejected(rej *Rejection) Outcome {
	return Outcome{Reason: rej.Reason, Message: rej.Message}
}

// AuthFailure reports whether the reason is an authentication failure.
// MalformedCredential is deliberately distinct for diagnosis, but callers
// must render it as a generic denial.
func (r Reason) AuthFailure() bool {
	return r == ReasonAccessDenied || r == ReasonMalformedCredential
}
