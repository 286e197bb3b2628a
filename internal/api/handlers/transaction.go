package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/veripay/partner-gateway/internal/api/httpx"
	"github.com/veripay/partner-gateway/internal/api/validate"
	"github.com/veripay/partner-gateway/internal/logredact"
	"github.com/veripay/partner-gateway/internal/models"
	"github.com/veripay/partner-gateway/internal/pipeline"
	"github.com/veripay/partner-gateway/internal/services"
)

type TransactionHandler struct {
	Svc *services.TransactionService
	Now func() time.Time
}

func NewTransactionHandler(svc *services.TransactionService, now func() time.Time) *TransactionHandler {
	if now == nil {
		now = time.Now
	}
	return &TransactionHandler{Svc: svc, Now: now}
}

// Submit handles POST /api/submittrxmessage: decode, field-presence
// validation, pipeline, render. The pipeline decides; this layer only
// translates its outcome to HTTP.
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, models.Rejected("Invalid request body."))
		return
	}

	slog.Info("transaction received",
		"partner_key", req.PartnerKey,
		"partner_ref_no", req.PartnerRefNo,
		"body", logredact.JSON(logredact.Request(req)),
	)

	if errs := validateSubmit(req); len(errs) > 0 {
		resp := models.Rejected(errs.Error())
		slog.Warn("model validation failed", "response", logredact.JSON(resp))
		httpx.WriteJSON(w, http.StatusBadRequest, resp)
		return
	}

	out := h.Svc.Submit(r.Context(), req)
	h.respond(w, out)
}

func (h *TransactionHandler) respond(w http.ResponseWriter, out pipeline.Outcome) {
	if out.Accepted {
		httpx.WriteJSON(w, http.StatusOK, models.Accepted(out.TotalAmount, out.Discount, out.FinalAmount))
		return
	}
	// Both authentication reasons collapse to the same denial on the wire;
	// the distinct reason stays in logs and metrics only.
	if out.Reason.AuthFailure() {
		slog.Warn("submission rejected", "reason", out.Reason)
		httpx.WriteJSON(w, http.StatusUnauthorized, models.Rejected("Access Denied!"))
		return
	}
	status := http.StatusBadRequest
	if out.Reason == pipeline.ReasonInternal {
		status = http.StatusInternalServerError
	}
	slog.Warn("submission rejected", "reason", out.Reason, "message", out.Message)
	httpx.WriteJSON(w, status, models.Rejected(out.Message))
}

// Ping is the partners' clock-sync helper: returns the server time in the
// signature layout and in ISO 8601.
func (h *TransactionHandler) Ping(w http.ResponseWriter, r *http.Request) {
	now := h.Now().UTC()
	resp := models.TransactionResponse{
		Result: 1,
		ResultMessage: "SERVER TIME NOW: " + now.Format("20060102150405") +
			" & " + now.Format(time.RFC3339),
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Field-presence/range checks mirrored from the original request contract.
// Range and cross-field semantics beyond presence belong to the pipeline.
func validateSubmit(req models.SubmitTransactionRequest) validate.Errs {
	var errs validate.Errs
	add := func(e *validate.ErrField) {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	add(validate.Required("partnerKey", req.PartnerKey))
	add(validate.MaxLen("partnerKey", req.PartnerKey, 50))
	add(validate.Required("partnerRefNo", req.PartnerRefNo))
	add(validate.MaxLen("partnerRefNo", req.PartnerRefNo, 50))
	add(validate.Required("partnerPassword", req.PartnerPassword))
	add(validate.MaxLen("partnerPassword", req.PartnerPassword, 50))
	add(validate.MinInt("totalAmount", req.TotalAmount, 1))
	add(validate.Required("timestamp", req.Timestamp))
	add(validate.Required("sig", req.Sig))
	for _, it := range req.Items {
		add(validate.Required("items.partnerItemRef", it.PartnerItemRef))
		add(validate.MaxLen("items.partnerItemRef", it.PartnerItemRef, 50))
		add(validate.Required("items.name", it.Name))
		add(validate.MaxLen("items.name", it.Name, 100))
		add(validate.IntRange("items.qty", int64(it.Qty), 1, 5))
		add(validate.MinInt("items.unitPrice", it.UnitPrice, 1))
	}
	return errs
}
