// Package pipeline implements the transaction validation and pricing
// pipeline: freshness, partner authentication, signature verification,
// line-item consistency, then discount computation. The steps run in that
// fixed order and short-circuit on the first failure, so a request failing
// several checks is always reported for the earliest one.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/veripay/partner-gateway/internal/models"
	"github.com/veripay/partner-gateway/internal/partner"
)

// Pipeline is pure and stateless: every input is a per-call value except
// the credential store, which is immutable after startup. Safe for
// concurrent use.
type Pipeline struct {
	store *partner.Store
	now   func() time.Time
}

func New(store *partner.Store, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{store: store, now: now}
}

// Evaluate runs the validation sequence over a parsed request and returns
// exactly one outcome. It never panics across the boundary: an unexpected
// internal fault becomes a rejection, not a crash or a false accept.
func (p *Pipeline) Evaluate(req models.SubmitTransactionRequest) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("pipeline fault", "err", rec)
			out = rejected(&Rejection{ReasonInternal, msgInternal})
		}
	}()

	ts, rej := CheckFreshness(req.Timestamp, p.now())
	if rej != nil {
		return rejected(rej)
	}
	if rej := Authenticate(p.store, req.PartnerKey, req.PartnerPassword); rej != nil {
		return rejected(rej)
	}
	if rej := VerifySignature(req.Sig, ts, req.PartnerKey, req.PartnerRefNo, req.TotalAmount, req.PartnerPassword); rej != nil {
		return rejected(rej)
	}
	if len(req.Items) > 0 {
		if rej := CheckItems(req.Items, req.TotalAmount); rej != nil {
			return rejected(rej)
		}
	}

	discount, final := Discount(req.TotalAmount)
	return Outcome{
		Accepted:    true,
		TotalAmount: req.TotalAmount,
		Discount:    discount,
		FinalAmount: final,
	}
}
