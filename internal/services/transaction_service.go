package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/veripay/partner-gateway/internal/metrics"
	"github.com/veripay/partner-gateway/internal/middleware"
	"github.com/veripay/partner-gateway/internal/models"
	"github.com/veripay/partner-gateway/internal/pipeline"
	repo "github.com/veripay/partner-gateway/internal/repository"
	"github.com/veripay/partner-gateway/internal/worker"
)

// TransactionService runs the validation pipeline and handles the
// cross-cutting fallout of a decision: metrics and the async audit trail.
// The decision itself is synchronous; only the audit write goes through
// the worker pool.
type TransactionService struct {
	pipe *pipeline.Pipeline
	sink repo.Decisions // nil when no audit store is configured
	wp   *worker.Pool
}

func NewTransactionService(pipe *pipeline.Pipeline, sink repo.Decisions, wp *worker.Pool) *TransactionService {
	return &TransactionService{pipe: pipe, sink: sink, wp: wp}
}

func (s *TransactionService) Submit(ctx context.Context, req models.SubmitTransactionRequest) pipeline.Outcome {
	out := s.pipe.Evaluate(req)

	if out.Accepted {
		metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	} else {
		metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		metrics.SubmissionRejections.WithLabelValues(string(out.Reason)).Inc()
	}

	s.audit(ctx, req, out)
	return out
}

func (s *TransactionService) audit(ctx context.Context, req models.SubmitTransactionRequest, out pipeline.Outcome) {
	if s.sink == nil {
		return
	}
	rec := models.Decision{
		ID:           uuid.NewString(),
		RequestID:    middleware.RequestIDFrom(ctx),
		PartnerKey:   req.PartnerKey,
		PartnerRefNo: req.PartnerRefNo,
		Accepted:     out.Accepted,
		Reason:       string(out.Reason),
		TotalAmount:  req.TotalAmount,
		Discount:     out.Discount,
		FinalAmount:  out.FinalAmount,
		CreatedAt:    time.Now().UTC(),
	}
	s.wp.Submit(func() {
		// detached from the request context: the record outlives the call
		if err := s.sink.Create(context.Background(), rec); err != nil {
			slog.Error("decision audit write", "err", err, "partner_key", rec.PartnerKey)
		}
	})
}
