package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veripay/partner-gateway/internal/models"
	repo "github.com/veripay/partner-gateway/internal/repository"
)

type decisionsRepo struct{ pool *pgxpool.Pool }

func NewDecisions(pool *pgxpool.Pool) repo.Decisions {
	return &decisionsRepo{pool}
}

func (r *decisionsRepo) Create(ctx context.Context, d models.Decision) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO partner_decisions
		   (id, request_id, partner_key, partner_ref_no, accepted, reason,
		    total_amount, discount, final_amount, created_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		d.ID, d.RequestID, d.PartnerKey, d.PartnerRefNo, d.Accepted, d.Reason,
		d.TotalAmount, d.Discount, d.FinalAmount, d.CreatedAt,
	)
	return err
}
