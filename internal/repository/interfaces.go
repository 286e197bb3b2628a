package repository

import (
	"context"

	"github.com/veripay/partner-gateway/internal/models"
)

// Decisions is the audit sink for pipeline outcomes. Write-only: nothing
// in the request path reads decisions back.
type Decisions interface {
	Create(ctx context.Context, d models.Decision) error
}
