package pipeline

import (
	"fmt"

	"github.com/veripay/partner-gateway/internal/models"
)

// CheckItems validates each line item and cross-checks the declared total
// against the accumulated item sum. Callers skip this step entirely when no
// items were submitted; the declared total is then trusted as-is.
func CheckItems(items []models.ItemDetail, declaredTotal int64) *Rejection {
	var sum int64
	for _, it := range items {
		if it.Qty <= 0 {
			return &Rejection{ReasonInvalidQuantity,
				fmt.Sprintf("Item %s has invalid quantity (must be positive).", it.PartnerItemRef)}
		}
		if it.UnitPrice <= 0 {
			return &Rejection{ReasonInvalidUnitPrice,
				fmt.Sprintf("Item %s has invalid unit price (must be positive).", it.PartnerItemRef)}
		}
		sum += int64(it.Qty) * it.UnitPrice
	}
	if sum != declaredTotal {
		return &Rejection{ReasonAmountMismatch, msgInvalidTotal}
	}
	return nil
}
