package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veripay/partner-gateway/internal/pipeline"
)

func TestDiscountTiers(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		discount int64
	}{
		{"below first tier", 19999, 0},
		{"5% tier lower bound", 20000, 1000},
		{"5% tier upper bound", 50000, 2500},
		{"7% tier, even so no prime bonus", 50022, 3502},
		{"7% tier upper bound", 80000, 5600},
		{"10% tier lower bound", 80001, 8000},
		{"10% tier upper bound", 120000, 12000},
		{"15% tier", 120001, 18000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, f := pipeline.Discount(tc.total)
			require.Equal(t, tc.discount, d)
			require.Equal(t, tc.total-d, f)
		})
	}
}

func TestDiscountPrimeBonus(t *testing.T) {
	// 50021 is prime and above 50000: 7% base + 8% bonus = 15%
	d, f := pipeline.Discount(50021)
	require.Equal(t, int64(7503), d) // round(50021 * 0.15)
	require.Equal(t, int64(42518), f)
}

func TestDiscountMajorDigitBonus(t *testing.T) {
	// 95500 cents = 955 major units, last digit 5: 10% base + 10% bonus
	d, _ := pipeline.Discount(95500)
	require.Equal(t, int64(19100), d)

	// same tier, last digit 4: base only
	d, _ = pipeline.Discount(95400)
	require.Equal(t, int64(9540), d)
}

func TestDiscountCappedAtTwentyPercent(t *testing.T) {
	// 130500: 15% base + 10% digit bonus would be 25%, capped at 20%
	d, f := pipeline.Discount(130500)
	require.Equal(t, int64(26100), d)
	require.Equal(t, int64(104400), f)
}

func TestDiscountCapHolds(t *testing.T) {
	for _, total := range []int64{1, 19999, 20000, 50021, 90500, 95500, 120001, 130500, 1299995} {
		d, f := pipeline.Discount(total)
		require.LessOrEqual(t, d*5, total, "discount for %d exceeds 20%%", total)
		require.GreaterOrEqual(t, d, int64(0))
		require.Equal(t, total, d+f)
	}
}

func TestDiscountRoundsHalfAwayFromZero(t *testing.T) {
	// 20010 * 5% = 1000.5, ties round away from zero
	d, f := pipeline.Discount(20010)
	require.Equal(t, int64(1001), d)
	require.Equal(t, int64(19009), f)
}
