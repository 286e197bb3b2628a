package pipeline

// Discount percentages are carried in basis points so the whole calculation
// stays in int64 and the rounding rule is exact.
const maxDiscountBP = 2000 // 20% cap, regardless of stacked bonuses

func baseTierBP(total int64) int64 {
	switch {
	case total < 20000:
		return 0
	case total <= 50000:
		return 500
	case total <= 80000:
		return 700
	case total <= 120000:
		return 1000
	default:
		return 1500
	}
}

func bonusBP(total int64) int64 {
	var bp int64
	if total > 50000 && isPrime(total) {
		bp += 800
	}
	// last decimal digit of the major-unit value
	if total > 90000 && (total/100)%10 == 5 {
		bp += 1000
	}
	return bp
}

// Discount computes the tiered discount for a validated total amount in
// minor units. The discount is rounded half-away-from-zero to the nearest
// minor unit; final = total - discount.
func Discount(total int64) (discount, final int64) {
	bp := baseTierBP(total) + bonusBP(total)
	if bp > maxDiscountBP {
		bp = maxDiscountBP
	}
	discount = (total*bp + 5000) / 10000
	return discount, total - discount
}

func isPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
