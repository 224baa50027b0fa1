package smootharray

import "math"

// DefaultGrowthFactor is the capacity multiplier used when a buffer fills.
const DefaultGrowthFactor = 2

// growthPolicy decides the capacity of the next buffer. It is fixed at
// construction and has no state beyond the factor.
type growthPolicy struct {
	factor int
}

// next returns the capacity of the buffer that replaces one of oldCap
// slots. The result is always strictly larger than oldCap so migrations
// make forward progress. Returns ErrCapacityOverflow if the product does
// not fit in an int.
func (p growthPolicy) next(oldCap int) (int, error) {
	if oldCap <= 0 {
		return 1, nil
	}
	if oldCap > math.MaxInt/p.factor {
		return 0, ErrCapacityOverflow
	}
	return oldCap * p.factor, nil
}
