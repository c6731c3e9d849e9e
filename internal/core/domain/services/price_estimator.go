package services

import (
	"fmt"
	"math"

	"printshop/internal/core/domain/model/order"
)

// thicknessFactors maps each manufactured plate thickness to its price
// factor. The enumeration is exhaustive: an unrecognized thickness is a
// validation error, never silently defaulted.
func thicknessFactors() map[order.Thickness]float64 {
	return map[order.Thickness]float64{
		order.Thickness114: 0.75,
		order.Thickness170: 0.85,
		order.Thickness254: 0.95,
	}
}

// PriceEstimator is a pure domain service computing the estimated cost of
// a print order from its Specification.
//
// The estimate is:
//
//	round((width*widthRepeat) * (height*heightRepeat) * colorCount * materialFactor, 2)
//
// A specification without dimensions yields 0 with no error: the order is
// simply not yet calculable, and callers must render 0 as "no estimate".
type PriceEstimator struct{}

// NewPriceEstimator creates a new PriceEstimator instance.
func NewPriceEstimator() PriceEstimator {
	return PriceEstimator{}
}

// Estimate computes the estimated cost for the given specification.
//
// Returns:
//   - (0, nil) when width or height has not been provided yet
//   - (cost, nil) rounded to two decimal places otherwise
//   - (0, *order.InvalidSpecificationError) for an unconstructed
//     specification or an unrecognized material thickness
func (e PriceEstimator) Estimate(spec order.Specification) (float64, error) {
	if err := spec.Validate(); err != nil {
		return 0, order.NewInvalidSpecificationError("specification", err)
	}

	if !spec.HasDimensions() {
		return 0, nil
	}

	factor, ok := thicknessFactors()[spec.Thickness()]
	if !ok {
		return 0, order.NewInvalidSpecificationError("materialThickness",
			fmt.Errorf("%d has no price factor", spec.Thickness()))
	}

	area := spec.TotalWidth() * spec.TotalHeight()
	estimate := area * float64(spec.ColorCount()) * factor
	return math.Round(estimate*100) / 100, nil
}
