package golurk

const DEFAULT_WEIGHT_TOLERANCE = 1e-6

// Options change how much a move evaluation branches
type Options struct {
	// ROLLS_ALL branches single hit damage over every distinct roll
	Rolls DamageRolls
	// Split every hit into a critical and a non critical branch
	BranchOnCritical bool
	// How far the branch weights may drift from 1 before it's reported as a bug
	WeightTolerance float64
	// Nil uses the embedded chart
	Chart *TypeChart
}

func DefaultOptions() Options {
	return Options{
		Rolls:           ROLLS_AVERAGE,
		WeightTolerance: DEFAULT_WEIGHT_TOLERANCE,
	}
}

func (o Options) chart() *TypeChart {
	if o.Chart == nil {
		return DefaultTypeChart()
	}

	return o.Chart
}

func (o Options) tolerance() float64 {
	if o.WeightTolerance <= 0 {
		return DEFAULT_WEIGHT_TOLERANCE
	}

	return o.WeightTolerance
}
