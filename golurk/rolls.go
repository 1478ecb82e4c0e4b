package golurk

import (
	"github.com/samber/lo"
)

// RollPercents is every random damage multiplier, from 100% down to 85%
func RollPercents() []int {
	return lo.RangeWithSteps(MAX_ROLL_PERCENT, MIN_ROLL_PERCENT-1, -1)
}

// CompareHealthWithDamageMultiples splits the 16 rolls of maxDamage into the ones that knock out a pokemon with health HP
// and the ones that don't. It returns how many rolls are lethal and the mean of the rest (0 when every roll is lethal).
func CompareHealthWithDamageMultiples(maxDamage int, health int) (int, float64) {
	rolls := lo.Map(RollPercents(), func(percent int, _ int) int {
		return maxDamage * percent / 100
	})

	lethal, nonLethal := lo.FilterReject(rolls, func(damage int, _ int) bool {
		return damage >= health
	})

	if len(nonLethal) == 0 {
		return len(lethal), 0
	}

	return len(lethal), float64(lo.Sum(nonLethal)) / float64(len(nonLethal))
}

// rollDistribution groups the 16 rolls by value, in ascending order
func rollDistribution(rolls []int) []rollWeight {
	counts := lo.CountValues(rolls)
	values := lo.Uniq(rolls)

	return lo.Map(values, func(damage int, _ int) rollWeight {
		return rollWeight{Damage: damage, Weight: float64(counts[damage]) / float64(len(rolls))}
	})
}

type rollWeight struct {
	Damage int
	Weight float64
}
