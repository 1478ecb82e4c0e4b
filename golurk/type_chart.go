package golurk

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed data/type_chart.yaml
var typeChartData []byte

type chartOverride struct {
	From  Generation                    `yaml:"from"`
	To    Generation                    `yaml:"to"`
	Chart map[string]map[string]float64 `yaml:"chart"`
}

type typeChartFile struct {
	// Nil means every pair must be listed explicitly
	Neutral   *float64                      `yaml:"neutral"`
	Types     map[string]Generation         `yaml:"types"`
	Chart     map[string]map[string]float64 `yaml:"chart"`
	Overrides []chartOverride               `yaml:"overrides"`
}

// TypeChart is an immutable, generation aware type effectiveness table.
// It is safe to share between goroutines.
type TypeChart struct {
	neutral    *float64
	introduced map[string]Generation
	chart      map[string]map[string]float64
	overrides  []chartOverride
}

// LoadTypeChart parses a yaml type chart
func LoadTypeChart(data []byte) (*TypeChart, error) {
	var file typeChartFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing type chart: %w", err)
	}

	chart := &TypeChart{
		neutral:    file.Neutral,
		introduced: file.Types,
		chart:      file.Chart,
		overrides:  file.Overrides,
	}

	tables := append([]map[string]map[string]float64{file.Chart}, lo.Map(file.Overrides, func(o chartOverride, _ int) map[string]map[string]float64 {
		return o.Chart
	})...)

	for _, table := range tables {
		for attacking, row := range table {
			if _, ok := chart.introduced[attacking]; !ok {
				return nil, fmt.Errorf("%w: %q in type chart", ErrUnknownType, attacking)
			}

			for defending := range row {
				if _, ok := chart.introduced[defending]; !ok {
					return nil, fmt.Errorf("%w: %q in type chart", ErrUnknownType, defending)
				}
			}
		}
	}

	dataLogger().V(1).Info("Loaded type chart", "types", len(chart.introduced), "overrides", len(chart.overrides))

	return chart, nil
}

var loadDefaultTypeChart = sync.OnceValues(func() (*TypeChart, error) {
	return LoadTypeChart(typeChartData)
})

// DefaultTypeChart returns the embedded type chart, loaded once per process
func DefaultTypeChart() *TypeChart {
	return Must(loadDefaultTypeChart())
}

// Effectiveness looks up a single attacking/defending type pair in the embedded chart
func Effectiveness(attacking string, defending string, gen Generation) (float64, error) {
	return DefaultTypeChart().Effectiveness(attacking, defending, gen)
}

// Exists reports whether a type is part of the given generation
func (c *TypeChart) Exists(pokemonType string, gen Generation) bool {
	introduced, ok := c.introduced[NormalizeTypeName(pokemonType)]
	return ok && introduced <= gen
}

// Known reports whether the chart has ever heard of a type
func (c *TypeChart) Known(pokemonType string) bool {
	_, ok := c.introduced[NormalizeTypeName(pokemonType)]
	return ok
}

// Types returns every type present in a generation
func (c *TypeChart) Types(gen Generation) []string {
	return lo.Filter(lo.Keys(c.introduced), func(t string, _ int) bool {
		return c.introduced[t] <= gen
	})
}

// Effectiveness gives the multiplier of an attack of the attacking type against a single defending type.
func (c *TypeChart) Effectiveness(attacking string, defending string, gen Generation) (float64, error) {
	attacking = NormalizeTypeName(attacking)
	defending = NormalizeTypeName(defending)

	if attacking == TYPENAME_TYPELESS || defending == TYPENAME_TYPELESS {
		return 1, nil
	}

	if !c.Exists(attacking, gen) {
		return 0, fmt.Errorf("%w: %q does not exist in generation %d", ErrUnknownType, attacking, gen)
	}

	if !c.Exists(defending, gen) {
		return 0, fmt.Errorf("%w: %q does not exist in generation %d", ErrUnknownType, defending, gen)
	}

	for _, override := range c.overrides {
		if gen < override.From || gen > override.To {
			continue
		}

		if mult, ok := override.Chart[attacking][defending]; ok {
			return mult, nil
		}
	}

	if mult, ok := c.chart[attacking][defending]; ok {
		return mult, nil
	}

	if c.neutral == nil {
		return 0, fmt.Errorf("%w: no chart entry for %s -> %s", ErrUnknownType, attacking, defending)
	}

	return *c.neutral, nil
}

// DefenseEffectivenessParts returns the multiplier against each of the defender's types in order.
// Types that don't exist yet in the generation are skipped.
func (c *TypeChart) DefenseEffectivenessParts(attacking string, defending []string, gen Generation) ([]float64, error) {
	parts := make([]float64, 0, len(defending))

	for _, defendingType := range defending {
		if c.Known(defendingType) && !c.Exists(defendingType, gen) {
			continue
		}

		mult, err := c.Effectiveness(attacking, defendingType, gen)
		if err != nil {
			return nil, err
		}

		parts = append(parts, mult)
	}

	return parts, nil
}

// DefenseEffectiveness combines the multipliers against every type the defender has
func (c *TypeChart) DefenseEffectiveness(attacking string, defending []string, gen Generation) (float64, error) {
	parts, err := c.DefenseEffectivenessParts(attacking, defending, gen)
	if err != nil {
		return 0, err
	}

	return lo.Reduce(parts, func(acc float64, mult float64, _ int) float64 {
		return acc * mult
	}, 1.0), nil
}
