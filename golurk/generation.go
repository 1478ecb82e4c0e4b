package golurk

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

type Generation int

const (
	GEN_1 Generation = iota + 1
	GEN_2
	GEN_3
	GEN_4
	GEN_5
	GEN_6
	GEN_7
	GEN_8
	GEN_9
)

const LATEST_GENERATION = GEN_9

func ParseGeneration(n int) (Generation, error) {
	gen := Generation(n)
	if gen < GEN_1 || gen > LATEST_GENERATION {
		return 0, fmt.Errorf("%w: %d", ErrUnknownGeneration, n)
	}

	return gen, nil
}

// HitCountWeight is one entry of a multi-hit distribution
type HitCountWeight struct {
	Hits   int
	Weight float64
}

var (
	oldMultiHitDistribution = []HitCountWeight{
		{Hits: 2, Weight: 3.0 / 8.0},
		{Hits: 3, Weight: 3.0 / 8.0},
		{Hits: 4, Weight: 1.0 / 8.0},
		{Hits: 5, Weight: 1.0 / 8.0},
	}
	modernMultiHitDistribution = []HitCountWeight{
		{Hits: 2, Weight: 0.35},
		{Hits: 3, Weight: 0.35},
		{Hits: 4, Weight: 0.15},
		{Hits: 5, Weight: 0.15},
	}
)

// Crit chance by crit stage. Stages past the end of a table use the last entry.
var (
	gen2CritStages   = []float64{17.0 / 256.0, 32.0 / 256.0, 64.0 / 256.0, 85.0 / 256.0, 128.0 / 256.0}
	gen3CritStages   = []float64{1.0 / 16.0, 1.0 / 8.0, 1.0 / 4.0, 1.0 / 3.0, 1.0 / 2.0}
	gen6CritStages   = []float64{1.0 / 16.0, 1.0 / 8.0, 1.0 / 2.0, 1}
	modernCritStages = []float64{1.0 / 24.0, 1.0 / 8.0, 1.0 / 2.0, 1}
)

type damageFormula int

const (
	FORMULA_GEN1 damageFormula = iota + 1
	FORMULA_GEN2
	FORMULA_GEN3
	FORMULA_GEN4
	FORMULA_MODERN
)

// GenerationMechanics holds every rule that changes between generations.
// Values come from a closed table; get one with MechanicsFor.
type GenerationMechanics struct {
	gen     Generation
	formula damageFormula

	critMultiplier float64
	critStages     []float64
	// Gen 1 and 2 crits ignore every stat stage, later gens only ignore the unfavourable ones
	critIgnoresAllStages bool

	// Physical or special is decided per move instead of per type
	physicalSpecialSplit bool
	// Gen 1 has a single Special stat for both attacking and defending
	unifiedSpecial bool

	hasAbilities bool
	hasItems     bool
	hasWeather   bool
	// 0 when terrain doesn't exist
	terrainBoost float64
	// Multiplier item for the type boosting items (Charcoal and friends)
	typeItemBoost float64

	multiHit []HitCountWeight
	round    func(float64) float64
}

var mechanicsTable = map[Generation]GenerationMechanics{
	GEN_1: {
		gen:                  GEN_1,
		formula:              FORMULA_GEN1,
		critMultiplier:       2,
		critIgnoresAllStages: true,
		unifiedSpecial:       true,
		multiHit:             oldMultiHitDistribution,
		round:                math.Floor,
	},
	GEN_2: {
		gen:                  GEN_2,
		formula:              FORMULA_GEN2,
		critMultiplier:       2,
		critStages:           gen2CritStages,
		critIgnoresAllStages: true,
		hasItems:             true,
		hasWeather:           true,
		typeItemBoost:        1.1,
		multiHit:             oldMultiHitDistribution,
		round:                math.Floor,
	},
	GEN_3: {
		gen:            GEN_3,
		formula:        FORMULA_GEN3,
		critMultiplier: 2,
		critStages:     gen3CritStages,
		hasAbilities:   true,
		hasItems:       true,
		hasWeather:     true,
		typeItemBoost:  1.1,
		multiHit:       oldMultiHitDistribution,
		round:          math.Floor,
	},
	GEN_4: {
		gen:                  GEN_4,
		formula:              FORMULA_GEN4,
		critMultiplier:       2,
		critStages:           gen3CritStages,
		physicalSpecialSplit: true,
		hasAbilities:         true,
		hasItems:             true,
		hasWeather:           true,
		typeItemBoost:        1.2,
		multiHit:             oldMultiHitDistribution,
		round:                math.Floor,
	},
	GEN_5: {
		gen:                  GEN_5,
		formula:              FORMULA_MODERN,
		critMultiplier:       2,
		critStages:           gen3CritStages,
		physicalSpecialSplit: true,
		hasAbilities:         true,
		hasItems:             true,
		hasWeather:           true,
		typeItemBoost:        1.2,
		multiHit:             modernMultiHitDistribution,
		round:                pokeRound,
	},
	GEN_6: {
		gen:                  GEN_6,
		formula:              FORMULA_MODERN,
		critMultiplier:       1.5,
		critStages:           gen6CritStages,
		physicalSpecialSplit: true,
		hasAbilities:         true,
		hasItems:             true,
		hasWeather:           true,
		terrainBoost:         1.5,
		typeItemBoost:        1.2,
		multiHit:             modernMultiHitDistribution,
		round:                pokeRound,
	},
	GEN_7: {
		gen:                  GEN_7,
		formula:              FORMULA_MODERN,
		critMultiplier:       1.5,
		critStages:           modernCritStages,
		physicalSpecialSplit: true,
		hasAbilities:         true,
		hasItems:             true,
		hasWeather:           true,
		terrainBoost:         1.5,
		typeItemBoost:        1.2,
		multiHit:             modernMultiHitDistribution,
		round:                pokeRound,
	},
	GEN_8: {
		gen:                  GEN_8,
		formula:              FORMULA_MODERN,
		critMultiplier:       1.5,
		critStages:           modernCritStages,
		physicalSpecialSplit: true,
		hasAbilities:         true,
		hasItems:             true,
		hasWeather:           true,
		terrainBoost:         1.3,
		typeItemBoost:        1.2,
		multiHit:             modernMultiHitDistribution,
		round:                pokeRound,
	},
	GEN_9: {
		gen:                  GEN_9,
		formula:              FORMULA_MODERN,
		critMultiplier:       1.5,
		critStages:           modernCritStages,
		physicalSpecialSplit: true,
		hasAbilities:         true,
		hasItems:             true,
		hasWeather:           true,
		terrainBoost:         1.3,
		typeItemBoost:        1.2,
		multiHit:             modernMultiHitDistribution,
		round:                pokeRound,
	},
}

// MechanicsFor returns the rules of a generation
func MechanicsFor(gen Generation) (GenerationMechanics, error) {
	mechanics, ok := mechanicsTable[gen]
	if !ok {
		return GenerationMechanics{}, fmt.Errorf("%w: %d", ErrUnknownGeneration, gen)
	}

	return mechanics, nil
}

func (m GenerationMechanics) Generation() Generation {
	return m.gen
}

func (m GenerationMechanics) CritMultiplier() float64 {
	return m.critMultiplier
}

func (m GenerationMechanics) CritIgnoresAllStages() bool {
	return m.critIgnoresAllStages
}

func (m GenerationMechanics) HasAbilities() bool {
	return m.hasAbilities
}

func (m GenerationMechanics) HasItems() bool {
	return m.hasItems
}

func (m GenerationMechanics) HasWeather() bool {
	return m.hasWeather
}

func (m GenerationMechanics) HasTerrain() bool {
	return m.terrainBoost > 0
}

func (m GenerationMechanics) TerrainBoost() float64 {
	return m.terrainBoost
}

func (m GenerationMechanics) TypeItemBoost() float64 {
	return m.typeItemBoost
}

func (m GenerationMechanics) HasPhysicalSpecialSplit() bool {
	return m.physicalSpecialSplit
}

func (m GenerationMechanics) UnifiedSpecial() bool {
	return m.unifiedSpecial
}

// Round is the rounding used when a multiplier is applied outside of the random roll
func (m GenerationMechanics) Round(x float64) float64 {
	return m.round(x)
}

// ApplyRoll applies one of the 85-100 random multipliers. Every generation truncates here.
func (m GenerationMechanics) ApplyRoll(damage float64, percent int) float64 {
	return float64(int(damage) * percent / 100)
}

// MultiHitDistribution is the hit count split of a classic 2-5 hit move
func (m GenerationMechanics) MultiHitDistribution() []HitCountWeight {
	return m.multiHit
}

// ScreenMultiplier is what Reflect, Light Screen and Aurora Veil do to damage
func (m GenerationMechanics) ScreenMultiplier(multiTarget bool) float64 {
	if multiTarget {
		if m.gen >= GEN_5 {
			return 2732.0 / 4096.0
		}
		return 2.0 / 3.0
	}

	return 0.5
}

// SpreadMultiplier is applied when a move hits more than one target at once
func (m GenerationMechanics) SpreadMultiplier() float64 {
	return 0.75
}

// DamageClass returns whether a move is physical or special in this generation.
// Before the split it depends on the move's type.
func (m GenerationMechanics) DamageClass(move *MoveData) string {
	if move.IsStatus() || m.physicalSpecialSplit {
		return move.DamageClass
	}

	if lo.Contains(physicalTypes, NormalizeTypeName(move.Type)) {
		return DAMAGETYPE_PHYSICAL
	}

	return DAMAGETYPE_SPECIAL
}

// CritStage adds up every source of crit stages for a move
func (m GenerationMechanics) CritStage(attacker *Pokemon, move *MoveData) int {
	stage := attacker.CritStage + move.Meta.CritRateBonus

	if move.Meta.CritRateBonus == 0 && lo.Contains(HIGH_CRIT_MOVES, move.Name) {
		stage++
	}

	if attacker.HasVolatile(VOLATILE_FOCUS_ENERGY) {
		stage += 2
	}

	if m.hasAbilities && attacker.Ability == "super-luck" {
		stage++
	}

	if m.hasItems && (attacker.Item == "scope-lens" || attacker.Item == "razor-claw") {
		stage++
	}

	return stage
}

// CritChance is the probability that a move crits against a defender
func (m GenerationMechanics) CritChance(attacker *Pokemon, defender *Pokemon, move *MoveData) float64 {
	if move.IsStatus() {
		return 0
	}

	if m.hasAbilities && defender != nil && (defender.Ability == "battle-armor" || defender.Ability == "shell-armor") {
		return 0
	}

	if m.gen >= GEN_5 && lo.Contains(ALWAYS_CRIT_MOVES, move.Name) {
		return 1
	}

	if m.gen == GEN_1 {
		return gen1CritChance(attacker, move)
	}

	stage := m.CritStage(attacker, move)
	return m.critStages[min(max(stage, 0), len(m.critStages)-1)]
}

// Gen 1 crits are based on the attacker's base speed
func gen1CritChance(attacker *Pokemon, move *MoveData) float64 {
	threshold := attacker.BaseSpeed() / 2

	if move.Meta.CritRateBonus > 0 || lo.Contains(HIGH_CRIT_MOVES, move.Name) {
		threshold *= 8
	}

	return float64(min(threshold, 255)) / 256.0
}

// Rounds half down, i.e. 2.5 -> 2 and 2.51 -> 3. Used by the 4096 based modifiers from gen 5 on
func pokeRound(x float64) float64 {
	intPart := math.Trunc(x)
	distance := math.Abs(x - intPart)

	if distance > 0.5 {
		// Would use something like Copysign but this will only deal with positive numbers
		return intPart + 1
	} else {
		return intPart
	}
}
