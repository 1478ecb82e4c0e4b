package golurk

import (
	"fmt"

	"github.com/samber/lo"
)

// BattleInstruction is one atomic change to a battle. Instructions are data; applying them is up to the caller.
// Each one keeps enough of the previous state to be undone.
type BattleInstruction interface {
	AffectedPositions() []BattlePosition
	fmt.Stringer
}

type DamageInstruction struct {
	Target BattlePosition
	Amount int
	// HP before the damage
	PreviousHp int
}

func (i DamageInstruction) AffectedPositions() []BattlePosition {
	return []BattlePosition{i.Target}
}

func (i DamageInstruction) String() string {
	return fmt.Sprintf("damage %s %d", i.Target, i.Amount)
}

type HealInstruction struct {
	Target     BattlePosition
	Amount     int
	PreviousHp int
}

func (i HealInstruction) AffectedPositions() []BattlePosition {
	return []BattlePosition{i.Target}
}

func (i HealInstruction) String() string {
	return fmt.Sprintf("heal %s %d", i.Target, i.Amount)
}

type FaintInstruction struct {
	Target     BattlePosition
	PreviousHp int
}

func (i FaintInstruction) AffectedPositions() []BattlePosition {
	return []BattlePosition{i.Target}
}

func (i FaintInstruction) String() string {
	return fmt.Sprintf("faint %s", i.Target)
}

type ApplyStatusInstruction struct {
	Target         BattlePosition
	Status         int
	PreviousStatus int
}

func (i ApplyStatusInstruction) AffectedPositions() []BattlePosition {
	return []BattlePosition{i.Target}
}

func (i ApplyStatusInstruction) String() string {
	return fmt.Sprintf("status %s %s", i.Target, nameFor(STATUS_NAME_MAP, i.Status))
}

type RemoveStatusInstruction struct {
	Target         BattlePosition
	PreviousStatus int
}

func (i RemoveStatusInstruction) AffectedPositions() []BattlePosition {
	return []BattlePosition{i.Target}
}

func (i RemoveStatusInstruction) String() string {
	return fmt.Sprintf("cure %s %s", i.Target, nameFor(STATUS_NAME_MAP, i.PreviousStatus))
}

// BoostInstruction changes a stat stage. Amount is what actually changed after clamping to +-6.
type BoostInstruction struct {
	Target BattlePosition
	Stat   string
	Amount int
}

func (i BoostInstruction) AffectedPositions() []BattlePosition {
	return []BattlePosition{i.Target}
}

func (i BoostInstruction) String() string {
	return fmt.Sprintf("boost %s %s %+d", i.Target, i.Stat, i.Amount)
}

type ApplyVolatileInstruction struct {
	Target   BattlePosition
	Volatile string
}

func (i ApplyVolatileInstruction) AffectedPositions() []BattlePosition {
	return []BattlePosition{i.Target}
}

func (i ApplyVolatileInstruction) String() string {
	return fmt.Sprintf("volatile %s %s", i.Target, i.Volatile)
}

type RemoveVolatileInstruction struct {
	Target   BattlePosition
	Volatile string
}

func (i RemoveVolatileInstruction) AffectedPositions() []BattlePosition {
	return []BattlePosition{i.Target}
}

func (i RemoveVolatileInstruction) String() string {
	return fmt.Sprintf("remove volatile %s %s", i.Target, i.Volatile)
}

type WeatherInstruction struct {
	NewWeather      int
	PreviousWeather int
	Turns           int
	PreviousTurns   int
}

func (i WeatherInstruction) AffectedPositions() []BattlePosition {
	return nil
}

func (i WeatherInstruction) String() string {
	return fmt.Sprintf("weather %s -> %s (%d turns)", nameFor(WEATHER_NAME_MAP, i.PreviousWeather), nameFor(WEATHER_NAME_MAP, i.NewWeather), i.Turns)
}

type TerrainInstruction struct {
	NewTerrain      int
	PreviousTerrain int
	Turns           int
	PreviousTurns   int
}

func (i TerrainInstruction) AffectedPositions() []BattlePosition {
	return nil
}

func (i TerrainInstruction) String() string {
	return fmt.Sprintf("terrain %s -> %s (%d turns)", nameFor(TERRAIN_NAME_MAP, i.PreviousTerrain), nameFor(TERRAIN_NAME_MAP, i.NewTerrain), i.Turns)
}

// ApplySideConditionInstruction adds Amount layers or turns to a side condition
type ApplySideConditionInstruction struct {
	Side      int
	Condition int
	Amount    int
}

func (i ApplySideConditionInstruction) AffectedPositions() []BattlePosition {
	return nil
}

func (i ApplySideConditionInstruction) String() string {
	return fmt.Sprintf("side %d %s +%d", i.Side, nameFor(SIDE_CONDITION_NAME_MAP, i.Condition), i.Amount)
}

// RemoveSideConditionInstruction clears a side condition. Amount is what was there before.
type RemoveSideConditionInstruction struct {
	Side      int
	Condition int
	Amount    int
}

func (i RemoveSideConditionInstruction) AffectedPositions() []BattlePosition {
	return nil
}

func (i RemoveSideConditionInstruction) String() string {
	return fmt.Sprintf("side %d %s cleared", i.Side, nameFor(SIDE_CONDITION_NAME_MAP, i.Condition))
}

// BattleInstructions is one possible outcome of a move: a weighted, ordered list of instructions.
type BattleInstructions struct {
	Probability  float64
	Instructions []BattleInstruction
}

// AffectedPositions lists every position touched by the branch, in first touched order
func (b BattleInstructions) AffectedPositions() []BattlePosition {
	positions := lo.FlatMap(b.Instructions, func(i BattleInstruction, _ int) []BattlePosition {
		return i.AffectedPositions()
	})

	return lo.Uniq(positions)
}

// DamageTo sums every damage instruction against a position
func (b BattleInstructions) DamageTo(pos BattlePosition) int {
	return lo.SumBy(b.Instructions, func(i BattleInstruction) int {
		if damage, ok := i.(DamageInstruction); ok && damage.Target == pos {
			return damage.Amount
		}
		return 0
	})
}

// Faints reports whether the pokemon at pos faints in this branch
func (b BattleInstructions) Faints(pos BattlePosition) bool {
	return lo.ContainsBy(b.Instructions, func(i BattleInstruction) bool {
		faint, ok := i.(FaintInstruction)
		return ok && faint.Target == pos
	})
}

// TotalProbability sums the weights of a set of branches
func TotalProbability(branches []BattleInstructions) float64 {
	return lo.SumBy(branches, func(b BattleInstructions) float64 {
		return b.Probability
	})
}
