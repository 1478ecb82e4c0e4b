package golurk

import (
	"slices"

	"github.com/samber/lo"
)

// branch is one outcome being built. It keeps a private copy of every pokemon and the field
// so later steps see what earlier instructions did without touching the caller's state.
type branch struct {
	weight       float64
	instructions []BattleInstruction

	pokemon map[BattlePosition]*Pokemon
	field   Field

	// Damage the move has dealt so far, for drain and recoil
	dealt int
	// Targets the move actually connected with
	landed []BattlePosition
}

func newRootBranch(state *BattleState) *branch {
	b := &branch{
		weight:  1,
		pokemon: make(map[BattlePosition]*Pokemon, len(state.Active)),
		field:   state.Field.Clone(),
	}

	for pos, pokemon := range state.Active {
		if pokemon != nil {
			b.pokemon[pos] = copyPokemon(pokemon)
			b.pokemon[pos].Position = pos
		}
	}

	return b
}

func copyPokemon(p *Pokemon) *Pokemon {
	clone := *p
	clone.Volatiles = slices.Clone(p.Volatiles)

	return &clone
}

func (b *branch) clone() *branch {
	clone := &branch{
		weight:       b.weight,
		instructions: slices.Clone(b.instructions),
		pokemon:      make(map[BattlePosition]*Pokemon, len(b.pokemon)),
		field:        b.field.Clone(),
		dealt:        b.dealt,
		landed:       slices.Clone(b.landed),
	}

	for pos, pokemon := range b.pokemon {
		clone.pokemon[pos] = copyPokemon(pokemon)
	}

	return clone
}

// outcome is one weighted way a step can go
type outcome struct {
	weight float64
	apply  func(b *branch)
}

// split turns b into one branch per outcome. Zero weight outcomes are dropped.
// A single certain outcome is applied in place.
func (b *branch) split(outcomes ...outcome) []*branch {
	outcomes = lo.Filter(outcomes, func(o outcome, _ int) bool {
		return o.weight > 0
	})

	if len(outcomes) == 1 && outcomes[0].weight == 1 {
		outcomes[0].apply(b)
		return []*branch{b}
	}

	return lo.Map(outcomes, func(o outcome, _ int) *branch {
		next := b.clone()
		next.weight *= o.weight
		o.apply(next)
		return next
	})
}

// expand runs step on every branch and collects what comes out
func expand(branches []*branch, step func(b *branch) ([]*branch, error)) ([]*branch, error) {
	next := make([]*branch, 0, len(branches))

	for _, b := range branches {
		out, err := step(b)
		if err != nil {
			return nil, err
		}

		next = append(next, out...)
	}

	return next, nil
}

func (b *branch) at(pos BattlePosition) *Pokemon {
	return b.pokemon[pos]
}

func (b *branch) alive(pos BattlePosition) bool {
	pokemon := b.at(pos)
	return pokemon != nil && pokemon.Alive()
}

func (b *branch) add(instruction BattleInstruction) {
	b.instructions = append(b.instructions, instruction)
}

// damage takes up to amount HP from the pokemon at pos and faints it at 0. Returns the HP actually taken.
func (b *branch) damage(pos BattlePosition, amount int) int {
	if amount <= 0 || !b.alive(pos) {
		return 0
	}

	pokemon := b.at(pos)
	previous := int(pokemon.Hp.Value)
	taken := min(amount, previous)

	b.add(DamageInstruction{Target: pos, Amount: taken, PreviousHp: previous})
	pokemon.Hp.Value -= uint(taken)

	if pokemon.Hp.Value == 0 {
		b.add(FaintInstruction{Target: pos, PreviousHp: previous})
	}

	return taken
}

// faint knocks out the pokemon at pos outright, i.e. Explosion's user
func (b *branch) faint(pos BattlePosition) {
	if !b.alive(pos) {
		return
	}

	b.damage(pos, int(b.at(pos).Hp.Value))
}

func (b *branch) heal(pos BattlePosition, amount int) int {
	if amount <= 0 || !b.alive(pos) {
		return 0
	}

	pokemon := b.at(pos)
	previous := int(pokemon.Hp.Value)
	healed := min(amount, int(pokemon.MaxHp)-previous)
	if healed <= 0 {
		return 0
	}

	b.add(HealInstruction{Target: pos, Amount: healed, PreviousHp: previous})
	pokemon.Hp.Value += uint(healed)

	return healed
}

func (b *branch) setStatus(pos BattlePosition, status int) {
	if !b.alive(pos) {
		return
	}

	pokemon := b.at(pos)
	b.add(ApplyStatusInstruction{Target: pos, Status: status, PreviousStatus: pokemon.Status})
	pokemon.Status = status
}

// boost changes a stat stage, clamped to +-6. No instruction is added when nothing changes.
func (b *branch) boost(pos BattlePosition, stat string, amount int) int {
	if amount == 0 || !b.alive(pos) {
		return 0
	}

	pokemon := b.at(pos)
	current := pokemon.Stage(stat)
	applied := clampStage(current+amount) - current
	if applied == 0 {
		return 0
	}

	b.add(BoostInstruction{Target: pos, Stat: stat, Amount: applied})
	pokemon.SetStage(stat, current+applied)

	return applied
}

func (b *branch) addVolatile(pos BattlePosition, volatile string) {
	if !b.alive(pos) || b.at(pos).HasVolatile(volatile) {
		return
	}

	pokemon := b.at(pos)
	b.add(ApplyVolatileInstruction{Target: pos, Volatile: volatile})
	pokemon.Volatiles = append(pokemon.Volatiles, volatile)
}

func (b *branch) removeVolatile(pos BattlePosition, volatile string) {
	if !b.alive(pos) || !b.at(pos).HasVolatile(volatile) {
		return
	}

	pokemon := b.at(pos)
	b.add(RemoveVolatileInstruction{Target: pos, Volatile: volatile})
	pokemon.Volatiles = lo.Without(pokemon.Volatiles, volatile)
}

func (b *branch) setWeather(weather int, turns int) {
	b.add(WeatherInstruction{
		NewWeather:      weather,
		PreviousWeather: b.field.Weather,
		Turns:           turns,
		PreviousTurns:   b.field.WeatherTurns,
	})
	b.field.Weather = weather
	b.field.WeatherTurns = turns
}

func (b *branch) setTerrain(terrain int, turns int) {
	b.add(TerrainInstruction{
		NewTerrain:      terrain,
		PreviousTerrain: b.field.Terrain,
		Turns:           turns,
		PreviousTurns:   b.field.TerrainTurns,
	})
	b.field.Terrain = terrain
	b.field.TerrainTurns = turns
}

func (b *branch) addSideCondition(side int, condition int, amount int) {
	b.add(ApplySideConditionInstruction{Side: side, Condition: condition, Amount: amount})
	b.field.Side(side)[condition] += amount
}

func (b *branch) removeSideCondition(side int, condition int) {
	conditions := b.field.Side(side)
	if !conditions.Has(condition) {
		return
	}

	b.add(RemoveSideConditionInstruction{Side: side, Condition: condition, Amount: conditions[condition]})
	delete(conditions, condition)
}

func (b *branch) weatherSuppressed() bool {
	return lo.SomeBy(lo.Values(b.pokemon), func(p *Pokemon) bool {
		return p.Alive() && (p.Ability == "cloud-nine" || p.Ability == "air-lock")
	})
}

func (b *branch) result() BattleInstructions {
	return BattleInstructions{Probability: b.weight, Instructions: b.instructions}
}
