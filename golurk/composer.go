package golurk

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// EvaluationContext is everything needed to turn one move use into its possible outcomes.
// The move is assumed to execute; accuracy and move failure are up to the caller.
type EvaluationContext struct {
	State *BattleState
	User  BattlePosition
	Move  *MoveData
	// Chosen target for single target moves. Nil, or a target that isn't valid, picks the first valid one.
	Target  *BattlePosition
	Options Options
}

type composer struct {
	state     *BattleState
	user      BattlePosition
	move      *MoveData
	mechanics GenerationMechanics
	chart     *TypeChart
	options   Options
}

// ComposeMove builds every outcome of a move as weighted instruction branches that add up to 1
func ComposeMove(ev EvaluationContext) ([]BattleInstructions, error) {
	if ev.State == nil {
		return nil, fmt.Errorf("%w: no battle state", ErrNoUser)
	}

	if ev.Move == nil || ev.Move.IsNil() {
		return nil, fmt.Errorf("%w: no move given", ErrUnknownMove)
	}

	user := ev.State.PokemonAt(ev.User)
	if user == nil || !user.Alive() {
		return nil, fmt.Errorf("%w: %s", ErrNoUser, ev.User)
	}

	mechanics, err := MechanicsFor(ev.State.Format.Generation)
	if err != nil {
		return nil, err
	}

	c := &composer{
		state:     ev.State,
		user:      ev.User,
		move:      ev.Move,
		mechanics: mechanics,
		chart:     ev.Options.chart(),
		options:   ev.Options,
	}

	resolution, err := ResolveTargets(ev.Move.Target, ev.State.Format, ev.User, ev.State)
	if err != nil {
		return nil, err
	}

	var branches []*branch
	root := newRootBranch(ev.State)

	switch {
	case resolution.Random && len(resolution.Positions) > 1:
		// One branch set per possible target, each weighted evenly
		weight := 1.0 / float64(len(resolution.Positions))
		for _, pos := range resolution.Positions {
			start := root.clone()
			start.weight = weight

			out, err := c.compose(start, []BattlePosition{pos})
			if err != nil {
				return nil, err
			}

			branches = append(branches, out...)
		}
	case resolution.Single:
		branches, err = c.compose(root, chooseTarget(resolution.Positions, ev.Target))
	default:
		branches, err = c.compose(root, resolution.Positions)
	}

	if err != nil {
		return nil, err
	}

	results := lo.Map(branches, func(b *branch, _ int) BattleInstructions {
		return b.result()
	})

	if err := c.checkWeights(results); err != nil {
		return nil, err
	}

	composerLogger().V(1).Info("Composed move", "move", ev.Move.Name, "user", ev.User.String(), "targets", len(resolution.Positions), "branches", len(results))

	return results, nil
}

func chooseTarget(positions []BattlePosition, chosen *BattlePosition) []BattlePosition {
	if len(positions) == 0 {
		return nil
	}

	if chosen != nil && lo.Contains(positions, *chosen) {
		return []BattlePosition{*chosen}
	}

	return positions[:1]
}

// compose runs every stage of the move against a fixed set of targets
func (c *composer) compose(root *branch, targets []BattlePosition) ([]*branch, error) {
	if c.move.HpCost > 0 && !c.payHpCost(root) {
		composerLogger().V(1).Info("Not enough HP to use move", "move", c.move.Name, "user", c.user.String())
		return []*branch{root}, nil
	}

	branches := []*branch{root}
	var err error

	switch {
	case c.move.IsStatus():
		branches = c.composeStatus(branches, targets)
	case c.fixedDamageKind() != "":
		branches, err = c.composeFixedDamage(branches, targets)
	default:
		branches, err = c.composeDamage(branches, targets)
	}

	if err != nil {
		return nil, err
	}

	if !c.move.IsStatus() {
		branches, err = expand(branches, c.composeSecondaries)
		if err != nil {
			return nil, err
		}

		for _, b := range branches {
			c.applySelfStatChanges(b)
		}
	}

	for _, b := range branches {
		c.applyFieldEffect(b)

		if c.move.IsSelfFaint() {
			b.faint(c.user)
		}
	}

	return branches, nil
}

// payHpCost takes the HP cost of moves like Belly Drum. It fails when the user can't afford it.
func (c *composer) payHpCost(b *branch) bool {
	user := b.at(c.user)
	cost := max(1, int(user.MaxHp)*c.move.HpCost/100)

	if int(user.Hp.Value) <= cost {
		return false
	}

	if c.move.Volatile != "" && user.HasVolatile(c.move.Volatile) {
		return false
	}

	b.damage(c.user, cost)
	return true
}

// damageContext builds the context of one hit from the branch's view of the battle
func (c *composer) damageContext(b *branch, target BattlePosition, targetCount int, hit int) *DamageContext {
	return &DamageContext{
		Attacker:          b.at(c.user),
		Defender:          b.at(target),
		Move:              c.move,
		Format:            c.state.Format,
		Field:             b.field,
		WeatherSuppressed: b.weatherSuppressed(),
		TargetCount:       targetCount,
		HitNumber:         hit,
		Mechanics:         c.mechanics,
		Chart:             c.chart,
	}
}

type damageOutcome struct {
	weight  float64
	damage  int
	blocked bool
}

// hitOutcomes lists the weighted damage values of one hit. Crits and rolls branch according to the options.
func (c *composer) hitOutcomes(b *branch, target BattlePosition, targetCount int, hit int, allowRolls bool) ([]damageOutcome, error) {
	ctx := c.damageContext(b, target, targetCount, hit)

	critChances := []float64{0}
	if c.options.BranchOnCritical {
		p := CritProbability(ctx)
		critChances = []float64{p, 1 - p}
	}

	rolls := c.options.Rolls
	if rolls == ROLLS_ALL && !allowRolls {
		rolls = ROLLS_AVERAGE
	}

	var outcomes []damageOutcome
	for i, chance := range critChances {
		weight := 1.0
		if c.options.BranchOnCritical {
			weight = chance
		}

		if weight <= 0 {
			continue
		}

		ctx.Critical = c.options.BranchOnCritical && i == 0
		result, err := CalculateDamage(ctx, rolls)
		if err != nil {
			return nil, err
		}

		if result.Blocked {
			outcomes = append(outcomes, damageOutcome{weight: weight, blocked: true})
			continue
		}

		if rolls != ROLLS_ALL {
			outcomes = append(outcomes, damageOutcome{weight: weight, damage: result.Damage})
			continue
		}

		for _, roll := range rollDistribution(result.Rolls) {
			outcomes = append(outcomes, damageOutcome{weight: weight * roll.Weight, damage: roll.Damage})
		}
	}

	return outcomes, nil
}

// applyHit splits a branch over the outcomes of a single hit
func (c *composer) applyHit(b *branch, target BattlePosition, targetCount int, hit int, allowRolls bool) ([]*branch, error) {
	if !b.alive(target) || !b.alive(c.user) {
		return []*branch{b}, nil
	}

	outcomes, err := c.hitOutcomes(b, target, targetCount, hit, allowRolls)
	if err != nil {
		return nil, err
	}

	return b.split(lo.Map(outcomes, func(o damageOutcome, _ int) outcome {
		return outcome{
			weight: o.weight,
			apply: func(next *branch) {
				if o.blocked {
					return
				}

				next.dealt += next.damage(target, o.damage)
				if !lo.Contains(next.landed, target) {
					next.landed = append(next.landed, target)
				}
			},
		}
	})...), nil
}

// composeDamage handles single and multi hit damaging moves followed by drain and recoil
func (c *composer) composeDamage(branches []*branch, targets []BattlePosition) ([]*branch, error) {
	var err error
	targetCount := len(targets)

	for _, target := range targets {
		if c.move.IsMultiHit() {
			branches, err = expand(branches, func(b *branch) ([]*branch, error) {
				return c.composeMultiHit(b, target, targetCount)
			})
		} else {
			branches, err = expand(branches, func(b *branch) ([]*branch, error) {
				return c.applyHit(b, target, targetCount, 1, true)
			})
		}

		if err != nil {
			return nil, err
		}
	}

	for _, b := range branches {
		c.applyDrainAndRecoil(b)
	}

	return branches, nil
}

func (c *composer) attackerAbility(b *branch) string {
	if !c.mechanics.HasAbilities() {
		return ""
	}

	return b.at(c.user).Ability
}

func (c *composer) attackerItem(b *branch) string {
	if !c.mechanics.HasItems() {
		return ""
	}

	return b.at(c.user).Item
}

// applyDrainAndRecoil heals or hurts the user based on the damage the move dealt
func (c *composer) applyDrainAndRecoil(b *branch) {
	if b.dealt == 0 || !b.alive(c.user) {
		return
	}

	user := b.at(c.user)
	ability := c.attackerAbility(b)
	drain := c.move.Meta.Drain

	switch {
	case c.move.Name == StruggleMove.Name:
		b.damage(c.user, max(1, int(user.MaxHp)/4))
	case drain > 0:
		amount := max(1, int(math.Floor(float64(b.dealt*drain)/100)))
		if c.attackerItem(b) == "big-root" {
			amount = int(float64(amount) * 1.3)
		}

		if c.liquidOoze(b) {
			b.damage(c.user, amount)
		} else {
			b.heal(c.user, amount)
		}
	case drain < 0 && ability != "rock-head" && ability != "magic-guard":
		b.damage(c.user, max(1, b.dealt*-drain/100))
	}

	if c.attackerItem(b) == "life-orb" && c.mechanics.Generation() >= GEN_4 && ability != "magic-guard" {
		if ability == "sheer-force" && c.move.HasSecondaries() {
			return
		}

		b.damage(c.user, max(1, int(user.MaxHp)/10))
	}
}

// Liquid Ooze on any target turns drain into damage
func (c *composer) liquidOoze(b *branch) bool {
	if !c.mechanics.HasAbilities() {
		return false
	}

	return lo.SomeBy(b.landed, func(pos BattlePosition) bool {
		return b.at(pos) != nil && b.at(pos).Ability == "liquid-ooze"
	})
}

func (c *composer) applySelfStatChanges(b *branch) {
	if len(c.move.SelfStatChanges) == 0 || !b.alive(c.user) {
		return
	}

	// Moves like Close Combat only lower stats when they connect
	if !c.move.IsStatus() && len(b.landed) == 0 {
		return
	}

	for _, change := range c.move.SelfStatChanges {
		b.boost(c.user, change.StatName, change.Change)
	}
}

func (c *composer) checkWeights(results []BattleInstructions) error {
	total := TotalProbability(results)
	if math.Abs(total-1) <= c.options.tolerance() {
		return nil
	}

	err := fmt.Errorf("%w: %s composed to %f over %d branches", ErrBranchWeightDrift, c.move.Name, total, len(results))
	composerLogger().Error(err, "Branch weights drifted", "move", c.move.Name, "total", total)

	return err
}
