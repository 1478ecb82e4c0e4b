package golurk

import (
	"fmt"
	"slices"
	"strings"
)

// DamageRolls selects which of the 16 damage rolls a calculation returns
type DamageRolls int

const (
	ROLLS_AVERAGE DamageRolls = iota
	ROLLS_MIN
	ROLLS_MAX
	ROLLS_ALL
)

const (
	ROLL_COUNT       = 16
	MIN_ROLL_PERCENT = 85
	MAX_ROLL_PERCENT = 100
)

var damageRollNames = map[DamageRolls]string{
	ROLLS_AVERAGE: "average",
	ROLLS_MIN:     "min",
	ROLLS_MAX:     "max",
	ROLLS_ALL:     "all",
}

func (r DamageRolls) String() string {
	return damageRollNames[r]
}

func ParseDamageRolls(name string) (DamageRolls, error) {
	for rolls, rollsName := range damageRollNames {
		if strings.EqualFold(rollsName, strings.TrimSpace(name)) {
			return rolls, nil
		}
	}

	return 0, fmt.Errorf("unknown damage rolls selection %q", name)
}

type DamageResult struct {
	// The selected roll. For ROLLS_ALL this is the average roll.
	Damage int
	// One value for min, max and average, all sixteen in ascending order for ROLLS_ALL
	Rolls []int
	// The move was stopped before any math (immunity, weather nullification)
	Blocked   bool
	BlockedBy string

	Critical      bool
	Effectiveness float64
	Modifiers     ModifierStack
}

func zeroDamage(rolls DamageRolls) DamageResult {
	result := DamageResult{Rolls: []int{0}, Effectiveness: 1}
	if rolls == ROLLS_ALL {
		result.Rolls = make([]int, ROLL_COUNT)
	}

	return result
}

func blockedDamage(rolls DamageRolls, blockedBy string, effectiveness float64) DamageResult {
	result := zeroDamage(rolls)
	result.Blocked = true
	result.BlockedBy = blockedBy
	result.Effectiveness = effectiveness

	return result
}

// CalculateDamage works out the damage of one hit, dispatching to the generation's damage formula.
// Status moves and moves without power short circuit to 0.
func CalculateDamage(ctx *DamageContext, rolls DamageRolls) (DamageResult, error) {
	if ctx.Move.IsStatus() || (ctx.Move.Power == 0 && !isScaledPowerMove(ctx.Move)) {
		return zeroDamage(rolls), nil
	}

	basePower := ctx.BasePower()
	if basePower == 0 {
		return zeroDamage(rolls), nil
	}

	if blocker, blocked := abilityImmunity(ctx); blocked {
		damageLogger().V(1).Info("Move blocked", "move", ctx.Move.Name, "blocked_by", blocker, "defender", ctx.Defender.Name())
		return blockedDamage(rolls, blocker, 0), nil
	}

	stack, err := RunModifierPipeline(ctx)
	if err != nil {
		return DamageResult{}, fmt.Errorf("calculating damage of %s: %w", ctx.Move.Name, err)
	}

	if stack.Nullified {
		return blockedDamage(rolls, "weather", 0), nil
	}

	effectiveness := stack.Get(MODIFIER_TYPE)
	if effectiveness == 0 {
		return blockedDamage(rolls, "type", 0), nil
	}

	if ctx.defenderAbility() == "wonder-guard" && effectiveness <= 1 {
		return blockedDamage(rolls, "wonder-guard", effectiveness), nil
	}

	formula, ok := damageFormulas[ctx.Mechanics.formula]
	if !ok {
		return DamageResult{}, fmt.Errorf("%w: no damage formula for generation %d", ErrUnknownGeneration, ctx.Generation())
	}

	preRoll, postRoll := formula(ctx, basePower, stack)
	all := enumerateRolls(ctx.Mechanics, preRoll, postRoll)

	result := DamageResult{
		Critical:      ctx.IsCritical(),
		Effectiveness: effectiveness,
		Modifiers:     stack,
	}

	switch rolls {
	case ROLLS_MIN:
		result.Damage = all[0]
		result.Rolls = []int{result.Damage}
	case ROLLS_MAX:
		result.Damage = all[ROLL_COUNT-1]
		result.Rolls = []int{result.Damage}
	case ROLLS_ALL:
		result.Damage = averageRoll(all)
		result.Rolls = all
	default:
		result.Damage = averageRoll(all)
		result.Rolls = []int{result.Damage}
	}

	damageLogger().V(1).Info("final damage",
		"generation", ctx.Generation(),
		"move", ctx.Move.Name,
		"attacker", ctx.Attacker.Name(),
		"defender", ctx.Defender.Name(),
		"power", basePower,
		"preRoll", preRoll,
		"crit", result.Critical,
		"effectiveness", effectiveness,
		"modifiers", stack.Combined(),
		"rolls", rolls.String(),
		"damage", result.Damage)

	return result, nil
}

// Moves whose power is worked out per hit and are listed with 0 power in some data sets
func isScaledPowerMove(move *MoveData) bool {
	return move.Name == "triple-kick" || move.Name == "triple-axel"
}

// enumerateRolls applies the 100% down to 85% rolls and returns them in ascending order
func enumerateRolls(mechanics GenerationMechanics, preRoll float64, postRoll func(float64) float64) []int {
	rolls := make([]int, 0, ROLL_COUNT)

	for percent := MAX_ROLL_PERCENT; percent >= MIN_ROLL_PERCENT; percent-- {
		damage := postRoll(mechanics.ApplyRoll(preRoll, percent))
		rolls = append(rolls, max(1, int(damage)))
	}

	slices.Sort(rolls)
	return rolls
}

// averageRoll is the mean of the two middle rolls
func averageRoll(rolls []int) int {
	return (rolls[ROLL_COUNT/2-1] + rolls[ROLL_COUNT/2]) / 2
}

// CritProbability is the chance the hit in ctx is a critical hit
func CritProbability(ctx *DamageContext) float64 {
	return ctx.Mechanics.CritChance(ctx.Attacker, ctx.Defender, ctx.Move)
}

// abilityImmunity checks the abilities and effects that make a defender immune to a move before any math
func abilityImmunity(ctx *DamageContext) (string, bool) {
	moveType := ctx.MoveType()
	gen := ctx.Generation()
	defender := ctx.Defender

	if moveType == TYPENAME_GROUND && ctx.Move.Name != "thousand-arrows" && !defender.HasType(TYPENAME_FLYING) {
		grounded := defender.IsGrounded(ctx.Field)

		// Levitate is ignored when abilities are (Mold Breaker, or no abilities in the generation)
		if !grounded && defender.Ability == "levitate" && ctx.defenderAbility() == "" {
			withoutAbility := *defender
			withoutAbility.Ability = ""
			grounded = withoutAbility.IsGrounded(ctx.Field)
		}

		if !grounded {
			return "airborne", true
		}
	}

	switch ability := ctx.defenderAbility(); ability {
	case "flash-fire":
		if moveType == TYPENAME_FIRE {
			return ability, true
		}
	case "volt-absorb":
		if moveType == TYPENAME_ELECTRIC {
			return ability, true
		}
	case "motor-drive":
		if moveType == TYPENAME_ELECTRIC && gen >= GEN_4 {
			return ability, true
		}
	case "lightning-rod":
		if moveType == TYPENAME_ELECTRIC && gen >= GEN_5 {
			return ability, true
		}
	case "water-absorb", "dry-skin":
		if moveType == TYPENAME_WATER {
			return ability, true
		}
	case "storm-drain":
		if moveType == TYPENAME_WATER && gen >= GEN_5 {
			return ability, true
		}
	case "sap-sipper":
		if moveType == TYPENAME_GRASS {
			return ability, true
		}
	case "soundproof":
		if ctx.Move.IsSound() {
			return ability, true
		}
	case "bulletproof":
		if ctx.Move.HasFlag("ballistic") {
			return ability, true
		}
	}

	return "", false
}
