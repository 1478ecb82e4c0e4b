package golurk

import (
	"math"
)

// A damage formula returns the damage right before the random roll and what to do to each roll afterwards
type damageFormulaFunc func(ctx *DamageContext, basePower int, stack ModifierStack) (float64, func(float64) float64)

var damageFormulas = map[damageFormula]damageFormulaFunc{
	FORMULA_GEN1:   gen1Damage,
	FORMULA_GEN2:   gen2Damage,
	FORMULA_GEN3:   gen3Damage,
	FORMULA_GEN4:   gen4Damage,
	FORMULA_MODERN: modernDamage,
}

func identityRoll(damage float64) float64 {
	return damage
}

// floor(floor(floor(2 * level / 5 + 2) * power * a / d) / 50)
func baseDamage(level int, power int, a float64, d float64) float64 {
	levelFactor := math.Floor(float64(2*level)/5) + 2
	return math.Floor(math.Floor(levelFactor*float64(power)*a/d) / 50)
}

// Type effectiveness is applied one defending type at a time, flooring after each
func applyTypeParts(damage float64, stack ModifierStack, round func(float64) float64) float64 {
	for _, part := range stack.Result(MODIFIER_TYPE).Parts {
		damage = round(damage * part)
	}

	return damage
}

func gen1Damage(ctx *DamageContext, basePower int, stack ModifierStack) (float64, func(float64) float64) {
	level := int(ctx.Attacker.Level)
	if ctx.IsCritical() {
		level *= 2
	}

	a, d := ctx.attackDefense()
	if a > 255 || d > 255 {
		a = max(1, math.Floor(a/4))
		d = max(1, math.Floor(d/4))
	}

	damage := min(baseDamage(level, basePower, a, d), 997) + 2
	damage = math.Floor(damage * stack.Get(MODIFIER_STAB))
	damage = applyTypeParts(damage, stack, math.Floor)
	damage = math.Floor(damage * stack.Get(MODIFIER_SCREEN))
	damage = math.Floor(damage * stack.Get(MODIFIER_SPREAD))

	return damage, identityRoll
}

func gen2Damage(ctx *DamageContext, basePower int, stack ModifierStack) (float64, func(float64) float64) {
	a, d := ctx.attackDefense()

	damage := baseDamage(int(ctx.Attacker.Level), basePower, a, d)
	damage = math.Floor(damage * stack.Get(MODIFIER_ITEM_ABILITY))
	if ctx.IsCritical() {
		damage = math.Floor(damage * stack.Get(MODIFIER_CRIT))
	}
	damage = min(damage, 997) + 2

	damage = math.Floor(damage * stack.Get(MODIFIER_WEATHER))
	damage = math.Floor(damage * stack.Get(MODIFIER_SCREEN))
	damage = math.Floor(damage * stack.Get(MODIFIER_SPREAD))
	damage = math.Floor(damage * stack.Get(MODIFIER_STAB))
	damage = applyTypeParts(damage, stack, math.Floor)

	return damage, identityRoll
}

func gen3Damage(ctx *DamageContext, basePower int, stack ModifierStack) (float64, func(float64) float64) {
	a, d := ctx.attackDefense()

	damage := baseDamage(int(ctx.Attacker.Level), basePower, a, d)
	if ctx.burnApplies() {
		damage = math.Floor(damage * 0.5)
	}

	damage = math.Floor(damage * stack.Get(MODIFIER_SCREEN))
	damage = math.Floor(damage * stack.Get(MODIFIER_SPREAD))
	damage = math.Floor(damage * stack.Get(MODIFIER_WEATHER))
	damage = math.Floor(damage * stack.Get(MODIFIER_ITEM_ABILITY))
	damage += 2

	damage = math.Floor(damage * stack.Get(MODIFIER_CRIT))
	damage = math.Floor(damage * stack.Get(MODIFIER_STAB))
	damage = applyTypeParts(damage, stack, math.Floor)

	return damage, identityRoll
}

func gen4Damage(ctx *DamageContext, basePower int, stack ModifierStack) (float64, func(float64) float64) {
	a, d := ctx.attackDefense()

	damage := baseDamage(int(ctx.Attacker.Level), basePower, a, d)
	if ctx.burnApplies() {
		damage = math.Floor(damage * 0.5)
	}

	damage = math.Floor(damage * stack.Get(MODIFIER_SCREEN))
	damage = math.Floor(damage * stack.Get(MODIFIER_SPREAD))
	damage = math.Floor(damage * stack.Get(MODIFIER_WEATHER))
	damage += 2
	damage = math.Floor(damage * stack.Get(MODIFIER_CRIT))

	post := func(rolled float64) float64 {
		rolled = math.Floor(rolled * stack.Get(MODIFIER_STAB))
		rolled = applyTypeParts(rolled, stack, math.Floor)
		rolled = math.Floor(rolled * stack.Get(MODIFIER_ITEM_ABILITY))
		rolled = math.Floor(rolled * stack.Get(MODIFIER_TERRAIN))
		return rolled
	}

	return damage, post
}

// modernDamage is the formula used from gen 5 on, rounding the 4096 based modifiers half down
func modernDamage(ctx *DamageContext, basePower int, stack ModifierStack) (float64, func(float64) float64) {
	a, d := ctx.attackDefense()
	round := ctx.Mechanics.Round

	damage := baseDamage(int(ctx.Attacker.Level), basePower, a, d) + 2
	damage = round(damage * stack.Get(MODIFIER_SPREAD))
	damage = round(damage * stack.Get(MODIFIER_WEATHER))
	damage = math.Floor(damage * stack.Get(MODIFIER_CRIT))

	burn := ctx.burnApplies()
	final := stack.Get(MODIFIER_SCREEN) * stack.Get(MODIFIER_ITEM_ABILITY) * stack.Get(MODIFIER_TERRAIN)

	post := func(rolled float64) float64 {
		rolled = round(rolled * stack.Get(MODIFIER_STAB))
		rolled = applyTypeParts(rolled, stack, math.Floor)
		if burn {
			rolled = round(rolled * 0.5)
		}
		return round(rolled * final)
	}

	return damage, post
}
