package golurk

import (
	"github.com/samber/lo"
)

// Abilities that block a status outright
var statusImmunityAbilities = map[string][]int{
	"limber":           {STATUS_PARA},
	"insomnia":         {STATUS_SLEEP},
	"vital-spirit":     {STATUS_SLEEP},
	"sweet-veil":       {STATUS_SLEEP},
	"water-veil":       {STATUS_BURN},
	"water-bubble":     {STATUS_BURN},
	"thermal-exchange": {STATUS_BURN},
	"immunity":         {STATUS_POISON, STATUS_TOXIC},
	"pastel-veil":      {STATUS_POISON, STATUS_TOXIC},
	"magma-armor":      {STATUS_FROZEN},
	"comatose":         {STATUS_PARA, STATUS_SLEEP, STATUS_BURN, STATUS_POISON, STATUS_TOXIC, STATUS_FROZEN},
	"purifying-salt":   {STATUS_PARA, STATUS_SLEEP, STATUS_BURN, STATUS_POISON, STATUS_TOXIC, STATUS_FROZEN},
}

// Abilities that block a volatile status
var volatileImmunityAbilities = map[string][]string{
	"own-tempo":   {VOLATILE_CONFUSION},
	"inner-focus": {VOLATILE_FLINCH},
	"oblivious":   {VOLATILE_INFATUATION, VOLATILE_TAUNT},
}

// Abilities that stop other pokemon from lowering stats
var statDropImmunityAbilities = []string{
	"clear-body",
	"white-smoke",
	"full-metal-body",
}

// composeSecondaries splits a branch on every secondary effect of the move, against every target it landed on
func (c *composer) composeSecondaries(b *branch) ([]*branch, error) {
	if !c.move.HasSecondaries() {
		return []*branch{b}, nil
	}

	// Sheer Force trades every secondary effect for power
	if c.attackerAbility(b) == "sheer-force" {
		return []*branch{b}, nil
	}

	branches := []*branch{b}
	targets := b.landed

	for _, effect := range c.move.Secondaries {
		recipients := targets
		if effect.Self {
			if len(targets) == 0 {
				continue
			}
			recipients = []BattlePosition{c.user}
		}

		for _, pos := range recipients {
			var err error
			branches, err = expand(branches, func(next *branch) ([]*branch, error) {
				return c.applySecondary(next, effect, pos), nil
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return branches, nil
}

// SecondaryChance is the percent chance an effect happens once abilities are taken into account.
// A chance of 0 or less never happens.
func SecondaryChance(mechanics GenerationMechanics, effect SecondaryEffect, attacker *Pokemon) int {
	chance := min(effect.Chance, 100)
	if chance <= 0 {
		return 0
	}

	if mechanics.HasAbilities() && attacker.Ability == "serene-grace" {
		chance = min(100, chance*2)
	}

	return chance
}

func (c *composer) applySecondary(b *branch, effect SecondaryEffect, pos BattlePosition) []*branch {
	if !c.canApplySecondary(b, effect, pos) {
		return []*branch{b}
	}

	p := float64(SecondaryChance(c.mechanics, effect, b.at(c.user))) / 100

	return b.split(
		outcome{weight: p, apply: func(next *branch) {
			c.applyEffect(next, effect, pos)
		}},
		outcome{weight: 1 - p, apply: func(*branch) {}},
	)
}

// canApplySecondary is false when the effect would do nothing, so no extra branch is made for it
func (c *composer) canApplySecondary(b *branch, effect SecondaryEffect, pos BattlePosition) bool {
	if !b.alive(pos) || SecondaryChance(c.mechanics, effect, b.at(c.user)) == 0 {
		return false
	}

	target := b.at(pos)

	if !effect.Self && c.mechanics.HasAbilities() {
		if c.defenderAbility(b, target) == "shield-dust" {
			return false
		}

		if c.mechanics.Generation() >= GEN_9 && target.Item == "covert-cloak" {
			return false
		}
	}

	if !effect.Self && target.HasVolatile(VOLATILE_SUBSTITUTE) && !c.bypassesSubstitute(b) {
		return false
	}

	if effect.Status != "" {
		status, ok := STATUS_NAME_MAP[effect.Status]
		if !ok || !c.canInflictStatus(b, pos, status) {
			return false
		}
	}

	if effect.Volatile != "" && !c.canApplyVolatile(b, pos, effect.Volatile) {
		return false
	}

	if len(effect.StatChanges) > 0 && !c.canChangeStats(b, pos, effect.StatChanges, effect.Self) {
		return false
	}

	return effect.Status != "" || effect.Volatile != "" || len(effect.StatChanges) > 0
}

func (c *composer) applyEffect(b *branch, effect SecondaryEffect, pos BattlePosition) {
	if effect.Status != "" {
		b.setStatus(pos, STATUS_NAME_MAP[effect.Status])
	}

	if effect.Volatile != "" {
		b.addVolatile(pos, effect.Volatile)
	}

	for _, change := range effect.StatChanges {
		b.boost(pos, change.StatName, change.Change)
	}
}

func (c *composer) defenderAbility(b *branch, target *Pokemon) string {
	if !c.mechanics.HasAbilities() {
		return ""
	}

	switch c.attackerAbility(b) {
	case "mold-breaker", "teravolt", "turboblaze":
		if !lo.Contains(unbreakableAbilities, target.Ability) {
			return ""
		}
	}

	return target.Ability
}

// Sound moves pass through Substitute from gen 6, and Infiltrator always does
func (c *composer) bypassesSubstitute(b *branch) bool {
	if c.mechanics.Generation() >= GEN_6 && c.move.IsSound() {
		return true
	}

	return c.attackerAbility(b) == "infiltrator"
}

// canInflictStatus checks everything that stops a major status from landing on target
func (c *composer) canInflictStatus(b *branch, pos BattlePosition, status int) bool {
	target := b.at(pos)
	if target == nil || target.Status != STATUS_NONE || status == STATUS_NONE {
		return false
	}

	gen := c.mechanics.Generation()
	selfInflicted := pos == c.user

	switch status {
	case STATUS_BURN:
		if target.HasType(TYPENAME_FIRE) {
			return false
		}
	case STATUS_PARA:
		if gen >= GEN_6 && target.HasType(TYPENAME_ELECTRIC) {
			return false
		}
	case STATUS_POISON, STATUS_TOXIC:
		if (target.HasType(TYPENAME_POISON) || target.HasType(TYPENAME_STEEL)) && c.attackerAbility(b) != "corrosion" {
			return false
		}
	case STATUS_FROZEN:
		if target.HasType(TYPENAME_ICE) {
			return false
		}

		weather := b.field.Weather
		if !b.weatherSuppressed() && (weather == WEATHER_SUN || weather == WEATHER_HARSH_SUN) {
			return false
		}
	}

	ability := c.defenderAbility(b, target)
	if lo.Contains(statusImmunityAbilities[ability], status) {
		return false
	}

	if ability == "leaf-guard" && !b.weatherSuppressed() && (b.field.Weather == WEATHER_SUN || b.field.Weather == WEATHER_HARSH_SUN) {
		return false
	}

	if c.mechanics.HasTerrain() && target.IsGrounded(b.field) {
		if b.field.Terrain == TERRAIN_MISTY {
			return false
		}

		if b.field.Terrain == TERRAIN_ELECTRIC && status == STATUS_SLEEP {
			return false
		}
	}

	if !selfInflicted && b.field.Side(pos.Side).Has(SIDE_SAFEGUARD) && c.attackerAbility(b) != "infiltrator" {
		return false
	}

	return true
}

func (c *composer) canApplyVolatile(b *branch, pos BattlePosition, volatile string) bool {
	target := b.at(pos)
	if target == nil || target.HasVolatile(volatile) {
		return false
	}

	if pos != c.user && lo.Contains(volatileImmunityAbilities[c.defenderAbility(b, target)], volatile) {
		return false
	}

	// Misty Terrain also keeps grounded pokemon from getting confused
	if volatile == VOLATILE_CONFUSION && c.mechanics.HasTerrain() && b.field.Terrain == TERRAIN_MISTY && target.IsGrounded(b.field) {
		return false
	}

	return true
}

// canChangeStats is true if at least one of the changes would move a stage
func (c *composer) canChangeStats(b *branch, pos BattlePosition, changes []StatChange, self bool) bool {
	target := b.at(pos)
	if target == nil {
		return false
	}

	fromFoe := !self && pos != c.user

	return lo.SomeBy(changes, func(change StatChange) bool {
		if change.Change < 0 && fromFoe {
			if lo.Contains(statDropImmunityAbilities, c.defenderAbility(b, target)) {
				return false
			}

			if b.field.Side(pos.Side).Has(SIDE_MIST) && c.attackerAbility(b) != "infiltrator" {
				return false
			}
		}

		stage := target.Stage(change.StatName)
		return clampStage(stage+change.Change) != stage
	})
}
