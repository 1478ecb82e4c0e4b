package golurk

import (
	"fmt"

	"github.com/samber/lo"
)

// Abilities Mold Breaker and friends can't ignore
var unbreakableAbilities = []string{
	"prism-armor",
	"shadow-shield",
	"full-metal-body",
	"comatose",
}

// DamageContext is everything needed to work out the damage of one hit.
// A new one is built for every evaluation and it is never shared.
type DamageContext struct {
	Attacker *Pokemon
	Defender *Pokemon
	Move     *MoveData
	Format   BattleFormat
	Field    Field
	// Cloud Nine or Air Lock is active somewhere on the field
	WeatherSuppressed bool
	// How many targets the move resolved to in this evaluation
	TargetCount int
	Critical    bool
	// 1 based, only matters for moves that change power per hit
	HitNumber int

	Mechanics GenerationMechanics
	Chart     *TypeChart
}

// NewDamageContext builds a context for a single target hit of move from attacker to defender
func NewDamageContext(state *BattleState, attacker *Pokemon, defender *Pokemon, move *MoveData) (*DamageContext, error) {
	mechanics, err := MechanicsFor(state.Format.Generation)
	if err != nil {
		return nil, err
	}

	if attacker == nil || defender == nil || move == nil {
		return nil, fmt.Errorf("damage context needs an attacker, defender and move")
	}

	return &DamageContext{
		Attacker:          attacker,
		Defender:          defender,
		Move:              move,
		Format:            state.Format,
		Field:             state.Field,
		WeatherSuppressed: state.WeatherSuppressed(),
		TargetCount:       1,
		HitNumber:         1,
		Mechanics:         mechanics,
		Chart:             DefaultTypeChart(),
	}, nil
}

func (ctx *DamageContext) Generation() Generation {
	return ctx.Mechanics.Generation()
}

func (ctx *DamageContext) MoveType() string {
	return NormalizeTypeName(ctx.Move.Type)
}

func (ctx *DamageContext) DamageClass() string {
	return ctx.Mechanics.DamageClass(ctx.Move)
}

// Weather is the weather as far as damage is concerned
func (ctx *DamageContext) Weather() int {
	if ctx.WeatherSuppressed || !ctx.Mechanics.HasWeather() {
		return WEATHER_NONE
	}

	return ctx.Field.Weather
}

func (ctx *DamageContext) attackerAbility() string {
	if !ctx.Mechanics.HasAbilities() {
		return ""
	}

	return ctx.Attacker.Ability
}

func (ctx *DamageContext) ignoresAbilities() bool {
	switch ctx.attackerAbility() {
	case "mold-breaker", "teravolt", "turboblaze":
		return true
	}

	return false
}

func (ctx *DamageContext) defenderAbility() string {
	if !ctx.Mechanics.HasAbilities() {
		return ""
	}

	if ctx.ignoresAbilities() && !lo.Contains(unbreakableAbilities, ctx.Defender.Ability) {
		return ""
	}

	return ctx.Defender.Ability
}

func (ctx *DamageContext) attackerItem() string {
	if !ctx.Mechanics.HasItems() {
		return ""
	}

	return ctx.Attacker.Item
}

func (ctx *DamageContext) defenderItem() string {
	if !ctx.Mechanics.HasItems() {
		return ""
	}

	return ctx.Defender.Item
}

// IsCritical is whether the hit actually crits, after crit blocking abilities
func (ctx *DamageContext) IsCritical() bool {
	if !ctx.Critical {
		return false
	}

	switch ctx.defenderAbility() {
	case "battle-armor", "shell-armor":
		return false
	}

	return true
}

// BasePower is the move's power after everything that changes it before the damage formula
func (ctx *DamageContext) BasePower() int {
	power := float64(ctx.Move.Power)
	gen := ctx.Generation()

	switch ctx.Move.Name {
	case "triple-kick":
		power = float64(10 * max(1, ctx.HitNumber))
	case "triple-axel":
		power = float64(20 * max(1, ctx.HitNumber))
	case "facade":
		if ctx.Attacker.Status != STATUS_NONE && ctx.Attacker.Status != STATUS_SLEEP && ctx.Attacker.Status != STATUS_FROZEN {
			power *= 2
		}
	case "hex":
		if ctx.Defender.Status != STATUS_NONE {
			power *= 2
		}
	case "knock-off":
		if gen >= GEN_6 && ctx.Defender.Item != "" {
			power *= 1.5
		}
	case "acrobatics":
		if ctx.Attacker.Item == "" {
			power *= 2
		}
	}

	if power == 0 {
		return 0
	}

	switch ctx.attackerAbility() {
	case "technician":
		if power <= 60 {
			power *= 1.5
		}
	case "sheer-force":
		if ctx.Move.HasSecondaries() {
			power *= 1.3
		}
	case "iron-fist":
		if ctx.Move.HasFlag("punch") {
			power *= 1.2
		}
	case "strong-jaw":
		if ctx.Move.HasFlag("bite") {
			power *= 1.5
		}
	case "tough-claws":
		if ctx.Move.MakesContact() {
			power *= 1.3
		}
	case "reckless":
		if ctx.Move.Meta.Drain < 0 {
			power *= 1.2
		}
	}

	if ctx.Attacker.HasVolatile(VOLATILE_CHARGE) && ctx.MoveType() == TYPENAME_ELECTRIC {
		power *= 2
	}

	return max(1, int(power))
}

// attackDefense picks the attacking and defending stat values for the hit
func (ctx *DamageContext) attackDefense() (float64, float64) {
	class := ctx.DamageClass()
	attacker, defender := ctx.Attacker, ctx.Defender

	atk, def := attacker.Attack, defender.Def
	if class == DAMAGETYPE_SPECIAL {
		atk, def = attacker.SpAttack, defender.SpDef
		if ctx.Mechanics.UnifiedSpecial() {
			def = defender.SpAttack
		}
	}

	switch ctx.Move.Name {
	case "foul-play":
		atk = defender.Attack
	case "body-press":
		atk = attacker.Def
	case "psyshock", "psystrike", "secret-sword":
		def = defender.Def
	}

	if ctx.IsCritical() {
		if ctx.Mechanics.CritIgnoresAllStages() {
			atk.Stage, def.Stage = 0, 0
		} else {
			atk.Stage = max(0, atk.Stage)
			def.Stage = min(0, def.Stage)
		}
	}

	if ctx.defenderAbility() == "unaware" {
		atk.Stage = 0
	}
	if ctx.attackerAbility() == "unaware" {
		def.Stage = 0
	}

	a := float64(atk.CalcValue())
	d := float64(def.CalcValue())
	moveType := ctx.MoveType()

	switch ctx.attackerAbility() {
	case "huge-power", "pure-power":
		if class == DAMAGETYPE_PHYSICAL {
			a *= 2
		}
	case "hustle":
		if class == DAMAGETYPE_PHYSICAL {
			a *= 1.5
		}
	case "guts":
		if class == DAMAGETYPE_PHYSICAL && attacker.Status != STATUS_NONE {
			a *= 1.5
		}
	case "overgrow", "blaze", "torrent", "swarm":
		if attacker.Hp.Value*3 <= attacker.MaxHp && pinchTypes[attacker.Ability] == moveType {
			a *= 1.5
		}
	case "solar-power":
		if class == DAMAGETYPE_SPECIAL && ctx.Weather() == WEATHER_SUN {
			a *= 1.5
		}
	}

	if ctx.Mechanics.HasAbilities() && attacker.HasVolatile(VOLATILE_FLASH_FIRE) && moveType == TYPENAME_FIRE {
		a *= 1.5
	}

	switch ctx.attackerItem() {
	case "choice-band":
		if class == DAMAGETYPE_PHYSICAL {
			a *= 1.5
		}
	case "choice-specs":
		if class == DAMAGETYPE_SPECIAL {
			a *= 1.5
		}
	}

	switch ctx.defenderAbility() {
	case "marvel-scale":
		if class == DAMAGETYPE_PHYSICAL && defender.Status != STATUS_NONE {
			d *= 1.5
		}
	case "fur-coat":
		if class == DAMAGETYPE_PHYSICAL {
			d *= 2
		}
	}

	if ctx.defenderItem() == "assault-vest" && class == DAMAGETYPE_SPECIAL && ctx.Generation() >= GEN_6 {
		d *= 1.5
	}

	weather := ctx.Weather()
	if weather == WEATHER_SANDSTORM && class == DAMAGETYPE_SPECIAL && defender.HasType(TYPENAME_ROCK) && ctx.Generation() >= GEN_4 {
		d *= 1.5
	}
	if weather == WEATHER_SNOW && class == DAMAGETYPE_PHYSICAL && defender.HasType(TYPENAME_ICE) {
		d *= 1.5
	}

	// Before gen 3 burn halves the attack stat instead of the damage
	if ctx.Generation() <= GEN_2 && class == DAMAGETYPE_PHYSICAL && attacker.Status == STATUS_BURN {
		a /= 2
	}

	return max(1, float64(int(a))), max(1, float64(int(d)))
}

// burnApplies is the burn halving used by gen 3 onward
func (ctx *DamageContext) burnApplies() bool {
	if ctx.Generation() <= GEN_2 {
		return false
	}

	if ctx.DamageClass() != DAMAGETYPE_PHYSICAL || ctx.Attacker.Status != STATUS_BURN {
		return false
	}

	if ctx.attackerAbility() == "guts" {
		return false
	}

	return !(ctx.Move.Name == "facade" && ctx.Generation() >= GEN_6)
}

var pinchTypes = map[string]string{
	"overgrow": TYPENAME_GRASS,
	"blaze":    TYPENAME_FIRE,
	"torrent":  TYPENAME_WATER,
	"swarm":    TYPENAME_BUG,
}
