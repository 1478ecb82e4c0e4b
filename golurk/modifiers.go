package golurk

import (
	"github.com/samber/lo"
)

// Modifier kinds in the order the pipeline applies them
const (
	MODIFIER_STAB = iota + 1
	MODIFIER_TYPE
	MODIFIER_CRIT
	MODIFIER_WEATHER
	MODIFIER_TERRAIN
	MODIFIER_SCREEN
	MODIFIER_ITEM_ABILITY
	MODIFIER_SPREAD
)

var modifierNames = map[int]string{
	MODIFIER_STAB:         "stab",
	MODIFIER_TYPE:         "type",
	MODIFIER_CRIT:         "crit",
	MODIFIER_WEATHER:      "weather",
	MODIFIER_TERRAIN:      "terrain",
	MODIFIER_SCREEN:       "screen",
	MODIFIER_ITEM_ABILITY: "item_ability",
	MODIFIER_SPREAD:       "spread",
}

type ModifierResult struct {
	Kind  int
	Value float64
	// Per defending type multipliers, only set for MODIFIER_TYPE
	Parts []float64
	// The move does nothing at all, i.e. a Water move in harsh sunlight
	Nullified bool
	// What caused a non-neutral value
	Sources []string
}

func neutralModifier(kind int) ModifierResult {
	return ModifierResult{Kind: kind, Value: 1}
}

func (r ModifierResult) Name() string {
	return modifierNames[r.Kind]
}

// DamageModifier is one step of the pipeline. It must return a neutral result when it doesn't apply.
// applied holds the results of every earlier step.
type DamageModifier func(ctx *DamageContext, applied ModifierStack) (ModifierResult, error)

var modifierPipeline = []DamageModifier{
	StabModifier,
	TypeModifier,
	CritModifier,
	WeatherModifier,
	TerrainModifier,
	ScreenModifier,
	ItemAbilityModifier,
	SpreadModifier,
}

// ModifierStack is the result of running every modifier for one hit
type ModifierStack struct {
	Results   []ModifierResult
	Nullified bool
}

func (s ModifierStack) Result(kind int) ModifierResult {
	result, found := lo.Find(s.Results, func(r ModifierResult) bool {
		return r.Kind == kind
	})

	if !found {
		return neutralModifier(kind)
	}

	return result
}

func (s ModifierStack) Get(kind int) float64 {
	return s.Result(kind).Value
}

// Combined is the straight product of every modifier
func (s ModifierStack) Combined() float64 {
	if s.Nullified {
		return 0
	}

	return lo.Reduce(s.Results, func(acc float64, r ModifierResult, _ int) float64 {
		return acc * r.Value
	}, 1.0)
}

// RunModifierPipeline runs every modifier in order. A nullifying modifier stops the pipeline.
func RunModifierPipeline(ctx *DamageContext) (ModifierStack, error) {
	stack := ModifierStack{Results: make([]ModifierResult, 0, len(modifierPipeline))}

	for _, modifier := range modifierPipeline {
		result, err := modifier(ctx, stack)
		if err != nil {
			return ModifierStack{}, err
		}

		stack.Results = append(stack.Results, result)

		if result.Value != 1 || result.Nullified {
			modifierLogger().V(2).Info("modifier applied", "modifier", result.Name(), "value", result.Value, "sources", result.Sources, "nullified", result.Nullified)
		}

		if result.Nullified {
			stack.Nullified = true
			break
		}
	}

	return stack, nil
}

// StabMultiplier is the same type attack bonus of a user for a move type, including terastallization
func StabMultiplier(moveType string, user *Pokemon, adaptability bool) float64 {
	moveType = NormalizeTypeName(moveType)
	if moveType == TYPENAME_TYPELESS {
		return 1
	}

	if user.Terastallized && user.TeraType != "" {
		tera := NormalizeTypeName(user.TeraType) == moveType
		original := lo.Contains(user.OriginalTypes(), moveType)

		switch {
		case tera && original && adaptability:
			return 2.25
		case tera && original:
			return 2
		case tera && adaptability:
			return 2
		case tera || original:
			return 1.5
		}

		return 1
	}

	if !user.HasType(moveType) {
		return 1
	}

	if adaptability {
		return 2
	}

	return 1.5
}

func StabModifier(ctx *DamageContext, _ ModifierStack) (ModifierResult, error) {
	adaptability := ctx.attackerAbility() == "adaptability"
	value := StabMultiplier(ctx.MoveType(), ctx.Attacker, adaptability)

	result := neutralModifier(MODIFIER_STAB)
	result.Value = value
	if value > 1 && adaptability {
		result.Sources = []string{"adaptability"}
	}

	return result, nil
}

func TypeModifier(ctx *DamageContext, _ ModifierStack) (ModifierResult, error) {
	result := neutralModifier(MODIFIER_TYPE)
	moveType := ctx.MoveType()
	gen := ctx.Generation()

	for _, defType := range ctx.Defender.Types() {
		defType = NormalizeTypeName(defType)
		if ctx.Chart.Known(defType) && !ctx.Chart.Exists(defType, gen) {
			continue
		}

		mult, err := ctx.Chart.Effectiveness(moveType, defType, gen)
		if err != nil {
			return ModifierResult{}, err
		}

		adjusted := adjustTypeEffectiveness(ctx, moveType, defType, mult)
		if adjusted != mult {
			result.Sources = append(result.Sources, defType)
		}

		result.Parts = append(result.Parts, adjusted)
		result.Value *= adjusted
	}

	return result, nil
}

// Move and field specific exceptions to the chart
func adjustTypeEffectiveness(ctx *DamageContext, moveType string, defType string, mult float64) float64 {
	switch {
	case ctx.Move.Name == "freeze-dry" && defType == TYPENAME_WATER:
		return 2
	case ctx.Move.Name == "thousand-arrows" && defType == TYPENAME_FLYING:
		return 1
	case mult == 0 && moveType == TYPENAME_GROUND && defType == TYPENAME_FLYING && ctx.Defender.IsGrounded(ctx.Field):
		return 1
	case mult == 0 && defType == TYPENAME_GHOST && (moveType == TYPENAME_NORMAL || moveType == TYPENAME_FIGHTING):
		switch ctx.attackerAbility() {
		case "scrappy", "minds-eye":
			return 1
		}
	case mult > 1 && defType == TYPENAME_FLYING && ctx.Weather() == WEATHER_STRONG_WINDS:
		return 1
	}

	return mult
}

func CritModifier(ctx *DamageContext, _ ModifierStack) (ModifierResult, error) {
	if !ctx.IsCritical() {
		return neutralModifier(MODIFIER_CRIT), nil
	}

	result := neutralModifier(MODIFIER_CRIT)
	result.Value = ctx.Mechanics.CritMultiplier()

	if ctx.attackerAbility() == "sniper" && ctx.Generation() >= GEN_4 {
		result.Value *= 1.5
		result.Sources = []string{"sniper"}
	}

	return result, nil
}

func WeatherModifier(ctx *DamageContext, _ ModifierStack) (ModifierResult, error) {
	result := neutralModifier(MODIFIER_WEATHER)
	weather := ctx.Weather()
	moveType := ctx.MoveType()

	if weather == WEATHER_NONE {
		return result, nil
	}

	// Utility Umbrella only shields against sun and rain
	umbrella := ctx.attackerItem() == "utility-umbrella" || ctx.defenderItem() == "utility-umbrella"

	switch weather {
	case WEATHER_HARSH_SUN:
		if moveType == TYPENAME_WATER {
			result.Value = 0
			result.Nullified = true
		} else if moveType == TYPENAME_FIRE {
			result.Value = 1.5
		}
	case WEATHER_HEAVY_RAIN:
		if moveType == TYPENAME_FIRE {
			result.Value = 0
			result.Nullified = true
		} else if moveType == TYPENAME_WATER {
			result.Value = 1.5
		}
	case WEATHER_SUN:
		if umbrella {
			break
		}
		if moveType == TYPENAME_FIRE {
			result.Value = 1.5
		} else if moveType == TYPENAME_WATER {
			result.Value = 0.5
		}
	case WEATHER_RAIN:
		if umbrella {
			break
		}
		if moveType == TYPENAME_WATER {
			result.Value = 1.5
		} else if moveType == TYPENAME_FIRE {
			result.Value = 0.5
		}
	}

	return result, nil
}

// TerrainModifier only does anything when the defender is grounded. Boosts also need a grounded attacker.
func TerrainModifier(ctx *DamageContext, _ ModifierStack) (ModifierResult, error) {
	result := neutralModifier(MODIFIER_TERRAIN)
	terrain := ctx.Field.Terrain

	if !ctx.Mechanics.HasTerrain() || terrain == TERRAIN_NONE {
		return result, nil
	}

	if !ctx.Defender.IsGrounded(ctx.Field) {
		return result, nil
	}

	moveType := ctx.MoveType()
	attackerGrounded := ctx.Attacker.IsGrounded(ctx.Field)
	boost := ctx.Mechanics.TerrainBoost()

	switch terrain {
	case TERRAIN_ELECTRIC:
		if moveType == TYPENAME_ELECTRIC && attackerGrounded {
			result.Value = boost
		}
	case TERRAIN_GRASSY:
		if moveType == TYPENAME_GRASS && attackerGrounded {
			result.Value = boost
		}

		switch ctx.Move.Name {
		case "earthquake", "bulldoze", "magnitude":
			result.Value = 0.5
		}
	case TERRAIN_PSYCHIC:
		if moveType == TYPENAME_PSYCHIC && attackerGrounded {
			result.Value = boost
		}
	case TERRAIN_MISTY:
		if moveType == TYPENAME_DRAGON {
			result.Value = 0.5
		}
	}

	return result, nil
}

// ScreenModifier handles Reflect, Light Screen and Aurora Veil on the defender's side
func ScreenModifier(ctx *DamageContext, _ ModifierStack) (ModifierResult, error) {
	result := neutralModifier(MODIFIER_SCREEN)

	if ctx.IsCritical() {
		return result, nil
	}

	if ctx.attackerAbility() == "infiltrator" && ctx.Generation() >= GEN_6 {
		return result, nil
	}

	side := ctx.Field.Side(ctx.Defender.Position.Side)
	class := ctx.DamageClass()

	var screen string
	switch {
	case side.Has(SIDE_AURORA_VEIL):
		screen = "aurora-veil"
	case class == DAMAGETYPE_PHYSICAL && side.Has(SIDE_REFLECT):
		screen = "reflect"
	case class == DAMAGETYPE_SPECIAL && side.Has(SIDE_LIGHT_SCREEN):
		screen = "light-screen"
	default:
		return result, nil
	}

	result.Value = ctx.Mechanics.ScreenMultiplier(ctx.Format.SupportsSpreadMoves())
	result.Sources = []string{screen}

	return result, nil
}

// ItemAbilityModifier folds every held item and ability multiplier that acts on final damage.
// Effectiveness checks read the type step already in applied.
func ItemAbilityModifier(ctx *DamageContext, applied ModifierStack) (ModifierResult, error) {
	result := neutralModifier(MODIFIER_ITEM_ABILITY)

	effectiveness := applied.Get(MODIFIER_TYPE)
	moveType := ctx.MoveType()
	class := ctx.DamageClass()
	gen := ctx.Generation()

	apply := func(source string, mult float64) {
		result.Value *= mult
		result.Sources = append(result.Sources, source)
	}

	item := ctx.attackerItem()
	switch {
	case item == "life-orb" && gen >= GEN_4:
		apply(item, 1.3)
	case item == "expert-belt" && gen >= GEN_4 && effectiveness > 1:
		apply(item, 1.2)
	case item == "muscle-band" && gen >= GEN_4 && class == DAMAGETYPE_PHYSICAL:
		apply(item, 1.1)
	case item == "wise-glasses" && gen >= GEN_4 && class == DAMAGETYPE_SPECIAL:
		apply(item, 1.1)
	case item != "" && typeBoostItems[item] == moveType:
		apply(item, ctx.Mechanics.TypeItemBoost())
	}

	switch ability := ctx.attackerAbility(); {
	case ability == "tinted-lens" && gen >= GEN_4 && effectiveness > 0 && effectiveness < 1:
		apply(ability, 2)
	case ability == "neuroforce" && gen >= GEN_7 && effectiveness > 1:
		apply(ability, 1.25)
	}

	defender := ctx.Defender
	switch ability := ctx.defenderAbility(); {
	case (ability == "filter" || ability == "solid-rock" || ability == "prism-armor") && gen >= GEN_4 && effectiveness > 1:
		apply(ability, 0.75)
	case (ability == "multiscale" || ability == "shadow-shield") && gen >= GEN_5 && defender.Hp.Value == defender.MaxHp:
		apply(ability, 0.5)
	case ability == "thick-fat" && (moveType == TYPENAME_FIRE || moveType == TYPENAME_ICE):
		apply(ability, 0.5)
	case ability == "heatproof" && gen >= GEN_4 && moveType == TYPENAME_FIRE:
		apply(ability, 0.5)
	case ability == "dry-skin" && gen >= GEN_4 && moveType == TYPENAME_FIRE:
		apply(ability, 1.25)
	case ability == "fluffy" && gen >= GEN_7:
		if ctx.Move.MakesContact() {
			apply(ability, 0.5)
		}
		if moveType == TYPENAME_FIRE {
			apply(ability, 2)
		}
	case ability == "ice-scales" && gen >= GEN_8 && class == DAMAGETYPE_SPECIAL:
		apply(ability, 0.5)
	case ability == "punk-rock" && gen >= GEN_8 && ctx.Move.IsSound():
		apply(ability, 0.5)
	case ability == "purifying-salt" && gen >= GEN_9 && moveType == TYPENAME_GHOST:
		apply(ability, 0.5)
	}

	berry := ctx.defenderItem()
	if berryType, ok := resistBerries[berry]; ok && gen >= GEN_4 && berryType == moveType {
		// Chilan Berry works on any Normal hit, the rest need a super effective one
		if berryType == TYPENAME_NORMAL || effectiveness > 1 {
			apply(berry, 0.5)
		}
	}

	return result, nil
}

// SpreadModifier reduces damage when a move hits more than one target at once
func SpreadModifier(ctx *DamageContext, _ ModifierStack) (ModifierResult, error) {
	result := neutralModifier(MODIFIER_SPREAD)

	if ctx.Format.SupportsSpreadMoves() && ctx.TargetCount > 1 {
		result.Value = ctx.Mechanics.SpreadMultiplier()
	}

	return result, nil
}
