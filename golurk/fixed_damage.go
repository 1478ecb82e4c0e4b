package golurk

// How a fixed damage move works out its damage
const (
	FIXED_DAMAGE_LEVEL        = "level"
	FIXED_DAMAGE_AMOUNT       = "amount"
	FIXED_DAMAGE_HALF_HP      = "half-hp"
	FIXED_DAMAGE_ENDEAVOR     = "endeavor"
	FIXED_DAMAGE_FINAL_GAMBIT = "final-gambit"
	FIXED_DAMAGE_OHKO         = "ohko"
)

type fixedDamageMove struct {
	kind   string
	amount int
}

// Used when the move data doesn't say how a known fixed damage move works
var fixedDamageMoves = map[string]fixedDamageMove{
	"seismic-toss":    {kind: FIXED_DAMAGE_LEVEL},
	"night-shade":     {kind: FIXED_DAMAGE_LEVEL},
	"sonic-boom":      {kind: FIXED_DAMAGE_AMOUNT, amount: 20},
	"dragon-rage":     {kind: FIXED_DAMAGE_AMOUNT, amount: 40},
	"super-fang":      {kind: FIXED_DAMAGE_HALF_HP},
	"natures-madness": {kind: FIXED_DAMAGE_HALF_HP},
	"ruination":       {kind: FIXED_DAMAGE_HALF_HP},
	"endeavor":        {kind: FIXED_DAMAGE_ENDEAVOR},
	"final-gambit":    {kind: FIXED_DAMAGE_FINAL_GAMBIT},
	"fissure":         {kind: FIXED_DAMAGE_OHKO},
	"guillotine":      {kind: FIXED_DAMAGE_OHKO},
	"horn-drill":      {kind: FIXED_DAMAGE_OHKO},
	"sheer-cold":      {kind: FIXED_DAMAGE_OHKO},
}

func (c *composer) fixedDamage() fixedDamageMove {
	if c.move.FixedDamage != "" {
		return fixedDamageMove{kind: c.move.FixedDamage, amount: c.move.FixedDamageAmount}
	}

	fixed := fixedDamageMoves[c.move.Name]
	if c.move.FixedDamageAmount > 0 {
		fixed.amount = c.move.FixedDamageAmount
	}

	return fixed
}

func (c *composer) fixedDamageKind() string {
	return c.fixedDamage().kind
}

// FixedDamageAmount is the damage a fixed damage move does, before immunities
func FixedDamageAmount(kind string, amount int, user *Pokemon, target *Pokemon) int {
	switch kind {
	case FIXED_DAMAGE_LEVEL:
		return int(user.Level)
	case FIXED_DAMAGE_AMOUNT:
		return amount
	case FIXED_DAMAGE_HALF_HP:
		return max(1, int(target.Hp.Value)/2)
	case FIXED_DAMAGE_ENDEAVOR:
		return max(0, int(target.Hp.Value)-int(user.Hp.Value))
	case FIXED_DAMAGE_FINAL_GAMBIT:
		return int(user.Hp.Value)
	case FIXED_DAMAGE_OHKO:
		if target.Level > user.Level {
			return 0
		}
		return int(target.Hp.Value)
	}

	return 0
}

// composeFixedDamage skips the damage formula but still respects type and ability immunities
func (c *composer) composeFixedDamage(branches []*branch, targets []BattlePosition) ([]*branch, error) {
	fixed := c.fixedDamage()

	for _, b := range branches {
		for _, pos := range targets {
			if !b.alive(pos) || !b.alive(c.user) {
				continue
			}

			immune, err := c.fixedDamageImmune(b, pos, fixed.kind)
			if err != nil {
				return nil, err
			}

			if immune {
				composerLogger().V(1).Info("Target immune to fixed damage", "move", c.move.Name, "target", pos.String())
				continue
			}

			amount := FixedDamageAmount(fixed.kind, fixed.amount, b.at(c.user), b.at(pos))
			b.dealt += b.damage(pos, amount)
			b.landed = append(b.landed, pos)
		}

		if fixed.kind == FIXED_DAMAGE_FINAL_GAMBIT && len(b.landed) > 0 {
			b.faint(c.user)
		}
	}

	return branches, nil
}

func (c *composer) fixedDamageImmune(b *branch, pos BattlePosition, kind string) (bool, error) {
	ctx := c.damageContext(b, pos, 1, 1)

	if _, blocked := abilityImmunity(ctx); blocked {
		return true, nil
	}

	typeResult, err := TypeModifier(ctx, ModifierStack{})
	if err != nil {
		return false, err
	}

	if typeResult.Value == 0 {
		return true, nil
	}

	if kind != FIXED_DAMAGE_OHKO {
		return false, nil
	}

	if ctx.defenderAbility() == "sturdy" && ctx.Generation() >= GEN_5 {
		return true, nil
	}

	// Sheer Cold stopped working on Ice types in gen 7
	return c.move.Name == "sheer-cold" && ctx.Generation() >= GEN_7 && ctx.Defender.HasType(TYPENAME_ICE), nil
}
