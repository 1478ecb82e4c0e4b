package golurk

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// BasePokemon is the base stats and type information of a Pokemon, as if it were a PokeDex entry.
type BasePokemon struct {
	PokedexNumber uint
	Name          string
	Type1         string
	Type2         string
	Hp            uint
	Attack        uint
	Def           uint
	SpAttack      uint
	SpDef         uint
	Speed         uint
}

// Stat represents one of a Pokemon's stats, keeping track of the raw values and also stage modifers.
type Stat struct {
	RawValue uint
	Ev       uint
	Iv       uint
	Stage    int `json:"-"`
}

// HpStat is a special version of Stat that does not contain stage info as HP cannot be increased in stages like other stats.
type HpStat struct {
	Value uint
	Ev    uint
	Iv    uint
}

// CalcValue gets the final value of a stat after being modified by its stage.
func (s Stat) CalcValue() int {
	return int(float32(s.RawValue) * StageMultipliers[clampStage(s.Stage)])
}

type Nature struct {
	Name string
	// Attack, Defense, SpAttack, SpDefense, Speed
	StatModifiers [5]float32
}

func natureOf(name string, up int, down int) Nature {
	mods := [5]float32{1, 1, 1, 1, 1}
	if up != down {
		mods[up] = 1.1
		mods[down] = 0.9
	}

	return Nature{Name: name, StatModifiers: mods}
}

var (
	NATURE_HARDY   = natureOf("Hardy", 0, 0)
	NATURE_ADAMANT = natureOf("Adamant", 0, 2)
	NATURE_BOLD    = natureOf("Bold", 1, 0)
	NATURE_MODEST  = natureOf("Modest", 2, 0)
	NATURE_CALM    = natureOf("Calm", 3, 0)
	NATURE_TIMID   = natureOf("Timid", 4, 0)
	NATURE_JOLLY   = natureOf("Jolly", 4, 2)
	NATURE_BRAVE   = natureOf("Brave", 0, 4)
	NATURE_QUIET   = natureOf("Quiet", 2, 4)
	NATURE_IMPISH  = natureOf("Impish", 1, 2)
	NATURE_CAREFUL = natureOf("Careful", 3, 2)
)

// Pokemon is the battle time projection of a Pokemon that the engine reads from.
// Stats are already calculated; only stages are applied on top.
type Pokemon struct {
	Base     *BasePokemon
	Nickname string
	Level    uint
	Hp       HpStat
	MaxHp    uint
	Attack   Stat
	Def      Stat
	SpAttack Stat
	SpDef    Stat
	RawSpeed Stat
	Nature   Nature
	Ability  string
	Item     string

	// Runtime type override (Soak, Roost, Burn Up, ...). Nil means the species types.
	BattleTypes   []string
	TeraType      string
	Terastallized bool

	Status        int
	Volatiles     []string
	CritStage     int
	AccuracyStage int
	EvasionStage  int
	Position      BattlePosition
}

func (p Pokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}

	if p.Base != nil {
		return p.Base.Name
	}

	return ""
}

func (p Pokemon) Alive() bool {
	return p.Hp.Value > 0
}

// Types returns the types the pokemon currently has in battle
func (p Pokemon) Types() []string {
	if p.Terastallized && p.TeraType != "" {
		return []string{p.TeraType}
	}

	var types []string
	if p.BattleTypes != nil {
		types = slices.Clone(p.BattleTypes)
	} else if p.Base != nil {
		types = lo.Compact([]string{p.Base.Type1, p.Base.Type2})
	}

	// Roost removes the flying type for the rest of the turn
	if p.HasVolatile(VOLATILE_ROOST) {
		types = lo.Without(types, TYPENAME_FLYING)
	}

	return types
}

// OriginalTypes are the types a pokemon had before terastallizing, which still grant STAB
func (p Pokemon) OriginalTypes() []string {
	if p.BattleTypes != nil {
		return p.BattleTypes
	}

	if p.Base == nil {
		return nil
	}

	return lo.Compact([]string{p.Base.Type1, p.Base.Type2})
}

func (p Pokemon) HasType(pokemonType string) bool {
	return lo.Contains(p.Types(), pokemonType)
}

func (p Pokemon) HasVolatile(volatile string) bool {
	return lo.Contains(p.Volatiles, volatile)
}

func (p Pokemon) BaseSpeed() uint {
	if p.Base == nil {
		return 0
	}

	return p.Base.Speed
}

// StatByName returns the stat for one of the five staged stats. Accuracy and evasion are not Stats.
func (p *Pokemon) StatByName(name string) *Stat {
	switch name {
	case STAT_ATTACK:
		return &p.Attack
	case STAT_DEFENSE:
		return &p.Def
	case STAT_SPATTACK:
		return &p.SpAttack
	case STAT_SPDEF:
		return &p.SpDef
	case STAT_SPEED:
		return &p.RawSpeed
	}

	return nil
}

func (p Pokemon) Stage(name string) int {
	switch name {
	case STAT_ACCURACY:
		return p.AccuracyStage
	case STAT_EVASION:
		return p.EvasionStage
	}

	if stat := p.StatByName(name); stat != nil {
		return stat.Stage
	}

	return 0
}

func (p *Pokemon) SetStage(name string, stage int) {
	stage = clampStage(stage)

	switch name {
	case STAT_ACCURACY:
		p.AccuracyStage = stage
	case STAT_EVASION:
		p.EvasionStage = stage
	default:
		if stat := p.StatByName(name); stat != nil {
			stat.Stage = stage
		}
	}
}

// IsGrounded reports whether terrain and ground moves affect this pokemon.
func (p Pokemon) IsGrounded(field Field) bool {
	if field.Gravity || p.Item == "iron-ball" || p.HasVolatile(VOLATILE_SMACK_DOWN) || p.HasVolatile(VOLATILE_INGRAIN) {
		return true
	}

	if p.HasType(TYPENAME_FLYING) || p.Ability == "levitate" || p.Item == "air-balloon" {
		return false
	}

	return !p.HasVolatile(VOLATILE_MAGNET_RISE) && !p.HasVolatile(VOLATILE_TELEKINESIS)
}

func (p *Pokemon) ReCalcStats() {
	if strings.EqualFold(p.Base.Name, "shedinja") {
		p.Hp.Value = 1
		p.MaxHp = 1
	} else {
		hpNumerator := (2*p.Base.Hp + p.Hp.Iv + (p.Hp.Ev / 4)) * (p.Level)
		p.Hp.Value = (hpNumerator / 100) + p.Level + 10
		p.MaxHp = p.Hp.Value
	}

	p.Attack.RawValue = calcStat(p.Base.Attack, p.Level, p.Attack.Iv, p.Attack.Ev, p.Nature.StatModifiers[0])
	p.Def.RawValue = calcStat(p.Base.Def, p.Level, p.Def.Iv, p.Def.Ev, p.Nature.StatModifiers[1])
	p.SpAttack.RawValue = calcStat(p.Base.SpAttack, p.Level, p.SpAttack.Iv, p.SpAttack.Ev, p.Nature.StatModifiers[2])
	p.SpDef.RawValue = calcStat(p.Base.SpDef, p.Level, p.SpDef.Iv, p.SpDef.Ev, p.Nature.StatModifiers[3])
	p.RawSpeed.RawValue = calcStat(p.Base.Speed, p.Level, p.RawSpeed.Iv, p.RawSpeed.Ev, p.Nature.StatModifiers[4])
}

func calcStat(base uint, level uint, iv uint, ev uint, natureMod float32) uint {
	inner := (2*base + iv + (ev / 4)) * level
	// natureMod is a float32 so 0.9 is slightly under; nudge before truncating
	return uint(float64(inner/100+5)*float64(natureMod) + 0.001)
}

func clampStage(stage int) int {
	return min(MAX_STAGE, max(MIN_STAGE, stage))
}
