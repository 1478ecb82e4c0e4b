package golurk

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var builderLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "pokemon-builder").Logger()
	return &logger
}

// PokemonBuilder builds the battle projection of a pokemon from its base stats
type PokemonBuilder struct {
	poke Pokemon
	// Applied after stats are calculated
	hpPercent *int
	stages    map[string]int
}

func NewPokeBuilder(base *BasePokemon) *PokemonBuilder {
	poke := Pokemon{
		Base:     base,
		Nickname: base.Name,
		Level:    1,
		Nature:   NATURE_HARDY,
	}

	return &PokemonBuilder{poke: poke, stages: make(map[string]int)}
}

func (pb *PokemonBuilder) SetEvs(evs [6]uint) *PokemonBuilder {
	pb.poke.Hp.Ev = evs[0]
	pb.poke.Attack.Ev = evs[1]
	pb.poke.Def.Ev = evs[2]
	pb.poke.SpAttack.Ev = evs[3]
	pb.poke.SpDef.Ev = evs[4]
	pb.poke.RawSpeed.Ev = evs[5]

	builderLogger().Debug().
		Uint("HP", evs[0]).
		Uint("ATTACK", evs[1]).
		Uint("DEF", evs[2]).
		Uint("SPATTACK", evs[3]).
		Uint("SPDEF", evs[4]).
		Uint("SPEED", evs[5]).Msg("Setting EVs")

	return pb
}

func (pb *PokemonBuilder) SetIvs(ivs [6]uint) *PokemonBuilder {
	pb.poke.Hp.Iv = ivs[0]
	pb.poke.Attack.Iv = ivs[1]
	pb.poke.Def.Iv = ivs[2]
	pb.poke.SpAttack.Iv = ivs[3]
	pb.poke.SpDef.Iv = ivs[4]
	pb.poke.RawSpeed.Iv = ivs[5]

	return pb
}

func (pb *PokemonBuilder) SetPerfectIvs() *PokemonBuilder {
	builderLogger().Debug().Msg("Setting Perfect IVS")
	return pb.SetIvs([6]uint{MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV})
}

func (pb *PokemonBuilder) SetLevel(level uint) *PokemonBuilder {
	pb.poke.Level = level
	return pb
}

func (pb *PokemonBuilder) SetNature(nature Nature) *PokemonBuilder {
	pb.poke.Nature = nature
	return pb
}

func (pb *PokemonBuilder) SetAbility(ability string) *PokemonBuilder {
	pb.poke.Ability = NormalizeID(ability)
	return pb
}

func (pb *PokemonBuilder) SetItem(item string) *PokemonBuilder {
	pb.poke.Item = NormalizeID(item)
	return pb
}

func (pb *PokemonBuilder) SetStatus(status int) *PokemonBuilder {
	pb.poke.Status = status
	return pb
}

func (pb *PokemonBuilder) AddVolatile(volatile string) *PokemonBuilder {
	pb.poke.Volatiles = append(pb.poke.Volatiles, volatile)
	return pb
}

// SetTypes overrides the species types, like Soak or Burn Up would
func (pb *PokemonBuilder) SetTypes(types ...string) *PokemonBuilder {
	pb.poke.BattleTypes = make([]string, 0, len(types))
	for _, t := range types {
		pb.poke.BattleTypes = append(pb.poke.BattleTypes, NormalizeTypeName(t))
	}

	return pb
}

func (pb *PokemonBuilder) Terastallize(teraType string) *PokemonBuilder {
	pb.poke.TeraType = NormalizeTypeName(teraType)
	pb.poke.Terastallized = true
	return pb
}

func (pb *PokemonBuilder) SetStage(stat string, stage int) *PokemonBuilder {
	pb.stages[stat] = stage
	return pb
}

// SetHpPercent sets current HP as a percent of max HP once stats are calculated
func (pb *PokemonBuilder) SetHpPercent(percent int) *PokemonBuilder {
	pb.hpPercent = &percent
	return pb
}

func (pb *PokemonBuilder) Build() Pokemon {
	pb.poke.ReCalcStats()

	if pb.hpPercent != nil {
		hp := pb.poke.MaxHp * uint(max(0, min(100, *pb.hpPercent))) / 100
		if *pb.hpPercent > 0 {
			hp = max(1, hp)
		}
		pb.poke.Hp.Value = hp
	}

	for stat, stage := range pb.stages {
		pb.poke.SetStage(stat, stage)
	}

	builderLogger().Debug().
		Str("name", pb.poke.Name()).
		Uint("level", pb.poke.Level).
		Uint("hp", pb.poke.Hp.Value).
		Msg("Building pokemon")

	return pb.poke
}
