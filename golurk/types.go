package golurk

import (
	"fmt"

	"github.com/samber/lo"
)

// plus 1 because Go has made very stupid design decisions
const (
	HOST = iota + 1
	PEER
)

func InvertPlayerIndex(initial int) int {
	if initial == HOST {
		return PEER
	}

	return HOST
}

// BattlePosition is a single active slot on the field. Slots are counted from 0 on each side.
type BattlePosition struct {
	Side int
	Slot int
}

func (p BattlePosition) String() string {
	side := "host"
	if p.Side == PEER {
		side = "peer"
	}

	return fmt.Sprintf("%s-%d", side, p.Slot)
}

// BattleFormat describes how many Pokemon each side has active and which ruleset is in use.
type BattleFormat struct {
	Name          string
	ActivePerSide int
	Generation    Generation
}

func NewSinglesFormat(gen Generation) BattleFormat {
	return BattleFormat{Name: "singles", ActivePerSide: 1, Generation: gen}
}

func NewDoublesFormat(gen Generation) BattleFormat {
	return BattleFormat{Name: "doubles", ActivePerSide: 2, Generation: gen}
}

func NewTriplesFormat(gen Generation) BattleFormat {
	return BattleFormat{Name: "triples", ActivePerSide: 3, Generation: gen}
}

// SupportsSpreadMoves reports whether a move in this format can hit more than one target at once
func (f BattleFormat) SupportsSpreadMoves() bool {
	return f.ActivePerSide > 1
}

// Positions returns every slot on a side in slot order
func (f BattleFormat) Positions(side int) []BattlePosition {
	return lo.Times(f.ActivePerSide, func(slot int) BattlePosition {
		return BattlePosition{Side: side, Slot: slot}
	})
}

// SideConditions maps a SIDE_* condition to its layers (hazards) or remaining turns (screens and the like)
type SideConditions map[int]int

func (s SideConditions) Has(condition int) bool {
	return s[condition] > 0
}

func (s SideConditions) Clone() SideConditions {
	clone := make(SideConditions, len(s))
	for k, v := range s {
		clone[k] = v
	}

	return clone
}

type Field struct {
	Weather      int
	WeatherTurns int
	Terrain      int
	TerrainTurns int
	Gravity      bool

	HostSide SideConditions
	PeerSide SideConditions
}

func (f Field) Side(side int) SideConditions {
	if side == HOST {
		return f.HostSide
	}

	return f.PeerSide
}

func (f Field) Clone() Field {
	clone := f
	clone.HostSide = f.HostSide.Clone()
	clone.PeerSide = f.PeerSide.Clone()

	return clone
}

// BattleState is the read-only view of a battle the engine needs to evaluate a move.
// It is owned by whoever applies instructions; nothing in this package writes to it.
type BattleState struct {
	Format BattleFormat
	Field  Field
	Active map[BattlePosition]*Pokemon
}

func NewBattleState(format BattleFormat, field Field) *BattleState {
	if field.HostSide == nil {
		field.HostSide = SideConditions{}
	}
	if field.PeerSide == nil {
		field.PeerSide = SideConditions{}
	}

	return &BattleState{
		Format: format,
		Field:  field,
		Active: make(map[BattlePosition]*Pokemon),
	}
}

// NewSinglesState is a shortcut for the common one on one case
func NewSinglesState(gen Generation, host *Pokemon, peer *Pokemon) *BattleState {
	state := NewBattleState(NewSinglesFormat(gen), Field{})
	state.Place(BattlePosition{Side: HOST, Slot: 0}, host)
	state.Place(BattlePosition{Side: PEER, Slot: 0}, peer)

	return state
}

// Place puts a pokemon into an active slot and keeps its Position in sync
func (s *BattleState) Place(pos BattlePosition, pokemon *Pokemon) {
	if pokemon == nil {
		delete(s.Active, pos)
		return
	}

	pokemon.Position = pos
	s.Active[pos] = pokemon
}

// PokemonAt returns the pokemon in a slot or nil if the slot is empty
func (s *BattleState) PokemonAt(pos BattlePosition) *Pokemon {
	return s.Active[pos]
}

// WeatherSuppressed reports whether an active Cloud Nine or Air Lock is negating the weather
func (s *BattleState) WeatherSuppressed() bool {
	for _, pokemon := range s.Active {
		if pokemon.Alive() && (pokemon.Ability == "cloud-nine" || pokemon.Ability == "air-lock") {
			return true
		}
	}

	return false
}
