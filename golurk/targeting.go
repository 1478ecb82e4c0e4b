package golurk

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Move targets, named the way pokeapi names them
const (
	TARGET_SELECTED_POKEMON  = "selected-pokemon"
	TARGET_ADJACENT_FOE      = "adjacent-foe"
	TARGET_ANY               = "any"
	TARGET_ALLY              = "ally"
	TARGET_USER_OR_ALLY      = "user-or-ally"
	TARGET_USER              = "user"
	TARGET_RANDOM_OPPONENT   = "random-opponent"
	TARGET_ALL_OPPONENTS     = "all-opponents"
	TARGET_ALL_OTHER_POKEMON = "all-other-pokemon"
	TARGET_ALL_ALLIES        = "all-allies"
	TARGET_USER_AND_ALLIES   = "user-and-allies"
	TARGET_USERS_FIELD       = "users-field"
	TARGET_OPPONENTS_FIELD   = "opponents-field"
	TARGET_ENTIRE_FIELD      = "entire-field"
	TARGET_ALL_POKEMON       = "all-pokemon"
	// Counter, Mirror Coat, Metal Burst... targets depend on what happened earlier in the turn
	TARGET_SPECIFIC_MOVE = "specific-move"
)

// TargetResolution is the concrete set of positions a move lands on
type TargetResolution struct {
	Positions []BattlePosition
	// The move targets one chosen pokemon; the caller may pick which
	Single bool
	// More than one concrete defender, so the spread penalty applies
	Spread bool
	// One of Positions is picked at random; the composer branches over all of them
	Random bool
	// The move affects a side or the whole field instead of pokemon
	FieldWide bool
	// Targets can't be known from the move alone
	Scripted bool
}

func (r TargetResolution) Empty() bool {
	return len(r.Positions) == 0
}

// Affected returns the number of pokemon that are actually hit at once
func (r TargetResolution) Affected() int {
	if r.Random {
		return min(1, len(r.Positions))
	}

	return len(r.Positions)
}

// AreAllies reports whether two different positions on the same side are next to each other
func AreAllies(a BattlePosition, b BattlePosition) bool {
	return a.Side == b.Side && a != b && slotDistance(a.Slot, b.Slot) == 1
}

// AreAdjacent reports whether two positions can reach each other with adjacent moves.
// Across the field slots are mirrored, so the far slots of a triple battle are not adjacent.
func AreAdjacent(format BattleFormat, a BattlePosition, b BattlePosition) bool {
	if a == b {
		return false
	}

	if a.Side == b.Side {
		return AreAllies(a, b)
	}

	mirrored := format.ActivePerSide - 1 - b.Slot
	return slotDistance(a.Slot, mirrored) <= 1
}

// ResolveTargets expands a move target into concrete positions for a format.
// When state is not nil empty slots and fainted pokemon are dropped. An empty result is valid;
// an unknown target is ErrMalformedTarget.
func ResolveTargets(target string, format BattleFormat, user BattlePosition, state *BattleState) (TargetResolution, error) {
	foeSide := InvertPlayerIndex(user.Side)
	foes := format.Positions(foeSide)
	ownSide := format.Positions(user.Side)

	adjacentFoes := lo.Filter(foes, func(pos BattlePosition, _ int) bool {
		return AreAdjacent(format, user, pos)
	})
	allies := lo.Filter(ownSide, func(pos BattlePosition, _ int) bool {
		return AreAllies(user, pos)
	})

	var resolution TargetResolution

	switch NormalizeID(target) {
	case TARGET_SELECTED_POKEMON, TARGET_ADJACENT_FOE:
		resolution.Positions = adjacentFoes
		resolution.Single = true
	case TARGET_ANY:
		resolution.Positions = append(slices.Clone(foes), allies...)
		resolution.Single = true
	case TARGET_ALLY:
		resolution.Positions = allies
		resolution.Single = true
	case TARGET_USER_OR_ALLY:
		resolution.Positions = append([]BattlePosition{user}, allies...)
		resolution.Single = true
	case TARGET_USER:
		resolution.Positions = []BattlePosition{user}
	case TARGET_RANDOM_OPPONENT:
		resolution.Positions = adjacentFoes
		resolution.Random = true
	case TARGET_ALL_OPPONENTS:
		resolution.Positions = adjacentFoes
	case TARGET_ALL_OTHER_POKEMON:
		resolution.Positions = append(slices.Clone(allies), adjacentFoes...)
	case TARGET_ALL_ALLIES:
		resolution.Positions = lo.Without(ownSide, user)
	case TARGET_USER_AND_ALLIES:
		resolution.Positions = ownSide
	case TARGET_ALL_POKEMON:
		resolution.Positions = append(slices.Clone(ownSide), foes...)
	case TARGET_USERS_FIELD, TARGET_OPPONENTS_FIELD, TARGET_ENTIRE_FIELD:
		resolution.FieldWide = true
	case TARGET_SPECIFIC_MOVE:
		resolution.Scripted = true
	default:
		return TargetResolution{}, fmt.Errorf("%w: %q", ErrMalformedTarget, target)
	}

	if state != nil {
		resolution.Positions = lo.Filter(resolution.Positions, func(pos BattlePosition, _ int) bool {
			pokemon := state.PokemonAt(pos)
			return pokemon != nil && pokemon.Alive()
		})
	}

	resolution.Spread = !resolution.Single && !resolution.Random && len(resolution.Positions) > 1

	targetLogger().V(2).Info("resolved targets", "target", target, "user", user.String(), "positions", len(resolution.Positions), "spread", resolution.Spread)

	return resolution, nil
}

// FieldSides returns the sides a field wide move acts on
func FieldSides(target string, user BattlePosition) []int {
	switch NormalizeID(target) {
	case TARGET_USERS_FIELD:
		return []int{user.Side}
	case TARGET_OPPONENTS_FIELD:
		return []int{InvertPlayerIndex(user.Side)}
	case TARGET_ENTIRE_FIELD:
		return []int{HOST, PEER}
	}

	return nil
}

func slotDistance(a int, b int) int {
	return max(a-b, b-a)
}
