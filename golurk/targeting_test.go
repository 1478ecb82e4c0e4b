package golurk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResolveSingles(t *testing.T) {
	format := NewSinglesFormat(GEN_9)

	resolution, err := ResolveTargets(TARGET_SELECTED_POKEMON, format, hostPos, nil)
	require.NoError(t, err)
	assert.Equal(t, []BattlePosition{peerPos}, resolution.Positions)
	assert.True(t, resolution.Single)
	assert.False(t, resolution.Spread)

	resolution, err = ResolveTargets(TARGET_ALL_OTHER_POKEMON, format, hostPos, nil)
	require.NoError(t, err)
	assert.Equal(t, []BattlePosition{peerPos}, resolution.Positions)
	assert.False(t, resolution.Spread, "one target is never a spread hit")

	resolution, err = ResolveTargets(TARGET_USER, format, hostPos, nil)
	require.NoError(t, err)
	assert.Equal(t, []BattlePosition{hostPos}, resolution.Positions)

	resolution, err = ResolveTargets(TARGET_ALLY, format, hostPos, nil)
	require.NoError(t, err)
	assert.True(t, resolution.Empty())
}

func TestResolveDoubles(t *testing.T) {
	format := NewDoublesFormat(GEN_9)

	resolution, err := ResolveTargets(TARGET_ALL_OPPONENTS, format, hostPos, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []BattlePosition{peerPos, peerAlly}, resolution.Positions)
	assert.True(t, resolution.Spread)

	resolution, err = ResolveTargets(TARGET_ALL_OTHER_POKEMON, format, hostPos, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []BattlePosition{hostAlly, peerPos, peerAlly}, resolution.Positions)
	assert.Equal(t, 3, resolution.Affected())

	resolution, err = ResolveTargets(TARGET_ALLY, format, hostPos, nil)
	require.NoError(t, err)
	assert.Equal(t, []BattlePosition{hostAlly}, resolution.Positions)

	resolution, err = ResolveTargets(TARGET_RANDOM_OPPONENT, format, hostPos, nil)
	require.NoError(t, err)
	assert.True(t, resolution.Random)
	assert.False(t, resolution.Spread)
	assert.Equal(t, 1, resolution.Affected())

	resolution, err = ResolveTargets(TARGET_USER_AND_ALLIES, format, hostPos, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []BattlePosition{hostPos, hostAlly}, resolution.Positions)
}

func TestResolveTriplesAdjacency(t *testing.T) {
	format := NewTriplesFormat(GEN_9)
	left := BattlePosition{Side: HOST, Slot: 0}

	resolution, err := ResolveTargets(TARGET_ALL_OPPONENTS, format, left, nil)
	require.NoError(t, err)

	// The far foe is out of reach from the edge of a triple battle
	assert.ElementsMatch(t, []BattlePosition{{Side: PEER, Slot: 1}, {Side: PEER, Slot: 2}}, resolution.Positions)

	resolution, err = ResolveTargets(TARGET_ANY, format, left, nil)
	require.NoError(t, err)
	assert.Len(t, resolution.Positions, 4, "any reaches every foe and the adjacent ally")

	center := BattlePosition{Side: HOST, Slot: 1}
	resolution, err = ResolveTargets(TARGET_ALL_OPPONENTS, format, center, nil)
	require.NoError(t, err)
	assert.Len(t, resolution.Positions, 3)
}

func TestResolveDropsFaintedAndEmpty(t *testing.T) {
	fainted := waterPokemon()
	fainted.Hp.Value = 0

	state := newDoublesState(GEN_9, waterPokemon(), waterPokemon(), fainted, waterPokemon())
	state.Place(peerAlly, nil)

	resolution, err := ResolveTargets(TARGET_ALL_OPPONENTS, state.Format, hostPos, state)
	require.NoError(t, err)
	assert.True(t, resolution.Empty())
	assert.False(t, resolution.Spread)
}

func TestResolveFieldAndScripted(t *testing.T) {
	format := NewSinglesFormat(GEN_9)

	resolution, err := ResolveTargets(TARGET_ENTIRE_FIELD, format, hostPos, nil)
	require.NoError(t, err)
	assert.True(t, resolution.FieldWide)
	assert.True(t, resolution.Empty())

	resolution, err = ResolveTargets(TARGET_SPECIFIC_MOVE, format, hostPos, nil)
	require.NoError(t, err)
	assert.True(t, resolution.Scripted)

	assert.Equal(t, []int{PEER}, FieldSides(TARGET_OPPONENTS_FIELD, hostPos))
	assert.Equal(t, []int{HOST}, FieldSides(TARGET_USERS_FIELD, hostPos))
	assert.Equal(t, []int{HOST, PEER}, FieldSides(TARGET_ENTIRE_FIELD, peerPos))
}

func TestResolveMalformedTarget(t *testing.T) {
	_, err := ResolveTargets("everyone-ever", NewSinglesFormat(GEN_9), hostPos, nil)
	if !errors.Is(err, ErrMalformedTarget) {
		t.Fatalf("expected ErrMalformedTarget, got %v", err)
	}
}

func TestSpreadNeedsMoreThanOneTarget(t *testing.T) {
	targets := []string{
		TARGET_SELECTED_POKEMON, TARGET_ANY, TARGET_ALLY, TARGET_USER_OR_ALLY, TARGET_USER,
		TARGET_RANDOM_OPPONENT, TARGET_ALL_OPPONENTS, TARGET_ALL_OTHER_POKEMON, TARGET_ALL_ALLIES,
		TARGET_USER_AND_ALLIES, TARGET_ALL_POKEMON,
	}

	rapid.Check(t, func(rt *rapid.T) {
		active := rapid.IntRange(1, 3).Draw(rt, "active")
		target := rapid.SampledFrom(targets).Draw(rt, "target")
		side := rapid.SampledFrom([]int{HOST, PEER}).Draw(rt, "side")
		slot := rapid.IntRange(0, active-1).Draw(rt, "slot")

		format := BattleFormat{Name: "test", ActivePerSide: active, Generation: GEN_9}
		user := BattlePosition{Side: side, Slot: slot}

		resolution, err := ResolveTargets(target, format, user, nil)
		require.NoError(rt, err)

		if resolution.Spread {
			assert.Greater(rt, len(resolution.Positions), 1)
			assert.False(rt, resolution.Single)
		}

		for _, pos := range resolution.Positions {
			assert.Less(rt, pos.Slot, active)
		}
	})
}
