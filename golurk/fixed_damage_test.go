package golurk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDamageAmount(t *testing.T) {
	user := waterPokemon()
	user.Hp.Value = 50
	target := waterPokemon()

	assert.Equal(t, 50, FixedDamageAmount(FIXED_DAMAGE_LEVEL, 0, user, target))
	assert.Equal(t, 40, FixedDamageAmount(FIXED_DAMAGE_AMOUNT, 40, user, target))
	assert.Equal(t, 100, FixedDamageAmount(FIXED_DAMAGE_HALF_HP, 0, user, target))
	assert.Equal(t, 150, FixedDamageAmount(FIXED_DAMAGE_ENDEAVOR, 0, user, target))
	assert.Equal(t, 50, FixedDamageAmount(FIXED_DAMAGE_FINAL_GAMBIT, 0, user, target))
	assert.Equal(t, 200, FixedDamageAmount(FIXED_DAMAGE_OHKO, 0, user, target))

	// Endeavor does nothing when the target has less HP
	assert.Equal(t, 0, FixedDamageAmount(FIXED_DAMAGE_ENDEAVOR, 0, target, user))

	target.Hp.Value = 1
	assert.Equal(t, 1, FixedDamageAmount(FIXED_DAMAGE_HALF_HP, 0, user, target))

	stronger := testPokemon(60, 200, 100, 100, TYPENAME_WATER)
	assert.Equal(t, 0, FixedDamageAmount(FIXED_DAMAGE_OHKO, 0, user, stronger))
}

func TestComposeFixedDamage(t *testing.T) {
	cases := []struct {
		move   string
		damage int
	}{
		{"seismic-toss", 50},
		{"dragon-rage", 40},
		{"super-fang", 100},
	}

	for _, c := range cases {
		state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())
		branches := mustCompose(t, state, hostPos, mustMove(t, c.move), DefaultOptions())

		require.Len(t, branches, 1, c.move)
		assert.Equal(t, []BattleInstruction{
			DamageInstruction{Target: peerPos, Amount: c.damage, PreviousHp: 200},
		}, branches[0].Instructions, c.move)
	}
}

func TestFixedDamageRespectsTypeImmunity(t *testing.T) {
	ghost := testPokemon(50, 200, 100, 100, TYPENAME_GHOST)
	state := NewSinglesState(GEN_9, waterPokemon(), ghost)

	branches := mustCompose(t, state, hostPos, mustMove(t, "seismic-toss"), DefaultOptions())
	require.Len(t, branches, 1)
	assert.Empty(t, branches[0].Instructions)

	normal := testPokemon(50, 200, 100, 100, TYPENAME_NORMAL)
	state = NewSinglesState(GEN_9, waterPokemon(), normal)

	branches = mustCompose(t, state, hostPos, mustMove(t, "night-shade"), DefaultOptions())
	assert.Empty(t, branches[0].Instructions)
}

func TestEndeavor(t *testing.T) {
	user := waterPokemon()
	user.Hp.Value = 50
	state := NewSinglesState(GEN_9, user, waterPokemon())

	branches := mustCompose(t, state, hostPos, mustMove(t, "endeavor"), DefaultOptions())

	require.Len(t, branches, 1)
	assert.Equal(t, 150, branches[0].DamageTo(peerPos))
}

func TestFinalGambitFaintsUser(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())

	branches := mustCompose(t, state, hostPos, mustMove(t, "final-gambit"), DefaultOptions())

	require.Len(t, branches, 1)
	assert.Equal(t, []BattleInstruction{
		DamageInstruction{Target: peerPos, Amount: 200, PreviousHp: 200},
		FaintInstruction{Target: peerPos, PreviousHp: 200},
		DamageInstruction{Target: hostPos, Amount: 200, PreviousHp: 200},
		FaintInstruction{Target: hostPos, PreviousHp: 200},
	}, branches[0].Instructions)
}

func TestOneHitKnockOut(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())
	branches := mustCompose(t, state, hostPos, mustMove(t, "fissure"), DefaultOptions())

	require.Len(t, branches, 1)
	assert.True(t, branches[0].Faints(peerPos))

	stronger := testPokemon(60, 200, 100, 100, TYPENAME_WATER)
	state = NewSinglesState(GEN_9, waterPokemon(), stronger)
	branches = mustCompose(t, state, hostPos, mustMove(t, "fissure"), DefaultOptions())
	assert.Empty(t, branches[0].Instructions)

	sturdy := waterPokemon()
	sturdy.Ability = "sturdy"
	state = NewSinglesState(GEN_9, waterPokemon(), sturdy)
	branches = mustCompose(t, state, hostPos, mustMove(t, "fissure"), DefaultOptions())
	assert.Empty(t, branches[0].Instructions)

	// Sturdy only started blocking OHKO moves in gen 5
	state = NewSinglesState(GEN_4, waterPokemon(), sturdy)
	branches = mustCompose(t, state, hostPos, mustMove(t, "fissure"), DefaultOptions())
	assert.True(t, branches[0].Faints(peerPos))

	flying := testPokemon(50, 200, 100, 100, TYPENAME_FLYING)
	state = NewSinglesState(GEN_9, waterPokemon(), flying)
	branches = mustCompose(t, state, hostPos, mustMove(t, "fissure"), DefaultOptions())
	assert.Empty(t, branches[0].Instructions)
}
