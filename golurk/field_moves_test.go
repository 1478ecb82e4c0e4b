package golurk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeatherMoves(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())
	branch := composeOnce(t, state, "rain-dance")
	assert.Equal(t, []BattleInstruction{
		WeatherInstruction{NewWeather: WEATHER_RAIN, PreviousWeather: WEATHER_NONE, Turns: 5, PreviousTurns: 0},
	}, branch.Instructions)

	user := waterPokemon()
	user.Item = "damp-rock"
	state = NewSinglesState(GEN_9, user, waterPokemon())
	state.Field.Weather = WEATHER_SUN
	state.Field.WeatherTurns = 3

	branch = composeOnce(t, state, "rain-dance")
	assert.Equal(t, []BattleInstruction{
		WeatherInstruction{NewWeather: WEATHER_RAIN, PreviousWeather: WEATHER_SUN, Turns: 8, PreviousTurns: 3},
	}, branch.Instructions)
}

func TestWeatherMovesThatFail(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())
	state.Field.Weather = WEATHER_RAIN
	assert.Empty(t, composeOnce(t, state, "rain-dance").Instructions, "same weather")

	state.Field.Weather = WEATHER_HEAVY_RAIN
	assert.Empty(t, composeOnce(t, state, "sunny-day").Instructions, "primal weather can't be replaced")

	state = NewSinglesState(GEN_1, waterPokemon(), waterPokemon())
	assert.Empty(t, composeOnce(t, state, "rain-dance").Instructions, "no weather in gen 1")
}

func TestTerrainMoves(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())
	branch := composeOnce(t, state, "electric-terrain")
	assert.Equal(t, []BattleInstruction{
		TerrainInstruction{NewTerrain: TERRAIN_ELECTRIC, PreviousTerrain: TERRAIN_NONE, Turns: 5},
	}, branch.Instructions)

	user := waterPokemon()
	user.Item = "terrain-extender"
	state = NewSinglesState(GEN_9, user, waterPokemon())
	branch = composeOnce(t, state, "electric-terrain")
	assert.Equal(t, 8, instructionsOf[TerrainInstruction](branch)[0].Turns)

	state = NewSinglesState(GEN_5, waterPokemon(), waterPokemon())
	assert.Empty(t, composeOnce(t, state, "electric-terrain").Instructions)
}

func TestScreens(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())
	branch := composeOnce(t, state, "reflect")
	assert.Equal(t, []BattleInstruction{
		ApplySideConditionInstruction{Side: HOST, Condition: SIDE_REFLECT, Amount: 5},
	}, branch.Instructions)

	user := waterPokemon()
	user.Item = "light-clay"
	state = NewSinglesState(GEN_9, user, waterPokemon())
	branch = composeOnce(t, state, "light-screen")
	assert.Equal(t, []BattleInstruction{
		ApplySideConditionInstruction{Side: HOST, Condition: SIDE_LIGHT_SCREEN, Amount: 8},
	}, branch.Instructions)

	state.Field.HostSide[SIDE_LIGHT_SCREEN] = 2
	assert.Empty(t, composeOnce(t, state, "light-screen").Instructions, "screen already up")
}

func TestAuroraVeilNeedsSnow(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())
	assert.Empty(t, composeOnce(t, state, "aurora-veil").Instructions)

	state.Field.Weather = WEATHER_SNOW
	branch := composeOnce(t, state, "aurora-veil")
	assert.Equal(t, []BattleInstruction{
		ApplySideConditionInstruction{Side: HOST, Condition: SIDE_AURORA_VEIL, Amount: 5},
	}, branch.Instructions)
}

func TestTailwind(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())

	branch := composeOnce(t, state, "tailwind")
	assert.Equal(t, []BattleInstruction{
		ApplySideConditionInstruction{Side: HOST, Condition: SIDE_TAILWIND, Amount: 4},
	}, branch.Instructions)
}

func TestHazards(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())

	branch := composeOnce(t, state, "stealth-rock")
	assert.Equal(t, []BattleInstruction{
		ApplySideConditionInstruction{Side: PEER, Condition: SIDE_STEALTH_ROCK, Amount: 1},
	}, branch.Instructions)

	state.Field.PeerSide[SIDE_SPIKES] = 2
	branch = composeOnce(t, state, "spikes")
	assert.Equal(t, []BattleInstruction{
		ApplySideConditionInstruction{Side: PEER, Condition: SIDE_SPIKES, Amount: 1},
	}, branch.Instructions)

	state.Field.PeerSide[SIDE_SPIKES] = 3
	assert.Empty(t, composeOnce(t, state, "spikes").Instructions, "spikes stop at 3 layers")

	state.Field.PeerSide[SIDE_TOXIC_SPIKES] = 2
	assert.Empty(t, composeOnce(t, state, "toxic-spikes").Instructions, "toxic spikes stop at 2 layers")
}

func TestRapidSpin(t *testing.T) {
	user := waterPokemon()
	user.Volatiles = []string{VOLATILE_LEECH_SEED}
	state := NewSinglesState(GEN_9, user, waterPokemon())
	state.Field.HostSide[SIDE_SPIKES] = 2
	state.Field.HostSide[SIDE_STEALTH_ROCK] = 1

	branch := composeOnce(t, state, "rapid-spin")

	instructions := branch.Instructions
	assert.IsType(t, DamageInstruction{}, instructions[0])
	assert.Equal(t, []BattleInstruction{
		BoostInstruction{Target: hostPos, Stat: STAT_SPEED, Amount: 1},
		RemoveSideConditionInstruction{Side: HOST, Condition: SIDE_SPIKES, Amount: 2},
		RemoveSideConditionInstruction{Side: HOST, Condition: SIDE_STEALTH_ROCK, Amount: 1},
		RemoveVolatileInstruction{Target: hostPos, Volatile: VOLATILE_LEECH_SEED},
	}, instructions[1:])

	// The original state is untouched
	assert.Equal(t, 2, state.Field.HostSide[SIDE_SPIKES])
}

func TestRapidSpinNeedsToConnect(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), testPokemon(50, 200, 100, 100, TYPENAME_GHOST))
	state.Field.HostSide[SIDE_SPIKES] = 2

	assert.Empty(t, composeOnce(t, state, "rapid-spin").Instructions)
}

func TestDefog(t *testing.T) {
	state := NewSinglesState(GEN_9, waterPokemon(), waterPokemon())
	state.Field.PeerSide[SIDE_REFLECT] = 5
	state.Field.PeerSide[SIDE_SPIKES] = 1
	state.Field.HostSide[SIDE_STEALTH_ROCK] = 1

	branch := composeOnce(t, state, "defog")
	assert.Equal(t, []BattleInstruction{
		BoostInstruction{Target: peerPos, Stat: STAT_EVASION, Amount: -1},
		RemoveSideConditionInstruction{Side: PEER, Condition: SIDE_REFLECT, Amount: 5},
		RemoveSideConditionInstruction{Side: PEER, Condition: SIDE_SPIKES, Amount: 1},
		RemoveSideConditionInstruction{Side: HOST, Condition: SIDE_STEALTH_ROCK, Amount: 1},
	}, branch.Instructions)

	// Before gen 6 Defog left the user's side alone
	state.Format = NewSinglesFormat(GEN_5)
	branch = composeOnce(t, state, "defog")
	assert.NotContains(t, branch.Instructions, RemoveSideConditionInstruction{Side: HOST, Condition: SIDE_STEALTH_ROCK, Amount: 1})
}
