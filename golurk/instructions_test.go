package golurk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionStrings(t *testing.T) {
	cases := []struct {
		instruction BattleInstruction
		expected    string
	}{
		{DamageInstruction{Target: peerPos, Amount: 34}, "damage " + peerPos.String() + " 34"},
		{HealInstruction{Target: hostPos, Amount: 10}, "heal " + hostPos.String() + " 10"},
		{BoostInstruction{Target: hostPos, Stat: STAT_ATTACK, Amount: 2}, "boost " + hostPos.String() + " attack +2"},
		{BoostInstruction{Target: peerPos, Stat: STAT_SPEED, Amount: -1}, "boost " + peerPos.String() + " speed -1"},
		{ApplyStatusInstruction{Target: peerPos, Status: STATUS_BURN}, "status " + peerPos.String() + " burn"},
		{WeatherInstruction{NewWeather: WEATHER_RAIN, Turns: 5}, "weather none -> rain (5 turns)"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.instruction.String())
	}
}

func TestBranchQueries(t *testing.T) {
	branch := BattleInstructions{
		Probability: 1,
		Instructions: []BattleInstruction{
			DamageInstruction{Target: peerPos, Amount: 30, PreviousHp: 40},
			DamageInstruction{Target: peerPos, Amount: 10, PreviousHp: 10},
			FaintInstruction{Target: peerPos, PreviousHp: 10},
			DamageInstruction{Target: hostPos, Amount: 5, PreviousHp: 100},
			WeatherInstruction{NewWeather: WEATHER_SUN, Turns: 5},
		},
	}

	assert.Equal(t, 40, branch.DamageTo(peerPos))
	assert.Equal(t, 5, branch.DamageTo(hostPos))
	assert.True(t, branch.Faints(peerPos))
	assert.False(t, branch.Faints(hostPos))
	assert.Equal(t, []BattlePosition{peerPos, hostPos}, branch.AffectedPositions())
}

func TestFieldInstructionsAffectNoPositions(t *testing.T) {
	field := []BattleInstruction{
		WeatherInstruction{},
		TerrainInstruction{},
		ApplySideConditionInstruction{Side: HOST, Condition: SIDE_REFLECT, Amount: 5},
		RemoveSideConditionInstruction{Side: PEER, Condition: SIDE_SPIKES, Amount: 1},
	}

	for _, instruction := range field {
		assert.Empty(t, instruction.AffectedPositions(), instruction.String())
	}
}

func TestTotalProbability(t *testing.T) {
	branches := []BattleInstructions{{Probability: 0.25}, {Probability: 0.5}, {Probability: 0.25}}
	assert.Equal(t, 1.0, TotalProbability(branches))
	assert.Equal(t, 0.0, TotalProbability(nil))
}
