package golurk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseGeneration(t *testing.T) {
	gen, err := ParseGeneration(4)
	require.NoError(t, err)
	assert.Equal(t, GEN_4, gen)

	for _, bad := range []int{0, 10, -1} {
		if _, err := ParseGeneration(bad); !errors.Is(err, ErrUnknownGeneration) {
			t.Fatalf("generation %d should be unknown, got %v", bad, err)
		}
	}
}

func TestMechanicsForUnknownGeneration(t *testing.T) {
	_, err := MechanicsFor(Generation(42))
	assert.ErrorIs(t, err, ErrUnknownGeneration)
}

func TestCritMultiplier(t *testing.T) {
	for gen := GEN_1; gen <= LATEST_GENERATION; gen++ {
		mechanics := Must(MechanicsFor(gen))

		expected := 2.0
		if gen >= GEN_6 {
			expected = 1.5
		}

		if mechanics.CritMultiplier() != expected {
			t.Fatalf("gen %d crit multiplier: expected %f got %f", gen, expected, mechanics.CritMultiplier())
		}
	}
}

func TestFeatureFlags(t *testing.T) {
	gen1 := Must(MechanicsFor(GEN_1))
	assert.False(t, gen1.HasAbilities())
	assert.False(t, gen1.HasItems())
	assert.False(t, gen1.HasWeather())
	assert.True(t, gen1.UnifiedSpecial())

	gen3 := Must(MechanicsFor(GEN_3))
	assert.True(t, gen3.HasAbilities())
	assert.False(t, gen3.HasPhysicalSpecialSplit())

	gen5 := Must(MechanicsFor(GEN_5))
	assert.False(t, gen5.HasTerrain())

	gen7 := Must(MechanicsFor(GEN_7))
	assert.Equal(t, 1.5, gen7.TerrainBoost())

	gen8 := Must(MechanicsFor(GEN_8))
	assert.Equal(t, 1.3, gen8.TerrainBoost())
}

func TestDamageClassBeforeSplit(t *testing.T) {
	gen3 := Must(MechanicsFor(GEN_3))
	gen4 := Must(MechanicsFor(GEN_4))

	// Fire Fang is physical, but every Fire move was special before gen 4
	fireFang := mustMove(t, "fire-fang")
	assert.Equal(t, DAMAGETYPE_SPECIAL, gen3.DamageClass(fireFang))
	assert.Equal(t, DAMAGETYPE_PHYSICAL, gen4.DamageClass(fireFang))

	hyperVoice := mustMove(t, "hyper-voice")
	assert.Equal(t, DAMAGETYPE_PHYSICAL, gen3.DamageClass(hyperVoice))
	assert.Equal(t, DAMAGETYPE_SPECIAL, gen4.DamageClass(hyperVoice))
}

func TestMultiHitDistributionsSumToOne(t *testing.T) {
	for gen := GEN_1; gen <= LATEST_GENERATION; gen++ {
		total := 0.0
		for _, entry := range Must(MechanicsFor(gen)).MultiHitDistribution() {
			total += entry.Weight
		}

		assert.InDelta(t, 1.0, total, 1e-9, "gen %d", gen)
	}

	gen4 := Must(MechanicsFor(GEN_4)).MultiHitDistribution()
	assert.Equal(t, 3.0/8.0, gen4[0].Weight)

	gen5 := Must(MechanicsFor(GEN_5)).MultiHitDistribution()
	assert.Equal(t, 0.35, gen5[0].Weight)
}

func TestCritChance(t *testing.T) {
	attacker := waterPokemon()
	defender := waterPokemon()

	gen9 := Must(MechanicsFor(GEN_9))
	assert.Equal(t, 1.0/24.0, gen9.CritChance(attacker, defender, strike()))
	assert.Equal(t, 1.0/8.0, gen9.CritChance(attacker, defender, mustMove(t, "stone-edge")))

	gen6 := Must(MechanicsFor(GEN_6))
	assert.Equal(t, 1.0/16.0, gen6.CritChance(attacker, defender, strike()))

	attacker.Volatiles = []string{VOLATILE_FOCUS_ENERGY}
	assert.Equal(t, 0.5, gen9.CritChance(attacker, defender, strike()))
	assert.Equal(t, 1.0, gen9.CritChance(attacker, defender, mustMove(t, "stone-edge")))

	defender.Ability = "shell-armor"
	assert.Equal(t, 0.0, gen9.CritChance(attacker, defender, strike()))

	assert.Equal(t, 0.0, gen9.CritChance(attacker, waterPokemon(), mustMove(t, "swords-dance")))
}

func TestGen1CritChanceUsesBaseSpeed(t *testing.T) {
	gen1 := Must(MechanicsFor(GEN_1))
	attacker := waterPokemon()
	attacker.Base.Speed = 100

	assert.Equal(t, 50.0/256.0, gen1.CritChance(attacker, waterPokemon(), strike()))

	// High crit moves multiply the threshold by 8, capped at 255
	assert.Equal(t, 255.0/256.0, gen1.CritChance(attacker, waterPokemon(), mustMove(t, "stone-edge")))
}

func TestScreenMultiplier(t *testing.T) {
	gen9 := Must(MechanicsFor(GEN_9))
	assert.Equal(t, 0.5, gen9.ScreenMultiplier(false))
	assert.Equal(t, 2732.0/4096.0, gen9.ScreenMultiplier(true))

	gen4 := Must(MechanicsFor(GEN_4))
	assert.Equal(t, 2.0/3.0, gen4.ScreenMultiplier(true))
}

func TestApplyRollTruncates(t *testing.T) {
	gen9 := Must(MechanicsFor(GEN_9))
	assert.Equal(t, 36.0, gen9.ApplyRoll(37, 99))
	assert.Equal(t, 31.0, gen9.ApplyRoll(37, 85))
	assert.Equal(t, 37.0, gen9.ApplyRoll(37.9, 100))
}

func TestPokeRound(t *testing.T) {
	assert.Equal(t, 2.0, pokeRound(2.5))
	assert.Equal(t, 3.0, pokeRound(2.51))
	assert.Equal(t, 55.0, pokeRound(55.5))
	assert.Equal(t, 4.0, pokeRound(4.2))
}

func TestRollNeverIncreasesDamage(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gen := Generation(rapid.IntRange(int(GEN_1), int(LATEST_GENERATION)).Draw(rt, "gen"))
		damage := rapid.IntRange(0, 5000).Draw(rt, "damage")
		percent := rapid.IntRange(MIN_ROLL_PERCENT, MAX_ROLL_PERCENT).Draw(rt, "percent")

		rolled := Must(MechanicsFor(gen)).ApplyRoll(float64(damage), percent)
		assert.LessOrEqual(rt, rolled, float64(damage))
		assert.GreaterOrEqual(rt, rolled, float64(damage*MIN_ROLL_PERCENT/100))
	})
}
