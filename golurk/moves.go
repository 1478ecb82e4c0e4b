package golurk

import (
	"github.com/samber/lo"
)

type StatChange struct {
	Change   int    `json:"change"`
	StatName string `json:"stat_name"`
}

// SecondaryEffect is a chance based effect that rides along with a damaging move.
// Exactly one of Status, Volatile or StatChanges is normally set.
type SecondaryEffect struct {
	// 0-100
	Chance      int          `json:"chance"`
	Status      string       `json:"status,omitempty"`
	Volatile    string       `json:"volatile,omitempty"`
	StatChanges []StatChange `json:"stat_changes,omitempty"`
	// Effect lands on the user instead of the target (i.e. Flame Charge, Power-Up Punch)
	Self bool `json:"self,omitempty"`
}

// For values that are pointers, they are nullable
type MoveMeta struct {
	// Null means always hits once
	MinHits *int `json:"min_hits"`
	// Null means always hits once
	MaxHits *int `json:"max_hits"`

	// Positive values heal the user for a percent of damage dealt, negative values are recoil
	Drain int `json:"drain"`
	// Percent of max hp healed by the user of a status move
	Healing       int `json:"healing"`
	CritRateBonus int `json:"crit_rate"`
}

// FieldEffect is what a move does to the field instead of, or after, dealing damage
type FieldEffect struct {
	Weather       string `json:"weather,omitempty"`
	Terrain       string `json:"terrain,omitempty"`
	SideCondition string `json:"side_condition,omitempty"`
	// "self" for Rapid Spin style, "both" for Defog style
	ClearHazards string `json:"clear_hazards,omitempty"`
}

// MoveData is the read-only template of a move. It is loaded once and never written to by the engine.
type MoveData struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Power       int      `json:"power"`
	Accuracy    int      `json:"accuracy"`
	DamageClass string   `json:"damage_class"`
	Priority    int      `json:"priority"`
	Target      string   `json:"target"`
	Flags       []string `json:"flags"`
	Meta        MoveMeta `json:"meta"`

	Secondaries []SecondaryEffect `json:"secondaries"`

	// Primary effects of status moves
	Status      string       `json:"status,omitempty"`
	Volatile    string       `json:"volatile,omitempty"`
	StatChanges []StatChange `json:"stat_changes,omitempty"`
	// Stat changes always applied to the user after the move, i.e. Close Combat or Swords Dance
	SelfStatChanges []StatChange `json:"self_stat_changes,omitempty"`

	FixedDamage       string `json:"fixed_damage,omitempty"`
	FixedDamageAmount int    `json:"fixed_damage_amount,omitempty"`
	SelfFaint         bool   `json:"self_faint,omitempty"`
	// Percent of max hp the user pays up front (Belly Drum, Substitute)
	HpCost int `json:"hp_cost,omitempty"`

	Field FieldEffect `json:"field"`
}

func (m MoveData) IsNil() bool {
	return m.Name == ""
}

func (m MoveData) IsStatus() bool {
	return m.DamageClass == DAMAGETYPE_STATUS
}

func (m MoveData) HasFlag(flag string) bool {
	return lo.Contains(m.Flags, flag)
}

func (m MoveData) MakesContact() bool {
	return m.HasFlag("contact")
}

func (m MoveData) IsSound() bool {
	return m.HasFlag("sound") || lo.Contains(SOUND_MOVES, m.Name)
}

func (m MoveData) IsSelfFaint() bool {
	return m.SelfFaint || lo.Contains(EXPLOSIVE_MOVES, m.Name)
}

// HitRange returns the min and max hit count of the move
func (m MoveData) HitRange() (int, int) {
	minHits, maxHits := 1, 1
	if m.Meta.MinHits != nil {
		minHits = *m.Meta.MinHits
	}
	if m.Meta.MaxHits != nil {
		maxHits = *m.Meta.MaxHits
	}

	return minHits, max(minHits, maxHits)
}

func (m MoveData) IsMultiHit() bool {
	_, maxHits := m.HitRange()
	return maxHits > 1
}

func (m MoveData) HasSecondaries() bool {
	return len(m.Secondaries) > 0
}

var StruggleMove = MoveData{
	Name:        "struggle",
	Type:        TYPENAME_TYPELESS,
	Power:       50,
	DamageClass: DAMAGETYPE_PHYSICAL,
	Target:      TARGET_RANDOM_OPPONENT,
	Flags:       []string{"contact"},
	Meta: MoveMeta{
		Drain: -25,
	},
}
