package golurk

import (
	"testing"
)

var (
	hostPos  = BattlePosition{Side: HOST, Slot: 0}
	peerPos  = BattlePosition{Side: PEER, Slot: 0}
	hostAlly = BattlePosition{Side: HOST, Slot: 1}
	peerAlly = BattlePosition{Side: PEER, Slot: 1}
)

// testPokemon makes a pokemon with exact stats so damage can be worked out by hand
func testPokemon(level uint, hp uint, atk uint, def uint, types ...string) *Pokemon {
	base := &BasePokemon{Name: "testmon", Type1: types[0]}
	if len(types) > 1 {
		base.Type2 = types[1]
	}

	return &Pokemon{
		Base:     base,
		Level:    level,
		Hp:       HpStat{Value: hp},
		MaxHp:    hp,
		Attack:   Stat{RawValue: atk},
		Def:      Stat{RawValue: def},
		SpAttack: Stat{RawValue: atk},
		SpDef:    Stat{RawValue: def},
		RawSpeed: Stat{RawValue: 100},
		Nature:   NATURE_HARDY,
	}
}

// waterPokemon is a level 50, 100 attack and 100 defense Water type with 200 HP
func waterPokemon() *Pokemon {
	return testPokemon(50, 200, 100, 100, TYPENAME_WATER)
}

func dexPokemon(t testing.TB, name string, level uint) *Pokemon {
	t.Helper()

	base := DefaultPokedex().GetPokemonByName(name)
	if base == nil {
		t.Fatalf("no pokemon named %s in the pokedex", name)
	}

	pokemon := NewPokeBuilder(base).SetPerfectIvs().SetLevel(level).Build()
	return &pokemon
}

func mustMove(t testing.TB, name string) *MoveData {
	t.Helper()

	move, err := DefaultPokedex().Moves.GetMove(name)
	if err != nil {
		t.Fatalf("loading move %s: %s", name, err)
	}

	return move
}

// strike is an 80 power physical Normal move with nothing else going on
func strike() *MoveData {
	return &MoveData{
		Name:        "strike",
		Type:        TYPENAME_NORMAL,
		Power:       80,
		Accuracy:    100,
		DamageClass: DAMAGETYPE_PHYSICAL,
		Target:      TARGET_SELECTED_POKEMON,
	}
}

func newDoublesState(gen Generation, host *Pokemon, ally *Pokemon, peer *Pokemon, peerPartner *Pokemon) *BattleState {
	state := NewBattleState(NewDoublesFormat(gen), Field{})
	state.Place(hostPos, host)
	state.Place(hostAlly, ally)
	state.Place(peerPos, peer)
	state.Place(peerAlly, peerPartner)

	return state
}

func mustCompose(t testing.TB, state *BattleState, user BattlePosition, move *MoveData, opts Options) []BattleInstructions {
	t.Helper()

	branches, err := ComposeMove(EvaluationContext{State: state, User: user, Move: move, Options: opts})
	if err != nil {
		t.Fatalf("composing %s: %s", move.Name, err)
	}

	return branches
}

func instructionsOf[T BattleInstruction](branch BattleInstructions) []T {
	var found []T
	for _, instruction := range branch.Instructions {
		if typed, ok := instruction.(T); ok {
			found = append(found, typed)
		}
	}

	return found
}

// replayHp walks a branch and returns the HP each position ends on
func replayHp(state *BattleState, branch BattleInstructions) map[BattlePosition]int {
	hp := make(map[BattlePosition]int, len(state.Active))
	for pos, pokemon := range state.Active {
		hp[pos] = int(pokemon.Hp.Value)
	}

	for _, instruction := range branch.Instructions {
		switch i := instruction.(type) {
		case DamageInstruction:
			hp[i.Target] -= i.Amount
		case HealInstruction:
			hp[i.Target] += i.Amount
		}
	}

	return hp
}

// actsAfterFaint finds the first instruction that touches a pokemon after it has fainted
func actsAfterFaint(branch BattleInstructions) (BattlePosition, BattleInstruction, bool) {
	fainted := map[BattlePosition]bool{}

	for _, instruction := range branch.Instructions {
		for _, pos := range instruction.AffectedPositions() {
			if fainted[pos] {
				return pos, instruction, true
			}
		}

		if faint, ok := instruction.(FaintInstruction); ok {
			fainted[faint.Target] = true
		}
	}

	return BattlePosition{}, nil, false
}
