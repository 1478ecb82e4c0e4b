package golurk

import (
	"github.com/samber/lo"
)

// HitCounts is the distribution of how many times a move hits when used by attacker
func HitCounts(mechanics GenerationMechanics, move *MoveData, attacker *Pokemon) []HitCountWeight {
	minHits, maxHits := move.HitRange()
	if minHits == maxHits {
		return []HitCountWeight{{Hits: maxHits, Weight: 1}}
	}

	if mechanics.HasAbilities() && attacker.Ability == "skill-link" {
		return []HitCountWeight{{Hits: maxHits, Weight: 1}}
	}

	classic := minHits == 2 && maxHits == 5
	loadedDice := mechanics.HasItems() && mechanics.Generation() >= GEN_9 && attacker.Item == "loaded-dice"

	switch {
	case classic && loadedDice:
		return []HitCountWeight{{Hits: 4, Weight: 0.5}, {Hits: 5, Weight: 0.5}}
	case classic:
		return mechanics.MultiHitDistribution()
	case loadedDice:
		// Population Bomb style moves hit at least 4 times with Loaded Dice
		minHits = min(max(minHits, 4), maxHits)
	}

	weight := 1.0 / float64(maxHits-minHits+1)
	return lo.Map(lo.RangeFrom(minHits, maxHits-minHits+1), func(hits int, _ int) HitCountWeight {
		return HitCountWeight{Hits: hits, Weight: weight}
	})
}

// composeMultiHit branches on the hit count, then applies each hit in turn.
// A branch stops hitting as soon as the target faints.
func (c *composer) composeMultiHit(b *branch, target BattlePosition, targetCount int) ([]*branch, error) {
	counts := HitCounts(c.mechanics, c.move, b.at(c.user))

	var out []*branch
	for _, count := range counts {
		if count.Weight <= 0 {
			continue
		}

		start := b
		if len(counts) > 1 {
			start = b.clone()
			start.weight *= count.Weight
		}

		branches := []*branch{start}
		for hit := 1; hit <= count.Hits; hit++ {
			var err error
			branches, err = expand(branches, func(next *branch) ([]*branch, error) {
				return c.applyHit(next, target, targetCount, hit, false)
			})
			if err != nil {
				return nil, err
			}
		}

		composerLogger().V(2).Info("Multi hit branch", "move", c.move.Name, "hits", count.Hits, "weight", count.Weight, "branches", len(branches))

		out = append(out, branches...)
	}

	return out, nil
}
