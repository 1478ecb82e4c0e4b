package golurk

// composeStatus applies a status move's primary effects to each target. Status moves don't branch.
func (c *composer) composeStatus(branches []*branch, targets []BattlePosition) []*branch {
	for _, b := range branches {
		for _, pos := range targets {
			c.applyPrimaryEffect(b, pos)
		}

		c.applySelfStatChanges(b)
	}

	return branches
}

func (c *composer) applyPrimaryEffect(b *branch, pos BattlePosition) {
	if !b.alive(pos) {
		return
	}

	target := b.at(pos)
	blockedBySubstitute := pos != c.user && target.HasVolatile(VOLATILE_SUBSTITUTE) && !c.bypassesSubstitute(b)

	if c.move.Status != "" && !blockedBySubstitute {
		if status, ok := STATUS_NAME_MAP[c.move.Status]; ok && c.canInflictStatus(b, pos, status) {
			b.setStatus(pos, status)
		}
	}

	if c.move.Volatile != "" && !blockedBySubstitute && c.canApplyVolatile(b, pos, c.move.Volatile) {
		b.addVolatile(pos, c.move.Volatile)
	}

	if len(c.move.StatChanges) > 0 && !blockedBySubstitute && c.canChangeStats(b, pos, c.move.StatChanges, pos == c.user) {
		for _, change := range c.move.StatChanges {
			if change.Change < 0 && pos != c.user && !c.canChangeStats(b, pos, []StatChange{change}, false) {
				continue
			}

			b.boost(pos, change.StatName, change.Change)
		}
	}

	if c.move.Meta.Healing > 0 {
		b.heal(pos, max(1, int(target.MaxHp)*c.move.Meta.Healing/100))
	}
}
