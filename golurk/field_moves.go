package golurk

const (
	DEFAULT_FIELD_TURNS  = 5
	EXTENDED_FIELD_TURNS = 8
	TAILWIND_TURNS       = 4
)

const (
	CLEAR_HAZARDS_SELF = "self"
	CLEAR_HAZARDS_BOTH = "both"
)

var hazards = []int{SIDE_SPIKES, SIDE_TOXIC_SPIKES, SIDE_STEALTH_ROCK, SIDE_STICKY_WEB}

// Cleared from the foe's side by Defog
var defoggedConditions = []int{SIDE_REFLECT, SIDE_LIGHT_SCREEN, SIDE_AURORA_VEIL, SIDE_SAFEGUARD, SIDE_MIST}

func isPrimalWeather(weather int) bool {
	return weather == WEATHER_HEAVY_RAIN || weather == WEATHER_HARSH_SUN || weather == WEATHER_STRONG_WINDS
}

func isHazard(condition int) bool {
	_, ok := hazardLayerCaps[condition]
	return ok
}

// applyFieldEffect handles weather, terrain, side conditions and hazard clearing.
// Damaging moves only change the field when they connected.
func (c *composer) applyFieldEffect(b *branch) {
	effect := c.move.Field
	if effect == (FieldEffect{}) || !b.alive(c.user) {
		return
	}

	if !c.move.IsStatus() && len(b.landed) == 0 {
		return
	}

	if effect.Weather != "" {
		c.applyWeather(b, effect.Weather)
	}

	if effect.Terrain != "" {
		c.applyTerrain(b, effect.Terrain)
	}

	if effect.SideCondition != "" {
		c.applySideCondition(b, effect.SideCondition)
	}

	switch effect.ClearHazards {
	case CLEAR_HAZARDS_SELF:
		c.rapidSpin(b)
	case CLEAR_HAZARDS_BOTH:
		c.defog(b)
	}
}

func (c *composer) applyWeather(b *branch, name string) {
	weather, ok := WEATHER_NAME_MAP[NormalizeID(name)]
	if !ok || !c.mechanics.HasWeather() {
		composerLogger().V(1).Info("Weather can't be set", "move", c.move.Name, "weather", name)
		return
	}

	// Only another primal weather replaces a primal weather
	if b.field.Weather == weather || (isPrimalWeather(b.field.Weather) && !isPrimalWeather(weather)) {
		return
	}

	turns := DEFAULT_FIELD_TURNS
	if rock, ok := weatherRocks[weather]; ok && c.attackerItem(b) == rock {
		turns = EXTENDED_FIELD_TURNS
	}

	// Primal weather lasts until its user leaves
	if isPrimalWeather(weather) {
		turns = 0
	}

	b.setWeather(weather, turns)
}

func (c *composer) applyTerrain(b *branch, name string) {
	terrain, ok := TERRAIN_NAME_MAP[NormalizeID(name)]
	if !ok || !c.mechanics.HasTerrain() || b.field.Terrain == terrain {
		return
	}

	turns := DEFAULT_FIELD_TURNS
	if c.attackerItem(b) == "terrain-extender" {
		turns = EXTENDED_FIELD_TURNS
	}

	b.setTerrain(terrain, turns)
}

// sideFor picks the side a condition goes on. Hazards go on the foe's side unless the move target says otherwise.
func (c *composer) sideFor(condition int) int {
	if sides := FieldSides(c.move.Target, c.user); len(sides) == 1 {
		return sides[0]
	}

	if isHazard(condition) {
		return InvertPlayerIndex(c.user.Side)
	}

	return c.user.Side
}

func (c *composer) applySideCondition(b *branch, name string) {
	condition, ok := SIDE_CONDITION_NAME_MAP[NormalizeID(name)]
	if !ok {
		composerLogger().V(1).Info("Unknown side condition", "move", c.move.Name, "condition", name)
		return
	}

	side := c.sideFor(condition)
	current := b.field.Side(side)[condition]

	if layers, ok := hazardLayerCaps[condition]; ok {
		if current < layers {
			b.addSideCondition(side, condition, 1)
		}
		return
	}

	if current > 0 {
		return
	}

	turns := DEFAULT_FIELD_TURNS
	switch condition {
	case SIDE_AURORA_VEIL:
		weather := b.field.Weather
		if b.weatherSuppressed() || (weather != WEATHER_HAIL && weather != WEATHER_SNOW) {
			return
		}
		fallthrough
	case SIDE_REFLECT, SIDE_LIGHT_SCREEN:
		if c.attackerItem(b) == "light-clay" {
			turns = EXTENDED_FIELD_TURNS
		}
	case SIDE_TAILWIND:
		turns = TAILWIND_TURNS
	}

	b.addSideCondition(side, condition, turns)
}

// rapidSpin clears hazards and Leech Seed from the user's side
func (c *composer) rapidSpin(b *branch) {
	for _, hazard := range hazards {
		b.removeSideCondition(c.user.Side, hazard)
	}

	b.removeVolatile(c.user, VOLATILE_LEECH_SEED)
}

// defog clears the foe's screens and hazards. From gen 6 on it also clears the user's hazards.
func (c *composer) defog(b *branch) {
	foe := InvertPlayerIndex(c.user.Side)

	for _, condition := range defoggedConditions {
		b.removeSideCondition(foe, condition)
	}

	for _, hazard := range hazards {
		b.removeSideCondition(foe, hazard)

		if c.mechanics.Generation() >= GEN_6 {
			b.removeSideCondition(c.user.Side, hazard)
		}
	}
}
