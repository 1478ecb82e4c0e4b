package golurk

const (
	MAX_IV       = 31
	MAX_EV       = 252
	MAX_TOTAL_EV = 510

	MAX_STAGE = 6
	MIN_STAGE = -6
)

const (
	DAMAGETYPE_PHYSICAL = "physical"
	DAMAGETYPE_SPECIAL  = "special"
	DAMAGETYPE_STATUS   = "status"
)

const (
	TYPENAME_NORMAL   = "Normal"
	TYPENAME_FIRE     = "Fire"
	TYPENAME_WATER    = "Water"
	TYPENAME_ELECTRIC = "Electric"
	TYPENAME_GRASS    = "Grass"
	TYPENAME_ICE      = "Ice"
	TYPENAME_FIGHTING = "Fighting"
	TYPENAME_POISON   = "Poison"
	TYPENAME_GROUND   = "Ground"
	TYPENAME_FLYING   = "Flying"
	TYPENAME_PSYCHIC  = "Psychic"
	TYPENAME_BUG      = "Bug"
	TYPENAME_ROCK     = "Rock"
	TYPENAME_GHOST    = "Ghost"
	TYPENAME_DRAGON   = "Dragon"
	TYPENAME_DARK     = "Dark"
	TYPENAME_STEEL    = "Steel"
	TYPENAME_FAIRY    = "Fairy"
	// Struggle and a couple of other moves have no type and are neutral against everything
	TYPENAME_TYPELESS = "Typeless"
)

const (
	STATUS_NONE = iota
	STATUS_BURN
	STATUS_PARA
	STATUS_SLEEP
	STATUS_FROZEN
	STATUS_POISON
	STATUS_TOXIC
)

const (
	WEATHER_NONE = iota
	WEATHER_RAIN
	WEATHER_SUN
	WEATHER_SANDSTORM
	WEATHER_HAIL
	WEATHER_SNOW
	// Primal weathers. These can't be replaced by regular weather moves
	WEATHER_HEAVY_RAIN
	WEATHER_HARSH_SUN
	WEATHER_STRONG_WINDS
)

const (
	TERRAIN_NONE = iota
	TERRAIN_ELECTRIC
	TERRAIN_GRASSY
	TERRAIN_MISTY
	TERRAIN_PSYCHIC
)

const (
	SIDE_REFLECT = iota + 1
	SIDE_LIGHT_SCREEN
	SIDE_AURORA_VEIL
	SIDE_SAFEGUARD
	SIDE_MIST
	SIDE_TAILWIND
	SIDE_SPIKES
	SIDE_TOXIC_SPIKES
	SIDE_STEALTH_ROCK
	SIDE_STICKY_WEB
)

const (
	VOLATILE_CONFUSION    = "confusion"
	VOLATILE_FLINCH       = "flinch"
	VOLATILE_INFATUATION  = "infatuation"
	VOLATILE_LEECH_SEED   = "leech-seed"
	VOLATILE_SUBSTITUTE   = "substitute"
	VOLATILE_FOCUS_ENERGY = "focus-energy"
	VOLATILE_FLASH_FIRE   = "flash-fire"
	VOLATILE_MAGNET_RISE  = "magnet-rise"
	VOLATILE_TELEKINESIS  = "telekinesis"
	VOLATILE_SMACK_DOWN   = "smack-down"
	VOLATILE_INGRAIN      = "ingrain"
	VOLATILE_ROOST        = "roost"
	VOLATILE_TAUNT        = "taunt"
	VOLATILE_CHARGE       = "charge"
)

const (
	STAT_ATTACK   = "attack"
	STAT_DEFENSE  = "defense"
	STAT_SPATTACK = "special-attack"
	STAT_SPDEF    = "special-defense"
	STAT_SPEED    = "speed"
	STAT_ACCURACY = "accuracy"
	STAT_EVASION  = "evasion"
)

var STATUS_NAME_MAP = map[string]int{
	"paralysis": STATUS_PARA,
	"sleep":     STATUS_SLEEP,
	"freeze":    STATUS_FROZEN,
	"burn":      STATUS_BURN,
	"poison":    STATUS_POISON,
	"toxic":     STATUS_TOXIC,
}

var WEATHER_NAME_MAP = map[string]int{
	"rain":         WEATHER_RAIN,
	"sun":          WEATHER_SUN,
	"sandstorm":    WEATHER_SANDSTORM,
	"hail":         WEATHER_HAIL,
	"snow":         WEATHER_SNOW,
	"heavy-rain":   WEATHER_HEAVY_RAIN,
	"harsh-sun":    WEATHER_HARSH_SUN,
	"strong-winds": WEATHER_STRONG_WINDS,
}

var TERRAIN_NAME_MAP = map[string]int{
	"electric": TERRAIN_ELECTRIC,
	"grassy":   TERRAIN_GRASSY,
	"misty":    TERRAIN_MISTY,
	"psychic":  TERRAIN_PSYCHIC,
}

var SIDE_CONDITION_NAME_MAP = map[string]int{
	"reflect":      SIDE_REFLECT,
	"light-screen": SIDE_LIGHT_SCREEN,
	"aurora-veil":  SIDE_AURORA_VEIL,
	"safeguard":    SIDE_SAFEGUARD,
	"mist":         SIDE_MIST,
	"tailwind":     SIDE_TAILWIND,
	"spikes":       SIDE_SPIKES,
	"toxic-spikes": SIDE_TOXIC_SPIKES,
	"stealth-rock": SIDE_STEALTH_ROCK,
	"sticky-web":   SIDE_STICKY_WEB,
}

// Max layers a hazard can stack to. Everything not in here is a single layer condition
var hazardLayerCaps = map[int]int{
	SIDE_SPIKES:       3,
	SIDE_TOXIC_SPIKES: 2,
	SIDE_STEALTH_ROCK: 1,
	SIDE_STICKY_WEB:   1,
}

var SOUND_MOVES = []string{
	"growl",
	"roar",
	"sing",
	"supersonic",
	"screech",
	"snore",
	"perish-song",
	"heal-bell",
	"uproar",
	"hyper-voice",
	"metal-sound",
	"grass-whistle",
	"howl",
	"bug-buzz",
	"chatter",
	"round",
	"echoed-voice",
	"relic-song",
	"snarl",
	"noble-roar",
	"disarming-voice",
	"parting-shot",
	"boomburst",
	"confide",
	"sparkling-aria",
	"clanging-scales",
	"clangorous-soul",
	"overdrive",
	"eerie-spell",
	"torch-song",
	"alluring-voice",
	"psychic-noise",
}

var EXPLOSIVE_MOVES = []string{
	"self-destruct",
	"explosion",
	"mind-blown",
	"misty-explosion",
}

// Moves with one extra crit stage when the move data doesn't say so itself
var HIGH_CRIT_MOVES = []string{
	"karate-chop",
	"razor-leaf",
	"crabhammer",
	"slash",
	"aeroblast",
	"cross-chop",
	"sky-attack",
	"blaze-kick",
	"air-cutter",
	"poison-tail",
	"leaf-blade",
	"night-slash",
	"shadow-claw",
	"psycho-cut",
	"cross-poison",
	"stone-edge",
	"attack-order",
	"spacial-rend",
	"drill-run",
	"razor-wind",
	"snipe-shot",
	"esper-wing",
	"aqua-cutter",
}

var ALWAYS_CRIT_MOVES = []string{
	"frost-breath",
	"storm-throw",
	"wicked-blow",
	"surging-strikes",
	"flower-trick",
}

// Physical types before moves were individually split in gen 4
var physicalTypes = []string{
	TYPENAME_NORMAL,
	TYPENAME_FIGHTING,
	TYPENAME_FLYING,
	TYPENAME_GROUND,
	TYPENAME_ROCK,
	TYPENAME_BUG,
	TYPENAME_GHOST,
	TYPENAME_POISON,
	TYPENAME_STEEL,
	TYPENAME_TYPELESS,
}

var StageMultipliers = map[int]float32{
	-6: 2.0 / 8.0,
	-5: 2.0 / 7.0,
	-4: 2.0 / 6.0,
	-3: 2.0 / 5.0,
	-2: 2.0 / 4.0,
	-1: 2.0 / 3.0,
	0:  1,
	1:  3.0 / 2.0,
	2:  4.0 / 2.0,
	3:  5.0 / 2.0,
	4:  6.0 / 2.0,
	5:  7.0 / 2.0,
	6:  8.0 / 2.0,
}

// Type boosting held items, including plates
var typeBoostItems = map[string]string{
	"silk-scarf":     TYPENAME_NORMAL,
	"charcoal":       TYPENAME_FIRE,
	"flame-plate":    TYPENAME_FIRE,
	"mystic-water":   TYPENAME_WATER,
	"splash-plate":   TYPENAME_WATER,
	"magnet":         TYPENAME_ELECTRIC,
	"zap-plate":      TYPENAME_ELECTRIC,
	"miracle-seed":   TYPENAME_GRASS,
	"meadow-plate":   TYPENAME_GRASS,
	"never-melt-ice": TYPENAME_ICE,
	"icicle-plate":   TYPENAME_ICE,
	"black-belt":     TYPENAME_FIGHTING,
	"fist-plate":     TYPENAME_FIGHTING,
	"poison-barb":    TYPENAME_POISON,
	"toxic-plate":    TYPENAME_POISON,
	"soft-sand":      TYPENAME_GROUND,
	"earth-plate":    TYPENAME_GROUND,
	"sharp-beak":     TYPENAME_FLYING,
	"sky-plate":      TYPENAME_FLYING,
	"twisted-spoon":  TYPENAME_PSYCHIC,
	"mind-plate":     TYPENAME_PSYCHIC,
	"silver-powder":  TYPENAME_BUG,
	"insect-plate":   TYPENAME_BUG,
	"hard-stone":     TYPENAME_ROCK,
	"stone-plate":    TYPENAME_ROCK,
	"spell-tag":      TYPENAME_GHOST,
	"spooky-plate":   TYPENAME_GHOST,
	"dragon-fang":    TYPENAME_DRAGON,
	"draco-plate":    TYPENAME_DRAGON,
	"black-glasses":  TYPENAME_DARK,
	"dread-plate":    TYPENAME_DARK,
	"metal-coat":     TYPENAME_STEEL,
	"iron-plate":     TYPENAME_STEEL,
	"fairy-feather":  TYPENAME_FAIRY,
	"pixie-plate":    TYPENAME_FAIRY,
}

// Berries that halve a super effective hit of their type
var resistBerries = map[string]string{
	"chilan-berry": TYPENAME_NORMAL,
	"occa-berry":   TYPENAME_FIRE,
	"passho-berry": TYPENAME_WATER,
	"wacan-berry":  TYPENAME_ELECTRIC,
	"rindo-berry":  TYPENAME_GRASS,
	"yache-berry":  TYPENAME_ICE,
	"chople-berry": TYPENAME_FIGHTING,
	"kebia-berry":  TYPENAME_POISON,
	"shuca-berry":  TYPENAME_GROUND,
	"coba-berry":   TYPENAME_FLYING,
	"payapa-berry": TYPENAME_PSYCHIC,
	"tanga-berry":  TYPENAME_BUG,
	"charti-berry": TYPENAME_ROCK,
	"kasib-berry":  TYPENAME_GHOST,
	"haban-berry":  TYPENAME_DRAGON,
	"colbur-berry": TYPENAME_DARK,
	"babiri-berry": TYPENAME_STEEL,
	"roseli-berry": TYPENAME_FAIRY,
}

// Items that extend the weather a move sets from 5 to 8 turns
var weatherRocks = map[int]string{
	WEATHER_RAIN:      "damp-rock",
	WEATHER_SUN:       "heat-rock",
	WEATHER_SANDSTORM: "smooth-rock",
	WEATHER_HAIL:      "icy-rock",
	WEATHER_SNOW:      "icy-rock",
}

// nameFor is the reverse lookup of one of the *_NAME_MAP tables
func nameFor(names map[string]int, value int) string {
	for name, v := range names {
		if v == value {
			return name
		}
	}

	return "none"
}
