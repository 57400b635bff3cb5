package arena

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/riftarena/internal/object"
)

// Arena geometry.
const (
	GroundSize = 100.0
	HalfExtent = GroundSize / 2
	Margin     = 2.0 // soft entities stay within HalfExtent - Margin

	edgeInset     = 5.0  // edge spawns sit this far inside the wall
	ringInset     = 2.0  // enemy projectile ring radius is HalfExtent - ringInset
	interiorInset = 10.0 // targets spawn inside HalfExtent - interiorInset
)

// Population caps.
const (
	MinionLimit     = 10
	ProjectileLimit = 15
	TargetLimit     = 5
)

// Damage and rewards.
const (
	ContactDPS             = 5.0 // health per second while a minion touches the player
	EnemyProjectileDamage  = 10.0
	PlayerProjectileDamage = 25.0

	MinionGold  = 20
	MinionScore = 10
	TargetGold  = 30
	TargetScore = 25
)

// Spawn cadence.
const (
	MinionInterval     = 3 * time.Second
	ProjectileInterval = 2 * time.Second
	TargetInterval     = 5 * time.Second

	// ProjectileDeviation is the spread added to enemy aim on x and z.
	ProjectileDeviation = 0.2
)

// Waves.
const (
	WaveInterval   = 15 * time.Second
	WaveBase       = 3   // minions per lane on wave 0
	WaveHealthBase = 40  // lane minion max health on wave 0
	WaveHealthStep = 6   // extra max health every second wave
	WaveDecayRate  = 1.5 // hp per second
	WaveStagger    = 2.0 // spacing between minions along a lane
	WaveJitter     = 0.5 // max sideways offset of a lane minion
	laneSpawnZ     = -(HalfExtent - 6)
	laneOffset     = 30.0
)

// Variant selects the spawning rule set.
type Variant int

const (
	// VariantClassic spawns homing minions from the edges plus targets.
	VariantClassic Variant = iota
	// VariantWaves spawns decaying minions down three lanes.
	VariantWaves
)

func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantWaves:
		return "waves"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps a name such as "classic" or "waves" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic", "simple":
		return VariantClassic, nil
	case "waves", "wave", "lanes", "moba":
		return VariantWaves, nil
	}
	return VariantClassic, fmt.Errorf("unknown game mode %q", s)
}

// LastHit decides when killing a minion pays its reward.
type LastHit int

const (
	// LastHitOnDecay pays only when natural decay brings a minion that was
	// hit by the player to zero. Direct projectile kills of decaying
	// minions pay nothing.
	LastHitOnDecay LastHit = iota
	// LastHitAnyDeath pays on every death of a minion hit by the player.
	LastHitAnyDeath
)

func (l LastHit) String() string {
	if l == LastHitAnyDeath {
		return "any"
	}
	return "decay"
}

// ParseLastHit maps "decay" or "any" to a LastHit policy.
func ParseLastHit(s string) (LastHit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "decay":
		return LastHitOnDecay, nil
	case "any", "anydeath", "any-death":
		return LastHitAnyDeath, nil
	}
	return LastHitOnDecay, fmt.Errorf("unknown last-hit policy %q", s)
}

// Config holds the tunables of one game. An interval of zero disables
// that spawner.
type Config struct {
	Variant Variant

	HalfExtent float64
	Margin     float64

	MinionLimit     int
	ProjectileLimit int
	TargetLimit     int

	MinionInterval     time.Duration
	ProjectileInterval time.Duration
	TargetInterval     time.Duration
	WaveInterval       time.Duration

	ProjectileDeviation float64

	ContactDPS             float64
	EnemyProjectileDamage  float64
	PlayerProjectileDamage float64

	MinionHealth float64
	MinionGold   int
	MinionScore  int
	TargetGold   int
	TargetScore  int

	// TargetHeight is the centre of a target's bob.
	TargetHeight float64
	// EnemyProjectileHeight is the y of freshly spawned enemy projectiles.
	EnemyProjectileHeight float64

	WaveBase       int
	WaveHealthBase float64
	WaveHealthStep float64
	WaveDecayRate  float64
	WaveStagger    float64
	WaveJitter     float64

	LastHit LastHit
}

// ClassicConfig returns the edge-spawning rule set with targets.
func ClassicConfig() Config {
	return Config{
		Variant:                VariantClassic,
		HalfExtent:             HalfExtent,
		Margin:                 Margin,
		MinionLimit:            MinionLimit,
		ProjectileLimit:        ProjectileLimit,
		TargetLimit:            TargetLimit,
		MinionInterval:         MinionInterval,
		ProjectileInterval:     ProjectileInterval,
		TargetInterval:         TargetInterval,
		ProjectileDeviation:    ProjectileDeviation,
		ContactDPS:             ContactDPS,
		EnemyProjectileDamage:  EnemyProjectileDamage,
		PlayerProjectileDamage: PlayerProjectileDamage,
		MinionHealth:           object.MinionMaxHealth,
		MinionGold:             MinionGold,
		MinionScore:            MinionScore,
		TargetGold:             TargetGold,
		TargetScore:            TargetScore,
		LastHit:                LastHitOnDecay,
	}
}

// WaveConfig returns the lane rule set: decaying minion waves and enemy
// projectiles, no targets.
func WaveConfig() Config {
	c := ClassicConfig()
	c.Variant = VariantWaves
	c.MinionInterval = 0
	c.TargetInterval = 0
	c.TargetLimit = 0
	c.WaveInterval = WaveInterval
	c.MinionLimit = 3 * (WaveBase + 6)
	c.WaveBase = WaveBase
	c.WaveHealthBase = WaveHealthBase
	c.WaveHealthStep = WaveHealthStep
	c.WaveDecayRate = WaveDecayRate
	c.WaveStagger = WaveStagger
	c.WaveJitter = WaveJitter
	return c
}

// ConfigFor returns the default config of a variant.
func ConfigFor(v Variant) Config {
	if v == VariantWaves {
		return WaveConfig()
	}
	return ClassicConfig()
}

// SoftLimit is the half-extent soft entities are clamped to.
func (c Config) SoftLimit() float64 { return c.HalfExtent - c.Margin }

// TargetsEnabled reports whether targets spawn and take hits.
func (c Config) TargetsEnabled() bool {
	return c.TargetInterval > 0 && c.TargetLimit > 0
}
