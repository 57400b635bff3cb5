// Package arena runs the arena simulation: it owns every entity
// collection, advances them once per frame, resolves hits and pushes stat
// changes to the UI.
package arena

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/riftarena/internal/input"
	"github.com/tomz197/riftarena/internal/object"
	"github.com/tomz197/riftarena/internal/physics"
)

// gridCellSize bounds the largest projectile-vs-minion reach.
const gridCellSize = 4.0

// State is the lifecycle state of a game.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Options configures a Game. Zero values pick defaults.
type Options struct {
	Config Config
	Rand   *rand.Rand
	Logger *log.Logger
	Sounds Sounds
}

// Stats is a snapshot of the scoreboard.
type Stats struct {
	Health  float64
	Gold    int
	Score   int
	Kills   int
	Wave    int
	Elapsed time.Duration
}

// Game is a single-player arena. It is not safe for concurrent use; one
// goroutine drives it frame by frame.
type Game struct {
	id     string
	cfg    Config
	ui     UI
	scene  object.Scene
	sounds Sounds
	rand   *rand.Rand
	logger *log.Logger

	state State

	player            *object.Player
	minions           []*object.Minion
	playerProjectiles []*object.Projectile
	enemyProjectiles  []*object.Projectile
	targets           []*object.Target

	keys         input.Keys
	cameraFacing physics.Vec3
	elapsed      float64

	gold  int
	score int
	kills int
	wave  int

	minionGate     Gate
	projectileGate Gate
	targetGate     Gate
	waveGate       Gate

	grid *physics.SpatialGrid
}

// New creates an idle game. ui and scene are required.
func New(ui UI, scene object.Scene, opts Options) (*Game, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	if scene == nil {
		return nil, ErrNilScene
	}

	cfg := opts.Config
	if cfg.HalfExtent <= 0 {
		cfg = ConfigFor(cfg.Variant)
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = nopSounds{}
	}
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Game{
		id:           id,
		cfg:          cfg,
		ui:           ui,
		scene:        scene,
		sounds:       sounds,
		rand:         r,
		logger:       logger.With("game", id[:8]),
		cameraFacing: physics.V(0, -1, -1).Normalize(),
		grid:         physics.NewSpatialGrid(cfg.HalfExtent, gridCellSize),
	}, nil
}

// ID returns the unique id of the game.
func (g *Game) ID() string { return g.id }

// Config returns the tunables the game runs with.
func (g *Game) Config() Config { return g.cfg }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Running reports whether frames advance the simulation.
func (g *Game) Running() bool { return g.state == StateRunning }

// Player returns the current player, or nil before the first Start.
func (g *Game) Player() *object.Player { return g.player }

// Minions returns the live minions in collection order.
func (g *Game) Minions() []*object.Minion { return g.minions }

// PlayerProjectiles returns the live projectiles fired by the player.
func (g *Game) PlayerProjectiles() []*object.Projectile { return g.playerProjectiles }

// EnemyProjectiles returns the live projectiles fired at the player.
func (g *Game) EnemyProjectiles() []*object.Projectile { return g.enemyProjectiles }

// Targets returns the live targets.
func (g *Game) Targets() []*object.Target { return g.targets }

// Stats returns the current scoreboard.
func (g *Game) Stats() Stats {
	s := Stats{
		Health:  object.PlayerMaxHealth,
		Gold:    g.gold,
		Score:   g.score,
		Kills:   g.kills,
		Wave:    g.wave,
		Elapsed: time.Duration(g.elapsed * float64(time.Second)),
	}
	if g.player != nil {
		s.Health = g.player.Health
	}
	return s
}

// Start begins a fresh game. It is a no-op while a game is running.
func (g *Game) Start() {
	if g.state == StateRunning {
		return
	}

	g.clear()
	g.player = object.NewPlayer(g.scene, physics.Vec3{})
	g.keys = input.Keys{}
	g.elapsed = 0
	g.gold, g.score, g.kills, g.wave = 0, 0, 0, 0

	g.minionGate = Gate{Interval: g.cfg.MinionInterval}
	g.projectileGate = Gate{Interval: g.cfg.ProjectileInterval}
	g.targetGate = Gate{Interval: g.cfg.TargetInterval}
	g.waveGate = Gate{Interval: g.cfg.WaveInterval}

	g.state = StateRunning
	g.ui.Reset()
	g.ui.StartTimer()
	g.logger.Info("game started", "mode", g.cfg.Variant, "lastHit", g.cfg.LastHit)

	if g.cfg.WaveInterval > 0 {
		g.spawnWave()
	}
}

// GameOver freezes the simulation and shows the final screen. Calling it
// again has no effect.
func (g *Game) GameOver() {
	if g.state != StateRunning {
		return
	}
	g.state = StateGameOver
	g.ui.StopTimer()
	g.ui.ShowGameOver()
	g.sounds.Play(CueGameOver)

	s := g.Stats()
	g.logger.Info("game over",
		"score", s.Score,
		"gold", s.Gold,
		"kills", s.Kills,
		"wave", s.Wave,
		"time", s.Elapsed.Truncate(time.Second))
}

// Dispose removes every entity and returns the game to Idle. Safe to call
// repeatedly.
func (g *Game) Dispose() {
	g.state = StateIdle
	g.clear()
}

func (g *Game) clear() {
	if g.player != nil {
		g.player.Remove()
		g.player = nil
	}
	g.minions = object.RemoveAll(g.minions)
	g.playerProjectiles = object.RemoveAll(g.playerProjectiles)
	g.enemyProjectiles = object.RemoveAll(g.enemyProjectiles)
	g.targets = object.RemoveAll(g.targets)
}

// KeyDown marks a logical key as held.
func (g *Game) KeyDown(a input.Action) { g.keys.Set(a, true) }

// KeyUp marks a logical key as released.
func (g *Game) KeyUp(a input.Action) { g.keys.Set(a, false) }

// Keys returns the logical keys currently held.
func (g *Game) Keys() input.Keys { return g.keys }

// SetCameraFacing sets the direction the camera looks along, used to
// billboard health bars.
func (g *Game) SetCameraFacing(v physics.Vec3) { g.cameraFacing = v }

// PointerMove turns the player towards a ground point.
func (g *Game) PointerMove(world physics.Vec3) {
	if g.state != StateRunning {
		return
	}
	g.player.LookAt(world)
}

// PointerDown handles a click on a ground point: the primary button aims
// and fires, the secondary button walks there.
func (g *Game) PointerDown(b input.Button, world physics.Vec3) {
	if g.state != StateRunning {
		return
	}
	switch b {
	case input.ButtonPrimary:
		g.player.LookAt(world)
		if p := g.player.Fire(g.scene); p != nil {
			g.Spawn(p)
		}
	case input.ButtonSecondary:
		g.player.MoveTo(world)
	}
}

// Spawn adds an object created during update, enforcing population caps.
// Objects over the cap are removed straight away.
func (g *Game) Spawn(obj object.Object) {
	switch o := obj.(type) {
	case *object.Projectile:
		if o.Owner == object.OwnerPlayer {
			if len(g.playerProjectiles) >= g.cfg.ProjectileLimit {
				o.Remove()
				return
			}
			g.playerProjectiles = append(g.playerProjectiles, o)
			g.sounds.Play(CueShoot)
			return
		}
		if len(g.enemyProjectiles) >= g.cfg.ProjectileLimit {
			o.Remove()
			return
		}
		g.enemyProjectiles = append(g.enemyProjectiles, o)
	case *object.Minion:
		if len(g.minions) >= g.cfg.MinionLimit {
			o.Remove()
			return
		}
		g.minions = append(g.minions, o)
	case *object.Target:
		if len(g.targets) >= g.cfg.TargetLimit {
			o.Remove()
			return
		}
		g.targets = append(g.targets, o)
	default:
		obj.Remove()
	}
}

// Update advances the game by dt. It does nothing unless the game is
// running, and stops mid-frame when the player dies.
func (g *Game) Update(dt time.Duration) {
	if g.state != StateRunning {
		return
	}
	g.elapsed += dt.Seconds()

	ctx := object.UpdateContext{
		Delta:        dt,
		Elapsed:      g.elapsed,
		Keys:         g.keys,
		CameraFacing: g.cameraFacing,
		SoftLimit:    g.cfg.SoftLimit(),
		Scene:        g.scene,
		Spawner:      g,
		Rand:         g.rand,
	}

	g.player.Update(ctx)
	ctx.Player = g.player.Position()

	if g.updateMinions(ctx) {
		return
	}
	g.updatePlayerProjectiles(ctx)
	if g.updateEnemyProjectiles(ctx) {
		return
	}
	g.updateTargets(ctx)
	g.runSpawners()
}

// updateMinions moves minions, applies decay and contact damage. Returns
// true if the player died.
func (g *Game) updateMinions(ctx object.UpdateContext) bool {
	defer func() { g.minions = object.Compact(g.minions) }()

	dt := ctx.Delta.Seconds()
	for _, m := range g.minions {
		if m.Removed() {
			continue
		}
		if m.Update(ctx) {
			// Decay death: the last hit pays if the player struck it.
			m.Remove()
			if m.HitByPlayer {
				g.reward(g.cfg.MinionGold, g.cfg.MinionScore)
			}
			continue
		}
		m.KeepInBounds(g.cfg.SoftLimit())

		if physics.Collide(m, g.player) {
			if g.damagePlayer(g.cfg.ContactDPS * dt) {
				g.GameOver()
				return true
			}
		}
	}
	return false
}

// updateEnemyProjectiles moves enemy projectiles and hits the player.
// Returns true if the player died.
func (g *Game) updateEnemyProjectiles(ctx object.UpdateContext) bool {
	defer func() { g.enemyProjectiles = object.Compact(g.enemyProjectiles) }()

	for _, p := range g.enemyProjectiles {
		if p.Removed() {
			continue
		}
		if p.Update(ctx) || physics.OutsideGround(p.Position(), g.cfg.HalfExtent) {
			p.Remove()
			continue
		}
		if physics.Collide(p, g.player) {
			p.Remove()
			g.sounds.Play(CueHurt)
			if g.damagePlayer(g.cfg.EnemyProjectileDamage) {
				g.GameOver()
				return true
			}
		}
	}
	return false
}

// updateTargets wanders targets and tests them against player projectiles.
func (g *Game) updateTargets(ctx object.UpdateContext) {
	for _, t := range g.targets {
		if t.Removed() {
			continue
		}
		t.Update(ctx)
		t.KeepInBounds(g.cfg.SoftLimit())
		if p := firstHit(g.playerProjectiles, t); p != nil {
			p.Remove()
			g.destroyTarget(t)
		}
	}
	g.targets = object.Compact(g.targets)
	g.playerProjectiles = object.Compact(g.playerProjectiles)
}

func (g *Game) runSpawners() {
	e := g.elapsed
	if g.minionGate.Check(e) {
		g.spawnMinion()
	}
	if g.projectileGate.Check(e) {
		g.spawnEnemyProjectile()
	}
	if g.targetGate.Check(e) {
		g.spawnTarget()
	}
	if g.waveGate.Check(e) {
		g.spawnWave()
	}
}

func (g *Game) spawnMinion() {
	if len(g.minions) >= g.cfg.MinionLimit {
		g.logger.Debug("minion cap reached", "limit", g.cfg.MinionLimit)
		return
	}
	pos := EdgePoint(g.rand, g.cfg.HalfExtent-edgeInset)
	g.Spawn(object.NewMinion(g.scene, pos, g.cfg.MinionHealth))
}

func (g *Game) spawnEnemyProjectile() {
	if len(g.enemyProjectiles) >= g.cfg.ProjectileLimit {
		g.logger.Debug("enemy projectile cap reached", "limit", g.cfg.ProjectileLimit)
		return
	}
	pos := RingPoint(g.rand, g.cfg.HalfExtent-ringInset, g.cfg.EnemyProjectileHeight)
	dir := AimWithDeviation(g.rand, pos, g.player.Position(), g.cfg.ProjectileDeviation)
	g.Spawn(object.NewProjectile(g.scene, pos, dir, object.OwnerEnemy))
}

func (g *Game) spawnTarget() {
	if len(g.targets) >= g.cfg.TargetLimit {
		g.logger.Debug("target cap reached", "limit", g.cfg.TargetLimit)
		return
	}
	pos := InteriorPoint(g.rand, g.cfg.HalfExtent-interiorInset, g.cfg.TargetHeight)
	g.Spawn(object.NewTarget(g.scene, pos, g.rand))
}

func (g *Game) spawnWave() {
	n := WaveSize(g.cfg.WaveBase, g.wave)
	health := WaveHealth(g.cfg.WaveHealthBase, g.cfg.WaveHealthStep, g.wave)

	spawned := 0
	for _, lane := range Lanes() {
		for _, pos := range LaneFormation(g.rand, lane, n, g.cfg.WaveStagger, g.cfg.WaveJitter) {
			if len(g.minions) >= g.cfg.MinionLimit {
				break
			}
			g.Spawn(object.NewLaneMinion(g.scene, pos, lane.Dir, health, g.cfg.WaveDecayRate))
			spawned++
		}
	}

	g.logger.Debug("wave spawned", "wave", g.wave, "perLane", n, "health", health, "spawned", spawned)
	g.wave++
	g.sounds.Play(CueWave)
}

// damagePlayer applies damage and pushes the new health. Returns true
// once the player is dead.
func (g *Game) damagePlayer(amount float64) bool {
	dead := g.player.TakeDamage(amount)
	g.ui.UpdateHealth(g.player.Health)
	return dead
}

func (g *Game) reward(gold, score int) {
	g.gold += gold
	g.score += score
	g.kills++
	g.ui.UpdateGold(g.gold)
	g.ui.UpdateScore(g.score)
	g.sounds.Play(CueKill)
}
