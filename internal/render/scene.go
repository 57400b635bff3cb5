package render

import (
	"math"
	"strings"

	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/object"
	"github.com/tomz197/riftarena/internal/physics"
)

// Sprite sizes and spacing in world units.
const (
	gridSpacing    = 10.0
	barWidth       = 2.4
	barHeight      = 0.4
	barLift        = 0.7
	noseLength     = 1.8
	markerRadius   = 0.6
	minimapCols    = 20
	minimapSubRows = 20
)

// MinimapWidth is the width of the minimap in cells, border included.
const MinimapWidth = minimapCols + 2

// Sprite is the visual of one arena object.
type Sprite struct {
	Kind     object.Kind
	Pos      physics.Vec3
	Facing   physics.Vec3
	Health   float64
	HasBar   bool
	detached bool
}

// SetTransform implements object.Visual.
func (s *Sprite) SetTransform(pos, facing physics.Vec3) {
	s.Pos = pos
	s.Facing = facing
}

// SetHealth implements object.Visual. Terminal bars always face the
// viewer, so the camera direction is not needed.
func (s *Sprite) SetHealth(fraction float64, _ physics.Vec3) {
	s.Health = physics.Clamp(fraction, 0, 1)
	s.HasBar = true
}

// Detach implements object.Visual.
func (s *Sprite) Detach() {
	s.detached = true
}

// Detached reports whether the sprite left the scene.
func (s *Sprite) Detached() bool {
	return s.detached
}

// Scene keeps every attached sprite and draws them in layers.
type Scene struct {
	HalfExtent float64

	sprites []*Sprite
	marker  physics.Vec3
	marking bool
}

// NewScene returns an empty scene for an arena of the given half extent.
func NewScene(halfExtent float64) *Scene {
	return &Scene{HalfExtent: halfExtent}
}

// Attach implements object.Scene.
func (s *Scene) Attach(kind object.Kind, pos physics.Vec3) object.Visual {
	sp := &Sprite{Kind: kind, Pos: pos, Facing: physics.V(0, 0, -1)}
	s.sprites = append(s.sprites, sp)
	return sp
}

// SetMarker shows or hides the move-to destination marker.
func (s *Scene) SetMarker(p physics.Vec3, show bool) {
	s.marker = p
	s.marking = show
}

// Marker returns the destination marker and whether it is shown.
func (s *Scene) Marker() (physics.Vec3, bool) {
	return s.marker, s.marking
}

// Sprites returns the live sprites, dropping detached ones.
func (s *Scene) Sprites() []*Sprite {
	kept := s.sprites[:0]
	for _, sp := range s.sprites {
		if !sp.detached {
			kept = append(kept, sp)
		}
	}
	clear(s.sprites[len(kept):])
	s.sprites = kept
	return s.sprites
}

// drawOrder lists kinds back to front.
var drawOrder = [...]object.Kind{
	object.KindTarget,
	object.KindMinion,
	object.KindEnemyProjectile,
	object.KindPlayerProjectile,
	object.KindPlayer,
}

// Draw renders the arena as seen by cam. The canvas logical size must
// match the camera view.
func (s *Scene) Draw(c *draw.Canvas, cam *Camera) {
	sprites := s.Sprites()

	s.drawGround(c, cam)

	var player *Sprite
	for _, sp := range sprites {
		if sp.Kind == object.KindPlayer {
			player = sp
			break
		}
	}
	if s.marking && player != nil {
		c.DrawLine(cam.Project(player.Pos.Flat()), cam.Project(s.marker), draw.ColorPath)
		c.DrawCircle(cam.Project(s.marker), markerRadius, draw.ColorPath)
	}

	for _, kind := range drawOrder {
		for _, sp := range sprites {
			if sp.Kind == kind {
				drawSprite(c, cam, sp)
			}
		}
	}
}

func (s *Scene) drawGround(c *draw.Canvas, cam *Camera) {
	h := s.HalfExtent
	if h <= 0 {
		return
	}

	for x := -h + gridSpacing; x < h; x += gridSpacing {
		for z := -h + gridSpacing; z < h; z += gridSpacing {
			p := cam.Project(physics.V(x, 0, z))
			c.SetFloat(p.X, p.Y, draw.ColorGround)
		}
	}

	corners := [4]physics.Vec3{
		physics.V(-h, 0, -h),
		physics.V(h, 0, -h),
		physics.V(h, 0, h),
		physics.V(-h, 0, h),
	}
	for i := range corners {
		c.DrawLine(cam.Project(corners[i]), cam.Project(corners[(i+1)%4]), draw.ColorWall)
	}
}

func drawSprite(c *draw.Canvas, cam *Camera, sp *Sprite) {
	center := cam.Project(sp.Pos)

	switch sp.Kind {
	case object.KindPlayer:
		nose := sp.Pos.Add(sp.Facing.Flat().Normalize().Scale(noseLength))
		c.DrawLine(center, cam.Project(nose), draw.ColorText)
		c.FillCircle(center, object.PlayerRadius, draw.ColorPlayer)
	case object.KindMinion:
		c.FillCircle(center, object.MinionRadius, draw.ColorMinion)
		if sp.HasBar {
			drawBar(c, draw.Point{X: center.X, Y: center.Y - object.MinionRadius - barLift}, sp.Health)
		}
	case object.KindPlayerProjectile:
		c.FillCircle(center, object.ProjectileRadius, draw.ColorPlayerShot)
	case object.KindEnemyProjectile:
		c.FillCircle(center, object.ProjectileRadius, draw.ColorEnemyShot)
	case object.KindTarget:
		c.DrawCircle(center, object.TargetRadius, draw.ColorTarget)
		c.FillCircle(center, object.TargetRadius/2, draw.ColorTarget)
	}
}

// drawBar draws a health bar centred on top.
func drawBar(c *draw.Canvas, top draw.Point, fraction float64) {
	left := top.X - barWidth/2
	c.FillRect(draw.Point{X: left, Y: top.Y}, draw.Point{X: left + barWidth, Y: top.Y + barHeight}, draw.ColorHealthBack)
	if fraction <= 0 {
		return
	}
	c.FillRect(draw.Point{X: left, Y: top.Y}, draw.Point{X: left + barWidth*fraction, Y: top.Y + barHeight}, BarColor(fraction))
}

// BarColor picks the health-bar colour for a fill fraction.
func BarColor(fraction float64) draw.Color {
	switch {
	case fraction > 0.6:
		return draw.ColorHealthHigh
	case fraction > 0.3:
		return draw.ColorHealthMid
	default:
		return draw.ColorHealthLow
	}
}

// Minimap returns an overview of the whole arena as coloured text rows
// using half blocks. The player wins over minions sharing a cell.
// col and row place the top-left corner (1-based, canvas-relative).
func (s *Scene) Minimap(col, row int) []draw.Text {
	h := s.HalfExtent
	if h <= 0 {
		return nil
	}

	var grid [minimapSubRows][minimapCols]draw.Color
	for _, sp := range s.Sprites() {
		var mark draw.Color
		switch sp.Kind {
		case object.KindPlayer:
			mark = draw.ColorPlayer
		case object.KindMinion:
			mark = draw.ColorMinion
		case object.KindTarget:
			mark = draw.ColorTarget
		default:
			continue
		}
		x := int(math.Floor((sp.Pos.X + h) / (2 * h) * minimapCols))
		z := int(math.Floor((sp.Pos.Z + h) / (2 * h) * minimapSubRows))
		x = min(max(x, 0), minimapCols-1)
		z = min(max(z, 0), minimapSubRows-1)
		if grid[z][x] != draw.ColorPlayer {
			grid[z][x] = mark
		}
	}

	out := make([]draw.Text, 0, minimapSubRows/2+2)
	border := "+" + strings.Repeat("-", minimapCols) + "+"
	out = append(out, draw.Text{Col: col, Row: row, S: border, Color: draw.ColorWall})
	for r := 0; r < minimapSubRows; r += 2 {
		line := make([]rune, 0, minimapCols+2)
		line = append(line, '|')
		for x := 0; x < minimapCols; x++ {
			line = append(line, minimapRune(grid[r][x], grid[r+1][x]))
		}
		line = append(line, '|')
		// One colour per row: the most important mark in it.
		out = append(out, draw.Text{Col: col, Row: row + 1 + r/2, S: string(line), Color: rowColor(grid[r], grid[r+1])})
	}
	out = append(out, draw.Text{Col: col, Row: row + 1 + minimapSubRows/2, S: border, Color: draw.ColorWall})
	return out
}

func minimapRune(top, bottom draw.Color) rune {
	switch {
	case top != draw.ColorNone && bottom != draw.ColorNone:
		return draw.BlockFull
	case top != draw.ColorNone:
		return draw.BlockUpperHalf
	case bottom != draw.ColorNone:
		return draw.BlockLowerHalf
	default:
		return draw.BlockEmpty
	}
}

func rowColor(rows ...[minimapCols]draw.Color) draw.Color {
	best := draw.ColorWall
	for _, r := range rows {
		for _, c := range r {
			switch {
			case c == draw.ColorPlayer:
				return c
			case c == draw.ColorMinion:
				best = c
			case c == draw.ColorTarget && best != draw.ColorMinion:
				best = c
			}
		}
	}
	return best
}
