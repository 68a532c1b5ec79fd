package defense

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/planet-defense/internal/core"
)

// World units per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellW = 2.0
	cellH = 4.0
)

// Ship glyphs by screen octant, starting east and turning clockwise.
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// camera projects world x/z onto the play area, centered on the ship.
type camera struct {
	center core.Vec3
	area   core.Rect
}

func (c camera) project(p core.Vec3) (int, int) {
	cx := c.area.X + c.area.W/2
	cy := c.area.Y + c.area.H/2
	x := cx + int(math.Round((p.X-c.center.X)/cellW))
	y := cy + int(math.Round((p.Z-c.center.Z)/cellH))
	return x, y
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if g.world == nil {
		return
	}
	if w < g.minScreenW || h < g.minScreenH {
		dst.DrawTextCentered(h/2-1, "Terminal too small")
		dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d, have %dx%d", g.minScreenW, g.minScreenH, w, h))
		return
	}

	area := core.NewRect(0, 1, w, h-2)
	cam := camera{center: g.world.ship.Pos, area: area}

	g.drawFrame(dst, area)
	g.drawPlanet(dst, cam)
	g.drawEntities(dst, cam)
	g.drawShip(dst, cam)
	g.drawPopups(dst, cam)
	g.drawHUD(dst)
	g.drawFooter(dst)
	g.drawOverlay(dst)
}

func (g *Game) drawFrame(dst *core.Screen, area core.Rect) {
	color := core.ColorGray
	for _, f := range g.presenter.Flashes() {
		if f.Intensity >= 1 {
			color = f.Color.Palette()
		}
	}
	dst.DrawBox(area, color)
}

func (g *Game) drawPlanet(dst *core.Screen, cam camera) {
	p, ok := g.system.CurrentPlanet()
	if !ok {
		return
	}
	color := p.Color.Palette()
	glyph := '█'
	if g.system.Hits() > 0 {
		glyph = '▓'
	}

	rx := int(math.Ceil(p.Radius / cellW))
	ry := int(math.Ceil(p.Radius / cellH))
	px, py := cam.project(p.Pos)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			wx, wz := float64(dx)*cellW, float64(dy)*cellH
			if wx*wx+wz*wz > p.Radius*p.Radius {
				continue
			}
			g.plot(dst, cam, px+dx, py+dy, glyph, color)
		}
	}
	label := strings.ToUpper(p.Name)
	g.plotText(dst, cam, px-len(label)/2, py+ry+1, label, core.ColorGray)
}

func (g *Game) drawEntities(dst *core.Screen, cam camera) {
	g.world.reg.Each(func(e Entity) bool {
		switch v := e.(type) {
		case *Particles:
			g.drawParticles(dst, cam, v)
		case *Asteroid:
			glyph := 'o'
			switch {
			case v.Grade >= 3:
				glyph = '@'
			case v.Grade == 2:
				glyph = 'O'
			}
			g.plotEntity(dst, cam, v.Pos, glyph, v.Color.Palette())
		case *AlienShip:
			g.plotEntity(dst, cam, v.Pos, 'W', core.ColorBrightMagenta)
		case *Laser:
			if v.Owner == OwnerPlayer {
				g.plotEntity(dst, cam, v.Pos, '•', core.ColorBrightCyan)
			} else {
				g.plotEntity(dst, cam, v.Pos, '×', core.ColorBrightRed)
			}
		case *HealthPickup:
			glyph := '+'
			if v.Scale > 1.1 {
				glyph = 'H'
			}
			g.plotEntity(dst, cam, v.Pos, glyph, core.ColorBrightGreen)
		}
		return true
	})
}

func (g *Game) drawParticles(dst *core.Screen, cam camera, p *Particles) {
	if p.Opacity <= 0 {
		return
	}
	var glyph rune
	color := p.Color.Palette()
	switch p.Effect {
	case EffectExplosion:
		glyph = '*'
		if p.Opacity < 0.5 {
			glyph = '.'
		}
	case EffectSmoke:
		glyph = '░'
		color = core.ColorGray
	case EffectHeal:
		glyph = '+'
	}
	for _, pt := range p.Points {
		x, y := cam.project(pt)
		g.plot(dst, cam, x, y, glyph, color)
	}
}

// plotEntity draws a hostile or pickup, pinning off-screen ones to the
// frame edge as a radar blip.
func (g *Game) plotEntity(dst *core.Screen, cam camera, pos core.Vec3, glyph rune, color core.Color) {
	x, y := cam.project(pos)
	inner := core.NewRect(cam.area.X+1, cam.area.Y+1, cam.area.W-2, cam.area.H-2)
	if inner.Contains(x, y) {
		dst.SetColor(x, y, glyph, color)
		return
	}
	x = core.Clamp(x, inner.X, inner.Right()-1)
	y = core.Clamp(y, inner.Y, inner.Bottom()-1)
	if dst.Get(x, y) == ' ' {
		dst.SetColor(x, y, '∙', color)
	}
}

// plot draws inside the frame only.
func (g *Game) plot(dst *core.Screen, cam camera, x, y int, r rune, c core.Color) {
	if x <= cam.area.X || x >= cam.area.Right()-1 || y <= cam.area.Y || y >= cam.area.Bottom()-1 {
		return
	}
	dst.SetColor(x, y, r, c)
}

func (g *Game) plotText(dst *core.Screen, cam camera, x, y int, text string, c core.Color) {
	for i, r := range []rune(text) {
		g.plot(dst, cam, x+i, y, r, c)
	}
}

func (g *Game) drawShip(dst *core.Screen, cam camera) {
	ship := g.world.ship
	fwd := ship.Forward()
	// Screen y grows with world z, so the angle is measured clockwise.
	octant := int(math.Round(math.Atan2(fwd.Z, fwd.X) / (math.Pi / 4)))
	glyph := shipGlyphs[((octant%8)+8)%8]

	color := core.ColorBrightWhite
	if ship.Health*4 < ship.MaxHealth() {
		color = core.ColorBrightRed
	}
	x, y := cam.project(ship.Pos)
	g.plot(dst, cam, x, y, glyph, color)
}

func (g *Game) drawPopups(dst *core.Screen, cam camera) {
	for _, p := range g.presenter.Popups() {
		x, y := cam.project(p.Pos)
		// Popups rise as they age.
		y -= (PopupTicks - p.TTL) / 20
		g.plotText(dst, cam, x-len(p.Text)/2, y-1, p.Text, p.Color.Palette())
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.Stats()
	const barW = 10
	filled := 0
	if s.MaxHealth > 0 {
		filled = core.Clamp(s.Health*barW/s.MaxHealth, 0, barW)
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)

	hp := fmt.Sprintf("HP %s %d/%d", bar, s.Health, s.MaxHealth)
	left := fmt.Sprintf(" SCORE %d  LV %d  ", s.Score, s.Level)
	dst.DrawTextColor(0, 0, left, core.ColorBrightYellow)

	hpColor := core.ColorBrightGreen
	if s.Health*4 < s.MaxHealth {
		hpColor = core.ColorBrightRed
	} else if s.Health*2 < s.MaxHealth {
		hpColor = core.ColorYellow
	}
	dst.DrawTextColor(len([]rune(left)), 0, hp, hpColor)

	right := fmt.Sprintf("%s  KILLS %d  FOES %d ", strings.ToUpper(s.Planet), s.Defeated, s.Hostiles)
	if g.mode == ModeMission {
		done, need := g.PlanetProgress()
		right = fmt.Sprintf("%s %d/%d  %s ", strings.ToUpper(s.Planet), min(done, need), need, g.phase)
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorCyan)
}

func (g *Game) drawFooter(dst *core.Screen) {
	help := "W/S thrust  A/D turn  SPACE fire  P pause  Q quit"
	dst.DrawTextCenteredColor(dst.Height()-1, help, core.ColorGray)
}

func (g *Game) drawOverlay(dst *core.Screen) {
	mid := dst.Height() / 2

	if b, ok := g.presenter.Banner(); ok && !g.over() {
		dst.DrawTextCenteredColor(mid-3, b.Text, core.ColorBrightCyan)
	}

	switch {
	case g.won:
		dst.DrawTextCenteredColor(mid-1, "MISSION COMPLETE", core.ColorBrightGreen)
		dst.DrawTextCenteredColor(mid, fmt.Sprintf("Score: %d", g.world.score), core.ColorBrightWhite)
		dst.DrawTextCenteredColor(mid+1, "R restart  Q quit", core.ColorGray)
	case g.gameOver:
		dst.DrawTextCenteredColor(mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCenteredColor(mid, fmt.Sprintf("Score: %d  Level: %d  Kills: %d", g.world.score, g.spawner.Level(), g.world.defeated), core.ColorBrightWhite)
		dst.DrawTextCenteredColor(mid+1, "R restart  Q quit", core.ColorGray)
	case g.paused:
		dst.DrawTextCenteredColor(mid, "PAUSED", core.ColorBrightYellow)
	}
}
