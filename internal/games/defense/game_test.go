package defense

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/core"
	"github.com/vovakirdan/planet-defense/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, mode Mode, cfg config.DefenseConfig) *Game {
	t.Helper()
	g := New()
	if mode == ModeMission {
		g = NewMission()
	}
	g.SetShipClass(config.ShipCruiser)
	g.ResetWithConfig(testRuntime(42), cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// scriptedInput holds fire and steers in slow alternating arcs.
func scriptedInput(tick int) core.InputFrame {
	in := frame(core.ActionFire)
	switch (tick / 90) % 4 {
	case 0:
		in.Set(core.ActionRotateLeft)
	case 1:
		in.Set(core.ActionThrust)
	case 2:
		in.Set(core.ActionRotateRight)
	case 3:
		in.Set(core.ActionReverse)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{IDEndless, IDMission} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestGameTitles(t *testing.T) {
	if New().Title() != "Planet Defense" {
		t.Errorf("endless title = %q", New().Title())
	}
	if NewMission().Title() != "Planet Defense (Mission)" {
		t.Errorf("mission title = %q", NewMission().Title())
	}
}

func TestGameStartsInFrontOfEarth(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())
	ship := g.World().Ship()
	if ship.Pos != core.V3(0, 0, 60) {
		t.Errorf("ship at %v, want (0, 0, 60)", ship.Pos)
	}
	if fwd := ship.Forward(); fwd.Z > -0.999 {
		t.Errorf("ship faces %v, want toward the planet", fwd)
	}
	if n := len(g.System().Planets()); n != 1 {
		t.Errorf("endless mode has %d planets, want 1", n)
	}
	if g.Stats().Planet != "Earth" {
		t.Errorf("Stats().Planet = %q", g.Stats().Planet)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultDefenseConfig()
	a := newTestGame(t, ModeEndless, cfg)
	b := newTestGame(t, ModeEndless, cfg)

	for tick := range 2000 {
		a.Step(scriptedInput(tick))
		b.Step(scriptedInput(tick))
		if tick%100 != 0 {
			continue
		}
		sa, sb := a.Snapshot(), b.Snapshot()
		if sa.Hash() != sb.Hash() {
			t.Fatalf("tick %d: hashes differ: %d vs %d", tick, sa.Hash(), sb.Hash())
		}
	}

	sa := a.Snapshot()
	if sa.EntityCount == 0 && sa.Defeated == 0 {
		t.Error("nothing happened in 2000 ticks")
	}
}

func TestGameSeedsDiverge(t *testing.T) {
	cfg := config.DefaultDefenseConfig()
	a := New()
	a.ResetWithConfig(testRuntime(1), cfg)
	b := New()
	b.ResetWithConfig(testRuntime(2), cfg)

	for tick := range 400 {
		a.Step(scriptedInput(tick))
		b.Step(scriptedInput(tick))
	}
	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("different seeds produced identical states")
	}
}

func TestGameTickOrderSpawnsLaserThenMoves(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())
	g.Step(frame(core.ActionFire))

	lasers := 0
	for _, e := range g.World().Registry().Entities() {
		l, ok := e.(*Laser)
		if !ok {
			continue
		}
		lasers++
		// Fired from 8 units ahead, then moved once at laser speed.
		if want := 60 - 8 - 3.0; math.Abs(l.Pos.Z-want) > 1e-9 {
			t.Errorf("laser z = %v, want %v", l.Pos.Z, want)
		}
		if l.Lifetime != g.Config().Ship.LaserLifetime-1 {
			t.Errorf("laser Lifetime = %d", l.Lifetime)
		}
	}
	if lasers != 1 {
		t.Fatalf("%d lasers after one fire tick, want 1", lasers)
	}
}

func TestGameBindsIntentEdges(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())
	ship := g.World().Ship()

	g.Step(frame(core.ActionThrust, core.ActionRotateLeft))
	if !ship.Intent(IntentForward) || !ship.Intent(IntentRotateLeft) {
		t.Fatal("held actions not applied as intents")
	}
	g.Step(frame())
	if ship.Intent(IntentForward) || ship.Intent(IntentRotateLeft) {
		t.Error("released actions still held")
	}
}

func TestGamePlanetStrikeEndsSession(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())
	g.World().Ship().Health = 10
	g.World().Registry().Spawn(&Asteroid{Body: Body{Pos: core.V3(0, 0, 10)}, Health: 1, Damage: 10})

	res := g.Step(frame())
	if !res.State.GameOver {
		t.Fatal("session not over after the ship reached 0 health")
	}
	if g.World().Ship().Health != 0 {
		t.Errorf("ship Health = %d, want 0", g.World().Ship().Health)
	}

	tick := g.World().tick
	g.Step(frame(core.ActionFire))
	if g.World().tick != tick {
		t.Error("simulation advanced after game over")
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver {
		t.Error("restart did not clear game over")
	}
	if g.World().Ship().Health != 100 || g.World().Score() != 0 {
		t.Errorf("restart kept state: health %d score %d", g.World().Ship().Health, g.World().Score())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause not applied")
	}
	tick := g.World().tick
	for range 10 {
		g.Step(frame(core.ActionThrust))
	}
	if g.World().tick != tick {
		t.Error("ticks ran while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused || g.World().tick != tick+1 {
		t.Errorf("unpause: paused=%v tick=%d", g.State().Paused, g.World().tick)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1}, quietConfig())
	g.Step(frame(core.ActionFire))
	if g.World().tick != 0 {
		t.Error("simulation ran on a too-small screen")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("missing too-small message")
	}

	g.Resize(80, 24)
	g.Step(frame())
	if g.World().tick != 1 {
		t.Errorf("tick after resize = %d, want 1", g.World().tick)
	}
}

func TestGameLevelIncreaseReachesPresenter(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())
	g.World().score = 600
	g.Step(frame())

	if g.Spawner().Level() != 2 {
		t.Fatalf("Level() = %d, want 2", g.Spawner().Level())
	}
	if h := g.Presenter().LevelHistory(); len(h) != 1 || h[0].To != 2 {
		t.Errorf("LevelHistory() = %+v", h)
	}
	if g.Presenter().Stats().Level != 2 {
		t.Errorf("presented Level = %d, want 2", g.Presenter().Stats().Level)
	}
}

func missionConfig() config.DefenseConfig {
	cfg := quietConfig()
	cfg.Mission.EnemiesPerPlanet = 1
	cfg.Mission.IntermissionTicks = 2
	return cfg
}

func TestMissionClearsPlanetAndAdvances(t *testing.T) {
	g := newTestGame(t, ModeMission, missionConfig())
	w := g.World()
	w.reg.Spawn(&Asteroid{Body: Body{Pos: core.V3(150, 0, 0)}, Health: 1})
	w.defeated = 1

	g.Tick()
	if g.Intermission() != 2 {
		t.Fatalf("Intermission() = %d, want 2", g.Intermission())
	}
	if w.reg.Count(KindAsteroid) != 0 {
		t.Error("hostiles not cleared with the planet")
	}
	if b, ok := g.Presenter().Banner(); !ok || !strings.Contains(b.Text, "Onward to Mars") {
		t.Errorf("banner = %+v, %v", b, ok)
	}

	g.Tick()
	if g.System().Index() != 0 {
		t.Fatal("arrived before the intermission ended")
	}
	g.Tick()
	if g.System().Index() != 1 {
		t.Fatalf("Index() = %d, want 1 (Mars)", g.System().Index())
	}
	mars := DefaultPlanets()[1]
	if want := mars.Pos.Add(core.V3(0, 0, 60)); w.Ship().Pos != want {
		t.Errorf("ship at %v, want %v", w.Ship().Pos, want)
	}
	if done, need := g.PlanetProgress(); done != 0 || need != 1 {
		t.Errorf("PlanetProgress() = %d/%d, want 0/1", done, need)
	}
	if g.Stats().Planet != "Mars" {
		t.Errorf("Stats().Planet = %q", g.Stats().Planet)
	}
}

func TestMissionRoundTrip(t *testing.T) {
	g := newTestGame(t, ModeMission, missionConfig())
	w := g.World()

	var route []string
	last := -1
	for range 1000 {
		if g.State().Won {
			break
		}
		if g.Intermission() == 0 {
			done, need := g.PlanetProgress()
			w.defeated += need - done
		}
		g.Step(frame())
		if i := g.System().Index(); i != last {
			route = append(route, g.System().Planets()[i].Name)
			last = i
		}
	}

	if !g.State().Won {
		t.Fatalf("mission not won; route %v phase %v", route, g.Phase())
	}
	if g.Phase() != PhaseComplete || !g.System().AtHome() {
		t.Errorf("phase %v at index %d", g.Phase(), g.System().Index())
	}
	want := []string{"Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Uranus", "Saturn", "Jupiter", "Mars", "Earth"}
	if strings.Join(route, ",") != strings.Join(want, ",") {
		t.Errorf("route = %v, want %v", route, want)
	}

	tick := w.tick
	g.Step(frame())
	if w.tick != tick {
		t.Error("simulation advanced after the mission was won")
	}
}

func TestMissionTierRaisesEnemyStats(t *testing.T) {
	g := newTestGame(t, ModeMission, missionConfig())
	g.System().AdvanceToNextPlanet()
	g.System().AdvanceToNextPlanet()
	if tier := g.System().CurrentDifficultyTier(); tier != 3 {
		t.Fatalf("Jupiter tier = %d, want 3", tier)
	}
	if got := g.Spawner().statLevel(g.World()); got != 3 {
		t.Errorf("statLevel = %d, want 3", got)
	}
}

func TestRenderDrawsHUDAndShip(t *testing.T) {
	g := newTestGame(t, ModeEndless, config.DefaultDefenseConfig())
	for tick := range 300 {
		g.Step(scriptedInput(tick))
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SCORE", "HP", "W/S thrust"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderShipGlyphFacesPlanet(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cam := camera{center: g.World().Ship().Pos, area: core.NewRect(0, 1, 80, 22)}
	x, y := cam.project(g.World().Ship().Pos)
	if got := screen.Get(x, y); got != '↑' {
		t.Errorf("ship glyph = %q, want '↑'", got)
	}
	if !strings.Contains(screen.String(), "EARTH") {
		t.Error("planet label missing")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())
	g.Step(frame(core.ActionPause))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	g = newTestGame(t, ModeEndless, quietConfig())
	g.World().Ship().Health = 1
	g.World().Registry().Spawn(&Asteroid{Body: Body{Pos: core.V3(0, 0, 10)}, Health: 1})
	g.Step(frame())
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestStatsCountsHostiles(t *testing.T) {
	g := newTestGame(t, ModeEndless, quietConfig())
	spawnNow(g.World(), &Asteroid{Health: 1}, &AlienShip{Health: 2}, &Laser{Owner: OwnerPlayer, Body: Body{Lifetime: 10}})

	if got := g.Stats().Hostiles; got != 2 {
		t.Errorf("Stats().Hostiles = %d, want 2", got)
	}

	screen := core.NewScreen(100, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "FOES 2") {
		t.Errorf("HUD row = %q, want a FOES 2 counter", screen.Row(0))
	}
}
