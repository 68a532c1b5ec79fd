package defense

import (
	"testing"

	"github.com/vovakirdan/planet-defense/internal/core"
)

func TestRegistrySpawnWaitsForFlush(t *testing.T) {
	scene := &countingScene{}
	r := NewRegistry(scene)

	a := &Asteroid{Health: 1}
	r.Spawn(a)
	if r.Len() != 0 {
		t.Fatalf("Len() = %d before Flush, want 0", r.Len())
	}
	if r.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", r.Pending())
	}

	if n := r.Flush(); n != 1 {
		t.Errorf("Flush() = %d, want 1", n)
	}
	if r.Len() != 1 || r.Pending() != 0 {
		t.Errorf("after Flush: Len()=%d Pending()=%d, want 1 and 0", r.Len(), r.Pending())
	}
	if scene.added != 1 {
		t.Errorf("scene.Add called %d times, want 1", scene.added)
	}
	if a.ID != 1 {
		t.Errorf("first ID = %d, want 1", a.ID)
	}
}

func TestRegistryIDsIncrease(t *testing.T) {
	r := NewRegistry(nil)
	var last int
	for i := range 5 {
		l := &Laser{}
		r.Spawn(l)
		if l.ID <= last {
			t.Fatalf("spawn %d: ID %d not above %d", i, l.ID, last)
		}
		last = l.ID
	}
}

func TestRegistryRemoveOnce(t *testing.T) {
	r := NewRegistry(nil)
	a := &Asteroid{}
	r.Spawn(a)
	r.Flush()

	if !r.Remove(a) {
		t.Fatal("first Remove returned false")
	}
	if r.Remove(a) {
		t.Error("second Remove returned true")
	}
	if !a.Removed() {
		t.Error("entity not marked removed")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Remove, want 0", r.Len())
	}
}

func TestRegistryRemovedPendingNeverReachesScene(t *testing.T) {
	scene := &countingScene{}
	r := NewRegistry(scene)
	a := &Asteroid{}
	r.Spawn(a)
	r.Remove(a)

	if n := r.Flush(); n != 0 {
		t.Errorf("Flush() = %d, want 0", n)
	}
	if scene.added != 0 {
		t.Errorf("scene.Add called %d times, want 0", scene.added)
	}
}

func TestRegistryEachReverseWithRemoval(t *testing.T) {
	scene := &countingScene{}
	r := NewRegistry(scene)
	for range 10 {
		r.Spawn(&Asteroid{Health: 1})
	}
	r.Flush()

	var visited []int
	r.Each(func(e Entity) bool {
		id := e.body().ID
		visited = append(visited, id)
		if id%2 == 0 {
			r.Remove(e)
		}
		return true
	})

	if len(visited) != 10 {
		t.Fatalf("visited %d entities, want 10", len(visited))
	}
	for i, id := range visited {
		if want := 10 - i; id != want {
			t.Errorf("visit %d: ID %d, want %d", i, id, want)
		}
	}

	if n := r.Purge(); n != 5 {
		t.Errorf("Purge() = %d, want 5", n)
	}
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
	if scene.removed != 5 {
		t.Errorf("scene.Remove called %d times, want 5", scene.removed)
	}
	for _, e := range r.Entities() {
		if e.body().ID%2 == 0 {
			t.Errorf("entity %d survived purge", e.body().ID)
		}
	}
}

func TestRegistryEachSkipsRemovedAndStops(t *testing.T) {
	r := NewRegistry(nil)
	a, b, c := &Asteroid{}, &Asteroid{}, &Asteroid{}
	r.Spawn(a)
	r.Spawn(b)
	r.Spawn(c)
	r.Flush()
	r.Remove(b)

	var seen []Entity
	r.Each(func(e Entity) bool {
		seen = append(seen, e)
		return true
	})
	if len(seen) != 2 || seen[0] != c || seen[1] != a {
		t.Errorf("Each visited %v, want [c a]", seen)
	}

	calls := 0
	r.Each(func(Entity) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("Each kept walking after false: %d calls", calls)
	}
}

func TestRegistryCountAndRemoveWhere(t *testing.T) {
	r := NewRegistry(nil)
	r.Spawn(&Asteroid{})
	r.Spawn(&Asteroid{})
	r.Spawn(&AlienShip{})
	r.Spawn(&Laser{Owner: OwnerAlien})
	r.Spawn(&Laser{Owner: OwnerPlayer})
	r.Spawn(&HealthPickup{})
	r.Flush()

	tests := []struct {
		kind Kind
		want int
	}{
		{KindAsteroid, 2},
		{KindAlien, 1},
		{KindAlienLaser, 1},
		{KindPlayerLaser, 1},
		{KindPickup, 1},
		{KindParticles, 0},
	}
	for _, tt := range tests {
		if got := r.Count(tt.kind); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}

	if n := r.RemoveWhere(hostile); n != 4 {
		t.Errorf("RemoveWhere(hostile) = %d, want 4", n)
	}
	r.Purge()
	if r.Len() != 2 {
		t.Errorf("Len() = %d after clearing hostiles, want 2", r.Len())
	}
}

func TestRegistryClear(t *testing.T) {
	scene := &countingScene{}
	r := NewRegistry(scene)
	r.Spawn(&Asteroid{})
	r.Flush()
	r.Spawn(&Particles{Points: []core.Vec3{{}}, Velocities: []core.Vec3{{}}})

	r.Clear()
	if r.Len() != 0 || r.Pending() != 0 {
		t.Errorf("after Clear: Len()=%d Pending()=%d", r.Len(), r.Pending())
	}
	if scene.added != 1 || scene.removed != 1 {
		t.Errorf("scene saw %d adds and %d removes, want 1 and 1", scene.added, scene.removed)
	}
}
