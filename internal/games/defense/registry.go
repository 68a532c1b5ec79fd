package defense

// Registry is the single ordered collection of live entities.
//
// Spawns go to a pending list and join the live set on Flush. Removal only
// marks an entity; Purge compacts the live set afterwards. A pass over Each
// therefore never sees indices shift under it.
type Registry struct {
	live    []Entity
	pending []Entity
	nextID  int
	scene   Scene
}

// NewRegistry creates an empty registry that reports to scene.
func NewRegistry(scene Scene) *Registry {
	if scene == nil {
		scene = nopScene{}
	}
	return &Registry{scene: scene}
}

// Spawn assigns an ID and queues e for the next Flush.
func (r *Registry) Spawn(e Entity) Entity {
	r.nextID++
	b := e.body()
	b.ID = r.nextID
	b.removed = false
	r.pending = append(r.pending, e)
	return e
}

// Flush moves pending entities into the live set, in spawn order.
// Entities removed before they were flushed never reach the scene.
func (r *Registry) Flush() int {
	n := 0
	for _, e := range r.pending {
		if e.body().removed {
			continue
		}
		r.live = append(r.live, e)
		r.scene.Add(e)
		n++
	}
	clear(r.pending)
	r.pending = r.pending[:0]
	return n
}

// Remove marks e for purge. It returns false if e was already removed, so
// callers can tie one-off side effects to the first removal.
func (r *Registry) Remove(e Entity) bool {
	b := e.body()
	if b.removed {
		return false
	}
	b.removed = true
	return true
}

// Purge drops removed entities from the live set and returns how many went.
func (r *Registry) Purge() int {
	kept := r.live[:0]
	purged := 0
	for _, e := range r.live {
		if e.body().removed {
			r.scene.Remove(e)
			purged++
			continue
		}
		kept = append(kept, e)
	}
	clear(r.live[len(kept):])
	r.live = kept
	return purged
}

// Each visits live entities from the highest index down, skipping removed
// ones. Returning false from fn stops the walk.
func (r *Registry) Each(fn func(Entity) bool) {
	for i := len(r.live) - 1; i >= 0; i-- {
		e := r.live[i]
		if e.body().removed {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Len returns the number of live entities that are not marked removed.
func (r *Registry) Len() int {
	n := 0
	for _, e := range r.live {
		if !e.body().removed {
			n++
		}
	}
	return n
}

// Count returns the number of live entities of one kind.
func (r *Registry) Count(kind Kind) int {
	n := 0
	for _, e := range r.live {
		if !e.body().removed && e.Kind() == kind {
			n++
		}
	}
	return n
}

// Entities returns the live entities in index order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.live))
	for _, e := range r.live {
		if !e.body().removed {
			out = append(out, e)
		}
	}
	return out
}

// Pending returns the number of entities waiting for Flush.
func (r *Registry) Pending() int {
	return len(r.pending)
}

// Clear removes every entity, live and pending, then purges.
func (r *Registry) Clear() {
	for _, e := range r.pending {
		e.body().removed = true
	}
	r.Flush()
	for _, e := range r.live {
		e.body().removed = true
	}
	r.Purge()
}

// RemoveWhere marks every live entity matching pred and returns the count.
func (r *Registry) RemoveWhere(pred func(Entity) bool) int {
	n := 0
	r.Each(func(e Entity) bool {
		if pred(e) && r.Remove(e) {
			n++
		}
		return true
	})
	return n
}
