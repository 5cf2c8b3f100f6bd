// Package world holds the entity arena of a single game instance: a fixed,
// small set of records (ball, paddles, bricks) keyed by id.
package world

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

// EntityID identifies an entity. IDs are never reused within a World.
type EntityID uint32

// Role marks what an entity is. An entity may carry several roles.
type Role uint8

const (
	RoleBall Role = 1 << iota
	RolePlayer
	RoleOpponent
	RoleBrick
	RoleCollider

	// RolePaddle matches either paddle.
	RolePaddle = RolePlayer | RoleOpponent
)

func (r Role) String() string {
	names := []struct {
		role Role
		name string
	}{
		{RoleBall, "ball"},
		{RolePlayer, "player"},
		{RoleOpponent, "opponent"},
		{RoleBrick, "brick"},
		{RoleCollider, "collider"},
	}
	s := ""
	for _, n := range names {
		if r&n.role != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Entity is one record in the arena. Shape is fixed at spawn.
type Entity struct {
	ID    EntityID
	Roles Role
	Pos   physics.Vec2
	Vel   physics.Vec2
	Shape physics.Shape
}

// Is reports whether the entity has any of the roles in mask.
func (e *Entity) Is(mask Role) bool {
	return e.Roles&mask != 0
}

// World is the entity arena.
type World struct {
	entities *intmap.Map[EntityID, *Entity]
	order    []EntityID // spawn order, for deterministic iteration
	nextID   EntityID
}

// New creates an empty world sized for about capacity entities.
func New(capacity int) *World {
	return &World{
		entities: intmap.New[EntityID, *Entity](capacity),
		order:    make([]EntityID, 0, capacity),
		nextID:   1,
	}
}

// Spawn adds an entity and returns its id.
func (w *World) Spawn(roles Role, pos, vel physics.Vec2, shape physics.Shape) EntityID {
	id := w.nextID
	w.nextID++

	w.entities.Put(id, &Entity{ID: id, Roles: roles, Pos: pos, Vel: vel, Shape: shape})
	w.order = append(w.order, id)
	return id
}

// Despawn removes an entity. It returns true only the first time an id is
// removed.
func (w *World) Despawn(id EntityID) bool {
	if _, ok := w.entities.Get(id); !ok {
		return false
	}
	w.entities.Del(id)
	if i := slices.Index(w.order, id); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	return true
}

// Get returns the entity with the given id.
func (w *World) Get(id EntityID) (*Entity, bool) {
	return w.entities.Get(id)
}

// Alive reports whether id is still in the world.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities.Get(id)
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.Len()
}

// All returns every live entity in spawn order.
func (w *World) All() []*Entity {
	out := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		if e, ok := w.entities.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// Query returns the entities having any role in mask, in spawn order.
func (w *World) Query(mask Role) []*Entity {
	var out []*Entity
	for _, id := range w.order {
		if e, ok := w.entities.Get(id); ok && e.Is(mask) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entities have any role in mask.
func (w *World) Count(mask Role) int {
	n := 0
	for _, id := range w.order {
		if e, ok := w.entities.Get(id); ok && e.Is(mask) {
			n++
		}
	}
	return n
}

// Single returns the only entity matching mask. A missing or duplicated
// ball or paddle is a broken world, so it panics.
func (w *World) Single(mask Role) *Entity {
	matches := w.Query(mask)
	if len(matches) != 1 {
		panic(fmt.Sprintf("world: expected exactly one %v entity, found %d", mask, len(matches)))
	}
	return matches[0]
}
