package structs

import (
	"iter"
	"sort"

	"github.com/zond/mudrooms"
)

// World indexes rooms and exits by id.
type World struct {
	rooms map[string]*Room
	exits map[string]*Exit
}

func NewWorld() *World {
	return &World{
		rooms: map[string]*Room{},
		exits: map[string]*Exit{},
	}
}

func (w *World) AddRoom(r *Room) error {
	if _, found := w.rooms[r.Id]; found {
		return mudrooms.WithStack(DuplicateError{What: "room", Id: r.Id})
	}
	w.rooms[r.Id] = r
	return nil
}

func (w *World) AddExit(e *Exit) error {
	if _, found := w.exits[e.Id]; found {
		return mudrooms.WithStack(DuplicateError{What: "exit", Id: e.Id})
	}
	w.exits[e.Id] = e
	return nil
}

func (w *World) Room(id string) (*Room, bool) {
	r, found := w.rooms[id]
	return r, found
}

func (w *World) Exit(id string) (*Exit, bool) {
	e, found := w.exits[id]
	return e, found
}

func (w *World) NumRooms() int {
	return len(w.rooms)
}

func (w *World) NumExits() int {
	return len(w.exits)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Rooms iterates over the rooms in id order.
func (w *World) Rooms() iter.Seq[*Room] {
	return func(yield func(*Room) bool) {
		for _, id := range sortedKeys(w.rooms) {
			if !yield(w.rooms[id]) {
				return
			}
		}
	}
}

// Exits iterates over the exits in id order.
func (w *World) Exits() iter.Seq[*Exit] {
	return func(yield func(*Exit) bool) {
		for _, id := range sortedKeys(w.exits) {
			if !yield(w.exits[id]) {
				return
			}
		}
	}
}
