package structs

import "sync"

const (
	msgOpened          = "You opened the door."
	msgAlreadyOpen     = "The door is already open."
	msgClosed          = "You closed the door."
	msgAlreadyClosed   = "The door is already closed."
	msgLocked          = "You locked the door."
	msgAlreadyLocked   = "The door is already locked."
	msgUnlocked        = "You unlocked the door."
	msgAlreadyUnlocked = "The door is already unlocked."
	msgWrongKey        = "You don't have the key."
)

// Exit connects RoomA to RoomB. Moving through it always leads to RoomB, so
// a two way passage is modelled as one Exit per direction.
//
// The open and locked flags are independent: a locked exit can still be opened.
// Every state changing method reports its outcome as a sentence and never fails.
type Exit struct {
	Id          string
	Name        string
	Description string
	Keys        []Item
	RoomA       *Room
	RoomB       *Room

	mu     sync.RWMutex
	opened bool
	locked bool
}

func NewExit(id, name, description string, locked, opened bool, keys []Item, roomA, roomB *Room) *Exit {
	return &Exit{
		Id:          id,
		Name:        name,
		Description: description,
		Keys:        keys,
		RoomA:       roomA,
		RoomB:       roomB,
		opened:      opened,
		locked:      locked,
	}
}

func (e *Exit) Kind() Kind {
	return ExitKind
}

func (e *Exit) Opened() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opened
}

func (e *Exit) Locked() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.locked
}

func (e *Exit) Look() string {
	return e.Description
}

// HasKey returns whether key matches, by id, any of the keys of the exit.
func (e *Exit) HasKey(key Item) bool {
	for _, k := range e.Keys {
		if k.Id == key.Id {
			return true
		}
	}
	return false
}

func (e *Exit) Open() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.opened {
		return msgAlreadyOpen
	}
	e.opened = true
	return msgOpened
}

func (e *Exit) Close() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.opened {
		return msgAlreadyClosed
	}
	e.opened = false
	return msgClosed
}

func (e *Exit) Lock() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.locked {
		return msgAlreadyLocked
	}
	e.locked = true
	return msgLocked
}

func (e *Exit) Unlock(key Item) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.locked {
		return msgAlreadyUnlocked
	}
	if !e.HasKey(key) {
		return msgWrongKey
	}
	e.locked = false
	return msgUnlocked
}
