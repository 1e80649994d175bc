package structs

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
	"github.com/zond/mudrooms"
)

var (
	lastObjectCounter uint64 = 0
	encoding                 = base64.RawURLEncoding
)

const (
	objectIDLen = 16
)

// NextObjectID returns a unique, roughly time ordered id.
func NextObjectID() (string, error) {
	objectCounter := mudrooms.Increment(&lastObjectCounter)
	timeSize := binary.Size(objectCounter)
	result := make([]byte, objectIDLen)
	binary.BigEndian.PutUint64(result, objectCounter)
	if _, err := rand.Read(result[timeSize:]); err != nil {
		return "", mudrooms.WithStack(err)
	}
	return encoding.EncodeToString(result), nil
}

// Kind tags the entity types commands can be applied to.
type Kind int

const (
	RoomKind Kind = iota + 1
	ExitKind
)

var kindNames = map[Kind]string{
	RoomKind: "room",
	ExitKind: "exit",
}

func (k Kind) String() string {
	if name, found := kindNames[k]; found {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, found := kindNames[k]; !found {
		return nil, errors.Errorf("unknown kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return errors.Errorf("unknown kind %q", string(b))
}

// Target is anything a command can be applied to.
type Target interface {
	Kind() Kind
}

type Item struct {
	Id   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type NPC struct {
	Id   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// NoSuchExitError is returned when a room has no exit in the requested direction.
type NoSuchExitError struct {
	Dir string
}

func (e NoSuchExitError) Error() string {
	return fmt.Sprintf("There is no %s exit", e.Dir)
}

func IsNoSuchExit(err error) bool {
	var nse NoSuchExitError
	return errors.As(err, &nse)
}

// DuplicateError is returned when something that must be unique is added twice.
type DuplicateError struct {
	What string
	Id   string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.What, e.Id)
}
