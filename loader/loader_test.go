package loader

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zond/mudrooms/structs"
)

const worldYAML = `
items:
  - id: brass
    name: brass key
  - id: lamp
    name: lamp
rooms:
  - id: hall
    name: Hall
    description: A long hall.
    items: [lamp]
    npcs:
      - id: butler
        name: butler
    exits:
      north:
        id: hall-north
        name: oak door
        description: A heavy oak door.
        to: study
        keys: [brass]
        locked: true
  - id: study
    name: Study
    description: A quiet study.
    exits:
      south:
        to: hall
        opened: true
`

const worldJSON = `{
  "items": [{"id": "brass", "name": "brass key"}, {"id": "lamp", "name": "lamp"}],
  "rooms": [
    {
      "id": "hall",
      "name": "Hall",
      "description": "A long hall.",
      "items": ["lamp"],
      "npcs": [{"id": "butler", "name": "butler"}],
      "exits": {
        "north": {
          "id": "hall-north",
          "name": "oak door",
          "description": "A heavy oak door.",
          "to": "study",
          "keys": ["brass"],
          "locked": true
        }
      }
    },
    {
      "id": "study",
      "name": "Study",
      "description": "A quiet study.",
      "exits": {"south": {"to": "hall", "opened": true}}
    }
  ]
}`

func withLog(t *testing.T, f func(buf *bytes.Buffer)) {
	t.Helper()
	prev := log.Writer()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(prev)
	f(buf)
}

func loadString(t *testing.T, s string, format Format) *structs.World {
	t.Helper()
	def, err := Decode([]byte(s), format)
	if err != nil {
		t.Fatal(err)
	}
	world, err := Load(def)
	if err != nil {
		t.Fatal(err)
	}
	return world
}

func TestLoad(t *testing.T) {
	for _, tt := range []struct {
		format Format
		src    string
	}{
		{YAML, worldYAML},
		{JSON, worldJSON},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			world := loadString(t, tt.src, tt.format)
			if world.NumRooms() != 2 || world.NumExits() != 2 {
				t.Fatalf("got %d rooms and %d exits, want 2 and 2", world.NumRooms(), world.NumExits())
			}
			hall, _ := world.Room("hall")
			study, _ := world.Room("study")
			if diff := cmp.Diff(hall.Items, []structs.Item{{Id: "lamp", Name: "lamp"}}); diff != "" {
				t.Errorf("unexpected items: %v", diff)
			}
			if diff := cmp.Diff(hall.NPCs, []structs.NPC{{Id: "butler", Name: "butler"}}); diff != "" {
				t.Errorf("unexpected npcs: %v", diff)
			}
			door, found := world.Exit("hall-north")
			if !found {
				t.Fatal("hall-north not found")
			}
			if hall.Exits["north"] != door || door.RoomA != hall || door.RoomB != study {
				t.Errorf("hall-north wired wrong")
			}
			if door.Name != "oak door" || !door.Locked() || door.Opened() {
				t.Errorf("got %q locked=%v opened=%v", door.Name, door.Locked(), door.Opened())
			}
			if got := door.Unlock(structs.Item{Id: "brass"}); got != "You unlocked the door." {
				t.Errorf("got %q", got)
			}
			back := study.Exits["south"]
			if back.Name != "south" || back.Id == "" || !back.Opened() {
				t.Errorf("got name %q id %q opened %v", back.Name, back.Id, back.Opened())
			}
			got, err := hall.Move("north")
			if err != nil {
				t.Fatal(err)
			}
			if got != study {
				t.Errorf("got %v, want study", got.Id)
			}
		})
	}
}

func TestReferenceErrors(t *testing.T) {
	tests := []struct {
		name string
		def  *Definition
		want ReferenceError
	}{
		{
			name: "unknown destination",
			def: &Definition{Rooms: []RoomDef{
				{Id: "a", Exits: map[string]ExitDef{"up": {To: "attic"}}},
			}},
			want: ReferenceError{From: `exit "up" of room "a"`, What: "room", Id: "attic"},
		},
		{
			name: "unknown key",
			def: &Definition{Rooms: []RoomDef{
				{Id: "a", Exits: map[string]ExitDef{"up": {To: "a", Keys: []string{"gold"}}}},
			}},
			want: ReferenceError{From: `exit "up" of room "a"`, What: "item", Id: "gold"},
		},
		{
			name: "unknown item",
			def: &Definition{Rooms: []RoomDef{
				{Id: "a", Items: []string{"lamp"}},
			}},
			want: ReferenceError{From: `room "a"`, What: "item", Id: "lamp"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.def)
			var got ReferenceError
			if !errors.As(err, &got) {
				t.Fatalf("got %v, want ReferenceError", err)
			}
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("unexpected error: %v", diff)
			}
		})
	}
}

func TestDuplicates(t *testing.T) {
	for _, def := range []*Definition{
		{Rooms: []RoomDef{{Id: "a"}, {Id: "a"}}},
		{Items: []structs.Item{{Id: "k"}, {Id: "k"}}},
		{Rooms: []RoomDef{
			{Id: "a", Exits: map[string]ExitDef{"up": {Id: "x", To: "b"}}},
			{Id: "b", Exits: map[string]ExitDef{"down": {Id: "x", To: "a"}}},
		}},
	} {
		var dup structs.DuplicateError
		if _, err := Load(def); !errors.As(err, &dup) {
			t.Errorf("got %v, want DuplicateError", err)
		}
	}
}

func TestMissingRoomID(t *testing.T) {
	if _, err := Load(&Definition{Rooms: []RoomDef{{Name: "Nowhere"}}}); err == nil {
		t.Errorf("wanted error for room without id")
	}
}

func TestWarnings(t *testing.T) {
	withLog(t, func(buf *bytes.Buffer) {
		def := &Definition{Rooms: []RoomDef{
			{Id: "a", Exits: map[string]ExitDef{"down": {Name: "trapdoor", To: "b", Locked: true}}},
			{Id: "b"},
		}}
		if _, err := Load(def); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"is locked but has no keys", `leads from "a" to "b" with no way back`} {
			if !strings.Contains(out, want) {
				t.Errorf("log %q missing %q", out, want)
			}
		}
	})
	withLog(t, func(buf *bytes.Buffer) {
		loadString(t, worldYAML, YAML)
		if buf.Len() != 0 {
			t.Errorf("got warnings for a well formed world: %q", buf.String())
		}
	})
}

func TestFormat(t *testing.T) {
	for path, want := range map[string]Format{
		"world.json": JSON,
		"world.YAML": YAML,
		"a/b.yml":    YAML,
	} {
		got, err := FormatFromPath(path)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
	if _, err := FormatFromPath("world.toml"); err == nil {
		t.Errorf("wanted error for unknown extension")
	}
	if _, err := Decode([]byte("{}"), Format("toml")); err == nil {
		t.Errorf("wanted error for unknown format")
	}
	if _, err := Decode([]byte("{"), JSON); err == nil {
		t.Errorf("wanted error for broken JSON")
	}
}
