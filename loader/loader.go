// Package loader builds a world of rooms and exits from a JSON or YAML definition.
package loader

import (
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"github.com/zond/mudrooms"
	"github.com/zond/mudrooms/structs"
	"gopkg.in/yaml.v3"

	goccy "github.com/goccy/go-json"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath guesses the format of a definition file from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", mudrooms.WithStack(fmt.Errorf("unknown world definition format for %q", path))
}

type ExitDef struct {
	Id          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	To          string   `json:"to" yaml:"to"`
	Keys        []string `json:"keys,omitempty" yaml:"keys,omitempty"`
	Opened      bool     `json:"opened,omitempty" yaml:"opened,omitempty"`
	Locked      bool     `json:"locked,omitempty" yaml:"locked,omitempty"`
}

type RoomDef struct {
	Id          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []string           `json:"items,omitempty" yaml:"items,omitempty"`
	NPCs        []structs.NPC      `json:"npcs,omitempty" yaml:"npcs,omitempty"`
	Exits       map[string]ExitDef `json:"exits,omitempty" yaml:"exits,omitempty"`
}

// Definition describes a world. Rooms and items refer to each other by id only.
type Definition struct {
	Items []structs.Item `json:"items,omitempty" yaml:"items,omitempty"`
	Rooms []RoomDef      `json:"rooms" yaml:"rooms"`
}

// ReferenceError is returned when a definition refers to an id it doesn't define.
type ReferenceError struct {
	From string
	What string
	Id   string
}

func (e ReferenceError) Error() string {
	return fmt.Sprintf("%s refers to unknown %s %q", e.From, e.What, e.Id)
}

func Decode(b []byte, format Format) (*Definition, error) {
	def := &Definition{}
	switch format {
	case JSON:
		if err := goccy.Unmarshal(b, def); err != nil {
			return nil, mudrooms.WithStack(err)
		}
	case YAML:
		if err := yaml.Unmarshal(b, def); err != nil {
			return nil, mudrooms.WithStack(err)
		}
	default:
		return nil, mudrooms.WithStack(fmt.Errorf("unknown world definition format %q", format))
	}
	return def, nil
}

type resolver struct {
	def   *Definition
	items map[string]structs.Item
	world *structs.World
}

func (r *resolver) item(from string, id string) (structs.Item, error) {
	item, found := r.items[id]
	if !found {
		return structs.Item{}, mudrooms.WithStack(ReferenceError{From: from, What: "item", Id: id})
	}
	return item, nil
}

func (r *resolver) rooms() error {
	for _, roomDef := range r.def.Rooms {
		if err := validateID("room id", roomDef.Id); err != nil {
			return mudrooms.WithStack(err)
		}
		from := fmt.Sprintf("room %q", roomDef.Id)
		items := make([]structs.Item, 0, len(roomDef.Items))
		for _, id := range roomDef.Items {
			item, err := r.item(from, id)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		room := structs.NewRoom(roomDef.Id, roomDef.Name, roomDef.Description, nil, items, roomDef.NPCs)
		if err := r.world.AddRoom(room); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) exits() error {
	for _, roomDef := range r.def.Rooms {
		roomA, _ := r.world.Room(roomDef.Id)
		for _, dir := range sortedDirs(roomDef.Exits) {
			if err := validateDirection(dir); err != nil {
				return mudrooms.WithStack(err)
			}
			exitDef := roomDef.Exits[dir]
			from := fmt.Sprintf("exit %q of room %q", dir, roomDef.Id)
			roomB, found := r.world.Room(exitDef.To)
			if !found {
				return mudrooms.WithStack(ReferenceError{From: from, What: "room", Id: exitDef.To})
			}
			keys := make([]structs.Item, 0, len(exitDef.Keys))
			for _, id := range exitDef.Keys {
				key, err := r.item(from, id)
				if err != nil {
					return err
				}
				keys = append(keys, key)
			}
			id := exitDef.Id
			if id != "" {
				if err := validateID("exit id", id); err != nil {
					return mudrooms.WithStack(err)
				}
			} else {
				var err error
				if id, err = structs.NextObjectID(); err != nil {
					return err
				}
			}
			name := exitDef.Name
			if name == "" {
				name = dir
			}
			exit := structs.NewExit(id, name, exitDef.Description, exitDef.Locked, exitDef.Opened, keys, roomA, roomB)
			if err := r.world.AddExit(exit); err != nil {
				return err
			}
			if err := roomA.AddExit(dir, exit); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *resolver) warn() {
	for exit := range r.world.Exits() {
		if exit.Locked() && len(exit.Keys) == 0 {
			log.Printf("loader: exit %q of room %q is locked but has no keys", exit.Name, exit.RoomA.Id)
		}
		hasWayBack := false
		for _, back := range exit.RoomB.Exits {
			if back.RoomB == exit.RoomA {
				hasWayBack = true
				break
			}
		}
		if !hasWayBack {
			log.Printf("loader: exit %q leads from %q to %q with no way back", exit.Name, exit.RoomA.Id, exit.RoomB.Id)
		}
	}
}

// Load resolves all references in def and returns the resulting world.
func Load(def *Definition) (*structs.World, error) {
	r := &resolver{
		def:   def,
		items: map[string]structs.Item{},
		world: structs.NewWorld(),
	}
	for _, item := range def.Items {
		if err := validateID("item id", item.Id); err != nil {
			return nil, mudrooms.WithStack(err)
		}
		if _, found := r.items[item.Id]; found {
			return nil, mudrooms.WithStack(structs.DuplicateError{What: "item", Id: item.Id})
		}
		r.items[item.Id] = item
	}
	if err := r.rooms(); err != nil {
		return nil, err
	}
	if err := r.exits(); err != nil {
		return nil, err
	}
	r.warn()
	return r.world, nil
}

func sortedDirs(exits map[string]ExitDef) []string {
	result := make([]string, 0, len(exits))
	for dir := range exits {
		result = append(result, dir)
	}
	slices.Sort(result)
	return result
}
