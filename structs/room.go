package structs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zond/mudrooms"
	"github.com/zond/mudrooms/lang"
)

const (
	searchResult = "You search the room and find nothing"
)

type Room struct {
	Id          string
	Name        string
	Description string
	Exits       map[string]*Exit
	Items       []Item
	NPCs        []NPC
}

func NewRoom(id, name, description string, exits map[string]*Exit, items []Item, npcs []NPC) *Room {
	if exits == nil {
		exits = map[string]*Exit{}
	}
	return &Room{
		Id:          id,
		Name:        name,
		Description: description,
		Exits:       exits,
		Items:       items,
		NPCs:        npcs,
	}
}

func (r *Room) Kind() Kind {
	return RoomKind
}

// AddExit links exit under dir, refusing to replace an existing one.
func (r *Room) AddExit(dir string, exit *Exit) error {
	if r.Exits == nil {
		r.Exits = map[string]*Exit{}
	}
	if _, found := r.Exits[dir]; found {
		return mudrooms.WithStack(DuplicateError{What: "exit", Id: dir})
	}
	r.Exits[dir] = exit
	return nil
}

func (r *Room) exit(dir string) (*Exit, error) {
	exit, found := r.Exits[dir]
	if !found || exit == nil {
		return nil, mudrooms.WithStack(NoSuchExitError{Dir: dir})
	}
	return exit, nil
}

// Move returns the room the exit in dir leads to.
func (r *Room) Move(dir string) (*Room, error) {
	exit, err := r.exit(dir)
	if err != nil {
		return nil, err
	}
	return exit.RoomB, nil
}

// Look returns the room description if dir is empty, otherwise the description of the exit in dir.
func (r *Room) Look(dir string) (string, error) {
	if dir == "" {
		return r.Description, nil
	}
	exit, err := r.exit(dir)
	if err != nil {
		return "", err
	}
	return exit.Look(), nil
}

func (r *Room) Search() string {
	return searchResult
}

func (r *Room) Directions() []string {
	result := make([]string, 0, len(r.Exits))
	for dir := range r.Exits {
		result = append(result, dir)
	}
	sort.Strings(result)
	return result
}

// counted groups names by first appearance, counting repeats.
func counted(names []string) []string {
	order := []string{}
	counts := map[string]int{}
	for _, name := range names {
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}
	result := make([]string, len(order))
	for i, name := range order {
		result[i] = lang.Card(counts[name], name)
	}
	return result
}

func presence(names []string) string {
	if len(names) == 0 {
		return ""
	}
	phrases := counted(names)
	enum := lang.Enumerator{Tense: lang.Present, Plural: len(phrases) == 1 && len(names) > 1}
	return fmt.Sprintf("%s here.", lang.Capitalize(enum.Do(phrases...)))
}

// Describe renders the full room: name, description, contents and exits.
func (r *Room) Describe() string {
	paragraphs := []string{r.Name}
	if r.Description != "" {
		paragraphs = append(paragraphs, r.Description)
	}
	itemNames := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		if item.Name != "" {
			itemNames = append(itemNames, item.Name)
		}
	}
	if s := presence(itemNames); s != "" {
		paragraphs = append(paragraphs, s)
	}
	npcNames := make([]string, 0, len(r.NPCs))
	for _, npc := range r.NPCs {
		if npc.Name != "" {
			npcNames = append(npcNames, npc.Name)
		}
	}
	if s := presence(npcNames); s != "" {
		paragraphs = append(paragraphs, s)
	}
	if dirs := r.Directions(); len(dirs) > 0 {
		paragraphs = append(paragraphs, fmt.Sprintf("Exits: %s.", lang.Enumerator{}.Do(dirs...)))
	}
	return strings.Join(paragraphs, "\n\n")
}
