// Package commands declares the verbs players can use on rooms and exits.
//
// The table is descriptive only: it names each verb, the kinds of entity it
// applies to, and the shape of its arguments, for use by a command parser.
package commands

import (
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/rodaine/table"
	"github.com/zond/mudrooms"
	"github.com/zond/mudrooms/structs"

	goccy "github.com/goccy/go-json"
)

const (
	optionalSuffix = "?"
)

// Arg is a named argument. In text form optional args end with "?".
type Arg struct {
	Name     string
	Optional bool
}

func ParseArg(s string) Arg {
	if name, found := strings.CutSuffix(s, optionalSuffix); found {
		return Arg{Name: name, Optional: true}
	}
	return Arg{Name: s}
}

func (a Arg) String() string {
	if a.Optional {
		return a.Name + optionalSuffix
	}
	return a.Name
}

func (a Arg) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Arg) UnmarshalText(b []byte) error {
	*a = ParseArg(string(b))
	return nil
}

type Args []Arg

func args(s ...string) Args {
	result := make(Args, len(s))
	for i, a := range s {
		result[i] = ParseArg(a)
	}
	return result
}

func (a Args) String() string {
	parts := make([]string, len(a))
	for i, arg := range a {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}

type Command struct {
	Verb string         `json:"verb"`
	On   []structs.Kind `json:"on"`
	Args Args           `json:"args"`
}

func (c Command) AppliesTo(kind structs.Kind) bool {
	return slices.Contains(c.On, kind)
}

func (c Command) Accepts(target structs.Target) bool {
	return target != nil && c.AppliesTo(target.Kind())
}

func (c Command) targets() string {
	names := make([]string, len(c.On))
	for i, kind := range c.On {
		names[i] = kind.String()
	}
	return strings.Join(names, ",")
}

// Table maps every name a command answers to, including aliases, to its descriptor.
type Table map[string]Command

var (
	move = Command{
		Verb: "move",
		On:   []structs.Kind{structs.RoomKind},
		Args: args("dir"),
	}
	look = Command{
		Verb: "look",
		On:   []structs.Kind{structs.RoomKind, structs.ExitKind},
		Args: args("dir?"),
	}
	search = Command{
		Verb: "search",
		On:   []structs.Kind{structs.RoomKind},
		Args: args("dir?"),
	}
	open = Command{
		Verb: "open",
		On:   []structs.Kind{structs.RoomKind},
		Args: args("dir"),
	}
	closeCmd = Command{
		Verb: "close",
		On:   []structs.Kind{structs.RoomKind},
		Args: args("dir"),
	}
	lock = Command{
		Verb: "lock",
		On:   []structs.Kind{structs.RoomKind},
		Args: args("dir", "key"),
	}
	unlock = Command{
		Verb: "unlock",
		On:   []structs.Kind{structs.RoomKind},
		Args: args("dir", "key"),
	}

	RoomCommands = Table{
		"move":   move,
		"go":     move,
		"walk":   move,
		"look":   look,
		"search": search,
		"open":   open,
		"close":  closeCmd,
		"lock":   lock,
		"unlock": unlock,
	}
)

func (t Table) Lookup(name string) (Command, bool) {
	cmd, found := t[name]
	return cmd, found
}

// Names returns every name in the table, sorted.
func (t Table) Names() []string {
	result := make([]string, 0, len(t))
	for name := range t {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Aliases returns the names, other than verb itself, that resolve to verb.
func (t Table) Aliases(verb string) []string {
	result := []string{}
	for _, name := range t.Names() {
		if name != verb && t[name].Verb == verb {
			result = append(result, name)
		}
	}
	return result
}

// Print writes the table with one row per verb.
func (t Table) Print(w io.Writer) {
	tbl := table.New("Verb", "Aliases", "On", "Args").WithWriter(w)
	for _, name := range t.Names() {
		cmd := t[name]
		if cmd.Verb != name {
			continue
		}
		tbl.AddRow(name, strings.Join(t.Aliases(name), ","), cmd.targets(), cmd.Args.String())
	}
	tbl.Print()
}

func (t Table) MarshalJSON() ([]byte, error) {
	b, err := goccy.Marshal(map[string]Command(t))
	return b, mudrooms.WithStack(err)
}

func (t *Table) UnmarshalJSON(b []byte) error {
	m := map[string]Command{}
	if err := goccy.Unmarshal(b, &m); err != nil {
		return mudrooms.WithStack(err)
	}
	*t = m
	return nil
}
