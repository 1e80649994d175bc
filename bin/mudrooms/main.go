// mudrooms inspects world definitions and the verbs players can use in them.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/pflag"
	"github.com/zond/mudrooms"
	"github.com/zond/mudrooms/commands"
	"github.com/zond/mudrooms/config"
	"github.com/zond/mudrooms/loader"
	"github.com/zond/mudrooms/structs"

	goccy "github.com/goccy/go-json"
)

func usage(flagSet *pflag.FlagSet) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [args...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  verbs                 List the verbs and what they apply to\n")
		fmt.Fprintf(os.Stderr, "  check FILE            Load a world definition and summarize it\n")
		fmt.Fprintf(os.Stderr, "  describe FILE ROOM    Describe a room of a world definition\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flagSet.PrintDefaults()
	}
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	flagSet := pflag.NewFlagSet("mudrooms", pflag.ExitOnError)
	cfg.AddFlags(flagSet)
	flagSet.Usage = usage(flagSet)
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	cfg.SetupLogging()

	args := flagSet.Args()
	if len(args) < 1 {
		flagSet.Usage()
		os.Exit(1)
	}
	if err := run(os.Stdout, cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Println(mudrooms.StackTrace(err))
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config.Config, args []string) error {
	switch args[0] {
	case "verbs":
		return verbs(w, cfg)
	case "check":
		if len(args) != 2 {
			return fmt.Errorf("usage: check FILE")
		}
		return check(w, cfg, args[1])
	case "describe":
		if len(args) != 3 {
			return fmt.Errorf("usage: describe FILE ROOM")
		}
		return describe(w, args[1], args[2])
	}
	return fmt.Errorf("unknown command: %s", args[0])
}

func verbs(w io.Writer, cfg config.Config) error {
	if cfg.Format == config.JSONFormat {
		b, err := goccy.MarshalIndent(commands.RoomCommands, "", "  ")
		if err != nil {
			return mudrooms.WithStack(err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return mudrooms.WithStack(err)
	}
	commands.RoomCommands.Print(w)
	return nil
}

func loadWorld(path string) (*structs.World, error) {
	format, err := loader.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, mudrooms.WithStack(err)
	}
	def, err := loader.Decode(b, format)
	if err != nil {
		return nil, err
	}
	return loader.Load(def)
}

type roomSummary struct {
	Id    string   `json:"id"`
	Name  string   `json:"name"`
	Exits []string `json:"exits"`
	Items int      `json:"items"`
	NPCs  int      `json:"npcs"`
}

func check(w io.Writer, cfg config.Config, path string) error {
	world, err := loadWorld(path)
	if err != nil {
		return err
	}
	summaries := []roomSummary{}
	for room := range world.Rooms() {
		exits := []string{}
		for _, dir := range room.Directions() {
			exit := room.Exits[dir]
			state := []string{}
			if exit.Opened() {
				state = append(state, "open")
			}
			if exit.Locked() {
				state = append(state, "locked")
			}
			desc := fmt.Sprintf("%s->%s", dir, exit.RoomB.Id)
			if len(state) > 0 {
				desc = fmt.Sprintf("%s (%s)", desc, strings.Join(state, ","))
			}
			exits = append(exits, desc)
		}
		summaries = append(summaries, roomSummary{
			Id:    room.Id,
			Name:  room.Name,
			Exits: exits,
			Items: len(room.Items),
			NPCs:  len(room.NPCs),
		})
	}
	if cfg.Format == config.JSONFormat {
		b, err := goccy.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return mudrooms.WithStack(err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return mudrooms.WithStack(err)
	}
	tbl := table.New("Room", "Name", "Exits", "Items", "NPCs").WithWriter(w)
	for _, s := range summaries {
		tbl.AddRow(s.Id, s.Name, strings.Join(s.Exits, " "), s.Items, s.NPCs)
	}
	tbl.Print()
	fmt.Fprintf(w, "\n%d rooms, %d exits\n", world.NumRooms(), world.NumExits())
	return nil
}

func describe(w io.Writer, path string, roomID string) error {
	world, err := loadWorld(path)
	if err != nil {
		return err
	}
	room, found := world.Room(roomID)
	if !found {
		return fmt.Errorf("no room %q in %s", roomID, path)
	}
	_, err = fmt.Fprintln(w, room.Describe())
	return mudrooms.WithStack(err)
}
