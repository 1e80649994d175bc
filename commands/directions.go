package commands

var (
	// DirectionAliases maps short direction names to the full exit names.
	DirectionAliases = map[string]string{
		"n":  "north",
		"s":  "south",
		"e":  "east",
		"w":  "west",
		"ne": "northeast",
		"nw": "northwest",
		"se": "southeast",
		"sw": "southwest",
		"u":  "up",
		"d":  "down",
	}
)

// Directions returns the exit names dir may refer to: itself, and its expansion if it is an alias.
// Both are returned so that rooms with exits literally named "n" still match.
func Directions(dir string) []string {
	if expanded, found := DirectionAliases[dir]; found && expanded != dir {
		return []string{dir, expanded}
	}
	return []string{dir}
}
