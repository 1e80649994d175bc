package loader

import (
	"fmt"
	"regexp"
)

var (
	// validIDRE matches ids usable as references in a definition: starts with a
	// letter or digit, contains only letters, digits, hyphens, dots or underscores.
	validIDRE = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)
	// validDirectionRE matches directions: lowercase words, optionally joined by
	// single spaces or hyphens, like "north" or "up the stairs".
	validDirectionRE = regexp.MustCompile(`^[a-z0-9]+([ -][a-z0-9]+)*$`)
)

// InvalidNameError is returned when an id or direction in a definition is malformed.
type InvalidNameError struct {
	What string
	Name string
}

func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.What, e.Name)
}

func validateID(what string, id string) error {
	if !validIDRE.MatchString(id) {
		return InvalidNameError{What: what, Name: id}
	}
	return nil
}

func validateDirection(dir string) error {
	if !validDirectionRE.MatchString(dir) {
		return InvalidNameError{What: "direction", Name: dir}
	}
	return nil
}
