package commands

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zond/mudrooms/structs"
)

func TestDirections(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"n", []string{"n", "north"}},
		{"sw", []string{"sw", "southwest"}},
		{"d", []string{"d", "down"}},
		{"north", []string{"north"}},
		{"portal", []string{"portal"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(Directions(tt.input), tt.want); diff != "" {
				t.Errorf("Directions(%q): %v", tt.input, diff)
			}
		})
	}
}

func TestDirectionsFindExit(t *testing.T) {
	hall := structs.NewRoom("hall", "Hall", "", nil, nil, nil)
	study := structs.NewRoom("study", "Study", "", nil, nil, nil)
	if err := hall.AddExit("north", structs.NewExit("hn", "door", "", false, false, nil, hall, study)); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, dir := range Directions("n") {
		if dest, err := hall.Move(dir); err == nil {
			found = dest == study
			break
		} else if !structs.IsNoSuchExit(err) {
			t.Fatal(err)
		}
	}
	if !found {
		t.Errorf("n did not lead north")
	}
}
