package profile

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalize_TrimsAndDedups(t *testing.T) {
	in := Profile{
		FullName:  "  Jane Doe ",
		Roles:     []string{" Backend ", "backend", "Platform"},
		Skills:    []string{"Go", "go ", "SQL"},
		Locations: []string{"Remote"},
	}

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if out.FullName != "Jane Doe" {
		t.Errorf("FullName = %q, want %q", out.FullName, "Jane Doe")
	}
	if want := []string{"Backend", "Platform"}; !reflect.DeepEqual(out.Roles, want) {
		t.Errorf("Roles = %v, want %v (first spelling kept)", out.Roles, want)
	}
	if want := []string{"Go", "SQL"}; !reflect.DeepEqual(out.Skills, want) {
		t.Errorf("Skills = %v, want %v", out.Skills, want)
	}
}

func TestNormalize_RejectsEmptyEntries(t *testing.T) {
	cases := []Profile{
		{Roles: []string{"backend", ""}},
		{Skills: []string{"   "}},
		{Locations: []string{"remote", "\t"}},
		{BadKeywords: []string{""}},
	}

	for i, in := range cases {
		if _, err := Normalize(in); !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("case %d: Normalize() error = %v, want ErrInvalidEntry", i, err)
		}
	}
}

func TestNormalize_RejectsNegativeWeights(t *testing.T) {
	in := Profile{
		Skills:  []string{"go"},
		Weights: Weights{Skill: -1},
	}

	if _, err := Normalize(in); err == nil {
		t.Fatalf("Normalize() accepted a negative weight")
	}
}

func TestNormalize_ZeroWeightsAreValid(t *testing.T) {
	out, err := Normalize(Profile{Skills: []string{"go"}})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out.Weights != (Weights{}) {
		t.Errorf("zero weights must pass through unchanged, got %+v", out.Weights)
	}
}

func TestDefault(t *testing.T) {
	d := Default()

	if len(d.Roles) != 0 || len(d.Skills) != 0 || len(d.Locations) != 0 || len(d.BadKeywords) != 0 {
		t.Fatalf("Default() must have empty term sets, got %+v", d)
	}
	if d.RemoteOnly {
		t.Errorf("Default() must not be remote-only")
	}
}
