package knot

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when parsing the name of a knot type that
// doesn't exist.
var ErrUnknownKind = errors.New("unknown knot type")

// Kind identifies a knot topology.
type Kind int

const (
	KindTrefoil Kind = iota
	KindFigureEight
	KindSquare
	KindGranny
	KindFrictional
)

// Kinds lists all knot types, in declaration order.
var Kinds = [...]Kind{KindTrefoil, KindFigureEight, KindSquare, KindGranny, KindFrictional}

var kindNames = [...]string{
	KindTrefoil:     "trefoil",
	KindFigureEight: "figure-eight",
	KindSquare:      "square",
	KindGranny:      "granny",
	KindFrictional:  "frictional",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the knot type with the given name. Matching ignores case,
// spaces, hyphens, and underscores, so "Figure Eight", "figure_eight", and
// "figure-eight" are equivalent.
func ParseKind(s string) (Kind, error) {
	norm := func(s string) string {
		return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	}
	want := norm(s)
	for _, k := range Kinds {
		if norm(kindNames[k]) == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
