package cpdraw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakecoffman/cp/v2"
)

// Flags selects what DrawSpace renders.
type Flags uint

// The first three share their bit values with cp's DRAW_* constants so a
// Flags value can be handed to cp.DrawSpace unchanged.
const (
	DrawShapes          Flags = cp.DRAW_SHAPES
	DrawConstraints     Flags = cp.DRAW_CONSTRAINTS
	DrawCollisionPoints Flags = cp.DRAW_COLLISION_POINTS
	DrawAABB            Flags = 1 << 3
	DrawPairs           Flags = 1 << 4
	DrawCenterOfMass    Flags = 1 << 5

	DrawAll = DrawShapes | DrawConstraints | DrawCollisionPoints | DrawAABB | DrawPairs | DrawCenterOfMass
)

// DefaultFlags matches what cp's own demos show.
const DefaultFlags = DrawShapes | DrawConstraints | DrawCollisionPoints

var ErrUnknownFlag = errors.New("cpdraw: unknown draw flag")

var flagNames = []struct {
	flag Flags
	name string
}{
	{DrawShapes, "shapes"},
	{DrawConstraints, "constraints"},
	{DrawCollisionPoints, "collisions"},
	{DrawAABB, "aabb"},
	{DrawPairs, "pairs"},
	{DrawCenterOfMass, "centers"},
}

// ParseFlags parses a comma separated list of flag names such as
// "shapes,aabb". "all" and "none" are accepted, as is the empty string.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, field := range strings.Split(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		switch field {
		case "", "none":
			continue
		case "all":
			f |= DrawAll
			continue
		case "joints":
			field = "constraints"
		}
		found := false
		for _, fn := range flagNames {
			if fn.name == field {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, field)
		}
	}
	return f, nil
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Flags(%d)", uint(f))
	}
	return strings.Join(names, ",")
}
