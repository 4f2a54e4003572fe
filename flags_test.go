package cpdraw

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		in   string
		want Flags
		err  error
	}{
		{"", 0, nil},
		{"none", 0, nil},
		{"shapes", DrawShapes, nil},
		{"shapes, AABB ,pairs", DrawShapes | DrawAABB | DrawPairs, nil},
		{"joints", DrawConstraints, nil},
		{"collisions,centers", DrawCollisionPoints | DrawCenterOfMass, nil},
		{"all", DrawAll, nil},
		{"shapes,bogus", 0, ErrUnknownFlag},
	}
	for _, tt := range tests {
		got, err := ParseFlags(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseFlags(%q) error = %v, want %v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlags(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFlags_String(t *testing.T) {
	tests := []struct {
		in   Flags
		want string
	}{
		{0, "none"},
		{DrawShapes, "shapes"},
		{DrawAll, "shapes,constraints,collisions,aabb,pairs,centers"},
		{1 << 9, "Flags(512)"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", uint(tt.in), got, tt.want)
		}
		if tt.in&DrawAll == tt.in {
			back, err := ParseFlags(tt.in.String())
			if err != nil || back != tt.in {
				t.Errorf("ParseFlags(%q) = %v, %v", tt.in.String(), back, err)
			}
		}
	}
}
