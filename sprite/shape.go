// Package sprite rasterizes the particle silhouettes into opacity masks.
package sprite

import (
	"errors"
	"fmt"
	"strings"
)

// Shape selects one of the particle silhouettes.
type Shape uint8

const (
	Snowflake Shape = iota
	Circle
	Star
	Heart
	Petal
	numShapes
)

// ErrUnknownShape is returned when a shape name does not match any silhouette.
var ErrUnknownShape = errors.New("unknown shape")

var shapeNames = [numShapes]string{
	Snowflake: "snowflake",
	Circle:    "circle",
	Star:      "star",
	Heart:     "heart",
	Petal:     "petal",
}

// String returns the lower-case shape name.
func (s Shape) String() string {
	if s < numShapes {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Label returns the display name used by the UI.
func (s Shape) Label() string {
	name := s.String()
	if !s.Valid() {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Valid reports whether s is one of the defined silhouettes.
func (s Shape) Valid() bool {
	return s < numShapes
}

// Shapes returns every defined shape in display order.
func Shapes() []Shape {
	out := make([]Shape, numShapes)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

// ParseShape parses a case-insensitive shape name.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range shapeNames {
		if s == n {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
