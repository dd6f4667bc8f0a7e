package genart

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// ShapeKind identifies one of the shape generators.
type ShapeKind int

const (
	// ShapeBox is a rectangle outline drawn by DrawBox.
	ShapeBox ShapeKind = iota
	// ShapeCircle is a full circle drawn by DrawCircle.
	ShapeCircle
	// ShapeSlice is a short wedge or arc drawn by DrawSlice.
	ShapeSlice

	shapeKindCount
)

var shapeKindNames = [shapeKindCount]string{"box", "circle", "slice"}

// String returns the lowercase name of the kind.
func (k ShapeKind) String() string {
	if k < 0 || k >= shapeKindCount {
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
	return shapeKindNames[k]
}

// ParseShapeKind converts a name such as "slice" into a ShapeKind.
func ParseShapeKind(s string) (ShapeKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range shapeKindNames {
		if name == s {
			return ShapeKind(i), nil
		}
	}
	return 0, fmt.Errorf("genart: unknown shape kind %q", s)
}

// Weights are the relative odds of each shape kind being drawn.
type Weights struct {
	Box    int `mapstructure:"box" json:"box"`
	Circle int `mapstructure:"circle" json:"circle"`
	Slice  int `mapstructure:"slice" json:"slice"`
}

// DefaultWeights is the 5:20:75 box:circle:slice mix.
var DefaultWeights = Weights{Box: 5, Circle: 20, Slice: 75}

// Total returns the size of the weighted population.
func (w Weights) Total() int {
	return w.Box + w.Circle + w.Slice
}

// Validate rejects negative weights and an empty population.
func (w Weights) Validate() error {
	if w.Box < 0 || w.Circle < 0 || w.Slice < 0 {
		return fmt.Errorf("%w: negative weight in %+v", ErrInvalidWeights, w)
	}
	if w.Total() == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}
	return nil
}

// Pick draws one kind. It is equivalent to choosing uniformly from a
// population holding Box box tokens, Circle circle tokens and Slice slice
// tokens. w must be valid.
func (w Weights) Pick(rng *rand.Rand) ShapeKind {
	n := rng.IntN(w.Total())
	switch {
	case n < w.Box:
		return ShapeBox
	case n < w.Box+w.Circle:
		return ShapeCircle
	default:
		return ShapeSlice
	}
}

// ShapeCounts tallies how many shapes of each kind were drawn.
type ShapeCounts [shapeKindCount]int

// Total returns the number of shapes drawn.
func (c ShapeCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Add accumulates other into c.
func (c *ShapeCounts) Add(other ShapeCounts) {
	for i, v := range other {
		c[i] += v
	}
}
