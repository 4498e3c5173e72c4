package shapearea

import "sort"

// Pi is the truncated constant used for circle areas.
const Pi = 3.14159

// Shape names a known shape.
type Shape string

const (
	// ShapeSquare is measured by its width.
	ShapeSquare Shape = "square"
	// ShapeCircle is measured by its radius.
	ShapeCircle Shape = "circle"
)

// Formula maps a measurement (width or radius) to an area.
type Formula func(float64) float64

var formulas = map[Shape]Formula{
	ShapeSquare: Square,
	ShapeCircle: Circle,
}

// Square returns the area of a square of width x.
func Square(x float64) float64 {
	return x * x
}

// Circle returns the area of a circle of radius r.
func Circle(r float64) float64 {
	// r*r first: Pi*r*r rounds differently.
	return Pi * (r * r)
}

// Lookup returns the formula for name. Matching is exact and case-sensitive.
func Lookup(name string) (Formula, bool) {
	f, ok := formulas[Shape(name)]
	return f, ok
}

// Shapes returns the known shapes sorted by name.
func Shapes() []Shape {
	out := make([]Shape, 0, len(formulas))
	for s := range formulas {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
