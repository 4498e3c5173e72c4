package shapearea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{4, 16},
		{2.5, 6.25},
		{-3, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Square(tt.in), "Square(%v)", tt.in)
	}
}

func TestSquare_MatchesProduct(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{0.1, 0.3, 1.7, 123.456, 1e-8, 9999.99} {
		assert.Equal(t, x*x, Square(x), "Square(%v)", x)
	}
}

func TestCircle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, Circle(0))
	assert.InDelta(t, 12.56636, Circle(2), 1e-12)
	assert.InDelta(t, 3.14159, Circle(1), 1e-12)
}

func TestCircle_UsesTruncatedPi(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, math.Pi, Circle(1))
	for _, r := range []float64{0.5, 1, 2, 3.3, 10, 0.1} {
		assert.Equal(t, 3.14159*(r*r), Circle(r), "Circle(%v)", r)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	f, ok := Lookup("square")
	require.True(t, ok)
	assert.Equal(t, 16.0, f(4))

	f, ok = Lookup("circle")
	require.True(t, ok)
	assert.Equal(t, Circle(2), f(2))

	for _, name := range []string{"triangle", "", "Square", "CIRCLE", " square"} {
		_, ok := Lookup(name)
		assert.False(t, ok, "Lookup(%q)", name)
	}
}

func TestShapes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Shape{ShapeCircle, ShapeSquare}, Shapes())
}
