// Package shapearea computes the area of simple plane shapes.
//
// Two shapes are known: a square, measured by its width, and a circle,
// measured by its radius. Circle areas use the fixed constant [Pi] = 3.14159
// rather than [math.Pi], so printed results stay stable across platforms.
//
// # Usage
//
//	a := shapearea.Square(4)   // 16
//	c := shapearea.Circle(2)   // 12.56636
//
//	f, ok := shapearea.Lookup("circle")
//	if ok {
//		area := f(2)
//	}
//
// The shapearea command in cmd/shapearea is a thin CLI over this package.
package shapearea
