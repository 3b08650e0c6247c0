// Package spatialmath defines the immutable geometric value types that describe a static world:
// 2D and 3D points, and the axis-aligned rectangles and cuboids spanned by them.
//
// Every type has a fixed number of float64 fields, so arity and field type are checked by the
// compiler for direct construction. Construction from loosely typed input (slices, arrays,
// gonum matrices, vectors) goes through the FromIter family, which validates once at the boundary
// and returns a *TypeValidationError on failure.
package spatialmath

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/floats"
)

// Geometry is the capability shared by every value type in this package: ordered decomposition
// into plain numbers. The unexported method closes the set of implementations.
type Geometry interface {
	fmt.Stringer
	// Values returns the fields in declaration order.
	Values() []float64
	// Arity is the number of fields of the type.
	Arity() int
	isGeometry()
}

// Point is a Point2D or a Point3D.
type Point interface {
	Geometry
	isPoint()
}

// Shape is a Rectangle or a Cuboid.
type Shape interface {
	Geometry
	// Corners returns the min and max corners of the shape, in that order.
	Corners() (Point, Point)
	// IsOrdered reports whether every min bound is less than or equal to its max bound.
	// Shapes are never rejected for being unordered.
	IsOrdered() bool
}

// GeometriesAlmostEqual returns true if a and b are the same variant and their fields are
// within epsilon of each other.
func GeometriesAlmostEqual(a, b Geometry, epsilon float64) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return floats.EqualApprox(a.Values(), b.Values(), epsilon)
}

// typeName returns the short name of a geometry type, used in error messages.
func typeName(g Geometry) string {
	switch g.(type) {
	case Point2D:
		return "Point2D"
	case Point3D:
		return "Point3D"
	case Rectangle:
		return "Rectangle"
	case Cuboid:
		return "Cuboid"
	default:
		return fmt.Sprintf("%T", g)
	}
}

// fieldNames lists the field names of each variant in declaration order.
var fieldNames = map[string][]string{
	"Point2D":   {"x", "y"},
	"Point3D":   {"x", "y", "z"},
	"Rectangle": {"x_min", "y_min", "x_max", "y_max"},
	"Cuboid":    {"x_min", "y_min", "z_min", "x_max", "y_max", "z_max"},
}
