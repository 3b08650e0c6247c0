package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	commonpb "go.viam.com/api/common/v1"
)

// Point2D is a point in the plane.
type Point2D struct {
	X, Y float64
}

// Point3D is a point in space.
type Point3D struct {
	X, Y, Z float64
}

// NewPoint2D returns the point (x, y).
func NewPoint2D(x, y float64) Point2D {
	return Point2D{x, y}
}

// NewPoint3D returns the point (x, y, z).
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{x, y, z}
}

// Point2DFromIter builds a Point2D from any ordered sequence of exactly two numbers.
func Point2DFromIter(values interface{}) (Point2D, error) {
	vals, err := valuesFor("Point2D", 2, values)
	if err != nil {
		return Point2D{}, err
	}
	return Point2D{vals[0], vals[1]}, nil
}

// Point3DFromIter builds a Point3D from any ordered sequence of exactly three numbers.
func Point3DFromIter(values interface{}) (Point3D, error) {
	vals, err := valuesFor("Point3D", 3, values)
	if err != nil {
		return Point3D{}, err
	}
	return Point3D{vals[0], vals[1], vals[2]}, nil
}

// Point2DFromVector converts an r2.Point.
func Point2DFromVector(v r2.Point) Point2D {
	return Point2D{v.X, v.Y}
}

// Point3DFromVector converts an r3.Vector.
func Point3DFromVector(v r3.Vector) Point3D {
	return Point3D{v.X, v.Y, v.Z}
}

// Values returns (x, y).
func (p Point2D) Values() []float64 {
	return []float64{p.X, p.Y}
}

// Values returns (x, y, z).
func (p Point3D) Values() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// Arity is always 2.
func (p Point2D) Arity() int { return 2 }

// Arity is always 3.
func (p Point3D) Arity() int { return 3 }

// Vector returns the point as an r2.Point.
func (p Point2D) Vector() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Vector returns the point as an r3.Vector.
func (p Point3D) Vector() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// ToProtobuf converts the point to a Vector3 proto message.
func (p Point3D) ToProtobuf() *commonpb.Vector3 {
	return &commonpb.Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// Point3DFromProtobuf converts a Vector3 proto message. A nil message is the origin.
func Point3DFromProtobuf(v *commonpb.Vector3) Point3D {
	return Point3D{v.GetX(), v.GetY(), v.GetZ()}
}

func (p Point2D) String() string {
	return fmt.Sprintf("Point2D(X:%g, Y:%g)", p.X, p.Y)
}

func (p Point3D) String() string {
	return fmt.Sprintf("Point3D(X:%g, Y:%g, Z:%g)", p.X, p.Y, p.Z)
}

func (p Point2D) isGeometry() {}
func (p Point3D) isGeometry() {}
func (p Point2D) isPoint()    {}
func (p Point3D) isPoint()    {}
