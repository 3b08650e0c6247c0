package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	commonpb "go.viam.com/api/common/v1"
)

// Rectangle is an axis-aligned rectangle given by its min and max corners.
// Nothing requires the min corner to be below the max corner; see IsOrdered.
type Rectangle struct {
	XMin, YMin, XMax, YMax float64
}

// Cuboid is an axis-aligned box given by its min and max corners.
// Nothing requires the min corner to be below the max corner; see IsOrdered.
type Cuboid struct {
	XMin, YMin, ZMin, XMax, YMax, ZMax float64
}

// NewRectangle returns the rectangle with the given bounds.
func NewRectangle(xMin, yMin, xMax, yMax float64) Rectangle {
	return Rectangle{xMin, yMin, xMax, yMax}
}

// NewCuboid returns the cuboid with the given bounds.
func NewCuboid(xMin, yMin, zMin, xMax, yMax, zMax float64) Cuboid {
	return Cuboid{xMin, yMin, zMin, xMax, yMax, zMax}
}

// RectangleFromIter builds a Rectangle from any ordered sequence of exactly four numbers.
func RectangleFromIter(values interface{}) (Rectangle, error) {
	vals, err := valuesFor("Rectangle", 4, values)
	if err != nil {
		return Rectangle{}, err
	}
	return Rectangle{vals[0], vals[1], vals[2], vals[3]}, nil
}

// CuboidFromIter builds a Cuboid from any ordered sequence of exactly six numbers.
func CuboidFromIter(values interface{}) (Cuboid, error) {
	vals, err := valuesFor("Cuboid", 6, values)
	if err != nil {
		return Cuboid{}, err
	}
	return Cuboid{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]}, nil
}

// RectangleFromPoints concatenates two points: p1 supplies the min bounds and p2 the max bounds.
// The caller is responsible for their order.
func RectangleFromPoints(p1, p2 Point2D) Rectangle {
	return Rectangle{p1.X, p1.Y, p2.X, p2.Y}
}

// CuboidFromPoints concatenates two points: p1 supplies the min bounds and p2 the max bounds.
// The caller is responsible for their order.
func CuboidFromPoints(p1, p2 Point3D) Cuboid {
	return Cuboid{p1.X, p1.Y, p1.Z, p2.X, p2.Y, p2.Z}
}

// ShapeFromPoints is the dynamic form of RectangleFromPoints and CuboidFromPoints. Both points
// must be of the same variant.
func ShapeFromPoints(p1, p2 Point) (Shape, error) {
	switch first := p1.(type) {
	case Point2D:
		second, ok := p2.(Point2D)
		if !ok {
			return nil, newPointMismatchError("Rectangle", p2)
		}
		return RectangleFromPoints(first, second), nil
	case Point3D:
		second, ok := p2.(Point3D)
		if !ok {
			return nil, newPointMismatchError("Cuboid", p2)
		}
		return CuboidFromPoints(first, second), nil
	default:
		return nil, newPointMismatchError("Shape", p1)
	}
}

// Min returns the min corner.
func (r Rectangle) Min() Point2D { return Point2D{r.XMin, r.YMin} }

// Max returns the max corner.
func (r Rectangle) Max() Point2D { return Point2D{r.XMax, r.YMax} }

// Min returns the min corner.
func (c Cuboid) Min() Point3D { return Point3D{c.XMin, c.YMin, c.ZMin} }

// Max returns the max corner.
func (c Cuboid) Max() Point3D { return Point3D{c.XMax, c.YMax, c.ZMax} }

// Corners returns the min and max corners.
func (r Rectangle) Corners() (Point, Point) { return r.Min(), r.Max() }

// Corners returns the min and max corners.
func (c Cuboid) Corners() (Point, Point) { return c.Min(), c.Max() }

// IsOrdered reports whether min <= max on both axes.
func (r Rectangle) IsOrdered() bool {
	return r.XMin <= r.XMax && r.YMin <= r.YMax
}

// IsOrdered reports whether min <= max on all three axes.
func (c Cuboid) IsOrdered() bool {
	return c.XMin <= c.XMax && c.YMin <= c.YMax && c.ZMin <= c.ZMax
}

// Values returns (x_min, y_min, x_max, y_max).
func (r Rectangle) Values() []float64 {
	return []float64{r.XMin, r.YMin, r.XMax, r.YMax}
}

// Values returns (x_min, y_min, z_min, x_max, y_max, z_max).
func (c Cuboid) Values() []float64 {
	return []float64{c.XMin, c.YMin, c.ZMin, c.XMax, c.YMax, c.ZMax}
}

// Arity is always 4.
func (r Rectangle) Arity() int { return 4 }

// Arity is always 6.
func (c Cuboid) Arity() int { return 6 }

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() r2.Point {
	return r.Min().Vector().Add(r.Max().Vector()).Mul(0.5)
}

// Center returns the midpoint of the cuboid.
func (c Cuboid) Center() r3.Vector {
	return c.Min().Vector().Add(c.Max().Vector()).Mul(0.5)
}

// Dims returns the edge lengths of the cuboid. Unordered bounds still give positive lengths.
func (c Cuboid) Dims() r3.Vector {
	return c.Max().Vector().Sub(c.Min().Vector()).Abs()
}

// Contains reports whether p lies inside or on the surface of the cuboid.
func (c Cuboid) Contains(p Point3D) bool {
	lo := c.Min().Vector()
	hi := c.Max().Vector()
	return p.X >= math.Min(lo.X, hi.X) && p.X <= math.Max(lo.X, hi.X) &&
		p.Y >= math.Min(lo.Y, hi.Y) && p.Y <= math.Max(lo.Y, hi.Y) &&
		p.Z >= math.Min(lo.Z, hi.Z) && p.Z <= math.Max(lo.Z, hi.Z)
}

// ToProtobuf converts the cuboid to a box Geometry proto message centered on the cuboid with
// the identity orientation.
func (c Cuboid) ToProtobuf(label string) *commonpb.Geometry {
	center := c.Center()
	dims := c.Dims()
	return &commonpb.Geometry{
		Center: &commonpb.Pose{X: center.X, Y: center.Y, Z: center.Z, OZ: 1},
		GeometryType: &commonpb.Geometry_Box{
			Box: &commonpb.RectangularPrism{DimsMm: &commonpb.Vector3{
				X: dims.X,
				Y: dims.Y,
				Z: dims.Z,
			}},
		},
		Label: label,
	}
}

// CuboidFromProtobuf converts a box Geometry proto message back into a Cuboid. Only boxes with
// the identity orientation are axis-aligned, so any other orientation is rejected.
func CuboidFromProtobuf(geom *commonpb.Geometry) (Cuboid, error) {
	box := geom.GetBox()
	if box == nil {
		return Cuboid{}, errors.Errorf("geometry %q is not a box", geom.GetLabel())
	}
	pose := geom.GetCenter()
	if pose.GetTheta() != 0 || pose.GetOX() != 0 || pose.GetOY() != 0 {
		return Cuboid{}, errors.Errorf("box %q is not axis-aligned", geom.GetLabel())
	}
	center := r3.Vector{X: pose.GetX(), Y: pose.GetY(), Z: pose.GetZ()}
	half := r3.Vector{X: box.GetDimsMm().GetX(), Y: box.GetDimsMm().GetY(), Z: box.GetDimsMm().GetZ()}.Mul(0.5)
	return CuboidFromPoints(Point3DFromVector(center.Sub(half)), Point3DFromVector(center.Add(half))), nil
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(Min:(%g, %g), Max:(%g, %g))", r.XMin, r.YMin, r.XMax, r.YMax)
}

func (c Cuboid) String() string {
	return fmt.Sprintf("Cuboid(Min:(%g, %g, %g), Max:(%g, %g, %g))", c.XMin, c.YMin, c.ZMin, c.XMax, c.YMax, c.ZMax)
}

func (r Rectangle) isGeometry() {}
func (c Cuboid) isGeometry()    {}
