package spatialmath

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestValidPoint2D(t *testing.T) {
	validInputs := [][2]float64{{1, 2}, {1.0, 2}, {1.5, -2.25}}
	for _, input := range validInputs {
		direct := Point2D{input[0], input[1]}
		test.That(t, direct.Values(), test.ShouldResemble, input[:])

		fromSlice, err := Point2DFromIter(input[:])
		test.That(t, err, test.ShouldBeNil)
		test.That(t, fromSlice, test.ShouldResemble, direct)

		fromArray, err := Point2DFromIter(input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, fromArray, test.ShouldResemble, direct)

		fromVector, err := Point2DFromIter(r2.Point{X: input[0], Y: input[1]})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, fromVector, test.ShouldResemble, direct)
	}
}

func TestValidPoint3D(t *testing.T) {
	validInputs := []interface{}{
		[]int{1, 2, 3},
		[]interface{}{1.0, 2, 3},
		[]interface{}{float32(1), int64(2), uint8(3)},
		[3]float64{1, 2, 3},
	}
	for _, input := range validInputs {
		p, err := Point3DFromIter(input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, p, test.ShouldResemble, Point3D{1, 2, 3})
		test.That(t, p.Values(), test.ShouldResemble, []float64{1, 2, 3})
	}
}

func TestPointRoundTrip(t *testing.T) {
	p := NewPoint3D(0.1, -7, 1e6)
	again, err := Point3DFromIter(p.Values())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, again, test.ShouldResemble, p)

	again, err = Point3DFromIter(p)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, again, test.ShouldResemble, p)
}

func TestPointEqualityAndHashing(t *testing.T) {
	seen := map[Point3D]int{}
	seen[NewPoint3D(1, 2, 3)]++
	seen[Point3D{1, 2, 3}]++
	seen[Point3D{3, 2, 1}]++
	test.That(t, seen, test.ShouldHaveLength, 2)
	test.That(t, seen[Point3D{1, 2, 3}], test.ShouldResemble, 2)
}

func TestPointConversions(t *testing.T) {
	p := NewPoint3D(1, 2, 3)
	test.That(t, p.Vector(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, Point3DFromVector(p.Vector()), test.ShouldResemble, p)
	test.That(t, Point3DFromProtobuf(p.ToProtobuf()), test.ShouldResemble, p)
	test.That(t, Point3DFromProtobuf(nil), test.ShouldResemble, Point3D{})

	q := NewPoint2D(4, 5)
	test.That(t, q.Vector(), test.ShouldResemble, r2.Point{X: 4, Y: 5})
	test.That(t, Point2DFromVector(q.Vector()), test.ShouldResemble, q)
	test.That(t, q.String(), test.ShouldResemble, "Point2D(X:4, Y:5)")
	test.That(t, p.String(), test.ShouldResemble, "Point3D(X:1, Y:2, Z:3)")
}
