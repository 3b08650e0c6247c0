package spatialmath

import (
	"encoding/json"
	"reflect"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/mat"
)

// FromIter builds a geometry of type T from any ordered sequence of numbers. It is the generic
// form of Point2DFromIter, Point3DFromIter, RectangleFromIter and CuboidFromIter.
func FromIter[T Geometry](values interface{}) (T, error) {
	var zero T
	var built Geometry
	var err error
	switch any(zero).(type) {
	case Point2D:
		built, err = Point2DFromIter(values)
	case Point3D:
		built, err = Point3DFromIter(values)
	case Rectangle:
		built, err = RectangleFromIter(values)
	case Cuboid:
		built, err = CuboidFromIter(values)
	default:
		return zero, newUnsupportedTargetError(reflect.TypeOf((*T)(nil)).Elem().Name())
	}
	if err != nil {
		return zero, err
	}
	return built.(T), nil
}

// valuesFor flattens values and checks that there are exactly `want` of them.
func valuesFor(typ string, want int, values interface{}) ([]float64, error) {
	flat, err := flatten(typ, want, values)
	if err != nil {
		return nil, err
	}
	if len(flat) != want {
		return nil, newArityError(typ, want, len(flat))
	}
	return flat, nil
}

// flatten turns values into a flat slice of float64. Accepted inputs are slices and arrays of any
// numeric kind (nested slices are flattened in order), gonum matrices (flattened row-major),
// golang/geo vectors and other geometries.
func flatten(typ string, want int, values interface{}) ([]float64, error) {
	if rv := reflect.ValueOf(values); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil, newArityError(typ, want, 0)
	}
	switch v := values.(type) {
	case nil:
		return nil, newArityError(typ, want, 0)
	case []float64:
		out := make([]float64, len(v))
		copy(out, v)
		return out, nil
	case Geometry:
		return v.Values(), nil
	case r3.Vector:
		return []float64{v.X, v.Y, v.Z}, nil
	case r2.Point:
		return []float64{v.X, v.Y}, nil
	case mat.Matrix:
		rows, cols := v.Dims()
		out := make([]float64, 0, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out = append(out, v.At(i, j))
			}
		}
		return out, nil
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, newNonNumericError(typ, want, 0, values)
	}
	out := make([]float64, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if !elem.IsValid() {
			return nil, newNonNumericError(typ, want, len(out), nil)
		}
		if g, ok := elem.Interface().(Geometry); ok {
			out = append(out, g.Values()...)
			continue
		}
		switch elem.Kind() {
		case reflect.Slice, reflect.Array:
			nested, err := flatten(typ, want, elem.Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
			continue
		}
		f, ok := toFloat(elem)
		if !ok {
			return nil, newNonNumericError(typ, want, len(out), elem.Interface())
		}
		out = append(out, f)
	}
	return out, nil
}

var float64Type = reflect.TypeOf(float64(0))

// toFloat converts a numeric scalar, including named numeric types, to float64. Strings and
// booleans are not numbers even though they could be parsed as such; json.Number is the one
// string-kinded type accepted.
func toFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return v.Convert(float64Type).Float(), true
	case reflect.String:
		if n, ok := v.Interface().(json.Number); ok {
			f, err := cast.ToFloat64E(n)
			return f, err == nil
		}
	}
	return 0, false
}
