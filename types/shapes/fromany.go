package shapes

import (
	"reflect"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// FromAnyValue returns the static shape of a Go scalar of a supported dtype, or of a (multi-level) slice
// of them. All the sub-slices at the same level must have the same length, and none can be empty.
//
// Example:
//
//	shape, err := shapes.FromAnyValue([][]float64{{0, 0}}) // (Float64)[1 2]
func FromAnyValue(v any) (Shape, error) {
	if v == nil {
		return Invalid(), errors.New("cannot derive a shape from a nil value")
	}
	dtype, dims, err := goValueDims(reflect.ValueOf(v))
	if err != nil {
		return Invalid(), errors.WithMessagef(err, "shape of %T", v)
	}
	return Make(dtype, dims...), nil
}

// goValueDims returns the element type and the dimensions of v, checking that the sub-slices are regular.
func goValueDims(v reflect.Value) (dtypes.DType, []int, error) {
	if v.Kind() != reflect.Slice {
		dtype := dtypes.FromGoType(v.Type())
		if dtype == dtypes.InvalidDType {
			return dtypes.InvalidDType, nil, errors.Errorf("Go type %s has no corresponding dtype", v.Type())
		}
		return dtype, nil, nil
	}
	if v.Len() == 0 {
		return dtypes.InvalidDType, nil, errors.Errorf("empty slice %s, the inner dimensions are undefined", v.Type())
	}
	dtype, inner, err := goValueDims(v.Index(0))
	if err != nil {
		return dtypes.InvalidDType, nil, err
	}
	for ii := 1; ii < v.Len(); ii++ {
		_, other, err := goValueDims(v.Index(ii))
		if err != nil {
			return dtypes.InvalidDType, nil, err
		}
		if !slices.Equal(inner, other) {
			return dtypes.InvalidDType, nil, errors.Errorf("irregular sub-slices: element #0 has dimensions %v, element #%d has %v",
				inner, ii, other)
		}
	}
	return dtype, append([]int{v.Len()}, inner...), nil
}
