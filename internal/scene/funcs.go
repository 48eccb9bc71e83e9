package scene

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"

	"honnef.co/go/glide"
)

// vecType is the cty type of a position.
var vecType = cty.List(cty.Number)

// pointFromValue converts a list or tuple of three numbers to a point.
func pointFromValue(v cty.Value) (glide.Point, error) {
	v, err := convert.Convert(v, vecType)
	if err != nil {
		return glide.Point{}, err
	}
	if v.IsNull() {
		return glide.Point{}, errors.New("position must not be null")
	}
	if !v.IsWhollyKnown() {
		return glide.Point{}, errors.New("position must be known")
	}
	if n := v.LengthInt(); n != 3 {
		return glide.Point{}, fmt.Errorf("position must have 3 coordinates, got %d", n)
	}
	var xs []float64
	if err := gocty.FromCtyValue(v, &xs); err != nil {
		return glide.Point{}, err
	}
	return glide.Pt(xs[0], xs[1], xs[2]), nil
}

func valueFromPoint(pt glide.Point) cty.Value {
	return cty.ListVal([]cty.Value{
		cty.NumberFloatVal(pt.X),
		cty.NumberFloatVal(pt.Y),
		cty.NumberFloatVal(pt.Z),
	})
}

var vecFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "x", Type: cty.Number},
		{Name: "y", Type: cty.Number},
		{Name: "z", Type: cty.Number},
	},
	Type: function.StaticReturnType(vecType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.ListVal(args), nil
	},
})

// pointFunc returns a function of two positions.
func pointFunc(fn func(a, b glide.Point) glide.Point) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "a", Type: vecType},
			{Name: "b", Type: vecType},
		},
		Type: function.StaticReturnType(vecType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			a, err := pointFromValue(args[0])
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			b, err := pointFromValue(args[1])
			if err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			return valueFromPoint(fn(a, b)), nil
		},
	})
}

// EvalContext returns the context that scene expressions are evaluated in.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"origin": valueFromPoint(glide.Point{}),
		},
		Functions: map[string]function.Function{
			"vec": vecFunc,
			"add": pointFunc(func(a, b glide.Point) glide.Point {
				return a.Translate(glide.Vec3(b))
			}),
			"mid": pointFunc(glide.Point.Midpoint),
		},
	}
}
