package glide

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Plane selects the two coordinates a 3D point is projected onto for 2D
// output.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// Project returns the two coordinates of pt that lie in the plane.
func (pl Plane) Project(pt Point) (float64, float64) {
	switch pl {
	case PlaneXZ:
		return pt.X, pt.Z
	case PlaneYZ:
		return pt.Y, pt.Z
	default:
		return pt.X, pt.Y
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// The plane to project points onto.
	Plane Plane
}

// SVG converts a curve to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(c Curve, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, c, opts)
	return sb.String()
}

// WriteSVG converts a curve to a string of SVG path commands and writes it
// to w. The curve is projected onto opts.Plane and written as a single
// polyline. Empty curves produce no output.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, c Curve, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	for i, pt := range c {
		x, y := opts.Plane.Project(pt)
		switch i {
		case 0:
			writef("M%s,%s", format(x), format(y))
		default:
			writef(" L%s,%s", format(x), format(y))
		}
	}
	return err
}
