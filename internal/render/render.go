// Package render draws curves into raster images for previews.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/glide"
)

// Layer is a curve and, optionally, the guides it was built from.
type Layer struct {
	Curve  glide.Curve
	Guides []glide.Point
}

// Options control how layers are drawn.
type Options struct {
	Width  int
	Height int
	// Margin is the number of pixels kept free around the drawing.
	Margin float64
	// StrokeWidth is the width of curves in pixels.
	StrokeWidth float64
	// GuideRadius is the radius of guide markers in pixels. Guides aren't
	// drawn if it is zero.
	GuideRadius float64
	Plane       glide.Plane

	Background color.Color
	Stroke     color.Color
	Guide      color.Color
}

// DefaultOptions returns options suitable for a quick preview.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Margin:      16,
		StrokeWidth: 2,
		GuideRadius: 3,
		Background:  color.White,
		Stroke:      color.Black,
		Guide:       color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff},
	}
}

// transform maps projected scene coordinates to pixel coordinates, fitting
// the bounds of all points into the image while keeping the aspect ratio.
// The scene's second axis points up, the image's down.
type transform struct {
	scale      float64
	minX, minY float64
	offX, offY float64
	height     float64
}

func fit(layers []Layer, opts Options) transform {
	bounds := glide.EmptyBox()
	for _, l := range layers {
		bounds = bounds.Union(l.Curve.BoundingBox()).Union(glide.BoundingBox(l.Guides))
	}
	if bounds.IsEmpty() {
		return transform{scale: 1, height: float64(opts.Height)}
	}
	minX, minY := opts.Plane.Project(bounds.Min)
	maxX, maxY := opts.Plane.Project(bounds.Max)

	w := float64(opts.Width) - 2*opts.Margin
	h := float64(opts.Height) - 2*opts.Margin
	dx, dy := maxX-minX, maxY-minY
	var scale float64
	switch {
	case dx == 0 && dy == 0:
		scale = 1
	case dx == 0:
		scale = h / dy
	case dy == 0:
		scale = w / dx
	default:
		scale = min(w/dx, h/dy)
	}
	return transform{
		scale:  scale,
		minX:   minX,
		minY:   minY,
		offX:   opts.Margin + (w-dx*scale)/2,
		offY:   opts.Margin + (h-dy*scale)/2,
		height: float64(opts.Height),
	}
}

func (tr transform) apply(plane glide.Plane, pt glide.Point) (float32, float32) {
	x, y := plane.Project(pt)
	px := tr.offX + (x-tr.minX)*tr.scale
	py := tr.height - (tr.offY + (y-tr.minY)*tr.scale)
	return float32(px), float32(py)
}

// Draw renders layers into a new image.
func Draw(layers []Layer, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	tr := fit(layers, opts)
	r := vector.NewRasterizer(opts.Width, opts.Height)
	for _, l := range layers {
		for seg := range l.Curve.Segments() {
			x0, y0 := tr.apply(opts.Plane, seg.P0)
			x1, y1 := tr.apply(opts.Plane, seg.P1)
			strokeSegment(r, x0, y0, x1, y1, float32(opts.StrokeWidth)/2)
		}
	}
	r.Draw(img, img.Bounds(), image.NewUniform(opts.Stroke), image.Point{})

	if opts.GuideRadius > 0 {
		r.Reset(opts.Width, opts.Height)
		for _, l := range layers {
			for _, pt := range l.Guides {
				x, y := tr.apply(opts.Plane, pt)
				dot(r, x, y, float32(opts.GuideRadius))
			}
		}
		r.Draw(img, img.Bounds(), image.NewUniform(opts.Guide), image.Point{})
	}
	return img
}

// strokeSegment adds a rectangle of half width hw around a line segment.
// All rectangles share the same winding so that overlaps at joins don't
// cancel out.
func strokeSegment(r *vector.Rasterizer, x0, y0, x1, y1, hw float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}

// dot adds a circle approximated by a polygon.
func dot(r *vector.Rasterizer, x, y, radius float32) {
	const n = 16
	for i := range n {
		s, c := math.Sincos(2 * math.Pi * float64(i) / n)
		px, py := x+radius*float32(c), y+radius*float32(s)
		if i == 0 {
			r.MoveTo(px, py)
		} else {
			r.LineTo(px, py)
		}
	}
	r.ClosePath()
}

// PNG renders layers and writes them to w as a PNG image.
func PNG(w io.Writer, layers []Layer, opts Options) error {
	return png.Encode(w, Draw(layers, opts))
}
