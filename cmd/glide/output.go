package main

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"honnef.co/go/glide"
	"honnef.co/go/glide/internal/cli"
	"honnef.co/go/glide/internal/render"
	"honnef.co/go/glide/internal/scene"
)

func write(w io.Writer, cfg *cli.Config, paths []*scene.Path) error {
	switch cfg.Format {
	case cli.FormatSVG:
		return writeSVG(w, cfg, paths)
	case cli.FormatPNG:
		return writePNG(w, cfg, paths)
	case cli.FormatAt:
		return writeAt(w, cfg, paths)
	case cli.FormatFollow:
		return writeFollow(w, cfg, paths)
	default:
		return writeSamples(w, paths)
	}
}

func writeSamples(w io.Writer, paths []*scene.Path) error {
	bw := bufio.NewWriter(w)
	for _, p := range paths {
		c, ok := p.Path.Curve()
		if !ok {
			fmt.Fprintf(bw, "# %s: no curve\n", p.Name)
			continue
		}
		fmt.Fprintf(bw, "# %s: %d samples, length %g\n", p.Name, len(c), c.Length())
		for _, pt := range c {
			fmt.Fprintf(bw, "%g %g %g\n", pt.X, pt.Y, pt.Z)
		}
	}
	return bw.Flush()
}

func writeAt(w io.Writer, cfg *cli.Config, paths []*scene.Path) error {
	bw := bufio.NewWriter(w)
	for _, p := range paths {
		if _, ok := p.Path.Curve(); !ok {
			fmt.Fprintf(bw, "%s: no curve\n", p.Name)
			continue
		}
		pos, facing := p.Path.PointAt(cfg.At)
		fmt.Fprintf(bw, "%s: position %s facing %s heading %s\n", p.Name, pos, facing, p.Path.Heading(cfg.At))
	}
	return bw.Flush()
}

func writeFollow(w io.Writer, cfg *cli.Config, paths []*scene.Path) error {
	bw := bufio.NewWriter(w)
	for _, p := range paths {
		f := p.Follower()
		for i := range cfg.Ticks {
			pos, _ := f.Tick(cfg.DT)
			fmt.Fprintf(bw, "%s %d %g %g %g\n", p.Name, i, pos.X, pos.Y, pos.Z)
		}
	}
	return bw.Flush()
}

func writeSVG(w io.Writer, cfg *cli.Config, paths []*scene.Path) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `<svg xmlns="http://www.w3.org/2000/svg">`)
	for _, p := range paths {
		c, ok := p.Path.Curve()
		if !ok {
			continue
		}
		fmt.Fprintf(bw, `<path id="%s" fill="none" stroke="black" d="`, html.EscapeString(p.Name))
		if err := glide.WriteSVG(bw, c, glide.SVGOptions{MaxPrecision: 4, Plane: cfg.Plane}); err != nil {
			return err
		}
		fmt.Fprintln(bw, `" />`)
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func writePNG(w io.Writer, cfg *cli.Config, paths []*scene.Path) error {
	opts := render.DefaultOptions()
	opts.Width = cfg.Width
	opts.Height = cfg.Height
	opts.Plane = cfg.Plane
	layers := make([]render.Layer, 0, len(paths))
	for _, p := range paths {
		c, _ := p.Path.Curve()
		layers = append(layers, render.Layer{Curve: c, Guides: p.Path.Positions()})
	}
	return render.PNG(w, layers, opts)
}
