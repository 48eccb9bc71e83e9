package scene

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"honnef.co/go/glide"
	"honnef.co/go/glide/internal/ctxlog"
)

// Scene is the set of paths defined by a document.
type Scene struct {
	Paths []*Path
}

// Path is a named path together with the settings for objects following it.
type Path struct {
	Name  string
	Path  *glide.Path
	Speed float64
	Mode  glide.FollowMode
	Range hcl.Range
}

// Follower returns a follower that moves along the path using its settings.
func (p *Path) Follower() *glide.Follower {
	return &glide.Follower{Track: p.Path, Speed: p.Speed, Mode: p.Mode}
}

// Lookup returns the path with the given name.
func (s *Scene) Lookup(name string) (*Path, bool) {
	for _, p := range s.Paths {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

type hclFile struct {
	Paths []*hclPath `hcl:"path,block"`
}

type hclPath struct {
	Name       string         `hcl:"name,label"`
	Resolution *int           `hcl:"resolution,optional"`
	Speed      *float64       `hcl:"speed,optional"`
	Mode       hcl.Expression `hcl:"mode,optional"`
	Guides     []*hclGuide    `hcl:"guide,block"`
	Body       hcl.Body       `hcl:",remain"`
}

type hclGuide struct {
	Position hcl.Expression `hcl:"position"`
	Order    *int           `hcl:"order,optional"`
}

// Load parses the scene file at filename.
func Load(ctx context.Context, filename string) (*Scene, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", filename, diags)
	}
	return decode(ctx, f, filename)
}

// Parse parses a scene from src. filename is only used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Scene, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", filename, diags)
	}
	return decode(ctx, f, filename)
}

func decode(ctx context.Context, f *hcl.File, filename string) (*Scene, error) {
	logger := ctxlog.FromContext(ctx)
	evalCtx := EvalContext()

	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, evalCtx, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scene file %s: %w", filename, diags)
	}

	var diags hcl.Diagnostics
	s := &Scene{}
	seen := map[string]*Path{}
	for _, hp := range parsed.Paths {
		p, pathDiags := newPath(hp, evalCtx)
		diags = append(diags, pathDiags...)
		if pathDiags.HasErrors() {
			continue
		}
		if prev, ok := seen[p.Name]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate path",
				Detail:   fmt.Sprintf("A path named %q was already defined at %s.", p.Name, prev.Range),
				Subject:  p.Range.Ptr(),
			})
			continue
		}
		seen[p.Name] = p
		s.Paths = append(s.Paths, p)

		if p.Path.Len() < 3 {
			logger.Info("Path has too few guides to form a curve.", "path", p.Name, "guides", p.Path.Len())
		}
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid scene file %s: %w", filename, diags)
	}

	logger.Debug("Scene loaded.", "file", filename, "paths", len(s.Paths))
	return s, nil
}

func newPath(hp *hclPath, evalCtx *hcl.EvalContext) (*Path, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	rng := hp.Body.MissingItemRange()
	p := &Path{
		Name:  hp.Name,
		Range: rng,
	}

	// Everything a path may contain has been decoded; anything left over is
	// unexpected.
	_, extraDiags := hp.Body.Content(&hcl.BodySchema{})
	diags = append(diags, extraDiags...)

	resolution := 0
	if hp.Resolution != nil {
		resolution = *hp.Resolution
		if resolution < glide.MinResolution || resolution > glide.MaxResolution {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid resolution",
				Detail: fmt.Sprintf("The 'resolution' attribute must be between %d and %d.",
					glide.MinResolution, glide.MaxResolution),
				Subject: &rng,
			})
		}
	}
	if hp.Speed != nil {
		p.Speed = *hp.Speed
	}

	mode, modeDiags := decodeMode(hp.Mode, evalCtx)
	diags = append(diags, modeDiags...)
	p.Mode = mode

	guides := make([]*glide.Guide, 0, len(hp.Guides))
	for i, hg := range hp.Guides {
		val, valDiags := hg.Position.Value(evalCtx)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		pt, err := pointFromValue(val)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid guide position",
				Detail:   fmt.Sprintf("The 'position' attribute must be a list of three numbers: %s.", err),
				Subject:  hg.Position.Range().Ptr(),
			})
			continue
		}
		g := glide.NewGuide(pt)
		if hg.Order != nil {
			g.SetOrder(*hg.Order)
		} else {
			g.SetOrder(i)
		}
		guides = append(guides, g)
	}
	if diags.HasErrors() {
		return nil, diags
	}

	p.Path = glide.NewPath(resolution, guides...)
	return p, diags
}

func decodeMode(expr hcl.Expression, evalCtx *hcl.EvalContext) (glide.FollowMode, hcl.Diagnostics) {
	if expr == nil {
		return glide.Once, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() || val.IsNull() {
		return glide.Once, diags
	}
	if val.Type() == cty.String && val.IsKnown() {
		switch val.AsString() {
		case "once":
			return glide.Once, diags
		case "loop":
			return glide.Loop, diags
		case "pingpong":
			return glide.PingPong, diags
		}
	}
	diags = append(diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid follow mode",
		Detail:   "The 'mode' attribute must be one of \"once\", \"loop\" or \"pingpong\".",
		Subject:  expr.Range().Ptr(),
	})
	return glide.Once, diags
}
