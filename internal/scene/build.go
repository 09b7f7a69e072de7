// internal/scene/build.go
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"go-canvas-shapes/internal/config"
	"go-canvas-shapes/internal/defs"
	"go-canvas-shapes/internal/utils"
	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
	"go-canvas-shapes/pkg/shape"
)

// ErrUnsupported is returned when a behaviour does not fit the shape it
// is attached to, e.g. bounce on a grid.
var ErrUnsupported = errors.New("behavior not supported by shape")

// Options controls how a definition is turned into a scene.
type Options struct {
	Width, Height float64
	// AssetDir is prepended to relative image paths.
	AssetDir string
	Dark     bool
}

// Build instantiates every shape and spawn group of def.
func Build(def *defs.SceneDefinition, rng *utils.PRNGService, opts Options) (*Scene, error) {
	bg, err := background(def.Background, opts.Dark)
	if err != nil {
		return nil, err
	}
	sc := New(bg)
	b := builder{rng: rng, opts: opts}
	for i, sd := range def.Shapes {
		e, err := b.entity(sd)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, sd.Kind, err)
		}
		e.Name = fmt.Sprintf("%s#%d", sd.Kind, i)
		sc.Entities = append(sc.Entities, e)
		if ps, ok := e.Shape.(*shape.ParticleSystem); ok && sc.Emitter == nil {
			sc.Emitter = ps
		}
	}
	for gi, g := range def.Spawns {
		for n := 0; n < g.Count; n++ {
			sd, err := b.spawn(g)
			if err != nil {
				return nil, fmt.Errorf("spawn group %d: %w", gi, err)
			}
			e, err := b.entity(sd)
			if err != nil {
				return nil, fmt.Errorf("spawn group %d (%s): %w", gi, sd.Kind, err)
			}
			e.Name = fmt.Sprintf("spawn%d/%s#%d", gi, sd.Kind, n)
			sc.Entities = append(sc.Entities, e)
		}
	}
	return sc, nil
}

// Background resolves the theme colour of a scene definition.
func Background(def *defs.SceneDefinition, dark bool) (render.RGBA, error) {
	return background(def.Background, dark)
}

func background(bd defs.BackgroundDefinition, dark bool) (render.RGBA, error) {
	s, fallback := bd.Light, config.LightBackground
	if dark {
		s, fallback = bd.Dark, config.DarkBackground
	}
	if s == "" {
		return render.FromColor(fallback), nil
	}
	c, err := render.ParseColor(s)
	if err != nil {
		return render.RGBA{}, fmt.Errorf("background: %w", err)
	}
	return c, nil
}

type builder struct {
	rng  *utils.PRNGService
	opts Options
}

func (b *builder) entity(sd defs.ShapeDefinition) (*Entity, error) {
	d, err := b.shape(sd)
	if err != nil {
		return nil, err
	}
	e := &Entity{Shape: d}
	for _, bd := range sd.Behaviors {
		if err := b.attach(e, bd, sd); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func paintOf(s string) (render.Paint, error) {
	if s == "" {
		return nil, nil
	}
	c, err := render.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return render.SolidColor(c), nil
}

func styleOf(sd defs.ShapeDefinition) (shape.Style, error) {
	var st shape.Style
	var err error
	if st.Fill, err = paintOf(sd.Fill); err != nil {
		return st, fmt.Errorf("fill: %w", err)
	}
	if st.Stroke, err = paintOf(sd.Stroke); err != nil {
		return st, fmt.Errorf("stroke: %w", err)
	}
	if st.Highlight, err = paintOf(sd.Highlight); err != nil {
		return st, fmt.Errorf("highlight: %w", err)
	}
	st.LineWidth = sd.LineWidth
	if sd.Shadow != nil {
		if st.Shadow, err = shadowOf(*sd.Shadow); err != nil {
			return st, err
		}
	}
	return st, nil
}

func shadowOf(sh defs.ShadowDefinition) (render.Shadow, error) {
	c, err := render.ParseColor(sh.Color)
	if err != nil {
		return render.Shadow{}, fmt.Errorf("shadow: %w", err)
	}
	return render.Shadow{Color: c, Blur: sh.Blur, OffsetX: sh.OffsetX, OffsetY: sh.OffsetY}, nil
}

func segmentsOf(raw []defs.SegmentDefinition) ([]shape.Segment, error) {
	segs := make([]shape.Segment, len(raw))
	for i, sd := range raw {
		segs[i] = shape.Segment{To: geom.Pt(sd.To[0], sd.To[1]), LineWidth: sd.LineWidth}
		var err error
		if segs[i].Stroke, err = paintOf(sd.Color); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if sd.Shadow != nil {
			sh, err := shadowOf(*sd.Shadow)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			segs[i].Shadow = &sh
		}
	}
	return segs, nil
}

func colorOf(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	return render.ParseColor(s)
}

func stopsOf(sd defs.ShapeDefinition) ([]render.ColorStop, error) {
	stops := make([]render.ColorStop, 0, len(sd.Stops))
	for _, s := range sd.Stops {
		c, err := render.ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("gradient stop: %w", err)
		}
		stops = append(stops, render.ColorStop{Offset: s.Offset, Color: c})
	}
	return stops, nil
}

func pointsOf(raw [][2]float64) []geom.Point {
	pts := make([]geom.Point, len(raw))
	for i, p := range raw {
		pts[i] = geom.Pt(p[0], p[1])
	}
	return pts
}

func velocityOf(sd defs.ShapeDefinition) *geom.Point {
	if sd.Velocity == nil {
		return nil
	}
	v := geom.Pt(sd.Velocity[0], sd.Velocity[1])
	return &v
}

func alignOf(s string) render.TextAlign {
	a := render.TextAlign{Vertical: render.BaselineMiddle}
	switch s {
	case "center":
		a.Horizontal = render.AlignCenter
	case "right":
		a.Horizontal = render.AlignRight
	}
	return a
}

func (b *builder) rect(sd defs.ShapeDefinition) geom.Rect {
	w, h := sd.Width, sd.Height
	if w == 0 {
		w = b.opts.Width - sd.X
	}
	if h == 0 {
		h = b.opts.Height - sd.Y
	}
	return geom.Rect{X: sd.X, Y: sd.Y, W: w, H: h}
}

func (b *builder) shape(sd defs.ShapeDefinition) (shape.Drawable, error) {
	st, err := styleOf(sd)
	if err != nil {
		return nil, err
	}
	vel := velocityOf(sd)
	switch sd.Kind {
	case defs.KindCircle:
		return shape.NewCircle(shape.CircleOptions{X: sd.X, Y: sd.Y, Radius: sd.Radius,
			StartAngle: sd.StartAngle, EndAngle: sd.EndAngle, Style: st, Velocity: vel})
	case defs.KindRing:
		return shape.NewRing(shape.RingOptions{X: sd.X, Y: sd.Y, Radius: sd.Radius,
			Thickness: sd.Thickness, Style: st, Velocity: vel})
	case defs.KindPolygon:
		return shape.NewPolygon(shape.PolygonOptions{X: sd.X, Y: sd.Y, Sides: sd.Sides,
			Radius: sd.Radius, Rotation: sd.Rotation, Style: st, Velocity: vel})
	case defs.KindSquare:
		return shape.NewSquare(shape.SquareOptions{X: sd.X, Y: sd.Y, Side: sd.Size,
			Rotation: sd.Rotation, Style: st, Velocity: vel})
	case defs.KindCurvedPolygon:
		return shape.NewCurvedPolygon(shape.CurvedPolygonOptions{X: sd.X, Y: sd.Y, Sides: sd.Sides,
			Radius: sd.Radius, Curvature: sd.Curvature, Rotation: sd.Rotation, Style: st, Velocity: vel})
	case defs.KindTriangle:
		if len(sd.Points) == 0 {
			return shape.NewEquilateral(geom.Pt(sd.X, sd.Y), sd.Size, st)
		}
		if len(sd.Points) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 points, got %d", shape.ErrTooFewPoints, len(sd.Points))
		}
		p := pointsOf(sd.Points)
		return shape.NewTriangle(p[0], p[1], p[2], st)
	case defs.KindCustomPolygon:
		return shape.NewCustomPolygon(pointsOf(sd.Points), st)
	case defs.KindRectangleRing:
		return shape.NewRectangleRing(b.rect(sd), sd.Thickness, st)
	case defs.KindBezier:
		if len(sd.Points) != 4 {
			return nil, fmt.Errorf("%w: bezier needs 4 points, got %d", shape.ErrTooFewPoints, len(sd.Points))
		}
		p := pointsOf(sd.Points)
		return shape.NewBezier(p[0], p[1], p[2], p[3], st), nil
	case defs.KindQuadratic:
		if len(sd.Points) != 3 {
			return nil, fmt.Errorf("%w: quadratic bezier needs 3 points, got %d", shape.ErrTooFewPoints, len(sd.Points))
		}
		p := pointsOf(sd.Points)
		return shape.NewQuadraticBezier(p[0], p[1], p[2], st), nil
	case defs.KindGrid:
		return shape.NewGrid(b.rect(sd), sd.Cell, st)
	case defs.KindQuadrantGrid:
		q, err := shape.NewQuadrantGrid(b.rect(sd), sd.Cell, st)
		if err != nil {
			return nil, err
		}
		q.Labels = sd.Labels
		return q, nil
	case defs.KindHexGrid:
		return shape.NewHexGrid(geom.Pt(sd.X, sd.Y), sd.Size, sd.Rings, st)
	case defs.KindLinearGradient:
		stops, err := stopsOf(sd)
		if err != nil {
			return nil, err
		}
		g, err := shape.NewLinearGradientRect(b.rect(sd), sd.Angle, stops...)
		if err != nil {
			return nil, err
		}
		g.Stroke, g.LineWidth = st.Stroke, st.LineWidth
		return g, nil
	case defs.KindRadialGradient:
		stops, err := stopsOf(sd)
		if err != nil {
			return nil, err
		}
		return shape.NewRadialGradientCircle(geom.Pt(sd.X, sd.Y), sd.Radius, stops...)
	case defs.KindText:
		return shape.NewText(shape.TextOptions{X: sd.X, Y: sd.Y, Content: sd.Text, Size: sd.Size,
			Align: alignOf(sd.Align), Style: st, MaxWidth: sd.MaxWidth, Velocity: vel}), nil
	case defs.KindText3D:
		dc, err := colorOf(sd.DepthColor)
		if err != nil {
			return nil, fmt.Errorf("depth color: %w", err)
		}
		opts := shape.Text3DOptions{
			TextOptions: shape.TextOptions{X: sd.X, Y: sd.Y, Content: sd.Text, Size: sd.Size,
				Style: st, MaxWidth: sd.MaxWidth, Velocity: vel},
			Depth:      sd.Depth,
			DepthColor: dc,
		}
		if sd.Align != "" {
			opts.Align = alignOf(sd.Align)
		}
		if sd.Offset != nil {
			off := geom.Pt(sd.Offset[0], sd.Offset[1])
			opts.Offset = &off
		}
		return shape.NewText3D(opts), nil
	case defs.KindSegmentedLine:
		segs, err := segmentsOf(sd.Segments)
		if err != nil {
			return nil, err
		}
		return shape.NewSegmentedLine(geom.Pt(sd.X, sd.Y), segs, st), nil
	case defs.KindCursor:
		c, err := colorOf(sd.Stroke)
		if err != nil {
			return nil, fmt.Errorf("cursor color: %w", err)
		}
		return shape.NewCursor(shape.CursorOptions{Size: sd.Size, Color: c, Cross: sd.Cross,
			LineWidth: sd.LineWidth, Shadow: st.Shadow}), nil
	case defs.KindRadialRect:
		stops, err := stopsOf(sd)
		if err != nil {
			return nil, err
		}
		g, err := shape.NewRadialGradientRect(b.rect(sd), stops...)
		if err != nil {
			return nil, err
		}
		g.Shadow = st.Shadow
		return g, nil
	case defs.KindCenterGradient:
		inner, err := render.ParseColor(sd.Inner)
		if err != nil {
			return nil, fmt.Errorf("inner: %w", err)
		}
		outer, err := render.ParseColor(sd.Outer)
		if err != nil {
			return nil, fmt.Errorf("outer: %w", err)
		}
		g, err := shape.NewCenterGradientRect(b.rect(sd), inner, outer)
		if err != nil {
			return nil, err
		}
		g.Shadow = st.Shadow
		return g, nil
	case defs.KindImage:
		path := sd.Image
		if path != "" && !filepath.IsAbs(path) && b.opts.AssetDir != "" {
			path = filepath.Join(b.opts.AssetDir, path)
		}
		return shape.NewImage(shape.ImageOptions{X: sd.X, Y: sd.Y, Width: sd.Width, Height: sd.Height,
			Source: render.LoadImage(path), Velocity: vel})
	case defs.KindWave:
		return shape.NewWaveLine(shape.WaveLineOptions{Baseline: sd.Y, X0: sd.X, X1: sd.Width,
			Amplitude: sd.Amplitude, Wavelength: sd.Wavelength, Speed: sd.Speed, Style: st}), nil
	case defs.KindParticles:
		return shape.NewParticleSystem(shape.ParticleOptions{Origin: geom.Pt(sd.X, sd.Y), Max: sd.Max,
			Rate: sd.Rate, Speed: sd.Speed, Life: sd.Life, Size: sd.Radius,
			Colors: config.BurstColors, Seed: int64(b.rng.Intn(math.MaxInt32)) + 1}), nil
	}
	return nil, fmt.Errorf("%w: %q", defs.ErrUnknownKind, sd.Kind)
}

type rotator interface {
	Rotate(da float64)
}

func delta(env motion.Env) float64 {
	if env.Delta <= 0 {
		return 1
	}
	return env.Delta
}

func (b *builder) attach(e *Entity, bd defs.BehaviorDefinition, sd defs.ShapeDefinition) error {
	switch bd.Type {
	case defs.BehaviorSpin:
		r, ok := e.Shape.(rotator)
		if !ok {
			return fmt.Errorf("%w: %s on %s", ErrUnsupported, bd.Type, sd.Kind)
		}
		speed := orDefault(bd.AngularVelocity, 0.01)
		e.Animators = append(e.Animators, func(env motion.Env) { r.Rotate(speed * delta(env)) })
		return nil
	case defs.BehaviorSway:
		q, ok := e.Shape.(*shape.QuadraticBezier)
		if !ok {
			return fmt.Errorf("%w: %s on %s", ErrUnsupported, bd.Type, sd.Kind)
		}
		anchor := q.Control
		amp := orDefault(bd.Amplitude, 20)
		speed := orDefault(bd.AngularVelocity, 0.05)
		phase := 0.0
		e.Animators = append(e.Animators, func(env motion.Env) {
			phase = math.Mod(phase+speed*delta(env), 2*math.Pi)
			q.Sway(anchor, amp, phase)
		})
		return nil
	}

	m, ok := e.Shape.(motion.Movable)
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrUnsupported, bd.Type, sd.Kind)
	}
	body := m.Kinematics()
	switch bd.Type {
	case defs.BehaviorBounce:
		bn := motion.Bounce{}
		if bd.Velocity != nil {
			v := geom.Pt(bd.Velocity[0], bd.Velocity[1])
			bn.Seed = &v
		}
		e.Behaviors = append(e.Behaviors, bn)
	case defs.BehaviorCollide:
		c := motion.DefaultCollider()
		c.PointerRadius = orDefault(bd.PointerRadius, c.PointerRadius)
		c.Margin = orDefault(bd.Margin, c.Margin)
		c.Push = orDefault(bd.Push, c.Push)
		c.Decay = orDefault(bd.Decay, c.Decay)
		c.RecolorDistance = orDefault(bd.RecolorDistance, c.RecolorDistance)
		e.Behaviors = append(e.Behaviors, c)
		e.Collider = &c
	case defs.BehaviorPulse:
		e.Behaviors = append(e.Behaviors, &motion.Pulse{
			Proximity: orDefault(bd.Proximity, 100),
			Min:       bd.Min,
			Max:       orDefault(bd.Max, body.Radius*2),
			Grow:      orDefault(bd.Grow, 1),
			Shrink:    orDefault(bd.Shrink, 0.5),
		})
	case defs.BehaviorGravity:
		g := motion.DefaultGravity()
		g.G = orDefault(bd.G, g.G)
		g.Bounce = orDefault(bd.Bounce, g.Bounce)
		g.Friction = orDefault(bd.Friction, g.Friction)
		g.Ground = bd.Ground
		e.Behaviors = append(e.Behaviors, g)
	case defs.BehaviorOrbit:
		rx := orDefault(bd.RadiusX, 50)
		e.Behaviors = append(e.Behaviors, &motion.Orbit{
			Center:          geom.Pt(orDefault(bd.CenterX, body.Pos.X), orDefault(bd.CenterY, body.Pos.Y)),
			RadiusX:         rx,
			RadiusY:         orDefault(bd.RadiusY, rx),
			AngularVelocity: orDefault(bd.AngularVelocity, 0.02),
		})
	default:
		return fmt.Errorf("%w: %q", defs.ErrUnknownBehavior, bd.Type)
	}
	return nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// spawn rolls one random shape definition for group g.
func (b *builder) spawn(g defs.SpawnGroupDefinition) (defs.ShapeDefinition, error) {
	kind := b.rng.ChooseWeighted(g.Entries)
	lo, hi := g.MinRadius, g.MaxRadius
	if lo <= 0 && hi <= 0 {
		lo, hi = 10, 30
	}
	r := lo
	if hi > lo {
		r = b.rng.Range(lo, hi)
	}
	x := b.rng.Range(r, math.Max(r, b.opts.Width-r))
	y := b.rng.Range(r, math.Max(r, b.opts.Height-r))

	fill := render.RandomHex(b.rng.Rand())
	if g.ColorFrom != "" && g.ColorTo != "" {
		var err error
		if fill, err = render.RandomHexBetween(b.rng.Rand(), g.ColorFrom, g.ColorTo); err != nil {
			return defs.ShapeDefinition{}, err
		}
	}
	sd := defs.ShapeDefinition{
		Kind:      kind,
		X:         x,
		Y:         y,
		Radius:    r,
		Size:      2 * r,
		Width:     2 * r,
		Height:    2 * r,
		Thickness: r / 3,
		Sides:     3 + b.rng.Intn(6),
		Curvature: 0.3,
		Fill:      fill,
		Highlight: g.Highlight,
		Text:      fill,
		Behaviors: g.Behaviors,
	}
	if g.MaxSpeed > 0 {
		sd.Velocity = &[2]float64{b.rng.Range(-g.MaxSpeed, g.MaxSpeed), b.rng.Range(-g.MaxSpeed, g.MaxSpeed)}
	}
	return sd, nil
}
