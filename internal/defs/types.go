// internal/defs/types.go
package defs

// ShapeKind names a drawable in a scene file.
type ShapeKind string

const (
	KindCircle         ShapeKind = "circle"
	KindRing           ShapeKind = "ring"
	KindPolygon        ShapeKind = "polygon"
	KindSquare         ShapeKind = "square"
	KindTriangle       ShapeKind = "triangle"
	KindCustomPolygon  ShapeKind = "custom_polygon"
	KindCurvedPolygon  ShapeKind = "curved_polygon"
	KindRectangleRing  ShapeKind = "rectangle_ring"
	KindBezier         ShapeKind = "bezier"
	KindQuadratic      ShapeKind = "quadratic_bezier"
	KindGrid           ShapeKind = "grid"
	KindQuadrantGrid   ShapeKind = "quadrant_grid"
	KindLinearGradient ShapeKind = "linear_gradient"
	KindRadialGradient ShapeKind = "radial_gradient"
	KindText           ShapeKind = "text"
	KindImage          ShapeKind = "image"
	KindWave           ShapeKind = "wave"
	KindParticles      ShapeKind = "particles"
	KindHexGrid        ShapeKind = "hex_grid"
	KindText3D         ShapeKind = "text_3d"
	KindSegmentedLine  ShapeKind = "segmented_line"
	KindCursor         ShapeKind = "cursor"
	KindRadialRect     ShapeKind = "radial_gradient_rect"
	KindCenterGradient ShapeKind = "center_gradient"
)

// BehaviorType names a per-tick motion step.
type BehaviorType string

const (
	BehaviorBounce  BehaviorType = "bounce"
	BehaviorCollide BehaviorType = "collide"
	BehaviorPulse   BehaviorType = "pulse"
	BehaviorGravity BehaviorType = "gravity"
	BehaviorOrbit   BehaviorType = "orbit"
	BehaviorSpin    BehaviorType = "spin"
	BehaviorSway    BehaviorType = "sway"
)

// SceneDefinition is the root of a scene file.
type SceneDefinition struct {
	Name       string                 `json:"name"`
	Seed       int64                  `json:"seed"`
	Background BackgroundDefinition   `json:"background"`
	Shapes     []ShapeDefinition      `json:"shapes"`
	Spawns     []SpawnGroupDefinition `json:"spawns"`
}

// BackgroundDefinition holds the two theme colours.
type BackgroundDefinition struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// ShapeDefinition describes one shape. Only the fields its kind uses are read.
type ShapeDefinition struct {
	Kind ShapeKind `json:"kind"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`

	Radius     float64 `json:"radius,omitempty"`
	Size       float64 `json:"size,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Thickness  float64 `json:"thickness,omitempty"`
	Sides      int     `json:"sides,omitempty"`
	Rotation   float64 `json:"rotation,omitempty"`
	Curvature  float64 `json:"curvature,omitempty"`
	StartAngle float64 `json:"startAngle,omitempty"`
	EndAngle   float64 `json:"endAngle,omitempty"`
	Cell       float64 `json:"cell,omitempty"`
	Labels     bool    `json:"labels,omitempty"`
	Rings      int     `json:"rings,omitempty"`
	Angle      float64 `json:"angle,omitempty"`

	// Points are vertices for triangles and custom polygons, or
	// start/control/end points for curves.
	Points [][2]float64 `json:"points,omitempty"`

	Fill      string            `json:"fill,omitempty"`
	Stroke    string            `json:"stroke,omitempty"`
	Highlight string            `json:"highlight,omitempty"`
	LineWidth float64           `json:"lineWidth,omitempty"`
	Shadow    *ShadowDefinition `json:"shadow,omitempty"`
	Stops     []StopDefinition  `json:"stops,omitempty"`

	Text     string  `json:"text,omitempty"`
	Align    string  `json:"align,omitempty"`
	MaxWidth float64 `json:"maxWidth,omitempty"`

	Image string `json:"image,omitempty"`

	// text_3d
	Depth      int         `json:"depth,omitempty"`
	Offset     *[2]float64 `json:"offset,omitempty"`
	DepthColor string      `json:"depthColor,omitempty"`

	// segmented_line, starting at X, Y
	Segments []SegmentDefinition `json:"segments,omitempty"`

	// cursor
	Cross bool `json:"cross,omitempty"`

	// center_gradient
	Inner string `json:"inner,omitempty"`
	Outer string `json:"outer,omitempty"`

	Amplitude  float64 `json:"amplitude,omitempty"`
	Wavelength float64 `json:"wavelength,omitempty"`
	Speed      float64 `json:"speed,omitempty"`

	Rate int     `json:"rate,omitempty"`
	Max  int     `json:"max,omitempty"`
	Life float64 `json:"life,omitempty"`

	Velocity  *[2]float64          `json:"velocity,omitempty"`
	Behaviors []BehaviorDefinition `json:"behaviors,omitempty"`
}

// ShadowDefinition mirrors render.Shadow.
type ShadowDefinition struct {
	Color   string  `json:"color"`
	Blur    float64 `json:"blur"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// SegmentDefinition is one leg of a segmented line. Empty fields take
// the line's stroke, width and shadow.
type SegmentDefinition struct {
	To        [2]float64        `json:"to"`
	Color     string            `json:"color,omitempty"`
	LineWidth float64           `json:"lineWidth,omitempty"`
	Shadow    *ShadowDefinition `json:"shadow,omitempty"`
}

// StopDefinition is one gradient colour stop.
type StopDefinition struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// BehaviorDefinition configures one motion step. Zero values fall back
// to the behaviour's own defaults.
type BehaviorDefinition struct {
	Type BehaviorType `json:"type"`

	// collide
	PointerRadius   float64 `json:"pointerRadius,omitempty"`
	Margin          float64 `json:"margin,omitempty"`
	Push            float64 `json:"push,omitempty"`
	Decay           float64 `json:"decay,omitempty"`
	RecolorDistance float64 `json:"recolorDistance,omitempty"`

	// pulse
	Proximity float64 `json:"proximity,omitempty"`
	Min       float64 `json:"min,omitempty"`
	Max       float64 `json:"max,omitempty"`
	Grow      float64 `json:"grow,omitempty"`
	Shrink    float64 `json:"shrink,omitempty"`

	// gravity
	G        float64 `json:"g,omitempty"`
	Bounce   float64 `json:"bounce,omitempty"`
	Friction float64 `json:"friction,omitempty"`
	// Ground is the resting line; absent means the bottom of the screen.
	Ground *float64 `json:"ground,omitempty"`

	// bounce: initial velocity; absent means (1, 1)
	Velocity *[2]float64 `json:"velocity,omitempty"`

	// orbit, spin, sway
	CenterX         float64 `json:"centerX,omitempty"`
	CenterY         float64 `json:"centerY,omitempty"`
	RadiusX         float64 `json:"radiusX,omitempty"`
	RadiusY         float64 `json:"radiusY,omitempty"`
	AngularVelocity float64 `json:"angularVelocity,omitempty"`
	Amplitude       float64 `json:"amplitude,omitempty"`
}

// SpawnGroupDefinition scatters Count random shapes over the screen.
type SpawnGroupDefinition struct {
	Count     int                  `json:"count"`
	Entries   []SpawnEntry         `json:"entries"`
	MinRadius float64              `json:"minRadius"`
	MaxRadius float64              `json:"maxRadius"`
	ColorFrom string               `json:"colorFrom,omitempty"`
	ColorTo   string               `json:"colorTo,omitempty"`
	Highlight string               `json:"highlight,omitempty"`
	MaxSpeed  float64              `json:"maxSpeed,omitempty"`
	Behaviors []BehaviorDefinition `json:"behaviors,omitempty"`
}

// SpawnEntry is a weighted shape kind in a spawn group.
type SpawnEntry struct {
	Kind   ShapeKind `json:"kind"`
	Weight int       `json:"weight"`
}
