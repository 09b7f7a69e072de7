// pkg/shape/shape.go
package shape

import (
	"errors"

	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

var (
	// ErrTooFewSides is returned for regular polygons with fewer than 3 sides.
	ErrTooFewSides = errors.New("shape: polygon needs at least 3 sides")
	// ErrTooFewPoints is returned for point-list shapes with fewer than 3 points.
	ErrTooFewPoints = errors.New("shape: polygon needs at least 3 points")
	// ErrDegenerate is returned when the given points do not enclose an area.
	ErrDegenerate = errors.New("shape: degenerate geometry")
	// ErrInvalidSize is returned for negative or zero sizes where a size is required.
	ErrInvalidSize = errors.New("shape: invalid size")
)

// Drawable paints itself on a surface.
type Drawable interface {
	Draw(s render.Surface)
}

// Highlighter swaps to an alternative look while the pointer is near.
type Highlighter interface {
	Highlight(on bool)
}

// Ticker is implemented by shapes that animate themselves every frame.
type Ticker interface {
	Tick(env motion.Env)
}
