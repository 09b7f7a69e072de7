// pkg/shape/image.go
package shape

import (
	"fmt"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

// ImageOptions configures an Image.
type ImageOptions struct {
	// X, Y is the centre.
	X, Y float64
	// Width and Height default to the natural size once loaded.
	Width, Height float64
	Source        *render.ImageHandle
	Velocity      *geom.Point
}

// Image draws a possibly still loading bitmap centred on its position.
// Until the source is ready Draw does nothing and the next frame tries
// again. Body.Radius is half the larger side; resizing the body scales
// the picture.
type Image struct {
	Mover
	Source        *render.ImageHandle
	Width, Height float64

	baseRadius float64
}

// NewImage builds an image shape.
func NewImage(opts ImageOptions) (*Image, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("%w: image without source", ErrDegenerate)
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("%w: image %vx%v", ErrInvalidSize, opts.Width, opts.Height)
	}
	img := &Image{
		Mover:  Mover{Body: newBody(opts.X, opts.Y, 0, opts.Velocity)},
		Source: opts.Source,
		Width:  opts.Width,
		Height: opts.Height,
	}
	img.resolveSize()
	return img, nil
}

// Ready reports whether the image can be drawn.
func (im *Image) Ready() bool {
	return im.Source.Ready() && im.baseRadius > 0
}

// resolveSize fills in the natural size and the body radius once both
// are known.
func (im *Image) resolveSize() {
	if im.baseRadius > 0 {
		return
	}
	if im.Width == 0 || im.Height == 0 {
		src := im.Source.Image()
		if src == nil {
			return
		}
		b := src.Bounds()
		if im.Width == 0 {
			im.Width = float64(b.Dx())
		}
		if im.Height == 0 {
			im.Height = float64(b.Dy())
		}
	}
	im.baseRadius = math.Max(im.Width, im.Height) / 2
	if im.Body.Radius == 0 {
		im.Body.Radius = im.baseRadius
	}
}

// Tick resolves the natural size as soon as the image has loaded.
func (im *Image) Tick(motion.Env) {
	im.resolveSize()
}

// DrawSize returns the on-screen size after resizing.
func (im *Image) DrawSize() (w, h float64) {
	if im.baseRadius <= 0 {
		return im.Width, im.Height
	}
	k := im.Body.Radius / im.baseRadius
	return im.Width * k, im.Height * k
}

func (im *Image) Draw(s render.Surface) {
	im.resolveSize()
	if !im.Ready() {
		return
	}
	w, h := im.DrawSize()
	p := im.Body.Pos
	s.DrawImage(im.Source.Image(), p.X-w/2, p.Y-h/2, w, h)
}
