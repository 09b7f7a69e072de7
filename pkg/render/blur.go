// pkg/render/blur.go
package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// blurOnto composites src over dst at rectangle r. A positive blur
// approximates a gaussian by scaling src down and back up.
func blurOnto(dst *image.RGBA, r image.Rectangle, src image.Image, blur float64) {
	if blur <= 0 {
		xdraw.Copy(dst, r.Min, src, src.Bounds(), xdraw.Over, nil)
		return
	}
	factor := 1 + blur/2
	sb := src.Bounds()
	sw, sh := int(float64(sb.Dx())/factor), int(float64(sb.Dy())/factor)
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), src, sb, xdraw.Src, nil)
	xdraw.BiLinear.Scale(dst, r, small, small.Bounds(), xdraw.Over, nil)
}

// scaleOnto draws src resized into r.
func scaleOnto(dst *image.RGBA, r image.Rectangle, src image.Image) {
	xdraw.CatmullRom.Scale(dst, r, src, src.Bounds(), xdraw.Over, nil)
}
