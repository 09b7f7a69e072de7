// pkg/render/image.go
package render

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sync"
	"sync/atomic"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageHandle is an image that may still be loading. Draw calls check
// Ready every frame and skip until the decode has finished.
type ImageHandle struct {
	img    atomic.Pointer[image.Image]
	err    atomic.Pointer[error]
	done   chan struct{}
	closed sync.Once
}

func newImageHandle() *ImageHandle {
	return &ImageHandle{done: make(chan struct{})}
}

// ImageFrom wraps an already decoded image in a ready handle.
func ImageFrom(img image.Image) *ImageHandle {
	h := newImageHandle()
	h.finish(img, nil)
	return h
}

// LoadImage starts decoding the file at path in the background.
func LoadImage(path string) *ImageHandle {
	return LoadImageFunc(func() (io.ReadCloser, error) { return os.Open(path) })
}

// LoadImageFunc decodes whatever open returns in the background.
// PNG, JPEG, GIF, BMP and WebP are recognised.
func LoadImageFunc(open func() (io.ReadCloser, error)) *ImageHandle {
	h := newImageHandle()
	go func() {
		rc, err := open()
		if err != nil {
			h.finish(nil, fmt.Errorf("failed to open image: %w", err))
			return
		}
		defer rc.Close()
		img, _, err := image.Decode(rc)
		if err != nil {
			h.finish(nil, fmt.Errorf("failed to decode image: %w", err))
			return
		}
		h.finish(img, nil)
	}()
	return h
}

func (h *ImageHandle) finish(img image.Image, err error) {
	h.closed.Do(func() {
		if err != nil {
			h.err.Store(&err)
		} else {
			h.img.Store(&img)
		}
		close(h.done)
	})
}

// Ready reports whether the image decoded successfully.
func (h *ImageHandle) Ready() bool {
	return h != nil && h.img.Load() != nil
}

// Image returns the decoded image, or nil while loading or after a failure.
func (h *ImageHandle) Image() image.Image {
	if h == nil {
		return nil
	}
	p := h.img.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Err returns the load error, if any.
func (h *ImageHandle) Err() error {
	if h == nil {
		return nil
	}
	p := h.err.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Loaded is closed once loading has finished, successfully or not.
func (h *ImageHandle) Loaded() <-chan struct{} {
	return h.done
}
