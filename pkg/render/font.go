// pkg/render/font.go
package render

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontSize is used until SetFont is called.
const DefaultFontSize = 16

// FontCache builds font faces of one typeface on demand, one per size.
type FontCache struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontCache returns a cache over the bundled Go Regular typeface.
func NewFontCache() *FontCache {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// Встроенный шрифт всегда валиден
		panic(fmt.Sprintf("render: parse bundled font: %v", err))
	}
	return &FontCache{font: f, faces: make(map[float64]font.Face)}
}

// LoadFontCache reads a TTF/OTF file from disk.
func LoadFontCache(path string) (*FontCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return &FontCache{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns the face for size in pixels, creating it on first use.
func (c *FontCache) Face(size float64) (font.Face, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face of size %v: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}
