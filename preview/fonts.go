package preview

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Slides name Arial; previews substitute the Go fonts, which share its
// metrics closely enough for layout checks.
var faceData = map[style][]byte{
	{}:                         goregular.TTF,
	{bold: true}:               gobold.TTF,
	{italic: true}:             goitalic.TTF,
	{bold: true, italic: true}: gobolditalic.TTF,
}

type style struct {
	bold, italic bool
}

type faceKey struct {
	style
	size int // quarter pixels
}

// faceCache parses each font once and keeps one face per style and size.
type faceCache struct {
	fonts map[style]*opentype.Font
	faces map[faceKey]font.Face
}

func newFaceCache() *faceCache {
	return &faceCache{
		fonts: make(map[style]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// face returns a face of the given pixel size, falling back to the 7x13
// bitmap font when the outline font cannot be loaded.
func (c *faceCache) face(bold, italic bool, sizePx float64) font.Face {
	st := style{bold: bold, italic: italic}
	key := faceKey{style: st, size: int(math.Round(sizePx * 4))}
	if f, ok := c.faces[key]; ok {
		return f
	}

	f, ok := c.fonts[st]
	if !ok {
		parsed, err := opentype.Parse(faceData[st])
		if err != nil {
			return basicfont.Face7x13
		}
		c.fonts[st] = parsed
		f = parsed
	}

	if sizePx < 1 {
		sizePx = 1
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	c.faces[key] = face
	return face
}
