// Package preview rasterizes slides of a model.Document to images. It draws
// the subset of DrawingML the deck uses: solid backgrounds, rectangles,
// rounded rectangles and ellipses with solid fills and outlines, and wrapped
// multi-run text.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/tsawler/pitchdeck/model"
)

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	JPEG
)

// Extension returns the file extension for the format, with the dot.
func (f Format) Extension() string {
	if f == JPEG {
		return ".jpeg"
	}
	return ".png"
}

// ThumbnailWidth is the pixel width of the package thumbnail.
const ThumbnailWidth = 256

// ErrNoSlides is returned when a document has nothing to render.
var ErrNoSlides = errors.New("document has no slides")

// Options configures rendering.
type Options struct {
	Width       int // Output width in pixels; height follows the page aspect ratio. Default 960.
	Format      Format
	JPEGQuality int // 1-100. Default 85.
}

// DefaultOptions returns 960px wide PNG output.
func DefaultOptions() Options {
	return Options{Width: 960, Format: PNG, JPEGQuality: 85}
}

// Renderer draws slides. It caches font faces and is not safe for
// concurrent use.
type Renderer struct {
	opts  Options
	faces *faceCache
}

// NewRenderer creates a renderer, filling unset options with defaults.
func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = def.JPEGQuality
	}
	return &Renderer{opts: opts, faces: newFaceCache()}
}

// canvas is one slide being drawn.
type canvas struct {
	img   *image.RGBA
	scale float64 // pixels per EMU
	faces *faceCache
}

func (c *canvas) px(v model.EMU) float64 {
	return float64(v) * c.scale
}

func (c *canvas) rect(b model.BBox) image.Rectangle {
	return image.Rect(
		int(math.Round(c.px(b.X))),
		int(math.Round(c.px(b.Y))),
		int(math.Round(c.px(b.Right()))),
		int(math.Round(c.px(b.Bottom()))),
	)
}

func rgba(c model.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Render draws the slide at index (0-based).
func (r *Renderer) Render(doc *model.Document, index int) (*image.RGBA, error) {
	if doc == nil || doc.SlideCount() == 0 {
		return nil, ErrNoSlides
	}
	if index < 0 || index >= doc.SlideCount() {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, doc.SlideCount()-1)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("invalid page size %dx%d", doc.Width, doc.Height)
	}

	w := r.opts.Width
	h := int(math.Round(float64(w) * float64(doc.Height) / float64(doc.Width)))
	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: float64(w) / float64(doc.Width),
		faces: r.faces,
	}

	slide := doc.Slides[index]
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if slide.Background != nil {
		bg = rgba(*slide.Background)
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for _, shape := range slide.Shapes {
		c.shape(shape)
	}
	return c.img, nil
}

// Encode writes img in the renderer's format.
func (r *Renderer) Encode(w io.Writer, img image.Image) error {
	if r.opts.Format == JPEG {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: r.opts.JPEGQuality})
	}
	return png.Encode(w, img)
}

// SaveAll renders every slide into dir as slide-01.png, slide-02.png and so
// on, creating dir when needed. It returns the written paths in slide order.
func (r *Renderer) SaveAll(doc *model.Document, dir string) ([]string, error) {
	if doc == nil || doc.SlideCount() == 0 {
		return nil, ErrNoSlides
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	paths := make([]string, 0, doc.SlideCount())
	for i := range doc.Slides {
		img, err := r.Render(doc, i)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		var buf bytes.Buffer
		if err := r.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("slide-%02d%s", i+1, r.opts.Format.Extension()))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Thumbnail renders the first slide as a small JPEG for the package's
// docProps/thumbnail.jpeg part.
func Thumbnail(doc *model.Document) ([]byte, error) {
	r := NewRenderer(Options{Width: ThumbnailWidth, Format: JPEG, JPEGQuality: 80})
	img, err := r.Render(doc, 0)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// shape draws fill, outline and text in that order.
func (c *canvas) shape(s *model.Shape) {
	rect := c.rect(s.BBox)
	if rect.Empty() {
		return
	}
	inside := c.hitTest(s, rect)

	if s.Fill != nil {
		c.fill(rect, rgba(*s.Fill), func(x, y float64) bool { return inside(x, y, 0) })
	}
	if s.Line != nil && !s.Line.None {
		lw := math.Max(1, math.Round(c.px(s.Line.Width)))
		if s.Line.Width == 0 {
			lw = math.Max(1, math.Round(c.px(model.Pt(0.75))))
		}
		c.fill(rect.Inset(-int(lw)), rgba(s.Line.Color), func(x, y float64) bool {
			return inside(x, y, lw/2) && !inside(x, y, -lw/2)
		})
	}
	if s.TextFrame != nil {
		c.text(s, rect)
	}
}

// hitTest returns a point-in-shape test for the shape geometry. grow expands
// the outline outward by that many pixels; negative values shrink it.
func (c *canvas) hitTest(s *model.Shape, rect image.Rectangle) func(x, y, grow float64) bool {
	x0, y0 := float64(rect.Min.X), float64(rect.Min.Y)
	x1, y1 := float64(rect.Max.X), float64(rect.Max.Y)

	switch s.Geometry {
	case model.GeomEllipse:
		cx, cy := (x0+x1)/2, (y0+y1)/2
		return func(x, y, grow float64) bool {
			rx, ry := (x1-x0)/2+grow, (y1-y0)/2+grow
			if rx <= 0 || ry <= 0 {
				return false
			}
			dx, dy := (x-cx)/rx, (y-cy)/ry
			return dx*dx+dy*dy <= 1
		}
	case model.GeomRoundRect:
		radius := s.CornerRatio() * math.Min(x1-x0, y1-y0)
		return func(x, y, grow float64) bool {
			r := math.Max(0, radius+grow)
			l, t, rt, b := x0-grow, y0-grow, x1+grow, y1+grow
			if x < l || x > rt || y < t || y > b {
				return false
			}
			qx := math.Max(l+r, math.Min(x, rt-r))
			qy := math.Max(t+r, math.Min(y, b-r))
			dx, dy := x-qx, y-qy
			return dx*dx+dy*dy <= r*r
		}
	default:
		return func(x, y, grow float64) bool {
			return x >= x0-grow && x <= x1+grow && y >= y0-grow && y <= y1+grow
		}
	}
}

// fill paints every pixel of area whose center passes inside.
func (c *canvas) fill(area image.Rectangle, col color.RGBA, inside func(x, y float64) bool) {
	area = area.Intersect(c.img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if inside(float64(x)+0.5, float64(y)+0.5) {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}
