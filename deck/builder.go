// Package deck provides the drawing primitives slides are built from: text
// regions, styled headings, bullet lists, cards, badges, stat boxes and flow
// diagrams, plus best-effort cosmetic styling.
package deck

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/pitchdeck/model"
)

// DefaultCardRadius is the corner ratio cards are widened to. The roundRect
// default is 0.16667.
const DefaultCardRadius = 0.2

// Builder assembles one document. It is not safe for concurrent use.
type Builder struct {
	doc        *model.Document
	logger     *slog.Logger
	badgeWidth float64
	cardRadius float64
	warnings   []Warning
}

// Option configures a Builder.
type Option func(*Builder) error

// WithSize sets the page size in inches.
func WithSize(width, height float64) Option {
	return func(b *Builder) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("invalid page size %gx%g", width, height)
		}
		b.doc.Width = model.Inches(width)
		b.doc.Height = model.Inches(height)
		return nil
	}
}

// WithMetadata sets the document properties.
func WithMetadata(meta model.Metadata) Option {
	return func(b *Builder) error {
		b.doc.Metadata = meta
		return nil
	}
}

// WithLogger sets the logger cosmetic failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger != nil {
			b.logger = logger
		}
		return nil
	}
}

// WithBadgeWidth sets the default badge width in inches.
func WithBadgeWidth(width float64) Option {
	return func(b *Builder) error {
		if width <= 0 {
			return fmt.Errorf("invalid badge width %g", width)
		}
		b.badgeWidth = width
		return nil
	}
}

// WithCardRadius sets the corner ratio AddCard widens cards to. Zero keeps
// the geometry's default corners.
func WithCardRadius(ratio float64) Option {
	return func(b *Builder) error {
		if ratio < 0 || ratio > MaxCornerRatio {
			return fmt.Errorf("%w: %g", ErrRadiusRange, ratio)
		}
		b.cardRadius = ratio
		return nil
	}
}

// New creates a builder over an empty 13.333" x 7.5" document.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{
		doc:        model.NewDocument(model.Inches(SlideWidth), model.Inches(SlideHeight)),
		logger:     slog.Default(),
		badgeWidth: BadgeWidth,
		cardRadius: DefaultCardRadius,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("creating document: %w", err)
		}
	}
	return b, nil
}

// Document returns the document under construction.
func (b *Builder) Document() *model.Document {
	return b.doc
}

// Warnings returns the cosmetic operations that were skipped.
func (b *Builder) Warnings() []Warning {
	return b.warnings
}

// NewSlide appends a blank slide with a solid background.
func (b *Builder) NewSlide(bg model.Color) *model.Slide {
	s := b.doc.AddSlide()
	s.Background = &bg
	return s
}

// Warning records a cosmetic operation that could not be applied.
type Warning struct {
	Slide int
	Shape string
	Op    string
	Err   error
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return fmt.Sprintf("slide %d: %s on %q skipped: %v", w.Slide, w.Op, w.Shape, w.Err)
}

// bestEffort swallows a cosmetic failure: the warning is recorded, logged at
// debug level and never returned.
func (b *Builder) bestEffort(slide *model.Slide, shape *model.Shape, op string, err error) bool {
	if err == nil {
		return true
	}
	w := Warning{Op: op, Err: err}
	if slide != nil {
		w.Slide = slide.Number
	}
	if shape != nil {
		w.Shape = shape.Name
	}
	b.warnings = append(b.warnings, w)
	b.logger.Debug("cosmetic styling skipped",
		"slide", w.Slide, "shape", w.Shape, "op", op, "error", err)
	return false
}
