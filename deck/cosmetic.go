package deck

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/pitchdeck/model"
)

// MaxCornerRatio is the largest corner radius a roundRect can express, as a
// fraction of the shorter side.
const MaxCornerRatio = 0.5

var (
	// ErrNoCornerRadius is returned for geometries without a corner guide.
	ErrNoCornerRadius = errors.New("geometry has no corner radius")
	// ErrRadiusRange is returned for ratios outside [0, 0.5].
	ErrRadiusRange = errors.New("corner ratio out of range")
	// ErrNoTextFrame is returned when anchoring a shape without text.
	ErrNoTextFrame = errors.New("shape has no text frame")
	// ErrInvalidAnchor is returned for unknown anchor values.
	ErrInvalidAnchor = errors.New("invalid text anchor")
)

// SetCornerRadius writes the "adj" guide of a rounded rectangle. Other
// geometries are left untouched.
func SetCornerRadius(shape *model.Shape, ratio float64) error {
	if !shape.HasCornerGuide() {
		return fmt.Errorf("%w: %s", ErrNoCornerRadius, shape.Geometry)
	}
	if ratio < 0 || ratio > MaxCornerRatio || math.IsNaN(ratio) {
		return fmt.Errorf("%w: %g", ErrRadiusRange, ratio)
	}
	shape.SetGuide("adj", int64(math.Round(ratio*model.GuideScale)))
	return nil
}

// SetAnchor sets the vertical anchoring of a shape's text.
func SetAnchor(shape *model.Shape, anchor model.Anchor) error {
	if shape.TextFrame == nil {
		return ErrNoTextFrame
	}
	switch anchor {
	case model.AnchorUnset, model.AnchorTop, model.AnchorMiddle, model.AnchorBottom:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAnchor, anchor)
	}
	shape.TextFrame.Anchor = anchor
	return nil
}

// RoundCorners applies SetCornerRadius, ignoring failure. It reports whether
// the radius was applied.
func (b *Builder) RoundCorners(slide *model.Slide, shape *model.Shape, ratio float64) bool {
	return b.bestEffort(slide, shape, "corner radius", SetCornerRadius(shape, ratio))
}

// Anchor applies SetAnchor, ignoring failure. It reports whether the anchor
// was applied.
func (b *Builder) Anchor(slide *model.Slide, shape *model.Shape, anchor model.Anchor) bool {
	return b.bestEffort(slide, shape, "text anchor", SetAnchor(shape, anchor))
}
