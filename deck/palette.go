package deck

import "github.com/tsawler/pitchdeck/model"

// Brand palette.
var (
	Black    = model.Black
	White    = model.White
	Yellow   = model.RGB(255, 214, 51) // #FFD633
	Gray     = model.RGB(128, 128, 128)
	DarkGray = model.RGB(40, 40, 40)

	// NearBlack is the background of the second revision.
	NearBlack = model.RGB(13, 13, 13)
	// Panel is the card fill on NearBlack slides.
	Panel = model.RGB(28, 28, 28)
)

// Page and primitive dimensions, in inches unless noted.
const (
	SlideWidth  = 13.333
	SlideHeight = 7.5

	BadgeHeight      = 0.4
	BadgeWidth       = 1.2 // first deck revision
	WideBadgeWidth   = 1.4 // default of the second revision
	DefaultFont      = "Arial"
	BulletMarker     = "• "
	BulletSpaceAbove = 8 // points
	BulletSpaceBelow = 4 // points
)

// Box is a bounding box given in inches.
func Box(x, y, w, h float64) model.BBox {
	return model.NewBBoxInches(x, y, w, h)
}

// Border is a solid outline; a zero width leaves the width to the theme.
func Border(c model.Color, widthPt float64) *model.Line {
	return &model.Line{Color: c, Width: model.Pt(widthPt)}
}
