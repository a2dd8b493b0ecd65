// Package model provides the in-memory object model for a slide deck.
//
// A [Document] owns an ordered, append-only list of [Slide] values. Each
// slide owns an ordered list of [Shape] values (z-order: later shapes are
// drawn on top). Shapes are described entirely by static attributes set at
// construction time: position and size in EMU, preset geometry, fill, line,
// and an optional [TextFrame].
//
//	doc := model.NewDocument(model.Inches(13.333), model.Inches(7.5))
//	slide := doc.AddSlide()
//	slide.Background = &model.Black
//	box := model.NewTextBox(model.NewBBoxInches(0.5, 0.8, 12.333, 1.5))
//	slide.Add(box)
//
// # Units
//
// All geometry is stored in English Metric Units (EMU), the unit used by
// PresentationML. [Inches] and [Pt] convert to EMU by truncation. Font sizes
// are kept in points and written in hundredths of a point.
//
// # Geometry
//
//   - [BBox] - top-left anchored rectangle with intersection and union helpers
//   - [Point] - 2D point with distance calculation
package model
