package deck

import "github.com/tsawler/pitchdeck/model"

// AddRect places a filled rectangle without outline, as used for borders and
// markers.
func (b *Builder) AddRect(slide *model.Slide, box model.BBox, fill model.Color) *model.Shape {
	shape := model.NewAutoShape(model.GeomRect, box)
	shape.Fill = &fill
	shape.Line = model.NoLine()
	return slide.Add(shape)
}

// AddOval places a filled ellipse without outline. A non-empty caption is
// centered inside it, 18pt bold black by default.
func (b *Builder) AddOval(slide *model.Slide, box model.BBox, fill model.Color, caption string, opts ...TextOption) *model.Shape {
	shape := model.NewAutoShape(model.GeomEllipse, box)
	shape.Fill = &fill
	shape.Line = model.NoLine()
	if caption != "" {
		b.Caption(shape, caption, append([]TextOption{Size(18), Color(Black)}, opts...)...)
	}
	return slide.Add(shape)
}

// AddCard places a filled rounded rectangle. A nil border leaves the outline
// to the shape style; model.NoLine() removes it. The corners are then
// widened to the builder's card radius on a best-effort basis.
func (b *Builder) AddCard(slide *model.Slide, box model.BBox, fill model.Color, border *model.Line) *model.Shape {
	shape := model.NewAutoShape(model.GeomRoundRect, box)
	shape.Fill = &fill
	shape.Line = border
	slide.Add(shape)

	if b.cardRadius > 0 {
		b.RoundCorners(slide, shape, b.cardRadius)
	}
	return shape
}

// AddLabel places a filled rounded rectangle without outline and centers a
// caption in it, 14pt bold white by default.
func (b *Builder) AddLabel(slide *model.Slide, box model.BBox, fill model.Color, text string, opts ...TextOption) *model.Shape {
	shape := model.NewAutoShape(model.GeomRoundRect, box)
	shape.Fill = &fill
	shape.Line = model.NoLine()
	b.Caption(shape, text, opts...)
	return slide.Add(shape)
}

// BadgeOption adjusts a badge.
type BadgeOption func(*badgeStyle)

type badgeStyle struct {
	width float64
	fill  model.Color
}

// BadgeWidthOf overrides the builder's badge width, in inches.
func BadgeWidthOf(w float64) BadgeOption { return func(s *badgeStyle) { s.width = w } }

// BadgeFill overrides the yellow badge fill.
func BadgeFill(c model.Color) BadgeOption { return func(s *badgeStyle) { s.fill = c } }

// AddBadge places a 0.4" tall rounded rectangle at (x, y) inches with a
// centered 12pt bold black caption and no outline.
func (b *Builder) AddBadge(slide *model.Slide, x, y float64, text string, opts ...BadgeOption) *model.Shape {
	st := badgeStyle{width: b.badgeWidth, fill: Yellow}
	for _, opt := range opts {
		opt(&st)
	}

	shape := model.NewAutoShape(model.GeomRoundRect, Box(x, y, st.width, BadgeHeight))
	shape.Fill = &st.fill
	shape.Line = model.NoLine()
	b.Caption(shape, text, Size(12), Color(Black), Font(DefaultFont))
	return slide.Add(shape)
}

// AddAccentBox places a yellow rounded rectangle holding a 24pt bold figure
// and an optional 12pt subtitle paragraph, both black and centered.
func (b *Builder) AddAccentBox(slide *model.Slide, box model.BBox, text, subtitle string) *model.Shape {
	shape := model.NewAutoShape(model.GeomRoundRect, box)
	fill := Yellow
	shape.Fill = &fill
	shape.Line = model.NoLine()
	shape.TextFrame.WordWrap = true

	b.Caption(shape, text, Size(24), Color(Black), Font(DefaultFont))
	if subtitle != "" {
		sub := styleOf(DefaultTextStyle(), []TextOption{Size(12), Color(Black), Center()})
		p := shape.TextFrame.AddParagraph()
		p.Align = sub.Align
		p.SetText(subtitle, sub.font())
	}
	return slide.Add(shape)
}

// AddStatBox places a card with a large number above a small label, both
// centered. The number sits on the lower edge of its region and the label on
// the upper edge of its own.
func (b *Builder) AddStatBox(slide *model.Slide, box model.BBox, number, label string, accent model.Color) *model.Shape {
	card := b.AddCard(slide, box, DarkGray, Border(accent, 1))

	numberBox := model.BBox{
		X:      box.X,
		Y:      box.Y + box.Height/10,
		Width:  box.Width,
		Height: box.Height / 2,
	}
	labelBox := model.BBox{
		X:      box.X,
		Y:      numberBox.Bottom(),
		Width:  box.Width,
		Height: box.Height * 3 / 10,
	}

	num := b.AddText(slide, numberBox, number, Size(36), Color(accent), Bold(), Center())
	b.Anchor(slide, num, model.AnchorBottom)
	lbl := b.AddText(slide, labelBox, label, Size(14), Color(Gray), Center())
	b.Anchor(slide, lbl, model.AnchorTop)

	return card
}

// AddFlowBox places one node of a left-to-right flow diagram at (x, y)
// inches: a dark card with a yellow outline and a 14pt bold white caption.
func (b *Builder) AddFlowBox(slide *model.Slide, x, y, w, h float64, text string) *model.Shape {
	shape := b.AddCard(slide, Box(x, y, w, h), DarkGray, &model.Line{Color: Yellow})
	b.Caption(shape, text)
	return shape
}

// AddFlowArrow places the arrow glyph between two flow boxes.
func (b *Builder) AddFlowArrow(slide *model.Slide, x, y, w, h float64) *model.Shape {
	return b.AddText(slide, Box(x, y, w, h), "→", Size(32), Color(Yellow), Center())
}
