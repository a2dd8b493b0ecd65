package deck

import "github.com/tsawler/pitchdeck/model"

// TextStyle is the character and paragraph formatting of a text primitive.
type TextStyle struct {
	Size   float64 // points
	Color  model.Color
	Bold   bool
	Italic bool
	Align  model.Alignment
	Font   string
}

// DefaultTextStyle is 18pt white Arial, left aligned.
func DefaultTextStyle() TextStyle {
	return TextStyle{Size: 18, Color: White, Align: model.AlignLeft, Font: DefaultFont}
}

func (st TextStyle) font() model.Font {
	c := st.Color
	return model.Font{Size: st.Size, Color: &c, Bold: st.Bold, Italic: st.Italic, Name: st.Font}
}

// TextOption adjusts a TextStyle.
type TextOption func(*TextStyle)

// Size sets the font size in points.
func Size(pt float64) TextOption { return func(s *TextStyle) { s.Size = pt } }

// Color sets the text color.
func Color(c model.Color) TextOption { return func(s *TextStyle) { s.Color = c } }

// Bold sets bold weight.
func Bold() TextOption { return func(s *TextStyle) { s.Bold = true } }

// Italic sets italics.
func Italic() TextOption { return func(s *TextStyle) { s.Italic = true } }

// Align sets paragraph alignment.
func Align(a model.Alignment) TextOption { return func(s *TextStyle) { s.Align = a } }

// Center is Align(model.AlignCenter).
func Center() TextOption { return Align(model.AlignCenter) }

// Font sets the typeface; "" inherits the theme font.
func Font(name string) TextOption { return func(s *TextStyle) { s.Font = name } }

func styleOf(base TextStyle, opts []TextOption) TextStyle {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// AddText places a word-wrapped text box. Newlines in text become line breaks
// within a single paragraph.
func (b *Builder) AddText(slide *model.Slide, box model.BBox, text string, opts ...TextOption) *model.Shape {
	st := styleOf(DefaultTextStyle(), opts)

	shape := model.NewTextBox(box)
	shape.TextFrame.WordWrap = true
	p := shape.TextFrame.Paragraph()
	p.Align = st.Align
	p.SetText(text, st.font())

	return slide.Add(shape)
}

// AddStyledHeading places one text box holding up to three runs: prefix,
// accent and suffix. Only the accent run is italic and set in accent; empty
// parts are omitted.
func (b *Builder) AddStyledHeading(slide *model.Slide, box model.BBox, prefix, accent, suffix string, accentColor model.Color, opts ...TextOption) *model.Shape {
	st := styleOf(DefaultTextStyle(), opts)
	st.Italic = false

	accentStyle := st
	accentStyle.Italic = true
	accentStyle.Color = accentColor

	shape := model.NewTextBox(box)
	shape.TextFrame.WordWrap = true
	p := shape.TextFrame.Paragraph()
	p.Align = st.Align

	if prefix != "" {
		p.AddRun(prefix, st.font())
	}
	if accent != "" {
		p.AddRun(accent, accentStyle.font())
	}
	if suffix != "" {
		p.AddRun(suffix, st.font())
	}

	return slide.Add(shape)
}

// AddBullets places a text box with one paragraph per item, each prefixed
// with BulletMarker. Items default to 16pt white Arial.
func (b *Builder) AddBullets(slide *model.Slide, box model.BBox, items []string, opts ...TextOption) *model.Shape {
	base := DefaultTextStyle()
	base.Size = 16
	base.Align = model.AlignUnset
	st := styleOf(base, opts)

	shape := model.NewTextBox(box)
	shape.TextFrame.WordWrap = true
	for i, item := range items {
		var p *model.Paragraph
		if i == 0 {
			p = shape.TextFrame.Paragraph()
		} else {
			p = shape.TextFrame.AddParagraph()
		}
		p.Align = st.Align
		p.SpaceBefore = BulletSpaceAbove
		p.SpaceAfter = BulletSpaceBelow
		p.SetText(BulletMarker+item, st.font())
	}

	return slide.Add(shape)
}

// Caption sets centered text inside an auto shape, replacing any existing
// paragraphs. Captions default to 14pt bold white in the theme font.
func (b *Builder) Caption(shape *model.Shape, text string, opts ...TextOption) *model.Shape {
	st := styleOf(TextStyle{Size: 14, Color: White, Bold: true, Align: model.AlignCenter}, opts)

	if shape.TextFrame == nil {
		shape.TextFrame = &model.TextFrame{Anchor: model.AnchorMiddle}
	}
	shape.TextFrame.Paragraphs = nil
	p := shape.TextFrame.Paragraph()
	p.Align = st.Align
	p.SetText(text, st.font())
	return shape
}
