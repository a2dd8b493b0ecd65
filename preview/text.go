package preview

import (
	"image"
	"image/color"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/pitchdeck/model"
)

// Default body insets of a DrawingML text frame.
var (
	insetX = model.Inches(0.1)
	insetY = model.Inches(0.05)
)

const (
	defaultFontSize = 18 // points
	lineSpacing     = 1.2
)

type segment struct {
	text  string
	face  font.Face
	color color.RGBA
	width fixed.Int26_6
}

type textLine struct {
	segs    []segment
	width   fixed.Int26_6
	ascent  fixed.Int26_6
	descent fixed.Int26_6
	align   model.Alignment
	before  int // pixels above the line
	after   int // pixels below the line
}

func (l *textLine) add(s segment) {
	l.segs = append(l.segs, s)
	l.width += s.width
	l.fit(s.face)
}

// fit grows the line metrics to hold glyphs of face.
func (l *textLine) fit(face font.Face) {
	m := face.Metrics()
	if m.Ascent > l.ascent {
		l.ascent = m.Ascent
	}
	if m.Descent > l.descent {
		l.descent = m.Descent
	}
}

func (l *textLine) height() int {
	return int(float64((l.ascent + l.descent).Ceil()) * lineSpacing)
}

// tokens splits text into alternating runs of spaces and non-spaces.
func tokens(text string) []string {
	var out []string
	start := 0
	prevSpace := false
	for i, r := range text {
		sp := unicode.IsSpace(r)
		if i > start && sp != prevSpace {
			out = append(out, text[start:i])
			start = i
		}
		prevSpace = sp
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func (c *canvas) faceFor(f model.Font) font.Face {
	size := f.Size
	if size <= 0 {
		size = defaultFontSize
	}
	return c.faces.face(f.Bold, f.Italic, c.px(model.Pt(size)))
}

func fontColor(f model.Font) color.RGBA {
	if f.Color == nil {
		return color.RGBA{A: 255}
	}
	return rgba(*f.Color)
}

// layout breaks the paragraphs of tf into lines no wider than maxWidth when
// word wrap is on.
func (c *canvas) layout(tf *model.TextFrame, maxWidth int) []*textLine {
	limit := fixed.I(maxWidth)
	var lines []*textLine

	for _, p := range tf.Paragraphs {
		first := len(lines)
		cur := &textLine{align: p.Align}
		lastFace := c.faceFor(model.Font{})
		if len(p.Runs) > 0 {
			lastFace = c.faceFor(p.Runs[0].Font)
		}
		flush := func() {
			cur.fit(lastFace)
			lines = append(lines, cur)
			cur = &textLine{align: p.Align}
		}

		for _, run := range p.Runs {
			face := c.faceFor(run.Font)
			lastFace = face
			if run.Break {
				flush()
				continue
			}
			col := fontColor(run.Font)
			for _, tok := range tokens(run.Text) {
				space := strings.TrimSpace(tok) == ""
				w := font.MeasureString(face, tok)
				if tf.WordWrap && !space && len(cur.segs) > 0 && cur.width+w > limit {
					trimTrailingSpace(cur)
					flush()
				}
				if space && len(cur.segs) == 0 && len(lines) > first {
					continue
				}
				cur.add(segment{text: tok, face: face, color: col, width: w})
			}
		}
		flush()

		lines[first].before = int(c.px(model.Pt(p.SpaceBefore)))
		lines[len(lines)-1].after = int(c.px(model.Pt(p.SpaceAfter)))
	}
	return lines
}

func trimTrailingSpace(l *textLine) {
	for len(l.segs) > 0 {
		last := l.segs[len(l.segs)-1]
		if strings.TrimSpace(last.text) != "" {
			return
		}
		l.width -= last.width
		l.segs = l.segs[:len(l.segs)-1]
	}
}

// text draws the text frame of s inside rect, honoring the vertical anchor
// and each paragraph's alignment.
func (c *canvas) text(s *model.Shape, rect image.Rectangle) {
	tf := s.TextFrame
	if len(tf.Paragraphs) == 0 || tf.Text() == "" {
		return
	}
	ix, iy := int(c.px(insetX)), int(c.px(insetY))
	box := image.Rect(rect.Min.X+ix, rect.Min.Y+iy, rect.Max.X-ix, rect.Max.Y-iy)

	lines := c.layout(tf, box.Dx())
	total := 0
	for _, l := range lines {
		total += l.before + l.height() + l.after
	}

	y := box.Min.Y
	switch tf.Anchor {
	case model.AnchorMiddle:
		y += (box.Dy() - total) / 2
	case model.AnchorBottom:
		y = box.Max.Y - total
	}

	for _, l := range lines {
		y += l.before
		x := box.Min.X
		switch l.align {
		case model.AlignCenter:
			x += (box.Dx() - l.width.Ceil()) / 2
		case model.AlignRight:
			x = box.Max.X - l.width.Ceil()
		}

		baseline := y + (l.height()-(l.ascent+l.descent).Ceil())/2 + l.ascent.Ceil()
		dot := fixed.P(x, baseline)
		for _, seg := range l.segs {
			d := &font.Drawer{
				Dst:  c.img,
				Src:  image.NewUniform(seg.color),
				Face: seg.face,
				Dot:  dot,
			}
			d.DrawString(seg.text)
			dot.X += seg.width
		}
		y += l.height() + l.after
	}
}
