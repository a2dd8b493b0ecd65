package pptx

import "strings"

// Slide represents a parsed slide.
type Slide struct {
	Index      int     // 0-indexed position in the slide id list
	Title      string  // Text of the block set in the largest font
	Background string  // Solid background as hex ("FFD633"); "" when inherited
	Shapes     []Shape // Shapes in z-order
}

// Shape is a parsed p:sp element.
type Shape struct {
	ID         int
	Name       string
	TextBox    bool
	Geometry   string // Preset geometry: rect, roundRect, ellipse
	Guides     []Guide
	X, Y       int64  // Position in EMUs
	Width      int64  // Width in EMUs
	Height     int64  // Height in EMUs
	Fill       string // Solid fill hex; "" for none
	Line       *Line  // nil when the outline is inherited
	Anchor     string // t, ctr, b
	WordWrap   bool
	Text       string
	Paragraphs []Paragraph
}

// Guide is a preset geometry adjustment ("adj" = 50000).
type Guide struct {
	Name  string
	Value int64
}

// Line is an explicit shape outline.
type Line struct {
	None  bool
	Color string // hex
	Width int64  // EMUs; 0 when inherited
}

// Paragraph represents a paragraph within a shape.
type Paragraph struct {
	Text        string
	Level       int    // Bullet/indent level (0 = top level)
	IsBullet    bool   // Has a bullet, as buChar or a leading bullet glyph
	BulletChar  string // Bullet character (if custom)
	Alignment   string // l, ctr, r, just
	SpaceBefore int    // Hundredths of a point
	SpaceAfter  int    // Hundredths of a point
	Runs        []Run  // Text runs and breaks with formatting
}

// Run represents a text run with consistent formatting, or a line break.
type Run struct {
	Text     string
	Bold     bool
	Italic   bool
	FontSize int    // In hundredths of a point
	Color    string // hex; "" when inherited
	Typeface string
	Break    bool
}

// bulletGlyph is the marker bullet lists write as literal text.
const bulletGlyph = "• "

// TextShapes returns the shapes that carry text.
func (s *Slide) TextShapes() []Shape {
	out := make([]Shape, 0, len(s.Shapes))
	for _, sh := range s.Shapes {
		if sh.Text != "" {
			out = append(out, sh)
		}
	}
	return out
}

// FindText returns the first shape whose text equals text.
func (s *Slide) FindText(text string) (Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.Text == text {
			return sh, true
		}
	}
	return Shape{}, false
}

// Guide returns the value of a named adjustment guide.
func (sh Shape) Guide(name string) (int64, bool) {
	for _, g := range sh.Guides {
		if g.Name == name {
			return g.Value, true
		}
	}
	return 0, false
}

// TextRuns returns the runs of the paragraph that are not line breaks.
func (p Paragraph) TextRuns() []Run {
	out := make([]Run, 0, len(p.Runs))
	for _, r := range p.Runs {
		if !r.Break {
			out = append(out, r)
		}
	}
	return out
}

// GetText returns all text from the slide as a single string.
func (s *Slide) GetText() string {
	var b strings.Builder

	// Title first
	if s.Title != "" {
		b.WriteString(s.Title)
		b.WriteString("\n\n")
	}

	for _, sh := range s.TextShapes() {
		if sh.Text == s.Title {
			continue // Already added
		}
		for _, para := range sh.Paragraphs {
			if para.Text == "" {
				continue
			}
			if para.BulletChar != "" {
				b.WriteString(para.BulletChar + " ")
			}
			b.WriteString(para.Text)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// GetMarkdown returns the slide content as markdown.
func (s *Slide) GetMarkdown() string {
	var b strings.Builder

	// Title as H1
	if s.Title != "" {
		b.WriteString("# " + oneLine(s.Title) + "\n\n")
	}

	for _, sh := range s.TextShapes() {
		if sh.Text == s.Title {
			continue
		}

		for _, para := range sh.Paragraphs {
			if para.Text == "" {
				continue
			}

			indent := strings.Repeat("  ", para.Level)
			if para.IsBullet {
				b.WriteString(indent + "- " + oneLine(strings.TrimPrefix(para.Text, bulletGlyph)) + "\n")
			} else {
				b.WriteString(oneLine(para.Text) + "\n\n")
			}
		}
	}

	return b.String()
}

// oneLine folds line breaks so a block renders as one Markdown line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}
