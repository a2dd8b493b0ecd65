package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Anchor is the vertical anchoring of text within its frame.
type Anchor string

const (
	AnchorUnset  Anchor = ""
	AnchorTop    Anchor = "t"
	AnchorMiddle Anchor = "ctr"
	AnchorBottom Anchor = "b"
)

// Alignment is the horizontal alignment of a paragraph.
type Alignment string

const (
	AlignUnset   Alignment = ""
	AlignLeft    Alignment = "l"
	AlignCenter  Alignment = "ctr"
	AlignRight   Alignment = "r"
	AlignJustify Alignment = "just"
)

// Font holds run-level character formatting.
type Font struct {
	Size   float64 // Points; 0 inherits
	Color  *Color
	Bold   bool
	Italic bool
	Name   string // Latin typeface; "" inherits
}

// TextFrame holds the paragraphs of a shape.
type TextFrame struct {
	WordWrap   bool
	Anchor     Anchor
	Paragraphs []*Paragraph
}

// AddParagraph appends an empty paragraph.
func (tf *TextFrame) AddParagraph() *Paragraph {
	p := &Paragraph{}
	tf.Paragraphs = append(tf.Paragraphs, p)
	return p
}

// Paragraph returns the first paragraph, creating it when the frame is empty.
func (tf *TextFrame) Paragraph() *Paragraph {
	if len(tf.Paragraphs) == 0 {
		return tf.AddParagraph()
	}
	return tf.Paragraphs[0]
}

// Text returns paragraph texts joined by newlines.
func (tf *TextFrame) Text() string {
	parts := make([]string, len(tf.Paragraphs))
	for i, p := range tf.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// Paragraph is a block of runs sharing alignment and spacing.
type Paragraph struct {
	Align       Alignment
	SpaceBefore float64 // Points; 0 leaves unset
	SpaceAfter  float64 // Points; 0 leaves unset
	Runs        []*Run
}

// Run is a span of uniformly formatted text, or a line break.
type Run struct {
	Text  string
	Font  Font
	Break bool
}

// AddRun appends a text run. Text is normalized to NFC.
func (p *Paragraph) AddRun(text string, f Font) *Run {
	r := &Run{Text: norm.NFC.String(text), Font: f}
	p.Runs = append(p.Runs, r)
	return r
}

// AddBreak appends a line break carrying the given formatting.
func (p *Paragraph) AddBreak(f Font) *Run {
	r := &Run{Break: true, Font: f}
	p.Runs = append(p.Runs, r)
	return r
}

// SetText replaces the runs with text, turning each "\n" into a line break.
func (p *Paragraph) SetText(text string, f Font) {
	p.Runs = nil
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			p.AddBreak(f)
		}
		if line != "" {
			p.AddRun(line, f)
		}
	}
}

// Text returns the paragraph text with line breaks as "\n".
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		if r.Break {
			b.WriteString("\n")
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

// TextRuns returns only the non-break runs.
func (p *Paragraph) TextRuns() []*Run {
	out := make([]*Run, 0, len(p.Runs))
	for _, r := range p.Runs {
		if !r.Break {
			out = append(out, r)
		}
	}
	return out
}
