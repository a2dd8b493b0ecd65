// Package outline turns a saved deck into reading formats: a Markdown
// outline and a standalone HTML handout. Both are produced from the package
// as read back by the pptx reader, so they reflect what was written.
package outline

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/pitchdeck/format"
	"github.com/tsawler/pitchdeck/pptx"
)

// Outline is the text content of a deck.
type Outline struct {
	Title   string
	Author  string
	Subject string
	Slides  []Slide
}

// Slide is one slide's title and remaining text blocks in z-order.
type Slide struct {
	Number int
	Title  string
	Blocks []Block
}

// Block is the text of one shape: either free text or a bullet list.
type Block struct {
	Text    string
	Bullets []string
}

// FromReader builds an outline from an open package.
func FromReader(r *pptx.Reader) *Outline {
	meta := r.Metadata()
	o := &Outline{
		Title:   meta.Title,
		Author:  meta.Author,
		Subject: meta.Subject,
	}
	for _, s := range r.Slides() {
		o.Slides = append(o.Slides, fromSlide(s))
	}
	return o
}

// Load opens the package at path and builds its outline.
func Load(path string) (*Outline, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return FromReader(r), nil
}

func fromSlide(s *pptx.Slide) Slide {
	out := Slide{Number: s.Index + 1, Title: s.Title}
	titleSeen := false
	for _, sh := range s.TextShapes() {
		if !titleSeen && sh.Text == s.Title {
			titleSeen = true
			continue
		}
		out.Blocks = append(out.Blocks, blockOf(sh))
	}
	return out
}

// blockOf reads a shape as a bullet list when every paragraph is a bullet.
func blockOf(sh pptx.Shape) Block {
	bullets := make([]string, 0, len(sh.Paragraphs))
	for _, p := range sh.Paragraphs {
		if !p.IsBullet {
			return Block{Text: sh.Text}
		}
		bullets = append(bullets, strings.TrimPrefix(p.Text, "• "))
	}
	return Block{Bullets: bullets}
}

// Markdown renders the outline with one second-level section per slide.
func (o *Outline) Markdown() string {
	var b strings.Builder
	if o.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", o.Title)
	}
	for _, s := range o.Slides {
		fmt.Fprintf(&b, "## %d. %s\n\n", s.Number, strings.ReplaceAll(s.Title, "\n", " "))
		for _, blk := range s.Blocks {
			if len(blk.Bullets) > 0 {
				for _, item := range blk.Bullets {
					fmt.Fprintf(&b, "- %s\n", item)
				}
				b.WriteString("\n")
				continue
			}
			// Two trailing spaces keep line breaks inside the paragraph.
			fmt.Fprintf(&b, "%s\n\n", strings.ReplaceAll(blk.Text, "\n", "  \n"))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// WriteFile writes the outline to path. A .html or .htm extension selects
// the handout; anything else gets Markdown.
func (o *Outline) WriteFile(path string) error {
	var data []byte
	switch format.Detect(path) {
	case format.HTML:
		var b strings.Builder
		if err := o.WriteHTML(&b); err != nil {
			return err
		}
		data = []byte(b.String())
	default:
		data = []byte(o.Markdown())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing outline: %w", err)
	}
	return nil
}
