package model

import "time"

// Document represents a complete slide deck
type Document struct {
	Metadata Metadata
	Width    EMU // Slide width
	Height   EMU // Slide height
	Slides   []*Slide
}

// Metadata contains document-level information
type Metadata struct {
	Title       string
	Author      string
	Subject     string
	Keywords    []string
	Description string
	Created     time.Time
	Modified    time.Time
}

// NewDocument creates a new empty document with the given slide size
func NewDocument(width, height EMU) *Document {
	return &Document{
		Width:  width,
		Height: height,
		Slides: make([]*Slide, 0),
	}
}

// AddSlide appends a new blank slide and returns it.
// Slides are numbered from 1 in creation order.
func (d *Document) AddSlide() *Slide {
	s := &Slide{
		Number: len(d.Slides) + 1,
		Shapes: make([]*Shape, 0),
	}
	d.Slides = append(d.Slides, s)
	return s
}

// GetSlide returns a slide by number (1-indexed)
func (d *Document) GetSlide(number int) *Slide {
	if number < 1 || number > len(d.Slides) {
		return nil
	}
	return d.Slides[number-1]
}

// SlideCount returns the total number of slides
func (d *Document) SlideCount() int {
	return len(d.Slides)
}

// Bounds returns the slide area as a bounding box.
func (d *Document) Bounds() BBox {
	return BBox{Width: d.Width, Height: d.Height}
}

// ShapeCount returns the number of shapes across all slides.
func (d *Document) ShapeCount() int {
	n := 0
	for _, s := range d.Slides {
		n += len(s.Shapes)
	}
	return n
}

// ExtractText returns all slide text, one slide per block.
func (d *Document) ExtractText() string {
	var text string
	for _, s := range d.Slides {
		text += s.ExtractText() + "\n"
	}
	return text
}
