package model

import (
	"fmt"
	"strings"
)

// Slide represents a single slide in a Document
type Slide struct {
	Number     int    // 1-indexed slide number
	Background *Color // Solid background fill; nil inherits from the master
	Shapes     []*Shape
}

// Add appends a shape in z-order and assigns its id and default name.
// Ids start at 2; id 1 belongs to the slide's shape tree.
func (s *Slide) Add(shape *Shape) *Shape {
	shape.ID = len(s.Shapes) + 2
	if shape.Name == "" {
		shape.Name = fmt.Sprintf("%s %d", shape.baseName(), shape.ID-1)
	}
	s.Shapes = append(s.Shapes, shape)
	return shape
}

// ExtractText concatenates the text of every shape in z-order
func (s *Slide) ExtractText() string {
	var b strings.Builder
	for _, shape := range s.Shapes {
		if t := shape.Text(); t != "" {
			b.WriteString(t)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ShapesInRegion returns the shapes whose bounds intersect region.
func (s *Slide) ShapesInRegion(region BBox) []*Shape {
	var out []*Shape
	for _, shape := range s.Shapes {
		if shape.BBox.Intersects(region) {
			out = append(out, shape)
		}
	}
	return out
}

// FindText returns the first shape whose text equals text, or nil.
func (s *Slide) FindText(text string) *Shape {
	for _, shape := range s.Shapes {
		if shape.Text() == text {
			return shape
		}
	}
	return nil
}
