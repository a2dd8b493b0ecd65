package model

// ShapeKind distinguishes text boxes from auto shapes.
type ShapeKind int

const (
	KindTextBox ShapeKind = iota
	KindAutoShape
)

// String returns the string representation of a ShapeKind
func (k ShapeKind) String() string {
	switch k {
	case KindTextBox:
		return "textbox"
	case KindAutoShape:
		return "autoshape"
	default:
		return "unknown"
	}
}

// Geometry is a DrawingML preset geometry name.
type Geometry string

const (
	GeomRect      Geometry = "rect"
	GeomRoundRect Geometry = "roundRect"
	GeomEllipse   Geometry = "ellipse"
)

// GuideScale is the denominator of adjustment guide values (val 50000 == 0.5).
const GuideScale = 100000

// DefaultCornerGuide is the roundRect "adj" value applied when none is set.
const DefaultCornerGuide = 16667

// Guide is a named adjustment value of a preset geometry.
type Guide struct {
	Name  string
	Value int64
}

// Line describes a shape outline.
type Line struct {
	Color Color
	Width EMU  // 0 leaves the width to the theme
	None  bool // explicit no-line
}

// NoLine is an explicit absent outline.
func NoLine() *Line {
	return &Line{None: true}
}

// Shape is a visual element placed on a slide.
type Shape struct {
	ID        int
	Name      string
	Kind      ShapeKind
	Geometry  Geometry
	BBox      BBox
	Fill      *Color // nil means no fill
	Line      *Line  // nil leaves the outline to the shape style
	Guides    []Guide
	TextFrame *TextFrame
}

// NewTextBox creates a text box with an empty text frame.
func NewTextBox(b BBox) *Shape {
	return &Shape{
		Kind:      KindTextBox,
		Geometry:  GeomRect,
		BBox:      b,
		TextFrame: &TextFrame{},
	}
}

// NewAutoShape creates an auto shape with the given preset geometry.
// Auto shapes always carry a text frame, anchored in the middle.
func NewAutoShape(geom Geometry, b BBox) *Shape {
	return &Shape{
		Kind:      KindAutoShape,
		Geometry:  geom,
		BBox:      b,
		TextFrame: &TextFrame{Anchor: AnchorMiddle},
	}
}

// Text returns the text of the shape's text frame, or "".
func (s *Shape) Text() string {
	if s.TextFrame == nil {
		return ""
	}
	return s.TextFrame.Text()
}

// Guide returns the value of a named adjustment guide.
func (s *Shape) Guide(name string) (int64, bool) {
	for _, g := range s.Guides {
		if g.Name == name {
			return g.Value, true
		}
	}
	return 0, false
}

// SetGuide sets or replaces a named adjustment guide.
func (s *Shape) SetGuide(name string, value int64) {
	for i := range s.Guides {
		if s.Guides[i].Name == name {
			s.Guides[i].Value = value
			return
		}
	}
	s.Guides = append(s.Guides, Guide{Name: name, Value: value})
}

// HasCornerGuide reports whether the geometry exposes an "adj" corner guide.
func (s *Shape) HasCornerGuide() bool {
	return s.Geometry == GeomRoundRect
}

// CornerRatio returns the corner radius as a fraction of the shorter side.
func (s *Shape) CornerRatio() float64 {
	if !s.HasCornerGuide() {
		return 0
	}
	v, ok := s.Guide("adj")
	if !ok {
		v = DefaultCornerGuide
	}
	return float64(v) / GuideScale
}

func (s *Shape) baseName() string {
	if s.Kind == KindTextBox {
		return "TextBox"
	}
	switch s.Geometry {
	case GeomRoundRect:
		return "Rounded Rectangle"
	case GeomEllipse:
		return "Oval"
	default:
		return "Rectangle"
	}
}
