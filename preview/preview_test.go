package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tsawler/pitchdeck/model"
)

var (
	black  = model.Black
	white  = model.White
	yellow = model.RGB(255, 214, 51)
)

// testDocument is a 10" x 5" page so that at 1000px one inch is 100px.
func testDocument() *model.Document {
	doc := model.NewDocument(model.Inches(10), model.Inches(5))
	s := doc.AddSlide()
	s.Background = &black

	rect := model.NewAutoShape(model.GeomRect, model.NewBBoxInches(1, 1, 2, 1))
	rect.Fill = &yellow
	rect.Line = model.NoLine()
	s.Add(rect)

	round := model.NewAutoShape(model.GeomRoundRect, model.NewBBoxInches(4, 1, 2, 1))
	round.Fill = &yellow
	round.Line = model.NoLine()
	round.SetGuide("adj", 50000)
	s.Add(round)

	oval := model.NewAutoShape(model.GeomEllipse, model.NewBBoxInches(7, 1, 1, 1))
	oval.Fill = &white
	oval.Line = model.NoLine()
	s.Add(oval)

	outlined := model.NewAutoShape(model.GeomRect, model.NewBBoxInches(1, 3, 2, 1))
	outlined.Line = &model.Line{Color: yellow, Width: model.Pt(7.2)}
	s.Add(outlined)

	text := model.NewTextBox(model.NewBBoxInches(4, 3, 5, 1))
	text.TextFrame.WordWrap = true
	text.TextFrame.Paragraph().SetText("TAGO LEAP", model.Font{Size: 36, Color: &white, Bold: true})
	s.Add(text)

	doc.AddSlide().Background = &white
	return doc
}

func render(t *testing.T, doc *model.Document, index int) *image.RGBA {
	t.Helper()
	img, err := NewRenderer(Options{Width: 1000}).Render(doc, index)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	return img
}

func rgbaOf(c model.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func TestRender_Size(t *testing.T) {
	img := render(t, testDocument(), 0)
	if got := img.Bounds().Size(); got != image.Pt(1000, 500) {
		t.Errorf("size = %v, want 1000x500", got)
	}
}

func TestRender_Shapes(t *testing.T) {
	img := render(t, testDocument(), 0)

	tests := []struct {
		name string
		x, y int
		want model.Color
	}{
		{"background", 5, 5, black},
		{"rect center", 200, 150, yellow},
		{"rect corner", 101, 101, yellow},
		{"round rect center", 500, 150, yellow},
		{"round rect corner", 401, 101, black},
		{"oval center", 750, 150, white},
		{"oval corner", 702, 102, black},
		{"outline edge", 100, 350, yellow},
		{"outline interior", 200, 350, black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != rgbaOf(tt.want) {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, rgbaOf(tt.want))
			}
		})
	}
}

func TestRender_Text(t *testing.T) {
	img := render(t, testDocument(), 0)

	lit := 0
	for y := 300; y < 400; y++ {
		for x := 400; x < 900; x++ {
			if img.RGBAAt(x, y) != rgbaOf(black) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no text pixels drawn")
	}
}

func TestRender_Background(t *testing.T) {
	img := render(t, testDocument(), 1)
	if got := img.RGBAAt(500, 250); got != rgbaOf(white) {
		t.Errorf("background = %v, want white", got)
	}
}

func TestRender_Errors(t *testing.T) {
	r := NewRenderer(Options{})
	if _, err := r.Render(nil, 0); !errors.Is(err, ErrNoSlides) {
		t.Errorf("nil document error = %v", err)
	}
	empty := model.NewDocument(model.Inches(10), model.Inches(5))
	if _, err := r.Render(empty, 0); !errors.Is(err, ErrNoSlides) {
		t.Errorf("empty document error = %v", err)
	}
	if _, err := r.Render(testDocument(), 5); err == nil {
		t.Error("expected out of range error")
	}
}

func TestThumbnail(t *testing.T) {
	data, err := Thumbnail(testDocument())
	if err != nil {
		t.Fatalf("Thumbnail() failed: %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("thumbnail is not a JPEG: %v", err)
	}
	if cfg.Width != ThumbnailWidth || cfg.Height != ThumbnailWidth/2 {
		t.Errorf("thumbnail = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestSaveAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "preview")

	paths, err := NewRenderer(Options{Width: 200}).SaveAll(testDocument(), dir)
	if err != nil {
		t.Fatalf("SaveAll() failed: %v", err)
	}
	want := []string{filepath.Join(dir, "slide-01.png"), filepath.Join(dir, "slide-02.png")}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("not a PNG: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Errorf("image = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestSaveAll_JPEG(t *testing.T) {
	dir := t.TempDir()
	paths, err := NewRenderer(Options{Width: 100, Format: JPEG}).SaveAll(testDocument(), dir)
	if err != nil {
		t.Fatalf("SaveAll() failed: %v", err)
	}
	if filepath.Ext(paths[0]) != ".jpeg" {
		t.Errorf("path = %s", paths[0])
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"one two", []string{"one", " ", "two"}},
		{"  lead  trail ", []string{"  ", "lead", "  ", "trail", " "}},
		{"Onboard → Trade", []string{"Onboard", " ", "→", " ", "Trade"}},
	}
	for _, tt := range tests {
		if got := tokens(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokens(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayout_WrapsLongText(t *testing.T) {
	doc := model.NewDocument(model.Inches(10), model.Inches(5))
	c := &canvas{scale: 1000 / float64(doc.Width), faces: newFaceCache()}

	tf := &model.TextFrame{WordWrap: true}
	tf.Paragraph().SetText("Trade ideas, not just single tokens, with one click from any chain", model.Font{Size: 24})

	if got := len(c.layout(tf, 200)); got < 2 {
		t.Errorf("wrapped into %d lines, want several", got)
	}
	tf.WordWrap = false
	if got := len(c.layout(tf, 200)); got != 1 {
		t.Errorf("unwrapped into %d lines, want 1", got)
	}
}
