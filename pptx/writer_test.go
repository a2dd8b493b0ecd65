package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/pitchdeck/model"
)

var yellow = model.RGB(255, 214, 51)

// sampleDocument builds a two-slide document exercising every shape feature
// the writer serializes.
func sampleDocument() *model.Document {
	doc := model.NewDocument(model.Inches(13.333), model.Inches(7.5))
	doc.Metadata.Title = "Sample"
	doc.Metadata.Author = "Deck Team"
	doc.Metadata.Keywords = []string{"hackathon", "pitch"}

	black := model.Black
	s := doc.AddSlide()
	s.Background = &black

	tb := s.Add(model.NewTextBox(model.NewBBoxInches(0.5, 0.5, 12, 1)))
	tb.TextFrame.WordWrap = true
	p := tb.TextFrame.Paragraph()
	p.Align = model.AlignCenter
	p.SetText("TAGO\nLEAP", model.Font{Size: 72, Bold: true, Color: &yellow, Name: "Arial"})

	card := s.Add(model.NewAutoShape(model.GeomRoundRect, model.NewBBoxInches(1, 2, 3, 2)))
	card.Fill = &model.Color{R: 40, G: 40, B: 40}
	card.Line = &model.Line{Color: yellow, Width: model.Pt(2)}
	card.SetGuide("adj", 8000)

	dot := s.Add(model.NewAutoShape(model.GeomEllipse, model.NewBBoxInches(5, 2, 0.5, 0.5)))
	dot.Fill = &yellow
	dot.Line = model.NoLine()
	dp := dot.TextFrame.Paragraph()
	dp.Align = model.AlignCenter
	dp.AddRun("1", model.Font{Size: 14, Bold: true, Color: &black})

	bullets := doc.AddSlide().Add(model.NewTextBox(model.NewBBoxInches(1, 1, 6, 3)))
	bullets.TextFrame.WordWrap = true
	for _, item := range []string{"• One", "• Two"} {
		bp := bullets.TextFrame.AddParagraph()
		bp.SpaceBefore, bp.SpaceAfter = 8, 4
		bp.AddRun(item, model.Font{Size: 16, Color: &yellow, Name: "Arial"})
	}

	return doc
}

func writeSample(t *testing.T, opts WriteOptions) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, sampleDocument(), opts); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	return buf.Bytes()
}

func partNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() failed: %v", err)
	}
	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names
}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() failed: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

// ============================================================================
// Package structure
// ============================================================================

func TestWrite_Parts(t *testing.T) {
	got := partNames(t, writeSample(t, WriteOptions{}))
	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/presProps.xml",
		"ppt/viewProps.xml",
		"ppt/tableStyles.xml",
		"ppt/theme/theme1.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("parts =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestWrite_Thumbnail(t *testing.T) {
	thumb := []byte{0xFF, 0xD8, 0xFF, 0xD9}
	data := writeSample(t, WriteOptions{Thumbnail: thumb})

	if got := readPart(t, data, "docProps/thumbnail.jpeg"); got != string(thumb) {
		t.Errorf("thumbnail = %x", got)
	}
	if rels := readPart(t, data, "_rels/.rels"); !strings.Contains(rels, "metadata/thumbnail") {
		t.Errorf("root rels missing thumbnail relationship:\n%s", rels)
	}
	if ct := readPart(t, data, "[Content_Types].xml"); !strings.Contains(ct, `Extension="jpeg"`) {
		t.Errorf("content types missing jpeg default:\n%s", ct)
	}
}

func TestWrite_NilDocument(t *testing.T) {
	err := Write(io.Discard, nil, WriteOptions{})
	if !errors.Is(err, ErrNilDocument) {
		t.Errorf("Write(nil) = %v, want ErrNilDocument", err)
	}
}

func TestWrite_Deterministic(t *testing.T) {
	a := writeSample(t, WriteOptions{})
	b := writeSample(t, WriteOptions{})
	if !bytes.Equal(a, b) {
		t.Error("two writes of the same document differ")
	}
}

func TestWrite_MetadataTimestamps(t *testing.T) {
	doc := sampleDocument()
	doc.Metadata.Created = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	var buf bytes.Buffer
	if err := Write(&buf, doc, WriteOptions{Application: "tester"}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	core := readPart(t, buf.Bytes(), "docProps/core.xml")
	if !strings.Contains(core, "2025-03-04T05:06:07Z") {
		t.Errorf("core.xml missing created timestamp:\n%s", core)
	}
	if !strings.Contains(core, Epoch.Format(time.RFC3339)) {
		t.Errorf("core.xml missing default modified timestamp:\n%s", core)
	}
	app := readPart(t, buf.Bytes(), "docProps/app.xml")
	if !strings.Contains(app, "<Application>tester</Application>") || !strings.Contains(app, "<Slides>2</Slides>") {
		t.Errorf("app.xml = %s", app)
	}
}

// ============================================================================
// Slide markup
// ============================================================================

func TestWrite_SlideMarkup(t *testing.T) {
	slide := readPart(t, writeSample(t, WriteOptions{}), "ppt/slides/slide1.xml")

	for _, want := range []string{
		`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="000000"></a:srgbClr></a:solidFill>`,
		`<p:cNvPr id="2" name="TextBox 1"></p:cNvPr><p:cNvSpPr txBox="1">`,
		`<a:prstGeom prst="roundRect"><a:avLst><a:gd name="adj" fmla="val 8000"></a:gd></a:avLst></a:prstGeom>`,
		`<a:ln w="25400"><a:solidFill><a:srgbClr val="FFD633">`,
		`<a:ln><a:noFill></a:noFill></a:ln>`,
		`<a:bodyPr wrap="square" rtlCol="0"><a:spAutoFit></a:spAutoFit></a:bodyPr>`,
		`<a:bodyPr rtlCol="0" anchor="ctr">`,
		`<a:rPr lang="en-US" sz="7200" b="1" dirty="0">`,
		`<a:t>TAGO</a:t></a:r><a:br>`,
		`<a:latin typeface="Arial"></a:latin>`,
		`name="Oval 3"`,
	} {
		if !strings.Contains(slide, want) {
			t.Errorf("slide1.xml missing %s", want)
		}
	}

	bullets := readPart(t, writeSample(t, WriteOptions{}), "ppt/slides/slide2.xml")
	if !strings.Contains(bullets, `<a:spcBef><a:spcPts val="800"></a:spcPts></a:spcBef><a:spcAft><a:spcPts val="400"></a:spcPts></a:spcAft>`) {
		t.Errorf("slide2.xml missing paragraph spacing:\n%s", bullets)
	}
}

func TestWrite_Presentation(t *testing.T) {
	pres := readPart(t, writeSample(t, WriteOptions{}), "ppt/presentation.xml")
	for _, want := range []string{
		`<p:sldId id="256" r:id="rId6"></p:sldId><p:sldId id="257" r:id="rId7"></p:sldId>`,
		`<p:sldSz cx="12191695" cy="6858000">`,
	} {
		if !strings.Contains(pres, want) {
			t.Errorf("presentation.xml missing %s:\n%s", want, pres)
		}
	}
}

func TestHundredths(t *testing.T) {
	tests := []struct {
		pt   float64
		want int
	}{
		{0, 0},
		{12, 1200},
		{10.5, 1050},
		{96, 9600},
	}
	for _, tt := range tests {
		if got := hundredths(tt.pt); got != tt.want {
			t.Errorf("hundredths(%v) = %d, want %d", tt.pt, got, tt.want)
		}
	}
}

// ============================================================================
// Round trip through the reader
// ============================================================================

func TestWrite_RoundTrip(t *testing.T) {
	data := writeSample(t, WriteOptions{})

	r, err := OpenBytes(data)
	if err != nil {
		t.Fatalf("OpenBytes() failed: %v", err)
	}
	if r.SlideCount() != 2 {
		t.Fatalf("SlideCount() = %d, want 2", r.SlideCount())
	}

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	want := sampleDocument()

	if doc.Width != want.Width || doc.Height != want.Height {
		t.Errorf("size = %dx%d, want %dx%d", doc.Width, doc.Height, want.Width, want.Height)
	}
	if doc.Metadata.Title != "Sample" || len(doc.Metadata.Keywords) != 2 {
		t.Errorf("metadata = %+v", doc.Metadata)
	}

	for i, ws := range want.Slides {
		gs := doc.Slides[i]
		if (ws.Background == nil) != (gs.Background == nil) {
			t.Errorf("slide %d background = %v, want %v", i+1, gs.Background, ws.Background)
		}
		if len(gs.Shapes) != len(ws.Shapes) {
			t.Fatalf("slide %d shapes = %d, want %d", i+1, len(gs.Shapes), len(ws.Shapes))
		}
		for j, wsh := range ws.Shapes {
			gsh := gs.Shapes[j]
			if gsh.BBox != wsh.BBox {
				t.Errorf("slide %d shape %d bbox = %+v, want %+v", i+1, j, gsh.BBox, wsh.BBox)
			}
			if gsh.Text() != wsh.Text() {
				t.Errorf("slide %d shape %d text = %q, want %q", i+1, j, gsh.Text(), wsh.Text())
			}
			if gsh.Kind != wsh.Kind || gsh.Geometry != wsh.Geometry || gsh.Name != wsh.Name {
				t.Errorf("slide %d shape %d = %v/%s/%q, want %v/%s/%q", i+1, j,
					gsh.Kind, gsh.Geometry, gsh.Name, wsh.Kind, wsh.Geometry, wsh.Name)
			}
		}
	}

	first := doc.Slides[0].Shapes[0].TextFrame.Paragraphs[0].TextRuns()[0]
	if first.Font.Size != 72 || !first.Font.Bold || *first.Font.Color != yellow {
		t.Errorf("first run font = %+v", first.Font)
	}
	card := doc.Slides[0].Shapes[1]
	if card.CornerRatio() != 0.08 || card.Line.Width != model.Pt(2) {
		t.Errorf("card = ratio %v line %+v", card.CornerRatio(), card.Line)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, sampleDocument(), WriteOptions{}); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after overwrite failed: %v", err)
	}
	defer r.Close()

	first, _ := os.ReadFile(path)
	if err := WriteFile(path, sampleDocument(), WriteOptions{}); err != nil {
		t.Fatalf("second WriteFile() failed: %v", err)
	}
	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Error("consecutive saves are not byte-identical")
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deck.pptx")
	if err := WriteFile(path, sampleDocument(), WriteOptions{}); err == nil {
		t.Error("WriteFile() into a missing directory should fail")
	}
}
