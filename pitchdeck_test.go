package pitchdeck

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/pitchdeck/deck"
	"github.com/tsawler/pitchdeck/format"
	"github.com/tsawler/pitchdeck/model"
	"github.com/tsawler/pitchdeck/ocr"
	"github.com/tsawler/pitchdeck/pptx"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_UnknownVersion(t *testing.T) {
	_, _, err := New("v9").Logger(quietLogger()).Save()
	if err == nil {
		t.Fatal("expected error for unknown version")
	}
	if !IsUnknownVersion(err) {
		t.Errorf("IsUnknownVersion(%v) = false", err)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		version string
		slides  int
	}{
		{"v1", 11},
		{"v2", 12},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			doc, warnings, err := New(tt.version).Logger(quietLogger()).Build()
			if err != nil {
				t.Fatalf("Build() failed: %v", err)
			}
			if doc.SlideCount() != tt.slides {
				t.Errorf("SlideCount() = %d, want %d", doc.SlideCount(), tt.slides)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings:\n%s", FormatWarnings(warnings))
			}
		})
	}
}

func TestChainImmutability(t *testing.T) {
	base := New("v1")
	withOutput := base.Output("a.pptx")
	withPreview := base.Preview("preview").Thumbnail(false)

	if base.options.output != "" || base.options.previewDir != "" || !base.options.thumbnail {
		t.Errorf("base changed: %+v", base.options)
	}
	if withOutput.options.output != "a.pptx" || withOutput.options.previewDir != "" {
		t.Errorf("withOutput = %+v", withOutput.options)
	}
	if withPreview.options.output != "" || withPreview.options.previewDir != "preview" || withPreview.options.thumbnail {
		t.Errorf("withPreview = %+v", withPreview.options)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "TAGO_Leap_Pitch_Deck.pptx")

	res, warnings, err := New("v1").Logger(quietLogger()).Output(path).Save()
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings:\n%s", FormatWarnings(warnings))
	}
	if res.Path != path || res.Slides != 11 {
		t.Errorf("result = %+v", res)
	}
	if got, want := res.Summary(), "Presentation saved to: "+path; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	r, err := pptx.Open(path)
	if err != nil {
		t.Fatalf("saved package does not open: %v", err)
	}
	defer r.Close()
	if r.SlideCount() != 11 {
		t.Errorf("read back %d slides", r.SlideCount())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if f, err := format.DetectFromReader(bytes.NewReader(data), int64(len(data))); err != nil || f != format.PPTX {
		t.Errorf("DetectFromReader() = %v, %v; want PPTX", f, err)
	}
}

func TestSave_OutputExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.zip")

	_, warnings, err := New("v1").Logger(quietLogger()).Output(path).Thumbnail(false).Save()
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "does not end in .pptx") {
		t.Errorf("warnings = %v, want one extension warning", warnings)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("deck not written: %v", err)
	}
}

func TestSave_ByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	d := New("v2").Logger(quietLogger()).Output(path)

	if _, _, err := d.Save(); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := d.Save(); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two saves to the same path differ")
	}
}

func TestSave_Extras(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	outlinePath := filepath.Join(dir, "deck.html")

	res, _, err := New("v2").Logger(quietLogger()).
		Output(path).
		Preview(filepath.Join(dir, "preview")).
		Outline(outlinePath).
		Save()
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if len(res.Previews) != 12 {
		t.Errorf("got %d previews, want 12", len(res.Previews))
	}
	data, err := os.ReadFile(outlinePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `id="slide-11"`) || !strings.Contains(string(data), "Roadmap") {
		t.Error("handout lacks the roadmap slide")
	}
	if !strings.Contains(res.Summary(), "\n  - 12 slides") {
		t.Errorf("Summary() = %q", res.Summary())
	}
}

func TestSave_Thumbnail(t *testing.T) {
	dir := t.TempDir()
	with := filepath.Join(dir, "with.pptx")
	without := filepath.Join(dir, "without.pptx")

	if _, _, err := New("v1").Logger(quietLogger()).Output(with).Save(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := New("v1").Logger(quietLogger()).Output(without).Thumbnail(false).Save(); err != nil {
		t.Fatal(err)
	}
	a, _ := os.Stat(with)
	b, _ := os.Stat(without)
	if a.Size() <= b.Size() {
		t.Errorf("thumbnail did not grow the package: %d <= %d", a.Size(), b.Size())
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deck.pptx")
	_, _, err := New("v1").Logger(quietLogger()).Output(path).Save()
	if err == nil {
		t.Fatal("expected error when the parent directory is missing")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

type fakeRecognizer struct{}

// RecognizeImage pretends every slide reads "TAGO" and nothing else.
func (fakeRecognizer) RecognizeImage([]byte) (string, error) {
	return "TAGO", nil
}

func TestProofWith(t *testing.T) {
	b, err := deck.New(deck.WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	s := b.NewSlide(deck.Black)
	b.AddText(s, deck.Box(0.5, 0.8, 12.333, 1.5), "TAGO", deck.Size(96), deck.Bold())
	s = b.NewSlide(deck.Black)
	b.AddText(s, deck.Box(0.5, 0.3, 12.333, 0.8), "Demo Flow", deck.Size(44))
	b.AddText(s, deck.Box(0.5, 1, 12.333, 0.5), "small print", deck.Size(12))

	proofs, err := proofWith(fakeRecognizer{}, b.Document())
	if err != nil {
		t.Fatalf("proofWith() failed: %v", err)
	}
	want := []ocr.Proof{
		{Slide: 1, Text: "TAGO"},
		{Slide: 2, Text: "TAGO", Missing: []string{"Demo Flow"}},
	}
	if !reflect.DeepEqual(proofs, want) {
		t.Errorf("proofs = %+v, want %+v", proofs, want)
	}
}

func TestHeadings(t *testing.T) {
	s := &model.Slide{}
	white := model.White
	big := model.NewTextBox(model.NewBBoxInches(0, 0, 10, 2))
	big.TextFrame.Paragraph().SetText("TAGO\nLEAP", model.Font{Size: 72, Color: &white})
	small := model.NewTextBox(model.NewBBoxInches(0, 2, 10, 1))
	small.TextFrame.Paragraph().SetText("Hyperstack Hackathon 2025", model.Font{Size: 14})
	s.Add(big)
	s.Add(small)

	if got, want := headings(s), []string{"TAGO", "LEAP"}; !reflect.DeepEqual(got, want) {
		t.Errorf("headings() = %q, want %q", got, want)
	}
}

func TestWarning_String(t *testing.T) {
	tests := []struct {
		w    Warning
		want string
	}{
		{Warning{Message: "thumbnail skipped"}, "thumbnail skipped"},
		{Warning{Slide: 3, Shape: "Oval 4", Message: "corner radius skipped"}, "slide 3: Oval 4: corner radius skipped"},
		{Warning{Slide: 2, Message: "OCR could not read"}, "slide 2: OCR could not read"},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatWarnings(t *testing.T) {
	ws := []Warning{{Slide: 1, Message: "a"}, {Message: "b"}}
	if got := FormatWarnings(ws); got != "slide 1: a\nb" {
		t.Errorf("FormatWarnings() = %q", got)
	}
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q", got)
	}
}

func TestFromDeck(t *testing.T) {
	got := fromDeck([]deck.Warning{{Slide: 2, Shape: "Oval 3", Op: "corner radius", Err: deck.ErrNoCornerRadius}})
	if len(got) != 1 || got[0].Slide != 2 || got[0].Shape != "Oval 3" || !strings.HasPrefix(got[0].Message, "corner radius skipped: ") {
		t.Errorf("fromDeck() = %+v", got)
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}

func TestMustBuild(t *testing.T) {
	doc := MustBuild(New("v1").Logger(quietLogger()).Build())
	if doc.SlideCount() != 11 {
		t.Errorf("SlideCount() = %d", doc.SlideCount())
	}
}
