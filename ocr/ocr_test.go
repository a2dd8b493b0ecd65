//go:build ocr

package ocr

import (
	"bytes"
	"testing"

	"github.com/tsawler/pitchdeck/model"
	"github.com/tsawler/pitchdeck/preview"
)

// slidePNG renders one white slide with a large black caption.
func slidePNG(t *testing.T, text string) []byte {
	t.Helper()
	doc := model.NewDocument(model.Inches(13.333), model.Inches(7.5))
	s := doc.AddSlide()
	bg := model.White
	s.Background = &bg

	black := model.Black
	box := model.NewTextBox(model.NewBBoxInches(0.5, 2.5, 12.333, 2))
	box.TextFrame.WordWrap = true
	p := box.TextFrame.Paragraph()
	p.Align = model.AlignCenter
	p.SetText(text, model.Font{Size: 72, Bold: true, Color: &black})
	s.Add(box)

	r := preview.NewRenderer(preview.Options{Width: 1920})
	img, err := r.Render(doc, 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestCheck_RenderedSlide(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	proof, err := Check(client, 1, slidePNG(t, "Thank you!"), []string{"Thank you"})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !proof.OK() {
		t.Errorf("proof = %v (read %q)", proof, proof.Text)
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	// English should always be available
	err = client.SetLanguage("eng")
	if err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
}

func TestClose(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
