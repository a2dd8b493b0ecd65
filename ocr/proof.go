package ocr

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, numbered as in Tesseract.
const (
	PSM_AUTO         PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_BLOCK PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE  PageSegMode = 7  // Single text line
	PSM_SPARSE_TEXT  PageSegMode = 11 // Find as much text as possible
)

// Recognizer turns an encoded image into text. *Client implements it.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

// Proof is the outcome of reading back one slide image.
type Proof struct {
	Slide   int
	Text    string   // Recognized text
	Missing []string // Expected phrases not found in Text
}

// OK reports whether every expected phrase was found.
func (p Proof) OK() bool {
	return len(p.Missing) == 0
}

// String implements fmt.Stringer.
func (p Proof) String() string {
	if p.OK() {
		return fmt.Sprintf("slide %d: ok", p.Slide)
	}
	return fmt.Sprintf("slide %d: missing %q", p.Slide, p.Missing)
}

// Check recognizes image and looks for each phrase in the result. Matching
// ignores case, punctuation and runs of whitespace.
func Check(rec Recognizer, slide int, image []byte, phrases []string) (Proof, error) {
	text, err := rec.RecognizeImage(image)
	if err != nil {
		return Proof{}, fmt.Errorf("slide %d: %w", slide, err)
	}
	return Proof{Slide: slide, Text: text, Missing: Missing(text, phrases)}, nil
}

// Missing returns the phrases that do not occur in text.
func Missing(text string, phrases []string) []string {
	haystack := " " + normalize(text) + " "
	var missing []string
	for _, p := range phrases {
		needle := normalize(p)
		if needle == "" {
			continue
		}
		if !strings.Contains(haystack, " "+needle+" ") {
			missing = append(missing, p)
		}
	}
	return missing
}

// normalize lower-cases s, drops punctuation and collapses whitespace.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
