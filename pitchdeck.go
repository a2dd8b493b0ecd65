// Package pitchdeck provides a fluent API for building the TAGO Leap pitch
// deck as a PowerPoint package.
//
// Basic usage:
//
//	result, warnings, err := pitchdeck.New("v1").Save()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pitchdeck.FormatWarnings(warnings))
//	}
//	fmt.Println(result.Summary())
//
// With options:
//
//	result, _, err := pitchdeck.New("v2").
//	    Output("deck.pptx").
//	    Preview("preview").
//	    Outline("deck.md").
//	    Save()
//
// For lower-level control, the deck, pitch and pptx packages are available.
package pitchdeck

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tsawler/pitchdeck/deck"
	"github.com/tsawler/pitchdeck/format"
	"github.com/tsawler/pitchdeck/model"
	"github.com/tsawler/pitchdeck/ocr"
	"github.com/tsawler/pitchdeck/outline"
	"github.com/tsawler/pitchdeck/pitch"
	"github.com/tsawler/pitchdeck/pptx"
	"github.com/tsawler/pitchdeck/preview"
)

// proofWidth is the render width used for OCR; small text needs the pixels.
const proofWidth = 1920

// proofMinSize is the smallest font size, in hundredths of a point, whose
// text is expected to survive OCR.
const proofMinSize = 2800

// Deck configures one build. Each configuration method returns a new Deck,
// so a Deck can be shared and extended safely.
type Deck struct {
	version string
	options SaveOptions
}

// New returns a Deck that builds the named version ("v1" or "v2").
//
// Example:
//
//	result, _, err := pitchdeck.New("v1").Save()
func New(version string) *Deck {
	return &Deck{version: version, options: defaultOptions()}
}

func (d *Deck) clone() *Deck {
	return &Deck{version: d.version, options: d.options.clone()}
}

// Output sets the path the package is written to.
func (d *Deck) Output(path string) *Deck {
	nd := d.clone()
	nd.options.output = path
	return nd
}

// Preview renders every slide as PNG into dir after saving.
func (d *Deck) Preview(dir string) *Deck {
	nd := d.clone()
	nd.options.previewDir = dir
	return nd
}

// Outline writes a Markdown outline, or an HTML handout for .html paths,
// read back from the saved package.
func (d *Deck) Outline(path string) *Deck {
	nd := d.clone()
	nd.options.outline = path
	return nd
}

// Thumbnail controls whether docProps/thumbnail.jpeg is embedded.
func (d *Deck) Thumbnail(on bool) *Deck {
	nd := d.clone()
	nd.options.thumbnail = on
	return nd
}

// Proof reads the rendered slides back with OCR and reports headings that
// could not be recognized. It needs a build with -tags ocr.
func (d *Deck) Proof() *Deck {
	nd := d.clone()
	nd.options.proof = true
	return nd
}

// Logger sets the logger for build progress and skipped cosmetics.
func (d *Deck) Logger(l *slog.Logger) *Deck {
	nd := d.clone()
	if l != nil {
		nd.options.logger = l
	}
	return nd
}

// Build constructs the document in memory without writing anything.
func (d *Deck) Build() (*model.Document, []Warning, error) {
	v, err := pitch.Lookup(d.version)
	if err != nil {
		return nil, nil, err
	}
	b, err := v.Build(deck.WithLogger(d.options.logger))
	if err != nil {
		return nil, nil, err
	}
	return b.Document(), fromDeck(b.Warnings()), nil
}

// Result describes a saved deck.
type Result struct {
	Path     string
	Version  pitch.Version
	Slides   int
	Previews []string    // Preview image paths, in slide order
	Outline  string      // Outline path, if written
	Proofs   []ocr.Proof // OCR results, if proofing was requested
}

// Summary is the confirmation printed after a save.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Presentation saved to: %s", r.Path)
	for _, line := range r.Version.Summary {
		fmt.Fprintf(&b, "\n  - %s", line)
	}
	return b.String()
}

// Save builds the deck, writes it and then produces any requested extras.
// Warnings report cosmetic styling that was skipped.
func (d *Deck) Save() (*Result, []Warning, error) {
	v, err := pitch.Lookup(d.version)
	if err != nil {
		return nil, nil, err
	}
	logger := d.options.logger

	b, err := v.Build(deck.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	doc := b.Document()
	warnings := fromDeck(b.Warnings())

	var opts pptx.WriteOptions
	if d.options.thumbnail {
		thumb, err := preview.Thumbnail(doc)
		if err != nil {
			warnings = append(warnings, Warning{Message: fmt.Sprintf("thumbnail skipped: %v", err)})
		}
		opts.Thumbnail = thumb
	}

	res := &Result{
		Path:    d.options.output,
		Version: v,
		Slides:  doc.SlideCount(),
	}
	if res.Path == "" {
		res.Path = v.OutputPath
	}
	if f := format.Detect(res.Path); f != format.PPTX {
		warnings = append(warnings, Warning{Message: fmt.Sprintf("output %s does not end in .pptx", res.Path)})
	}
	if err := pptx.WriteFile(res.Path, doc, opts); err != nil {
		return nil, warnings, err
	}
	logger.Info("saved deck", "version", v.Name, "path", res.Path, "slides", res.Slides)

	if dir := d.options.previewDir; dir != "" {
		paths, err := preview.NewRenderer(preview.DefaultOptions()).SaveAll(doc, dir)
		if err != nil {
			return nil, warnings, fmt.Errorf("rendering previews: %w", err)
		}
		res.Previews = paths
		logger.Info("wrote previews", "dir", dir, "count", len(paths))
	}

	if path := d.options.outline; path != "" {
		o, err := outline.Load(res.Path)
		if err != nil {
			return nil, warnings, fmt.Errorf("reading back %s: %w", res.Path, err)
		}
		if err := o.WriteFile(path); err != nil {
			return nil, warnings, err
		}
		res.Outline = path
		logger.Info("wrote outline", "path", path)
	}

	if d.options.proof {
		proofs, err := proofDocument(doc)
		if err != nil {
			return nil, warnings, fmt.Errorf("proofing: %w", err)
		}
		res.Proofs = proofs
		for _, p := range proofs {
			if !p.OK() {
				warnings = append(warnings, Warning{Slide: p.Slide, Message: fmt.Sprintf("OCR could not read %q", p.Missing)})
			}
		}
	}

	return res, warnings, nil
}

// proofDocument renders each slide and checks its headings with OCR.
func proofDocument(doc *model.Document) ([]ocr.Proof, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return proofWith(client, doc)
}

func proofWith(rec ocr.Recognizer, doc *model.Document) ([]ocr.Proof, error) {
	r := preview.NewRenderer(preview.Options{Width: proofWidth})
	proofs := make([]ocr.Proof, 0, doc.SlideCount())
	for i, s := range doc.Slides {
		img, err := r.Render(doc, i)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := r.Encode(&buf, img); err != nil {
			return nil, err
		}
		p, err := ocr.Check(rec, s.Number, buf.Bytes(), headings(s))
		if err != nil {
			return nil, err
		}
		proofs = append(proofs, p)
	}
	return proofs, nil
}

// headings returns the lines of text set at proofMinSize or larger.
func headings(s *model.Slide) []string {
	var out []string
	for _, sh := range s.Shapes {
		if sh.TextFrame == nil {
			continue
		}
		for _, p := range sh.TextFrame.Paragraphs {
			runs := p.TextRuns()
			if len(runs) == 0 || runs[0].Font.Size*100 < proofMinSize {
				continue
			}
			for _, line := range strings.Split(p.Text(), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					out = append(out, line)
				}
			}
		}
	}
	return out
}

// Warning is a non-fatal issue found while building or saving a deck.
type Warning struct {
	Slide   int    // 1-based; 0 when not tied to a slide
	Shape   string // Shape name, if any
	Message string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	var b strings.Builder
	if w.Slide > 0 {
		fmt.Fprintf(&b, "slide %d: ", w.Slide)
	}
	if w.Shape != "" {
		fmt.Fprintf(&b, "%s: ", w.Shape)
	}
	b.WriteString(w.Message)
	return b.String()
}

// FormatWarnings joins warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

func fromDeck(ws []deck.Warning) []Warning {
	out := make([]Warning, 0, len(ws))
	for _, w := range ws {
		out = append(out, Warning{
			Slide:   w.Slide,
			Shape:   w.Shape,
			Message: fmt.Sprintf("%s skipped: %v", w.Op, w.Err),
		})
	}
	return out
}

// IsUnknownVersion reports whether err comes from an unregistered version
// name.
func IsUnknownVersion(err error) bool {
	return errors.Is(err, pitch.ErrUnknownVersion)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	v := pitchdeck.Must(pitch.Lookup("v2"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustBuild wraps a call to Build() or Save() and panics if the error is
// non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	doc := pitchdeck.MustBuild(pitchdeck.New("v1").Build())
func MustBuild[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
