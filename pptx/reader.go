package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/pitchdeck/model"
)

// Reader provides access to PPTX document content.
type Reader struct {
	zipReader    *zip.Reader
	closer       io.Closer
	presentation *presentationXML
	slides       []*Slide
	coreProps    *corePropertiesXML
	appProps     *appPropertiesXML
	presRels     *relationshipsXML
}

// Open opens a PPTX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// OpenBytes reads a PPTX package held in memory.
func OpenBytes(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{zipReader: zr}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	// Parse presentation relationships first
	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	// Parse presentation to get slide order
	if err := r.parsePresentation(); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	if err := r.parseSlides(); err != nil {
		return nil, fmt.Errorf("parsing slides: %w", err)
	}

	// Metadata is optional
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	// Check for at least one slide
	hasSlide := false
	for name := range fileMap {
		if isSlidePart(name) {
			hasSlide = true
			break
		}
	}
	if !hasSlide {
		return fmt.Errorf("no slides found in presentation")
	}

	return nil
}

func isSlidePart(name string) bool {
	return strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml")
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseRelationships parses the presentation relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil // Relationships might be optional
	}

	r.presRels = &relationshipsXML{}
	return xml.Unmarshal(data, r.presRels)
}

// parsePresentation parses the main presentation file.
func (r *Reader) parsePresentation() error {
	data, err := r.getFileContent("ppt/presentation.xml")
	if err != nil {
		return err
	}

	r.presentation = &presentationXML{}
	return xml.Unmarshal(data, r.presentation)
}

// slidePaths returns slide part names in presentation order: the slide id
// list resolved through the presentation relationships, or file name order
// when either is missing.
func (r *Reader) slidePaths() []string {
	if r.presentation.SlideIdList != nil && r.presRels != nil {
		targets := make(map[string]string, len(r.presRels.Relationship))
		for _, rel := range r.presRels.Relationship {
			targets[rel.ID] = rel.Target
		}

		var paths []string
		for _, id := range r.presentation.SlideIdList.SlideId {
			target, ok := targets[id.RID]
			if !ok {
				continue
			}
			if strings.HasPrefix(target, "/") {
				paths = append(paths, strings.TrimPrefix(target, "/"))
				continue
			}
			paths = append(paths, path.Join("ppt", target))
		}
		if len(paths) > 0 {
			return paths
		}
	}

	var paths []string
	for _, f := range r.zipReader.File {
		if isSlidePart(f.Name) {
			paths = append(paths, f.Name)
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return extractSlideNumber(paths[i]) < extractSlideNumber(paths[j])
	})
	return paths
}

// parseSlides parses all slide files.
func (r *Reader) parseSlides() error {
	paths := r.slidePaths()
	r.slides = make([]*Slide, 0, len(paths))

	for _, slidePath := range paths {
		slide, err := r.parseSlide(slidePath, len(r.slides))
		if err != nil {
			continue // Skip slides that fail to parse
		}
		r.slides = append(r.slides, slide)
	}

	if len(r.slides) == 0 {
		return fmt.Errorf("no slides could be parsed")
	}

	return nil
}

// extractSlideNumber extracts the slide number from a path like "ppt/slides/slide1.xml"
func extractSlideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	num, _ := strconv.Atoi(name)
	return num
}

// parseSlide parses a single slide file.
func (r *Reader) parseSlide(slidePath string, index int) (*Slide, error) {
	data, err := r.getFileContent(slidePath)
	if err != nil {
		return nil, err
	}

	var sx slideXML
	if err := xml.Unmarshal(data, &sx); err != nil {
		return nil, err
	}

	slide := &Slide{
		Index:  index,
		Shapes: make([]Shape, 0, len(sx.CSld.SpTree.Sp)),
	}

	if bg := sx.CSld.Bg; bg != nil && bg.BgPr != nil {
		slide.Background = fillHex(bg.BgPr.SolidFill)
	}

	r.extractShapes(sx.CSld.SpTree.Sp, sx.CSld.SpTree.GrpSp, slide)
	slide.Title = titleOf(slide)

	return slide, nil
}

// extractShapes appends shapes in z-order, descending into groups.
func (r *Reader) extractShapes(sps []spXML, groups []grpSpXML, slide *Slide) {
	for i := range sps {
		slide.Shapes = append(slide.Shapes, r.extractShape(&sps[i]))
	}
	for _, grp := range groups {
		r.extractShapes(grp.Sp, grp.GrpSp, slide)
	}
}

// extractShape converts a p:sp element.
func (r *Reader) extractShape(sp *spXML) Shape {
	shape := Shape{
		ID:      sp.NvSpPr.CNvPr.ID,
		Name:    sp.NvSpPr.CNvPr.Name,
		TextBox: sp.NvSpPr.CNvSpPr.TxBox == "1",
	}

	if sp.SpPr.Xfrm != nil {
		shape.X = sp.SpPr.Xfrm.Off.X
		shape.Y = sp.SpPr.Xfrm.Off.Y
		shape.Width = sp.SpPr.Xfrm.Ext.Cx
		shape.Height = sp.SpPr.Xfrm.Ext.Cy
	}

	if g := sp.SpPr.PrstGeom; g != nil {
		shape.Geometry = g.Prst
		for _, gd := range g.AvLst.Gd {
			v, err := strconv.ParseInt(strings.TrimPrefix(gd.Fmla, "val "), 10, 64)
			if err != nil {
				continue // Only literal values are understood
			}
			shape.Guides = append(shape.Guides, Guide{Name: gd.Name, Value: v})
		}
	}

	shape.Fill = fillHex(sp.SpPr.SolidFill)

	if ln := sp.SpPr.Ln; ln != nil {
		shape.Line = &Line{
			None:  ln.NoFill != nil,
			Color: fillHex(ln.SolidFill),
			Width: ln.W,
		}
	}

	if sp.TxBody == nil {
		return shape
	}

	shape.Anchor = sp.TxBody.BodyPr.Anchor
	shape.WordWrap = sp.TxBody.BodyPr.Wrap == "square"

	texts := make([]string, 0, len(sp.TxBody.P))
	for i := range sp.TxBody.P {
		para := r.extractParagraph(&sp.TxBody.P[i])
		shape.Paragraphs = append(shape.Paragraphs, para)
		texts = append(texts, para.Text)
	}
	shape.Text = strings.TrimRight(strings.Join(texts, "\n"), "\n")

	return shape
}

// extractParagraph extracts text and formatting from a paragraph.
func (r *Reader) extractParagraph(p *pXML) Paragraph {
	para := Paragraph{
		Runs: make([]Run, 0, len(p.Content)),
	}

	if p.PPr != nil {
		para.Level = p.PPr.Lvl
		para.Alignment = p.PPr.Algn
		para.SpaceBefore = spacing(p.PPr.SpcBef)
		para.SpaceAfter = spacing(p.PPr.SpcAft)
		if p.PPr.BuNone == nil && p.PPr.BuChar != nil {
			para.IsBullet = true
			para.BulletChar = p.PPr.BuChar.Char
		}
	}

	var text strings.Builder
	for _, c := range p.Content {
		run := Run{Text: c.T, Break: c.Break}
		if c.Break {
			text.WriteString("\n")
		} else {
			text.WriteString(c.T)
		}
		if c.RPr != nil {
			run.Bold = c.RPr.B != nil && *c.RPr.B == 1
			run.Italic = c.RPr.I != nil && *c.RPr.I == 1
			run.FontSize = c.RPr.Sz
			run.Color = fillHex(c.RPr.SolidFill)
			if c.RPr.Latin != nil {
				run.Typeface = c.RPr.Latin.Typeface
			}
		}
		para.Runs = append(para.Runs, run)
	}

	para.Text = text.String()
	if strings.HasPrefix(para.Text, bulletGlyph) {
		para.IsBullet = true
	}
	return para
}

func spacing(s *spcXML) int {
	if s == nil || s.SpcPts == nil {
		return 0
	}
	return s.SpcPts.Val
}

func fillHex(f *solidFillXML) string {
	if f == nil || f.SrgbClr == nil {
		return ""
	}
	return strings.ToUpper(f.SrgbClr.Val)
}

// titleOf picks the text shape whose first run has the largest font size;
// the earliest shape wins ties.
func titleOf(s *Slide) string {
	title, best := "", 0
	for _, sh := range s.Shapes {
		if sh.Text == "" || len(sh.Paragraphs) == 0 {
			continue
		}
		runs := sh.Paragraphs[0].TextRuns()
		if len(runs) == 0 {
			continue
		}
		if runs[0].FontSize > best {
			best = runs[0].FontSize
			title = sh.Text
		}
	}
	return title
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	r.coreProps = &corePropertiesXML{}
	xml.Unmarshal(data, r.coreProps)
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	r.appProps = &appPropertiesXML{}
	xml.Unmarshal(data, r.appProps)
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide returns the slide at the given index (0-indexed).
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}

// Slides returns all slides in presentation order.
func (r *Reader) Slides() []*Slide {
	return r.slides
}

// Size returns the slide width and height in EMUs, or zeros when unset.
func (r *Reader) Size() (model.EMU, model.EMU) {
	if r.presentation.SlideSz == nil {
		return 0, 0
	}
	return model.EMU(r.presentation.SlideSz.Cx), model.EMU(r.presentation.SlideSz.Cy)
}

// Application returns the producing application from docProps/app.xml.
func (r *Reader) Application() string {
	if r.appProps == nil {
		return ""
	}
	return r.appProps.Application
}

// ExtractOptions holds options for text extraction.
type ExtractOptions struct {
	IncludeTitles bool  // Include slide titles (default: true)
	SlideNumbers  []int // Which slides to include (0-indexed, empty = all)
}

func (r *Reader) selectSlides(numbers []int) []*Slide {
	if len(numbers) == 0 {
		return r.slides
	}
	slides := make([]*Slide, 0, len(numbers))
	for _, idx := range numbers {
		if idx >= 0 && idx < len(r.slides) {
			slides = append(slides, r.slides[idx])
		}
	}
	return slides
}

// Text extracts and returns all text content from the presentation.
func (r *Reader) Text() (string, error) {
	return r.TextWithOptions(ExtractOptions{IncludeTitles: true})
}

// TextWithOptions extracts text content with the specified options.
func (r *Reader) TextWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	for i, slide := range r.selectSlides(opts.SlideNumbers) {
		if i > 0 {
			result.WriteString("\n\n")
		}

		if opts.IncludeTitles && slide.Title != "" {
			result.WriteString(slide.Title)
			result.WriteString("\n\n")
		}

		for _, sh := range slide.TextShapes() {
			if opts.IncludeTitles && sh.Text == slide.Title {
				continue // Already added
			}
			for _, para := range sh.Paragraphs {
				if para.Text != "" {
					result.WriteString(para.Text)
					result.WriteString("\n")
				}
			}
		}
	}

	return result.String(), nil
}

// Markdown returns the presentation content as Markdown.
func (r *Reader) Markdown() (string, error) {
	return r.MarkdownWithOptions(ExtractOptions{IncludeTitles: true})
}

// MarkdownWithOptions returns presentation content as Markdown with options.
// Slides are separated by horizontal rules.
func (r *Reader) MarkdownWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	for i, slide := range r.selectSlides(opts.SlideNumbers) {
		if i > 0 {
			result.WriteString("\n---\n\n")
		}
		if !opts.IncludeTitles {
			s := *slide
			s.Title = ""
			slide = &s
		}
		result.WriteString(slide.GetMarkdown())
	}

	return strings.TrimSpace(result.String()), nil
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{}
	if r.coreProps == nil {
		return meta
	}
	meta.Title = r.coreProps.Title
	meta.Author = r.coreProps.Creator
	meta.Subject = r.coreProps.Subject
	meta.Description = r.coreProps.Description
	if r.coreProps.Keywords != "" {
		meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
		for i, kw := range meta.Keywords {
			meta.Keywords[i] = strings.TrimSpace(kw)
		}
	}
	meta.Created, _ = time.Parse(time.RFC3339, strings.TrimSpace(r.coreProps.Created))
	meta.Modified, _ = time.Parse(time.RFC3339, strings.TrimSpace(r.coreProps.Modified))
	return meta
}

// Document rebuilds a model.Document from the package. Shape ids and names
// are kept as read.
func (r *Reader) Document() (*model.Document, error) {
	w, h := r.Size()
	doc := model.NewDocument(w, h)
	doc.Metadata = r.Metadata()

	for _, s := range r.slides {
		slide := doc.AddSlide()
		if s.Background != "" {
			c, err := model.ParseHex(s.Background)
			if err != nil {
				return nil, fmt.Errorf("slide %d background: %w", slide.Number, err)
			}
			slide.Background = &c
		}

		for _, sh := range s.Shapes {
			shape, err := modelShape(sh)
			if err != nil {
				return nil, fmt.Errorf("slide %d shape %d: %w", slide.Number, sh.ID, err)
			}
			slide.Shapes = append(slide.Shapes, shape)
		}
	}

	return doc, nil
}

func modelShape(sh Shape) (*model.Shape, error) {
	box := model.BBox{
		X:      model.EMU(sh.X),
		Y:      model.EMU(sh.Y),
		Width:  model.EMU(sh.Width),
		Height: model.EMU(sh.Height),
	}

	var shape *model.Shape
	if sh.TextBox {
		shape = model.NewTextBox(box)
	} else {
		shape = model.NewAutoShape(model.Geometry(sh.Geometry), box)
	}
	shape.ID = sh.ID
	shape.Name = sh.Name
	if sh.Geometry != "" {
		shape.Geometry = model.Geometry(sh.Geometry)
	}
	for _, g := range sh.Guides {
		shape.SetGuide(g.Name, g.Value)
	}

	var err error
	if shape.Fill, err = optionalColor(sh.Fill); err != nil {
		return nil, err
	}

	if sh.Line != nil {
		shape.Line = &model.Line{None: sh.Line.None, Width: model.EMU(sh.Line.Width)}
		if c, err := optionalColor(sh.Line.Color); err != nil {
			return nil, err
		} else if c != nil {
			shape.Line.Color = *c
		}
	}

	shape.TextFrame.Anchor = model.Anchor(sh.Anchor)
	shape.TextFrame.WordWrap = sh.WordWrap
	for _, p := range sh.Paragraphs {
		para := shape.TextFrame.AddParagraph()
		para.Align = model.Alignment(p.Alignment)
		para.SpaceBefore = float64(p.SpaceBefore) / 100
		para.SpaceAfter = float64(p.SpaceAfter) / 100
		for _, run := range p.Runs {
			f := model.Font{
				Size:   float64(run.FontSize) / 100,
				Bold:   run.Bold,
				Italic: run.Italic,
				Name:   run.Typeface,
			}
			if f.Color, err = optionalColor(run.Color); err != nil {
				return nil, err
			}
			if run.Break {
				para.AddBreak(f)
			} else {
				para.AddRun(run.Text, f)
			}
		}
	}

	return shape, nil
}

func optionalColor(hex string) (*model.Color, error) {
	if hex == "" {
		return nil, nil
	}
	c, err := model.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
