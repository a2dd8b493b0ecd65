package pptx

import (
	"archive/zip"
	"bytes"
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/pitchdeck/model"
)

//go:embed templates/*.xml
var templates embed.FS

// Content types of the parts the writer emits.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctJPEG          = "image/jpeg"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps     = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles   = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Relationship types.
const (
	relOfficeDocument = nsRelationships + "/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relAppProps       = nsRelationships + "/extended-properties"
	relThumbnail      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
	relSlide          = nsRelationships + "/slide"
	relSlideMaster    = nsRelationships + "/slideMaster"
	relSlideLayout    = nsRelationships + "/slideLayout"
	relTheme          = nsRelationships + "/theme"
	relPresProps      = nsRelationships + "/presProps"
	relViewProps      = nsRelationships + "/viewProps"
	relTableStyles    = nsRelationships + "/tableStyles"
)

const (
	nsCoreProps = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsAppProps  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDocPropsV = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
)

// presentation.xml.rels ids below this are taken by the fixed parts.
const firstSlideRel = 6

// Slide ids in sldIdLst start here, as authoring tools number them.
const firstSlideID = 256

// Epoch is the timestamp written to the package when the document metadata
// carries none. A fixed value keeps repeated saves byte-identical.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrNilDocument is returned when asked to write a nil document.
var ErrNilDocument = errors.New("pptx: nil document")

// WriteOptions controls package output.
type WriteOptions struct {
	Application string // docProps/app.xml Application; default "pitchdeck"
	Thumbnail   []byte // JPEG written to docProps/thumbnail.jpeg; omitted when nil
}

// WriteFile serializes doc to filename, replacing any existing file. The
// parent directory must already exist.
func WriteFile(filename string, doc *model.Document, opts WriteOptions) error {
	var buf bytes.Buffer
	if err := Write(&buf, doc, opts); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

// Write serializes doc as a PresentationML package. Part order and zip
// timestamps are fixed, so equal documents produce equal bytes.
func Write(w io.Writer, doc *model.Document, opts WriteOptions) error {
	if doc == nil {
		return ErrNilDocument
	}
	if opts.Application == "" {
		opts.Application = "pitchdeck"
	}

	pw := &packageWriter{
		zw:       zip.NewWriter(w),
		modified: timestamp(doc.Metadata.Modified),
	}

	pw.part("[Content_Types].xml", contentTypes(doc, opts))
	pw.part("_rels/.rels", rootRelationships(opts))
	pw.part("docProps/core.xml", coreProperties(doc))
	pw.part("docProps/app.xml", appProperties(doc, opts))
	if opts.Thumbnail != nil {
		pw.raw("docProps/thumbnail.jpeg", opts.Thumbnail)
	}
	pw.part("ppt/presentation.xml", presentation(doc))
	pw.part("ppt/_rels/presentation.xml.rels", presentationRelationships(doc))
	pw.template("ppt/presProps.xml", "presProps.xml")
	pw.template("ppt/viewProps.xml", "viewProps.xml")
	pw.template("ppt/tableStyles.xml", "tableStyles.xml")
	pw.template("ppt/theme/theme1.xml", "theme1.xml")
	pw.template("ppt/slideMasters/slideMaster1.xml", "slideMaster1.xml")
	pw.part("ppt/slideMasters/_rels/slideMaster1.xml.rels", relationships(
		relationshipMarkup{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		relationshipMarkup{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
	))
	pw.template("ppt/slideLayouts/slideLayout1.xml", "slideLayout1.xml")
	pw.part("ppt/slideLayouts/_rels/slideLayout1.xml.rels", relationships(
		relationshipMarkup{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
	))

	for _, s := range doc.Slides {
		name := fmt.Sprintf("slide%d.xml", s.Number)
		pw.part("ppt/slides/"+name, slideMarkupFor(s))
		pw.part("ppt/slides/_rels/"+name+".rels", relationships(
			relationshipMarkup{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		))
	}

	if pw.err != nil {
		pw.zw.Close()
		return pw.err
	}
	if err := pw.zw.Close(); err != nil {
		return fmt.Errorf("closing package: %w", err)
	}
	return nil
}

// packageWriter writes parts in call order and keeps the first error.
type packageWriter struct {
	zw       *zip.Writer
	modified time.Time
	err      error
}

func (pw *packageWriter) part(name string, v interface{}) {
	if pw.err != nil {
		return
	}
	data, err := xml.Marshal(v)
	if err != nil {
		pw.err = fmt.Errorf("marshaling %s: %w", name, err)
		return
	}
	pw.raw(name, append([]byte(xmlHeader), data...))
}

func (pw *packageWriter) template(name, tmpl string) {
	if pw.err != nil {
		return
	}
	data, err := templates.ReadFile("templates/" + tmpl)
	if err != nil {
		pw.err = fmt.Errorf("loading template %s: %w", tmpl, err)
		return
	}
	pw.raw(name, data)
}

func (pw *packageWriter) raw(name string, data []byte) {
	if pw.err != nil {
		return
	}
	fw, err := pw.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: pw.modified,
	})
	if err != nil {
		pw.err = fmt.Errorf("creating %s: %w", name, err)
		return
	}
	if _, err := fw.Write(data); err != nil {
		pw.err = fmt.Errorf("writing %s: %w", name, err)
	}
}

func timestamp(t time.Time) time.Time {
	if t.IsZero() {
		return Epoch
	}
	return t.UTC()
}

func contentTypes(doc *model.Document, opts WriteOptions) *contentTypesMarkup {
	ct := &contentTypesMarkup{
		Xmlns: ctContentTypes,
		Default: []defaultMarkup{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
	}
	if opts.Thumbnail != nil {
		ct.Default = append(ct.Default, defaultMarkup{Extension: "jpeg", ContentType: ctJPEG})
	}

	ct.Override = []overrideMarkup{
		{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
		{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
		{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
		{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
		{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
		{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
		{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
		{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
		{PartName: "/docProps/app.xml", ContentType: ctAppProps},
	}
	for _, s := range doc.Slides {
		ct.Override = append(ct.Override, overrideMarkup{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", s.Number),
			ContentType: ctSlide,
		})
	}
	return ct
}

func relationships(rels ...relationshipMarkup) *relationshipsMarkup {
	return &relationshipsMarkup{Xmlns: nsPackageRels, Relationship: rels}
}

func rootRelationships(opts WriteOptions) *relationshipsMarkup {
	rels := relationships(
		relationshipMarkup{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
		relationshipMarkup{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
		relationshipMarkup{ID: "rId3", Type: relAppProps, Target: "docProps/app.xml"},
	)
	if opts.Thumbnail != nil {
		rels.Relationship = append(rels.Relationship,
			relationshipMarkup{ID: "rId4", Type: relThumbnail, Target: "docProps/thumbnail.jpeg"})
	}
	return rels
}

func presentationRelationships(doc *model.Document) *relationshipsMarkup {
	rels := relationships(
		relationshipMarkup{ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"},
		relationshipMarkup{ID: "rId2", Type: relPresProps, Target: "presProps.xml"},
		relationshipMarkup{ID: "rId3", Type: relViewProps, Target: "viewProps.xml"},
		relationshipMarkup{ID: "rId4", Type: relTheme, Target: "theme/theme1.xml"},
		relationshipMarkup{ID: "rId5", Type: relTableStyles, Target: "tableStyles.xml"},
	)
	for i, s := range doc.Slides {
		rels.Relationship = append(rels.Relationship, relationshipMarkup{
			ID:     "rId" + strconv.Itoa(firstSlideRel+i),
			Type:   relSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", s.Number),
		})
	}
	return rels
}

func presentation(doc *model.Document) *presentationMarkup {
	p := &presentationMarkup{
		XmlnsA:          nsDrawingML,
		XmlnsR:          nsRelationships,
		XmlnsP:          nsPresentationML,
		SaveSubsetFonts: "1",
		SldMasterIDLst: sldMasterIDLstMarkup{
			SldMasterID: []idRefMarkup{{ID: 2147483648, RID: "rId1"}},
		},
		SldSz:   extentMarkup{Cx: int64(doc.Width), Cy: int64(doc.Height)},
		NotesSz: extentMarkup{Cx: 6858000, Cy: 9144000},
	}
	if len(doc.Slides) > 0 {
		p.SldIDLst = &sldIDLstMarkup{}
		for i := range doc.Slides {
			p.SldIDLst.SldID = append(p.SldIDLst.SldID, idRefMarkup{
				ID:  int64(firstSlideID + i),
				RID: "rId" + strconv.Itoa(firstSlideRel+i),
			})
		}
	}
	return p
}

func coreProperties(doc *model.Document) *corePropertiesMarkup {
	meta := doc.Metadata
	created := timestamp(meta.Created)
	modified := timestamp(meta.Modified)
	return &corePropertiesMarkup{
		XmlnsCP:        nsCoreProps,
		XmlnsDC:        "http://purl.org/dc/elements/1.1/",
		XmlnsDCTerms:   "http://purl.org/dc/terms/",
		XmlnsDCMIType:  "http://purl.org/dc/dcmitype/",
		XmlnsXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		Title:          meta.Title,
		Subject:        meta.Subject,
		Creator:        meta.Author,
		Keywords:       strings.Join(meta.Keywords, ", "),
		Description:    meta.Description,
		LastModifiedBy: meta.Author,
		Revision:       1,
		Created:        w3cDateMarkup{Type: "dcterms:W3CDTF", Value: created.Format(time.RFC3339)},
		Modified:       w3cDateMarkup{Type: "dcterms:W3CDTF", Value: modified.Format(time.RFC3339)},
	}
}

func appProperties(doc *model.Document, opts WriteOptions) *appPropertiesMarkup {
	words, paragraphs := 0, 0
	for _, s := range doc.Slides {
		for _, sh := range s.Shapes {
			if sh.TextFrame == nil {
				continue
			}
			for _, p := range sh.TextFrame.Paragraphs {
				text := p.Text()
				if text == "" {
					continue
				}
				paragraphs++
				words += len(strings.Fields(text))
			}
		}
	}
	return &appPropertiesMarkup{
		Xmlns:              nsAppProps,
		XmlnsVT:            nsDocPropsV,
		Words:              words,
		Application:        opts.Application,
		PresentationFormat: "Custom",
		Paragraphs:         paragraphs,
		Slides:             len(doc.Slides),
		AppVersion:         "16.0000",
	}
}

func slideMarkupFor(s *model.Slide) *sldMarkup {
	m := &sldMarkup{
		XmlnsA: nsDrawingML,
		XmlnsR: nsRelationships,
		XmlnsP: nsPresentationML,
		CSld: cSldMarkup{
			SpTree: spTreeMarkup{
				NvGrpSpPr: nvGrpSpPrMarkup{CNvPr: cNvPrMarkup{ID: 1}},
			},
		},
	}
	if s.Background != nil {
		m.CSld.Bg = &bgMarkup{BgPr: bgPrMarkup{SolidFill: solidFill(*s.Background)}}
	}
	for _, sh := range s.Shapes {
		m.CSld.SpTree.Sp = append(m.CSld.SpTree.Sp, shapeMarkup(sh))
	}
	return m
}

func solidFill(c model.Color) solidFillMarkup {
	return solidFillMarkup{SrgbClr: valMarkup{Val: c.Hex()}}
}

func shapeMarkup(sh *model.Shape) spMarkup {
	sp := spMarkup{
		NvSpPr: nvSpPrMarkup{CNvPr: cNvPrMarkup{ID: sh.ID, Name: sh.Name}},
		SpPr: spPrMarkup{
			Xfrm: xfrmMarkup{
				Off: pointMarkup{X: int64(sh.BBox.X), Y: int64(sh.BBox.Y)},
				Ext: extentMarkup{Cx: int64(sh.BBox.Width), Cy: int64(sh.BBox.Height)},
			},
			PrstGeom: prstGeomMarkup{Prst: string(sh.Geometry)},
		},
	}
	if sh.Kind == model.KindTextBox {
		sp.NvSpPr.CNvSpPr.TxBox = "1"
	}
	for _, g := range sh.Guides {
		sp.SpPr.PrstGeom.AvLst.Gd = append(sp.SpPr.PrstGeom.AvLst.Gd, gdMarkup{
			Name: g.Name,
			Fmla: "val " + strconv.FormatInt(g.Value, 10),
		})
	}

	if sh.Fill != nil {
		fill := solidFill(*sh.Fill)
		sp.SpPr.SolidFill = &fill
	} else {
		sp.SpPr.NoFill = &struct{}{}
	}

	if sh.Line != nil {
		ln := &lnMarkup{}
		if sh.Line.None {
			ln.NoFill = &struct{}{}
		} else {
			ln.W = int64(sh.Line.Width)
			fill := solidFill(sh.Line.Color)
			ln.SolidFill = &fill
		}
		sp.SpPr.Ln = ln
	}

	if sh.Kind == model.KindAutoShape {
		sp.Style = &styleMarkup{
			LnRef:     styleRefMarkup{Idx: 1, SchemeClr: valMarkup{Val: "accent1"}},
			FillRef:   styleRefMarkup{Idx: 3, SchemeClr: valMarkup{Val: "accent1"}},
			EffectRef: styleRefMarkup{Idx: 2, SchemeClr: valMarkup{Val: "accent1"}},
			FontRef:   fontRefMarkup{Idx: "minor", SchemeClr: valMarkup{Val: "lt1"}},
		}
	}

	if sh.TextFrame != nil {
		sp.TxBody = textBodyMarkup(sh.Kind, sh.TextFrame)
	}
	return sp
}

func textBodyMarkup(kind model.ShapeKind, tf *model.TextFrame) *txBodyMarkup {
	body := &txBodyMarkup{
		BodyPr: bodyPrMarkup{RtlCol: "0", Anchor: string(tf.Anchor)},
	}
	switch {
	case tf.WordWrap:
		body.BodyPr.Wrap = "square"
	case kind == model.KindTextBox:
		body.BodyPr.Wrap = "none"
	}
	if kind == model.KindTextBox {
		body.BodyPr.SpAutoFit = &struct{}{}
	}

	for _, p := range tf.Paragraphs {
		body.P = append(body.P, paragraphMarkup(p))
	}
	// A text body needs at least one paragraph.
	if len(body.P) == 0 {
		body.P = append(body.P, pMarkup{EndParaRPr: &rPrMarkup{Lang: "en-US", Dirty: "0"}})
	}
	return body
}

func paragraphMarkup(p *model.Paragraph) pMarkup {
	m := pMarkup{}
	if p.Align != model.AlignUnset || p.SpaceBefore > 0 || p.SpaceAfter > 0 {
		m.PPr = &pPrMarkup{Algn: string(p.Align)}
		if p.SpaceBefore > 0 {
			m.PPr.SpcBef = &spcMarkup{SpcPts: valIntMarkup{Val: hundredths(p.SpaceBefore)}}
		}
		if p.SpaceAfter > 0 {
			m.PPr.SpcAft = &spcMarkup{SpcPts: valIntMarkup{Val: hundredths(p.SpaceAfter)}}
		}
	}

	var last model.Font
	for _, r := range p.Runs {
		last = r.Font
		if r.Break {
			m.Content = append(m.Content, brMarkup{RPr: runProperties(r.Font)})
			continue
		}
		m.Content = append(m.Content, rMarkup{RPr: runProperties(r.Font), T: r.Text})
	}

	end := rPrMarkup{Lang: "en-US", Sz: hundredths(last.Size), Dirty: "0"}
	m.EndParaRPr = &end
	return m
}

func runProperties(f model.Font) rPrMarkup {
	rpr := rPrMarkup{Lang: "en-US", Sz: hundredths(f.Size), Dirty: "0"}
	if f.Bold {
		rpr.B = "1"
	}
	if f.Italic {
		rpr.I = "1"
	}
	if f.Color != nil {
		fill := solidFill(*f.Color)
		rpr.SolidFill = &fill
	}
	if f.Name != "" {
		rpr.Latin = &latinMarkup{Typeface: f.Name}
	}
	return rpr
}

// hundredths converts points to the hundredths-of-a-point integers used by
// sz and spcPts.
func hundredths(pt float64) int {
	return int(math.Round(pt * 100))
}
