// Package pptx reads and writes PPTX (Office Open XML Presentation) packages.
package pptx

import "encoding/xml"

// XML namespaces used in PPTX files.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIdList *slideIdListXML `xml:"sldIdLst"`
	SlideSz     *slideSzXML     `xml:"sldSz"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"` // r:id attribute for relationship
}

type slideSzXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// slideXML represents a ppt/slides/slide*.xml file structure.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	Bg     *bgXML    `xml:"bg"`
	SpTree spTreeXML `xml:"spTree"`
}

type bgXML struct {
	BgPr *bgPrXML `xml:"bgPr"`
}

type bgPrXML struct {
	SolidFill *solidFillXML `xml:"solidFill"`
}

type solidFillXML struct {
	SrgbClr *valXML `xml:"srgbClr"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

// spTreeXML represents the shape tree containing all shapes on a slide.
type spTreeXML struct {
	Sp    []spXML    `xml:"sp"`    // Regular shapes
	GrpSp []grpSpXML `xml:"grpSp"` // Grouped shapes
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// spXML represents a shape element.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML   `xml:"cNvPr"`
	CNvSpPr cNvSpPrXML `xml:"cNvSpPr"`
}

type cNvSpPrXML struct {
	TxBox string `xml:"txBox,attr"`
}

type spPrXML struct {
	Xfrm      *xfrmXML      `xml:"xfrm"`
	PrstGeom  *prstGeomXML  `xml:"prstGeom"`
	NoFill    *struct{}     `xml:"noFill"`
	SolidFill *solidFillXML `xml:"solidFill"`
	Ln        *lnXML        `xml:"ln"`
}

type xfrmXML struct {
	Off offXML `xml:"off"`
	Ext extXML `xml:"ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"` // X position in EMUs
	Y int64 `xml:"y,attr"` // Y position in EMUs
}

type extXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

type prstGeomXML struct {
	Prst  string `xml:"prst,attr"`
	AvLst struct {
		Gd []gdXML `xml:"gd"`
	} `xml:"avLst"`
}

type gdXML struct {
	Name string `xml:"name,attr"`
	Fmla string `xml:"fmla,attr"` // "val N"
}

type lnXML struct {
	W         int64         `xml:"w,attr"`
	NoFill    *struct{}     `xml:"noFill"`
	SolidFill *solidFillXML `xml:"solidFill"`
}

// txBodyXML represents text body content.
type txBodyXML struct {
	BodyPr bodyPrXML `xml:"bodyPr"`
	P      []pXML    `xml:"p"` // Paragraphs
}

type bodyPrXML struct {
	Wrap   string `xml:"wrap,attr"`   // square, none
	Anchor string `xml:"anchor,attr"` // t, ctr, b (top, center, bottom)
}

// pXML represents a paragraph. Runs and line breaks are kept in document
// order in Content.
type pXML struct {
	PPr        *pPrXML
	Content    []runXML
	EndParaRPr *rPrXML
}

// runXML is either a text run or a line break.
type runXML struct {
	RPr   *rPrXML
	T     string
	Break bool
}

// UnmarshalXML implements xml.Unmarshaler to keep a:r, a:br and a:fld in order.
func (p *pXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				p.PPr = &pPrXML{}
				if err := d.DecodeElement(p.PPr, &t); err != nil {
					return err
				}
			case "r", "fld":
				var r rXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, runXML{RPr: r.RPr, T: r.T})
			case "br":
				var br rXML
				if err := d.DecodeElement(&br, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, runXML{RPr: br.RPr, Break: true})
			case "endParaRPr":
				p.EndParaRPr = &rPrXML{}
				if err := d.DecodeElement(p.EndParaRPr, &t); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

type pPrXML struct {
	Lvl    int        `xml:"lvl,attr"`  // Bullet level (0-8)
	Algn   string     `xml:"algn,attr"` // Alignment: l, ctr, r, just
	SpcBef *spcXML    `xml:"spcBef"`
	SpcAft *spcXML    `xml:"spcAft"`
	BuNone *struct{}  `xml:"buNone"` // No bullet
	BuChar *buCharXML `xml:"buChar"` // Character bullet
}

type spcXML struct {
	SpcPts *struct {
		Val int `xml:"val,attr"` // Hundredths of a point
	} `xml:"spcPts"`
}

type buCharXML struct {
	Char string `xml:"char,attr"` // Bullet character
}

// rXML represents a text run (a:r), a field (a:fld) or a break (a:br).
type rXML struct {
	RPr *rPrXML `xml:"rPr"` // Run properties
	T   string  `xml:"t"`   // Text content
}

type rPrXML struct {
	Lang      string        `xml:"lang,attr"`
	Sz        int           `xml:"sz,attr"` // Font size in hundredths of a point
	B         *int          `xml:"b,attr"`  // Bold (1 = true)
	I         *int          `xml:"i,attr"`  // Italic (1 = true)
	SolidFill *solidFillXML `xml:"solidFill"`
	Latin     *struct {
		Typeface string `xml:"typeface,attr"`
	} `xml:"latin"`
}

// grpSpXML represents a group of shapes.
type grpSpXML struct {
	Sp    []spXML    `xml:"sp"`
	GrpSp []grpSpXML `xml:"grpSp"` // Nested groups
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName     xml.Name `xml:"coreProperties"`
	Title       string   `xml:"title"`
	Subject     string   `xml:"subject"`
	Creator     string   `xml:"creator"`
	Keywords    string   `xml:"keywords"`
	Description string   `xml:"description"`
	LastModBy   string   `xml:"lastModifiedBy"`
	Created     string   `xml:"created"`
	Modified    string   `xml:"modified"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
	Slides      int      `xml:"Slides"`
}
