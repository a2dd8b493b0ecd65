package pptx

import "encoding/xml"

// Write-side mirrors of the PresentationML parts. Element names carry their
// namespace prefix literally so the output uses the conventional a:/p:/r:
// prefixes; the namespaces are declared on each part's root element.

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

type sldMarkup struct {
	XMLName   xml.Name        `xml:"p:sld"`
	XmlnsA    string          `xml:"xmlns:a,attr"`
	XmlnsR    string          `xml:"xmlns:r,attr"`
	XmlnsP    string          `xml:"xmlns:p,attr"`
	CSld      cSldMarkup      `xml:"p:cSld"`
	ClrMapOvr clrMapOvrMarkup `xml:"p:clrMapOvr"`
}

type clrMapOvrMarkup struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

type cSldMarkup struct {
	Bg     *bgMarkup    `xml:"p:bg,omitempty"`
	SpTree spTreeMarkup `xml:"p:spTree"`
}

type bgMarkup struct {
	BgPr bgPrMarkup `xml:"p:bgPr"`
}

type bgPrMarkup struct {
	SolidFill solidFillMarkup `xml:"a:solidFill"`
	EffectLst struct{}        `xml:"a:effectLst"`
}

type solidFillMarkup struct {
	SrgbClr valMarkup `xml:"a:srgbClr"`
}

type valMarkup struct {
	Val string `xml:"val,attr"`
}

type spTreeMarkup struct {
	NvGrpSpPr nvGrpSpPrMarkup `xml:"p:nvGrpSpPr"`
	GrpSpPr   grpSpPrMarkup   `xml:"p:grpSpPr"`
	Sp        []spMarkup      `xml:"p:sp"`
}

type nvGrpSpPrMarkup struct {
	CNvPr      cNvPrMarkup `xml:"p:cNvPr"`
	CNvGrpSpPr struct{}    `xml:"p:cNvGrpSpPr"`
	NvPr       struct{}    `xml:"p:nvPr"`
}

type cNvPrMarkup struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type grpSpPrMarkup struct {
	Xfrm grpXfrmMarkup `xml:"a:xfrm"`
}

type grpXfrmMarkup struct {
	Off   pointMarkup  `xml:"a:off"`
	Ext   extentMarkup `xml:"a:ext"`
	ChOff pointMarkup  `xml:"a:chOff"`
	ChExt extentMarkup `xml:"a:chExt"`
}

type pointMarkup struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extentMarkup struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// spMarkup is one p:sp shape.
type spMarkup struct {
	NvSpPr nvSpPrMarkup  `xml:"p:nvSpPr"`
	SpPr   spPrMarkup    `xml:"p:spPr"`
	Style  *styleMarkup  `xml:"p:style,omitempty"`
	TxBody *txBodyMarkup `xml:"p:txBody,omitempty"`
}

type nvSpPrMarkup struct {
	CNvPr   cNvPrMarkup   `xml:"p:cNvPr"`
	CNvSpPr cNvSpPrMarkup `xml:"p:cNvSpPr"`
	NvPr    struct{}      `xml:"p:nvPr"`
}

type cNvSpPrMarkup struct {
	TxBox string `xml:"txBox,attr,omitempty"`
}

type spPrMarkup struct {
	Xfrm      xfrmMarkup       `xml:"a:xfrm"`
	PrstGeom  prstGeomMarkup   `xml:"a:prstGeom"`
	NoFill    *struct{}        `xml:"a:noFill,omitempty"`
	SolidFill *solidFillMarkup `xml:"a:solidFill,omitempty"`
	Ln        *lnMarkup        `xml:"a:ln,omitempty"`
}

type xfrmMarkup struct {
	Off pointMarkup  `xml:"a:off"`
	Ext extentMarkup `xml:"a:ext"`
}

type prstGeomMarkup struct {
	Prst  string      `xml:"prst,attr"`
	AvLst avLstMarkup `xml:"a:avLst"`
}

type avLstMarkup struct {
	Gd []gdMarkup `xml:"a:gd"`
}

type gdMarkup struct {
	Name string `xml:"name,attr"`
	Fmla string `xml:"fmla,attr"`
}

type lnMarkup struct {
	W         int64            `xml:"w,attr,omitempty"`
	NoFill    *struct{}        `xml:"a:noFill,omitempty"`
	SolidFill *solidFillMarkup `xml:"a:solidFill,omitempty"`
}

// styleMarkup references the theme's line, fill, effect and font styles,
// as authoring tools do for every auto shape.
type styleMarkup struct {
	LnRef     styleRefMarkup `xml:"a:lnRef"`
	FillRef   styleRefMarkup `xml:"a:fillRef"`
	EffectRef styleRefMarkup `xml:"a:effectRef"`
	FontRef   fontRefMarkup  `xml:"a:fontRef"`
}

type styleRefMarkup struct {
	Idx       int       `xml:"idx,attr"`
	SchemeClr valMarkup `xml:"a:schemeClr"`
}

type fontRefMarkup struct {
	Idx       string    `xml:"idx,attr"`
	SchemeClr valMarkup `xml:"a:schemeClr"`
}

type txBodyMarkup struct {
	BodyPr   bodyPrMarkup `xml:"a:bodyPr"`
	LstStyle struct{}     `xml:"a:lstStyle"`
	P        []pMarkup    `xml:"a:p"`
}

type bodyPrMarkup struct {
	Wrap      string    `xml:"wrap,attr,omitempty"`
	RtlCol    string    `xml:"rtlCol,attr,omitempty"`
	Anchor    string    `xml:"anchor,attr,omitempty"`
	SpAutoFit *struct{} `xml:"a:spAutoFit,omitempty"`
}

// pMarkup is an a:p paragraph. Runs and breaks must keep their order, so it
// marshals its content by hand.
type pMarkup struct {
	PPr        *pPrMarkup
	Content    []interface{} // rMarkup or brMarkup
	EndParaRPr *rPrMarkup
}

// MarshalXML implements xml.Marshaler to preserve run and break order.
func (p pMarkup) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "a:p"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.PPr != nil {
		if err := e.EncodeElement(p.PPr, xml.StartElement{Name: xml.Name{Local: "a:pPr"}}); err != nil {
			return err
		}
	}

	for _, content := range p.Content {
		switch c := content.(type) {
		case rMarkup:
			if err := e.EncodeElement(c, xml.StartElement{Name: xml.Name{Local: "a:r"}}); err != nil {
				return err
			}
		case brMarkup:
			if err := e.EncodeElement(c, xml.StartElement{Name: xml.Name{Local: "a:br"}}); err != nil {
				return err
			}
		}
	}

	if p.EndParaRPr != nil {
		if err := e.EncodeElement(p.EndParaRPr, xml.StartElement{Name: xml.Name{Local: "a:endParaRPr"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

type pPrMarkup struct {
	Algn   string     `xml:"algn,attr,omitempty"`
	SpcBef *spcMarkup `xml:"a:spcBef,omitempty"`
	SpcAft *spcMarkup `xml:"a:spcAft,omitempty"`
}

type spcMarkup struct {
	SpcPts valIntMarkup `xml:"a:spcPts"`
}

type valIntMarkup struct {
	Val int `xml:"val,attr"`
}

type rMarkup struct {
	RPr rPrMarkup `xml:"a:rPr"`
	T   string    `xml:"a:t"`
}

type brMarkup struct {
	RPr rPrMarkup `xml:"a:rPr"`
}

type rPrMarkup struct {
	Lang      string           `xml:"lang,attr,omitempty"`
	Sz        int              `xml:"sz,attr,omitempty"`
	B         string           `xml:"b,attr,omitempty"`
	I         string           `xml:"i,attr,omitempty"`
	Dirty     string           `xml:"dirty,attr,omitempty"`
	SolidFill *solidFillMarkup `xml:"a:solidFill,omitempty"`
	Latin     *latinMarkup     `xml:"a:latin,omitempty"`
}

type latinMarkup struct {
	Typeface string `xml:"typeface,attr"`
}

// presentationMarkup is ppt/presentation.xml.
type presentationMarkup struct {
	XMLName         xml.Name             `xml:"p:presentation"`
	XmlnsA          string               `xml:"xmlns:a,attr"`
	XmlnsR          string               `xml:"xmlns:r,attr"`
	XmlnsP          string               `xml:"xmlns:p,attr"`
	SaveSubsetFonts string               `xml:"saveSubsetFonts,attr"`
	SldMasterIDLst  sldMasterIDLstMarkup `xml:"p:sldMasterIdLst"`
	SldIDLst        *sldIDLstMarkup      `xml:"p:sldIdLst,omitempty"`
	SldSz           extentMarkup         `xml:"p:sldSz"`
	NotesSz         extentMarkup         `xml:"p:notesSz"`
}

type sldMasterIDLstMarkup struct {
	SldMasterID []idRefMarkup `xml:"p:sldMasterId"`
}

type sldIDLstMarkup struct {
	SldID []idRefMarkup `xml:"p:sldId"`
}

type idRefMarkup struct {
	ID  int64  `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

// relationshipsMarkup is any .rels part.
type relationshipsMarkup struct {
	XMLName      xml.Name             `xml:"Relationships"`
	Xmlns        string               `xml:"xmlns,attr"`
	Relationship []relationshipMarkup `xml:"Relationship"`
}

type relationshipMarkup struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// contentTypesMarkup is [Content_Types].xml.
type contentTypesMarkup struct {
	XMLName  xml.Name         `xml:"Types"`
	Xmlns    string           `xml:"xmlns,attr"`
	Default  []defaultMarkup  `xml:"Default"`
	Override []overrideMarkup `xml:"Override"`
}

type defaultMarkup struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideMarkup struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// corePropertiesMarkup is docProps/core.xml.
type corePropertiesMarkup struct {
	XMLName        xml.Name      `xml:"cp:coreProperties"`
	XmlnsCP        string        `xml:"xmlns:cp,attr"`
	XmlnsDC        string        `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string        `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string        `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string        `xml:"xmlns:xsi,attr"`
	Title          string        `xml:"dc:title,omitempty"`
	Subject        string        `xml:"dc:subject,omitempty"`
	Creator        string        `xml:"dc:creator,omitempty"`
	Keywords       string        `xml:"cp:keywords,omitempty"`
	Description    string        `xml:"dc:description,omitempty"`
	LastModifiedBy string        `xml:"cp:lastModifiedBy,omitempty"`
	Revision       int           `xml:"cp:revision"`
	Created        w3cDateMarkup `xml:"dcterms:created"`
	Modified       w3cDateMarkup `xml:"dcterms:modified"`
}

type w3cDateMarkup struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropertiesMarkup is docProps/app.xml.
type appPropertiesMarkup struct {
	XMLName            xml.Name `xml:"Properties"`
	Xmlns              string   `xml:"xmlns,attr"`
	XmlnsVT            string   `xml:"xmlns:vt,attr"`
	TotalTime          int      `xml:"TotalTime"`
	Words              int      `xml:"Words"`
	Application        string   `xml:"Application"`
	PresentationFormat string   `xml:"PresentationFormat"`
	Paragraphs         int      `xml:"Paragraphs"`
	Slides             int      `xml:"Slides"`
	Notes              int      `xml:"Notes"`
	HiddenSlides       int      `xml:"HiddenSlides"`
	MMClips            int      `xml:"MMClips"`
	ScaleCrop          bool     `xml:"ScaleCrop"`
	LinksUpToDate      bool     `xml:"LinksUpToDate"`
	SharedDoc          bool     `xml:"SharedDoc"`
	HyperlinksChanged  bool     `xml:"HyperlinksChanged"`
	AppVersion         string   `xml:"AppVersion"`
}
