package docx

import "encoding/xml"

// WordprocessingML element structs for word/document.xml. Namespace prefixes
// are written literally; the declarations live on the document root.

type document struct {
	XMLName  xml.Name `xml:"w:document"`
	XmlnsW   string   `xml:"xmlns:w,attr"`
	XmlnsR   string   `xml:"xmlns:r,attr"`
	XmlnsWP  string   `xml:"xmlns:wp,attr"`
	XmlnsA   string   `xml:"xmlns:a,attr"`
	XmlnsPic string   `xml:"xmlns:pic,attr"`
	Body     body     `xml:"w:body"`
}

type body struct {
	XMLName xml.Name `xml:"w:body"`
	// Items holds *paragraph and *table values in document order.
	Items  []interface{}
	SectPr *sectPr `xml:"w:sectPr,omitempty"`
}

type paragraph struct {
	XMLName xml.Name   `xml:"w:p"`
	Props   *paraProps `xml:"w:pPr,omitempty"`
	Runs    []*run
}

// paraProps fields follow the CT_PPr schema order.
type paraProps struct {
	Style        *val     `xml:"w:pStyle,omitempty"`
	KeepNext     *val     `xml:"w:keepNext,omitempty"`
	KeepLines    *val     `xml:"w:keepLines,omitempty"`
	WidowControl *val     `xml:"w:widowControl,omitempty"`
	AdjustRight  *val     `xml:"w:adjustRightInd,omitempty"`
	Spacing      *spacing `xml:"w:spacing,omitempty"`
	Ind          *indent  `xml:"w:ind,omitempty"`
	Jc           *val     `xml:"w:jc,omitempty"`
	TextAlign    *val     `xml:"w:textAlignment,omitempty"`
	SectPr       *sectPr  `xml:"w:sectPr,omitempty"`
}

type val struct {
	Val string `xml:"w:val,attr"`
}

type spacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type indent struct {
	Left    string `xml:"w:left,attr,omitempty"`
	Right   string `xml:"w:right,attr,omitempty"`
	Hanging string `xml:"w:hanging,attr,omitempty"`
}

type run struct {
	XMLName xml.Name  `xml:"w:r"`
	Props   *runProps `xml:"w:rPr,omitempty"`
	Text    *text     `xml:"w:t,omitempty"`
	Drawing *drawing  `xml:"w:drawing,omitempty"`
}

type runProps struct {
	Fonts       *fonts `xml:"w:rFonts,omitempty"`
	Bold        *empty `xml:"w:b,omitempty"`
	Italic      *empty `xml:"w:i,omitempty"`
	CharSpacing *val   `xml:"w:spacing,omitempty"`
	Size        *val   `xml:"w:sz,omitempty"`
	SizeCs      *val   `xml:"w:szCs,omitempty"`
}

type fonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type empty struct{}

type text struct {
	Value string `xml:",chardata"`
}

type table struct {
	XMLName xml.Name  `xml:"w:tbl"`
	Props   tblProps  `xml:"w:tblPr"`
	Grid    tblGrid   `xml:"w:tblGrid"`
	Rows    []*tblRow `xml:"w:tr"`
}

type tblProps struct {
	Width  *tblWidth `xml:"w:tblW,omitempty"`
	Jc     *val      `xml:"w:jc,omitempty"`
	Layout *tblLayout `xml:"w:tblLayout,omitempty"`
}

type tblWidth struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type tblLayout struct {
	Type string `xml:"w:type,attr"`
}

type tblGrid struct {
	Cols []gridCol `xml:"w:gridCol"`
}

type gridCol struct {
	W string `xml:"w:w,attr,omitempty"`
}

type tblRow struct {
	XMLName xml.Name   `xml:"w:tr"`
	Cells   []*tblCell `xml:"w:tc"`
}

type tblCell struct {
	Props *tcProps     `xml:"w:tcPr,omitempty"`
	Paras []*paragraph `xml:"w:p"`
}

type tcProps struct {
	VAlign *val `xml:"w:vAlign,omitempty"`
}

// sectPr fields follow the CT_SectPr schema order; noBalance mirrors the
// element the legacy generator appended after the column definition.
type sectPr struct {
	Type      *val   `xml:"w:type,omitempty"`
	PgSz      *pgSz  `xml:"w:pgSz,omitempty"`
	PgMar     *pgMar `xml:"w:pgMar,omitempty"`
	Cols      *cols  `xml:"w:cols,omitempty"`
	NoBalance *val   `xml:"w:noBalance,omitempty"`
}

type pgSz struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type pgMar struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

type cols struct {
	Num        string `xml:"w:num,attr,omitempty"`
	Sep        string `xml:"w:sep,attr,omitempty"`
	Space      string `xml:"w:space,attr,omitempty"`
	EqualWidth string `xml:"w:equalWidth,attr,omitempty"`
	Cols       []col  `xml:"w:col"`
}

type col struct {
	W string `xml:"w:w,attr,omitempty"`
}

// Inline picture drawing, the minimal DrawingML wrapper Word needs.

type drawing struct {
	Inline inline `xml:"wp:inline"`
}

type inline struct {
	DistT   string  `xml:"distT,attr"`
	DistB   string  `xml:"distB,attr"`
	DistL   string  `xml:"distL,attr"`
	DistR   string  `xml:"distR,attr"`
	Extent  extent  `xml:"wp:extent"`
	DocPr   docPr   `xml:"wp:docPr"`
	Graphic graphic `xml:"a:graphic"`
}

type extent struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type docPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type graphic struct {
	Data graphicData `xml:"a:graphicData"`
}

type graphicData struct {
	URI string `xml:"uri,attr"`
	Pic pic    `xml:"pic:pic"`
}

type pic struct {
	NvPicPr  nvPicPr  `xml:"pic:nvPicPr"`
	BlipFill blipFill `xml:"pic:blipFill"`
	SpPr     spPr     `xml:"pic:spPr"`
}

type nvPicPr struct {
	CNvPr    docPr `xml:"pic:cNvPr"`
	CNvPicPr empty `xml:"pic:cNvPicPr"`
}

type blipFill struct {
	Blip    blip    `xml:"a:blip"`
	Stretch stretch `xml:"a:stretch"`
}

type blip struct {
	Embed string `xml:"r:embed,attr"`
}

type stretch struct {
	FillRect empty `xml:"a:fillRect"`
}

type spPr struct {
	Xfrm     xfrm     `xml:"a:xfrm"`
	PrstGeom prstGeom `xml:"a:prstGeom"`
}

type xfrm struct {
	Off offset `xml:"a:off"`
	Ext extent2 `xml:"a:ext"`
}

type offset struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extent2 struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type prstGeom struct {
	Prst  string `xml:"prst,attr"`
	AvLst empty  `xml:"a:avLst"`
}
