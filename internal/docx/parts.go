package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"ieee-paper-app/config"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// imagePart is one embedded media file plus its relationship id.
type imagePart struct {
	FileName string // e.g. media/image1.png
	RelID    string
	Data     []byte
}

func contentTypesXML(images []imagePart) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	hasExt := map[string]bool{}
	for _, img := range images {
		ext := img.FileName[strings.LastIndex(img.FileName, ".")+1:]
		if hasExt[ext] {
			continue
		}
		hasExt[ext] = true
		b.WriteString(fmt.Sprintf(`<Default Extension="%s" ContentType="image/%s"/>`, ext, ext))
	}
	b.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	b.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	b.WriteString(`<Override PartName="/word/settings.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

func rootRelsXML() string {
	return xmlHeader +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`
}

func documentRelsXML(images []imagePart) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings" Target="settings.xml"/>`)
	for _, img := range images {
		b.WriteString(fmt.Sprintf(`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="%s"/>`, img.RelID, img.FileName))
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// stylesXML defines the document defaults the body relies on: justified
// 9.5pt body text with an exact 10pt line rule, and the two left-aligned bold
// heading levels.
func stylesXML(cfg config.IEEEConfig) string {
	font := cfg.FontName
	bodySz := cfg.FontSizeBody.HalfPoints()
	line := cfg.LineSpacing.Twips()

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)

	b.WriteString(fmt.Sprintf(`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:rPrDefault></w:docDefaults>`,
		font, font, bodySz, bodySz))

	b.WriteString(fmt.Sprintf(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/>`+
		`<w:pPr><w:widowControl w:val="0"/><w:spacing w:before="0" w:after="240" w:line="%d" w:lineRule="exact"/><w:ind w:firstLine="0"/><w:jc w:val="both"/></w:pPr>`+
		`<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:style>`,
		line, font, font, bodySz, bodySz))

	b.WriteString(fmt.Sprintf(`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>`+
		`<w:pPr><w:keepNext w:val="0"/><w:spacing w:before="0" w:after="0" w:line="%d" w:lineRule="exact"/><w:jc w:val="left"/></w:pPr>`+
		`<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:b/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:style>`,
		line, font, font, bodySz, bodySz))

	b.WriteString(fmt.Sprintf(`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>`+
		`<w:pPr><w:keepNext w:val="0"/><w:spacing w:before="120" w:after="0" w:line="%d" w:lineRule="exact"/><w:jc w:val="left"/></w:pPr>`+
		`<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:b/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:style>`,
		line, font, font, bodySz, bodySz))

	b.WriteString(`</w:styles>`)
	return b.String()
}

// settingsXML carries the global post-pass: conservative auto-hyphenation and
// the compatibility flags that stop the renderer from stretching inter-word
// spacing during justification.
func settingsXML() string {
	return xmlHeader +
		`<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:autoHyphenation w:val="1"/>` +
		`<w:doNotHyphenateCaps w:val="1"/>` +
		`<w:hyphenationZone w:val="720"/>` +
		`<w:consecutiveHyphenLimit w:val="2"/>` +
		`<w:compat>` +
		`<w:suppressAutoHyphens w:val="0"/>` +
		`<w:useWord2002TableStyleRules w:val="1"/>` +
		`<w:doNotExpandShiftReturn w:val="1"/>` +
		`<w:useSingleBorderforContiguousCells w:val="1"/>` +
		`<w:spacingInWholePoints w:val="1"/>` +
		`<w:doNotUseHTMLParagraphAutoSpacing w:val="1"/>` +
		`<w:useWord97LineBreakRules w:val="1"/>` +
		`<w:doNotAutoCompressPictures w:val="1"/>` +
		`<w:useNormalStyleForList w:val="1"/>` +
		`<w:doNotPromoteQF w:val="1"/>` +
		`<w:useAltKinsokuLineBreakRules w:val="0"/>` +
		`</w:compat>` +
		`</w:settings>`
}

// buildPackage assembles the OPC zip around the marshalled document part.
func buildPackage(documentXML []byte, cfg config.IEEEConfig, images []imagePart) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML(images))},
		{"_rels/.rels", []byte(rootRelsXML())},
		{"word/document.xml", documentXML},
		{"word/styles.xml", []byte(stylesXML(cfg))},
		{"word/settings.xml", []byte(settingsXML())},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML(images))},
	}
	for _, img := range images {
		parts = append(parts, struct {
			name string
			data []byte
		}{"word/" + img.FileName, img.Data})
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}
