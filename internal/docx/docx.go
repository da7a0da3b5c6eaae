// Package docx renders the paper content model into an IEEE-styled
// WordprocessingML document, built fully in memory.
package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"ieee-paper-app/config"
	"ieee-paper-app/internal/model"
)

// AssetEmbedError reports an image payload the renderer could not use. The
// render aborts; no partial document is returned.
type AssetEmbedError struct {
	Caption string
	Err     error
}

func (e *AssetEmbedError) Error() string {
	if e.Caption != "" {
		return fmt.Sprintf("embedding figure %q: %v", e.Caption, e.Err)
	}
	return fmt.Sprintf("embedding figure: %v", e.Err)
}

func (e *AssetEmbedError) Unwrap() error { return e.Err }

type generator struct {
	cfg     config.IEEEConfig
	items   []interface{}
	images  []imagePart
	nextRel int
	nextPic int
}

// Generate renders the paper into .docx bytes. It fails fast on the
// title/author gate and on any unusable image payload.
func Generate(p *model.Paper, cfg config.IEEEConfig) ([]byte, error) {
	if err := model.CheckRenderable(p); err != nil {
		return nil, err
	}

	g := &generator{cfg: cfg, nextRel: 3, nextPic: 1}

	g.addTitle(p.Title)
	g.addAuthors(p.Authors)
	g.addFootnote(p.Footnote)
	g.addAbstract(p.Abstract)
	g.addKeywords(p.Keywords)
	g.endTitleBlock()

	for i, s := range p.Sections {
		if err := g.addSection(s, i+1, i == 0); err != nil {
			return nil, err
		}
	}
	g.addAcknowledgments(p.Acknowledgments)
	g.addReferences(p.References)

	doc := document{
		XmlnsW:   "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
		XmlnsR:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
		XmlnsWP:  "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing",
		XmlnsA:   "http://schemas.openxmlformats.org/drawingml/2006/main",
		XmlnsPic: "http://schemas.openxmlformats.org/drawingml/2006/picture",
		Body: body{
			Items:  g.items,
			SectPr: g.twoColumnSectPr(),
		},
	}

	marshalled, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document.xml: %w", err)
	}
	documentXML := append([]byte(xml.Header), marshalled...)

	return buildPackage(documentXML, cfg, g.images)
}

func ts(n int) string { return strconv.Itoa(n) }

func (g *generator) line() string { return ts(g.cfg.LineSpacing.Twips()) }

func (g *generator) bodyRun(s string) *run {
	return &run{
		Props: &runProps{
			Fonts:  &fonts{ASCII: g.cfg.FontName, HAnsi: g.cfg.FontName},
			Size:   &val{ts(g.cfg.FontSizeBody.HalfPoints())},
			SizeCs: &val{ts(g.cfg.FontSizeBody.HalfPoints())},
		},
		Text: &text{Value: s},
	}
}

func (g *generator) addTitle(title string) {
	r := g.bodyRun(title)
	r.Props.Bold = &empty{}
	r.Props.Size = &val{ts(g.cfg.FontSizeTitle.HalfPoints())}
	r.Props.SizeCs = &val{ts(g.cfg.FontSizeTitle.HalfPoints())}
	g.items = append(g.items, &paragraph{
		Props: &paraProps{
			Spacing: &spacing{Before: "0", After: "240"},
			Jc:      &val{"center"},
		},
		Runs: []*run{r},
	})
}

// addAuthors lays the authors out side by side, one table column per author.
// An author with an empty name still reserves a column; only the cell content
// is skipped.
func (g *generator) addAuthors(authors []model.Author) {
	if len(authors) == 0 {
		return
	}

	centered := func(s string, bold, italic bool) *paragraph {
		r := g.bodyRun(s)
		if bold {
			r.Props.Bold = &empty{}
		}
		if italic {
			r.Props.Italic = &empty{}
		}
		return &paragraph{
			Props: &paraProps{
				Spacing: &spacing{Before: "0", After: "40"},
				Jc:      &val{"center"},
			},
			Runs: []*run{r},
		}
	}

	row := &tblRow{}
	grid := tblGrid{}
	for _, a := range authors {
		grid.Cols = append(grid.Cols, gridCol{})
		// Every cell carries its mandatory leading empty paragraph.
		cell := &tblCell{Paras: []*paragraph{{}}}
		row.Cells = append(row.Cells, cell)
		if a.Name == "" {
			continue
		}
		cell.Props = &tcProps{VAlign: &val{"top"}}
		cell.Paras = append(cell.Paras, centered(a.Name, true, false))
		for _, field := range []string{a.Department, a.Organization, a.City, a.State, a.TamilNadu} {
			if field != "" {
				cell.Paras = append(cell.Paras, centered(field, false, true))
			}
		}
		for _, cf := range a.CustomFields {
			if cf.Value != "" {
				cell.Paras = append(cell.Paras, centered(cf.Value, false, true))
			}
		}
	}

	g.items = append(g.items, &table{
		Props: tblProps{
			Width:  &tblWidth{W: "0", Type: "auto"},
			Jc:     &val{"center"},
			Layout: &tblLayout{Type: "autofit"},
		},
		Grid: grid,
		Rows: []*tblRow{row},
	})
	// Spacer paragraph after the author table.
	g.items = append(g.items, &paragraph{
		Props: &paraProps{Spacing: &spacing{After: "240"}},
	})
}

// addFootnote emits the manuscript-dates sentence. The five segments keep
// their literal labels even when individual fields are empty; the paragraph
// is skipped only when all of them are.
func (g *generator) addFootnote(f model.Footnote) {
	if f.Empty() {
		return
	}
	sentence := fmt.Sprintf("Manuscript received %s; revised %s; accepted %s. This work was supported by %s. (DOI: %s)",
		f.ReceivedDate, f.RevisedDate, f.AcceptedDate, f.Funding, f.DOI)
	r := g.bodyRun(strings.TrimSpace(sentence))
	r.Props.Size = &val{ts(g.cfg.FontSizeCaption.HalfPoints())}
	r.Props.SizeCs = &val{ts(g.cfg.FontSizeCaption.HalfPoints())}
	g.items = append(g.items, &paragraph{
		Props: &paraProps{Spacing: &spacing{Before: "0", After: "120"}},
		Runs:  []*run{r},
	})
}

func (g *generator) abstractProps() *paraProps {
	return &paraProps{
		KeepNext:     &val{"0"},
		WidowControl: &val{"0"},
		AdjustRight:  &val{"0"},
		Spacing:      &spacing{Before: "0", After: g.line(), Line: g.line(), LineRule: "exact"},
		Jc:           &val{"both"},
		TextAlign:    &val{"baseline"},
	}
}

func (g *generator) addAbstract(abstract string) {
	if abstract == "" {
		return
	}
	lead := g.bodyRun("Abstract—")
	lead.Props.Italic = &empty{}
	g.items = append(g.items, &paragraph{
		Props: g.abstractProps(),
		Runs:  []*run{lead, g.bodyRun(abstract)},
	})
}

func (g *generator) addKeywords(keywords string) {
	if keywords == "" {
		return
	}
	g.items = append(g.items, &paragraph{
		Props: g.abstractProps(),
		Runs:  []*run{g.bodyRun("Keywords: " + keywords)},
	})
	// Near-zero-height stabilizer paragraph, a layout nudge only.
	g.items = append(g.items, &paragraph{
		Props: &paraProps{
			KeepNext:     &val{"0"},
			WidowControl: &val{"0"},
			Spacing:      &spacing{Before: "0", After: "0", Line: "0", LineRule: "auto"},
		},
	})
}

func (g *generator) pageMargins() *pgMar {
	return &pgMar{
		Top:    ts(g.cfg.MarginTop.Twips()),
		Right:  ts(g.cfg.MarginRight.Twips()),
		Bottom: ts(g.cfg.MarginBottom.Twips()),
		Left:   ts(g.cfg.MarginLeft.Twips()),
		Header: "720",
		Footer: "720",
		Gutter: "0",
	}
}

// endTitleBlock closes the single-column title section; the body that
// follows belongs to the two-column section at the end of the document.
func (g *generator) endTitleBlock() {
	g.items = append(g.items, &paragraph{
		Props: &paraProps{
			SectPr: &sectPr{
				PgSz:  &pgSz{W: "12240", H: "15840"},
				PgMar: g.pageMargins(),
			},
		},
	})
}

func (g *generator) twoColumnSectPr() *sectPr {
	colW := ts(int(g.cfg.ColumnWidth.Points()))
	columns := make([]col, g.cfg.ColumnCountBody)
	for i := range columns {
		columns[i] = col{W: colW}
	}
	return &sectPr{
		Type:  &val{"continuous"},
		PgSz:  &pgSz{W: "12240", H: "15840"},
		PgMar: g.pageMargins(),
		Cols: &cols{
			Num:        ts(g.cfg.ColumnCountBody),
			Sep:        "0",
			Space:      ts(int(g.cfg.ColumnSpacing.Points())),
			EqualWidth: "1",
			Cols:       columns,
		},
		NoBalance: &val{"1"},
	}
}

// justifiedParagraph mirrors the body-text recipe: exact line spacing, small
// indents on both sides, slight character compression to keep justification
// from stretching word gaps.
func (g *generator) justifiedParagraph(content, before, after string) *paragraph {
	ind := ts(g.cfg.ColumnIndent.Twips())
	r := g.bodyRun(content)
	r.Props.CharSpacing = &val{"-5"}
	return &paragraph{
		Props: &paraProps{
			KeepNext:     &val{"0"},
			KeepLines:    &val{"0"},
			WidowControl: &val{"0"},
			AdjustRight:  &val{"0"},
			Spacing:      &spacing{Before: before, After: after, Line: g.line(), LineRule: "exact"},
			Ind:          &indent{Left: ind, Right: ind},
			Jc:           &val{"both"},
			TextAlign:    &val{"baseline"},
		},
		Runs: []*run{r},
	}
}

func (g *generator) heading(level int, content, before string) *paragraph {
	style := "Heading1"
	if level == 2 {
		style = "Heading2"
	}
	return &paragraph{
		Props: &paraProps{
			Style:        &val{style},
			KeepNext:     &val{"0"},
			KeepLines:    &val{"0"},
			WidowControl: &val{"0"},
			Spacing:      &spacing{Before: before, After: "0"},
		},
		Runs: []*run{{Text: &text{Value: content}}},
	}
}

func (g *generator) addSection(s model.Section, idx int, first bool) error {
	if s.Title != "" {
		g.items = append(g.items, g.heading(1, fmt.Sprintf("%d. %s", idx, strings.ToUpper(s.Title)), g.line()))
	}

	for i, block := range s.ContentBlocks {
		switch block.Kind {
		case model.BlockText:
			if block.Content == "" {
				continue
			}
			before := "60"
			if first && i == 0 {
				before = g.line()
			}
			g.items = append(g.items, g.justifiedParagraph(block.Content, before, "240"))
		case model.BlockImage:
			// Images without both a payload and a caption are skipped, but
			// still counted by the ordinal.
			if len(block.Data) == 0 || block.Caption == "" {
				continue
			}
			caption := fmt.Sprintf("Fig. %d.%d: %s", idx, s.ImageOrdinal(i), block.Caption)
			if err := g.addFigure(block.Data, block.Size, caption); err != nil {
				return err
			}
		}
	}

	// Legacy scalar content, consulted only when there are no blocks.
	if s.Content != "" && len(s.ContentBlocks) == 0 {
		before := "60"
		if first {
			before = g.line()
		}
		g.items = append(g.items, g.justifiedParagraph(s.Content, before, "240"))
	}

	for j, sub := range s.Subsections {
		if sub.Title != "" {
			g.items = append(g.items, g.heading(2, fmt.Sprintf("%d.%d %s", idx, j+1, sub.Title), g.line()))
		}
		if sub.Content != "" {
			g.items = append(g.items, g.justifiedParagraph(sub.Content, "20", "240"))
		}
	}

	// Legacy figures render after everything else, numbered from 1
	// independently of any image blocks above.
	for j, fig := range s.Figures {
		if len(fig.Data) == 0 || fig.Caption == "" {
			continue
		}
		caption := fmt.Sprintf("Fig. %d.%d: %s", idx, j+1, fig.Caption)
		if err := g.addFigure(fig.Data, fig.Size, caption); err != nil {
			return err
		}
	}
	return nil
}

// addFigure embeds the image centered at its category width, clamped to the
// maximum figure height with a proportional width rescale, and follows it
// with the caption paragraph.
func (g *generator) addFigure(data []byte, size, caption string) error {
	r, err := g.embedImage(data, size, caption)
	if err != nil {
		return err
	}
	g.items = append(g.items, &paragraph{
		Props: &paraProps{
			Spacing: &spacing{Before: "120", After: "120"},
			Jc:      &val{"center"},
		},
		Runs: []*run{r},
	})

	cr := g.bodyRun(caption)
	cr.Props.Size = &val{ts(g.cfg.FontSizeCaption.HalfPoints())}
	cr.Props.SizeCs = &val{ts(g.cfg.FontSizeCaption.HalfPoints())}
	g.items = append(g.items, &paragraph{
		Props: &paraProps{
			Spacing: &spacing{Before: "0", After: "240"},
			Jc:      &val{"center"},
		},
		Runs: []*run{cr},
	})
	return nil
}

func (g *generator) embedImage(data []byte, size, caption string) (*run, error) {
	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetEmbedError{Caption: caption, Err: err}
	}
	var ext string
	switch format {
	case "png":
		ext = "png"
	case "jpeg":
		ext = "jpeg"
	default:
		return nil, &AssetEmbedError{Caption: caption, Err: fmt.Errorf("unsupported image format %q", format)}
	}

	width := float64(g.cfg.FigureWidth(size).EMU())
	height := width * float64(imgCfg.Height) / float64(imgCfg.Width)
	maxHeight := float64(g.cfg.MaxFigureHeight.EMU())
	if height > maxHeight {
		width = width * maxHeight / height
		height = maxHeight
	}

	relID := fmt.Sprintf("rId%d", g.nextRel)
	g.nextRel++
	name := fmt.Sprintf("media/image%d.%s", len(g.images)+1, ext)
	g.images = append(g.images, imagePart{FileName: name, RelID: relID, Data: data})

	id := g.nextPic
	g.nextPic++
	picName := fmt.Sprintf("Picture %d", id)

	return &run{
		Drawing: &drawing{
			Inline: inline{
				DistT:  "0",
				DistB:  "0",
				DistL:  "0",
				DistR:  "0",
				Extent: extent{CX: int64(width), CY: int64(height)},
				DocPr:  docPr{ID: id, Name: picName},
				Graphic: graphic{
					Data: graphicData{
						URI: "http://schemas.openxmlformats.org/drawingml/2006/picture",
						Pic: pic{
							NvPicPr: nvPicPr{CNvPr: docPr{ID: id, Name: picName}},
							BlipFill: blipFill{
								Blip: blip{Embed: relID},
							},
							SpPr: spPr{
								Xfrm: xfrm{
									Ext: extent2{CX: int64(width), CY: int64(height)},
								},
								PrstGeom: prstGeom{Prst: "rect"},
							},
						},
					},
				},
			},
		},
	}, nil
}

func (g *generator) addAcknowledgments(text string) {
	if text == "" {
		return
	}
	g.items = append(g.items, g.heading(1, "Acknowledgment", "0"))

	ind := ts(g.cfg.ColumnIndent.Twips())
	g.items = append(g.items, &paragraph{
		Props: &paraProps{
			KeepNext:     &val{"0"},
			KeepLines:    &val{"1"},
			WidowControl: &val{"0"},
			Spacing:      &spacing{Before: "60", After: "240", Line: g.line(), LineRule: "exact"},
			Ind:          &indent{Left: ind, Right: ind},
			Jc:           &val{"both"},
		},
		Runs: []*run{g.bodyRun(text)},
	})
}

// addReferences emits each non-empty reference as one hanging-indent
// paragraph. The [n] index is the 1-based list position, whatever the text
// itself claims.
func (g *generator) addReferences(refs []model.Reference) {
	if len(refs) == 0 {
		return
	}
	g.items = append(g.items, g.heading(1, "References", "0"))

	hang := config.Inches(0.25)
	left := ts(g.cfg.ColumnIndent.Twips() + hang.Twips())
	right := ts(g.cfg.ColumnIndent.Twips())
	for i, ref := range refs {
		if ref.Text == "" {
			continue
		}
		g.items = append(g.items, &paragraph{
			Props: &paraProps{
				KeepNext:     &val{"0"},
				KeepLines:    &val{"1"},
				WidowControl: &val{"0"},
				Spacing:      &spacing{Before: "60", After: "240", Line: g.line(), LineRule: "exact"},
				Ind:          &indent{Left: left, Right: right, Hanging: ts(hang.Twips())},
				Jc:           &val{"both"},
			},
			Runs: []*run{g.bodyRun(fmt.Sprintf("[%d] %s", i+1, ref.Text))},
		})
	}
}
