package model

import "fmt"

// Paper is the full content model for one research paper. It is produced and
// mutated by the external form UI and consumed read-only by the serializers.
type Paper struct {
	Title           string      `json:"title"`
	Authors         []Author    `json:"authors"`
	Footnote        Footnote    `json:"footnote"`
	Abstract        string      `json:"abstract"`
	Keywords        string      `json:"keywords"`
	Sections        []Section   `json:"sections"`
	Acknowledgments string      `json:"acknowledgments"`
	References      []Reference `json:"references"`
}

type Author struct {
	Name         string        `json:"name"`
	Department   string        `json:"department"`
	Organization string        `json:"organization"`
	City         string        `json:"city"`
	State        string        `json:"state"`
	TamilNadu    string        `json:"tamilnadu"`
	CustomFields []CustomField `json:"custom_fields"`
}

// CustomField is one extra free-text line of author metadata, e.g. an email.
type CustomField struct {
	Value string `json:"value"`
}

// Footnote holds the manuscript dates / funding / DOI line. All fields are
// optional; the footnote is emitted only when at least one is set.
type Footnote struct {
	ReceivedDate string `json:"received_date"`
	RevisedDate  string `json:"revised_date"`
	AcceptedDate string `json:"accepted_date"`
	Funding      string `json:"funding"`
	DOI          string `json:"doi"`
}

func (f Footnote) Empty() bool {
	return f.ReceivedDate == "" && f.RevisedDate == "" && f.AcceptedDate == "" &&
		f.Funding == "" && f.DOI == ""
}

type Section struct {
	Title string `json:"title"`
	// Content is the legacy scalar body, consulted only when ContentBlocks
	// is empty.
	Content       string         `json:"content"`
	ContentBlocks []ContentBlock `json:"content_blocks"`
	Subsections   []Subsection   `json:"subsections"`
	// Figures is the legacy per-section figure list, rendered after all
	// content blocks and subsections with its own numbering.
	Figures []Figure `json:"figures"`
}

type BlockKind string

const (
	BlockText  BlockKind = "text"
	BlockImage BlockKind = "image"
)

// ContentBlock is one ordered unit of section body content, either a text
// paragraph or an image with caption and size category.
type ContentBlock struct {
	Kind    BlockKind `json:"type"`
	Content string    `json:"content,omitempty"`
	Data    []byte    `json:"data,omitempty"`
	Caption string    `json:"caption,omitempty"`
	Size    string    `json:"size,omitempty"`
}

type Subsection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Figure struct {
	Data    []byte `json:"data,omitempty"`
	Caption string `json:"caption"`
	Size    string `json:"size"`
}

// Reference is a single free-text reference line. The serializers always
// derive the [n] index from list position, never from the text itself.
type Reference struct {
	Text string `json:"text"`
}

// ImageOrdinal returns the 1-based figure number for the image block at
// blockIdx, counting image blocks from the start of the section up to and
// including it. Skipped images still consume a number.
func (s Section) ImageOrdinal(blockIdx int) int {
	n := 0
	for i := 0; i <= blockIdx && i < len(s.ContentBlocks); i++ {
		if s.ContentBlocks[i].Kind == BlockImage {
			n++
		}
	}
	return n
}

// BodyText returns the section's plain text body: the text blocks joined by
// blank lines, or the legacy scalar when no blocks exist.
func (s Section) BodyText() string {
	if len(s.ContentBlocks) == 0 {
		return s.Content
	}
	var out string
	for _, b := range s.ContentBlocks {
		if b.Kind != BlockText || b.Content == "" {
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += b.Content
	}
	return out
}

// FigureFileName is the image asset name the LaTeX output references for a
// legacy figure. Both indices are 1-based.
func FigureFileName(sectionIdx, figureIdx int) string {
	return fmt.Sprintf("figure_%d_%d.png", sectionIdx, figureIdx)
}
