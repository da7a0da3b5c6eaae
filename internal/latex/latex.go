// Package latex renders the paper content model into IEEEtran LaTeX source
// through a fixed template, structurally parallel to the docx output.
package latex

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"ieee-paper-app/internal/model"
)

const documentTemplate = `
\documentclass[conference]{IEEEtran}
\IEEEoverridecommandlockouts
\usepackage{cite}
\usepackage{amsmath,amssymb,amsfonts}
\usepackage{graphicx}
\usepackage{textcomp}
\usepackage{xcolor}

\begin{document}

\title{ {{ .Title }} }
\author{ {{ .AuthorsLatex }} }

\maketitle

\begin{abstract}
{{ .Abstract }}
\end{abstract}

\begin{IEEEkeywords}
{{ .Keywords }}
\end{IEEEkeywords}

{{ range .Sections }}\section{ {{ .Title }} }
{{ .Content }}
{{ range .Subsections }}\subsection{ {{ .Title }} }
{{ .Content }}
{{ end }}{{ range .Figures }}\begin{figure}[h]
\centering
\includegraphics[width=0.8\columnwidth]{ {{ .FileName }} }
\caption{ {{ .Caption }} }
\label{ {{ .Label }} }
\end{figure}
{{ end }}{{ end }}
\section*{Acknowledgment}
{{ .Acknowledgments }}

\begin{thebibliography}{ {{ .RefCount }} }
{{ range $i, $ref := .References }}\bibitem{ {{ inc $i }} }
{{ $ref.Text }}
{{ end }}\end{thebibliography}

\end{document}
`

var tmpl = template.Must(template.New("ieee").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(documentTemplate))

type sectionView struct {
	Title       string
	Content     string
	Subsections []model.Subsection
	Figures     []figureView
}

type figureView struct {
	FileName string
	Caption  string
	Label    string
}

type paperView struct {
	Title           string
	AuthorsLatex    string
	Abstract        string
	Keywords        string
	Sections        []sectionView
	Acknowledgments string
	RefCount        int
	References      []model.Reference
}

// Generate renders the paper into .tex bytes. The same title/author gate as
// the document serializer applies.
func Generate(p *model.Paper) ([]byte, error) {
	if err := model.CheckRenderable(p); err != nil {
		return nil, err
	}

	view := paperView{
		Title:           p.Title,
		AuthorsLatex:    authorBlocks(p.Authors),
		Abstract:        p.Abstract,
		Keywords:        p.Keywords,
		Acknowledgments: p.Acknowledgments,
		RefCount:        len(p.References),
		References:      p.References,
	}
	for i, s := range p.Sections {
		idx := i + 1
		sv := sectionView{
			Title:       s.Title,
			Content:     s.BodyText(),
			Subsections: s.Subsections,
		}
		// Only the legacy figure list is emitted here; content-block images
		// stay a docx-only feature.
		for j := range s.Figures {
			sv.Figures = append(sv.Figures, figureView{
				FileName: model.FigureFileName(idx, j+1),
				Caption:  s.Figures[j].Caption,
				Label:    fmt.Sprintf("fig:%d_%d", idx, j+1),
			})
		}
		view.Sections = append(view.Sections, sv)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render latex template: %w", err)
	}
	return buf.Bytes(), nil
}

// authorBlocks joins the named authors with \and, each as a name block plus
// stacked italic affiliation lines and any custom-field lines.
func authorBlocks(authors []model.Author) string {
	var blocks []string
	for _, a := range authors {
		if a.Name == "" {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "\\IEEEauthorblockN{%s}\n", a.Name)
		fmt.Fprintf(&b, "\\IEEEauthorblockA{\\textit{ %s }\\\\\n", a.Department)
		fmt.Fprintf(&b, "\\textit{ %s }\\\\\n", a.Organization)
		fmt.Fprintf(&b, "\\textit{ %s, %s, %s }", a.City, a.State, a.TamilNadu)
		for _, cf := range a.CustomFields {
			if cf.Value != "" {
				fmt.Fprintf(&b, "\\\\\n\\textit{ %s }", cf.Value)
			}
		}
		b.WriteString("}")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, " \\and ")
}
