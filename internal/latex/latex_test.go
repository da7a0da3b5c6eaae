package latex

import (
	"errors"
	"strings"
	"testing"

	"ieee-paper-app/internal/model"
)

func basicPaper() *model.Paper {
	return &model.Paper{
		Title: "T",
		Authors: []model.Author{{
			Name:         "J. Doe",
			Department:   "Dept. of CSE",
			Organization: "Example University",
			City:         "Chennai",
			State:        "TN",
			TamilNadu:    "India",
		}},
		Abstract: "An abstract.",
		Keywords: "alpha, beta",
		Sections: []model.Section{
			{Title: "Intro", Content: "Hello"},
		},
	}
}

func render(t *testing.T, p *model.Paper) string {
	t.Helper()
	data, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return string(data)
}

func TestGenerateFailsWithoutTitle(t *testing.T) {
	p := basicPaper()
	p.Title = ""
	_, err := Generate(p)
	var missing *model.MissingRequiredFieldError
	if !errors.As(err, &missing) || missing.Field != "title" {
		t.Fatalf("expected missing title error, got %v", err)
	}
}

func TestGenerateFailsWithoutAuthorName(t *testing.T) {
	p := basicPaper()
	p.Authors = []model.Author{{Name: ""}}
	_, err := Generate(p)
	var missing *model.MissingRequiredFieldError
	if !errors.As(err, &missing) || missing.Field != "author name" {
		t.Fatalf("expected missing author name error, got %v", err)
	}
}

func TestDocumentSkeleton(t *testing.T) {
	out := render(t, basicPaper())
	for _, want := range []string{
		`\documentclass[conference]{IEEEtran}`,
		`\title{ T }`,
		`\section{ Intro }`,
		"Hello",
		`\begin{abstract}`,
		`\begin{IEEEkeywords}`,
		`\section*{Acknowledgment}`,
		`\end{document}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAuthorBlock(t *testing.T) {
	p := basicPaper()
	p.Authors = append(p.Authors, model.Author{
		Name:         "A. Smith",
		CustomFields: []model.CustomField{{Value: "a.smith@example.edu"}},
	})
	out := render(t, p)
	if !strings.Contains(out, `\IEEEauthorblockN{J. Doe}`) {
		t.Errorf("first author name block missing")
	}
	if !strings.Contains(out, `\textit{ Chennai, TN, India }`) {
		t.Errorf("stacked location line missing")
	}
	if !strings.Contains(out, `\textit{ a.smith@example.edu }`) {
		t.Errorf("custom field line missing")
	}
	if !strings.Contains(out, ` \and `) {
		t.Errorf("authors not joined with \\and")
	}
	// every opened author block is closed
	if strings.Count(out, `\IEEEauthorblockA{`) != strings.Count(out, `\IEEEauthorblockN{`) {
		t.Errorf("author block count mismatch")
	}
}

func TestEmptyNameAuthorsAreOmitted(t *testing.T) {
	p := basicPaper()
	p.Authors = append(p.Authors, model.Author{Name: "", Organization: "Ghost"})
	out := render(t, p)
	if strings.Contains(out, "Ghost") {
		t.Errorf("empty-name author must not appear in latex output")
	}
}

func TestBibliographyKeepsSourceOrder(t *testing.T) {
	p := basicPaper()
	p.References = []model.Reference{
		{Text: "First ref"},
		{Text: "[9] Second ref"},
	}
	out := render(t, p)
	if !strings.Contains(out, `\begin{thebibliography}{ 2 }`) {
		t.Errorf("bibliography not sized to reference count")
	}
	first := strings.Index(out, "First ref")
	second := strings.Index(out, "[9] Second ref")
	if first < 0 || second < 0 || second < first {
		t.Errorf("references out of order: first=%d second=%d", first, second)
	}
	if !strings.Contains(out, `\bibitem{ 1 }`) || !strings.Contains(out, `\bibitem{ 2 }`) {
		t.Errorf("bibitem keys not derived from position")
	}
}

func TestLegacyFiguresOnly(t *testing.T) {
	p := basicPaper()
	p.Sections = []model.Section{
		{Title: "Intro", Content: "Hello"},
		{
			Title: "Results",
			ContentBlocks: []model.ContentBlock{
				{Kind: model.BlockText, Content: "Para1"},
				{Kind: model.BlockImage, Data: []byte{1}, Caption: "inline image"},
				{Kind: model.BlockText, Content: "Para2"},
			},
			Figures: []model.Figure{
				{Data: []byte{1}, Caption: "legacy figure"},
			},
		},
	}
	out := render(t, p)
	if !strings.Contains(out, "Para1") || !strings.Contains(out, "Para2") {
		t.Errorf("text blocks missing from section body")
	}
	if strings.Contains(out, "inline image") {
		t.Errorf("content-block images must not appear in latex output")
	}
	if !strings.Contains(out, `\includegraphics[width=0.8\columnwidth]{ figure_2_1.png }`) {
		t.Errorf("legacy figure include missing")
	}
	if !strings.Contains(out, `\label{ fig:2_1 }`) {
		t.Errorf("legacy figure label missing")
	}
	if !strings.Contains(out, `\caption{ legacy figure }`) {
		t.Errorf("legacy figure caption missing")
	}
}

func TestSubsections(t *testing.T) {
	p := basicPaper()
	p.Sections[0].Subsections = []model.Subsection{
		{Title: "Background", Content: "Prior work."},
	}
	out := render(t, p)
	if !strings.Contains(out, `\subsection{ Background }`) {
		t.Errorf("subsection heading missing")
	}
	if !strings.Contains(out, "Prior work.") {
		t.Errorf("subsection content missing")
	}
}
