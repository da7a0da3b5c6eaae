package model

import "testing"

func TestImageOrdinalCountsSkippedImages(t *testing.T) {
	s := Section{ContentBlocks: []ContentBlock{
		{Kind: BlockImage},                          // no payload, still numbered
		{Kind: BlockText, Content: "body"},
		{Kind: BlockImage, Data: []byte{1}, Caption: "ok"},
	}}
	if got := s.ImageOrdinal(0); got != 1 {
		t.Errorf("ordinal of first image: got %d, want 1", got)
	}
	if got := s.ImageOrdinal(2); got != 2 {
		t.Errorf("ordinal of second image: got %d, want 2", got)
	}
}

func TestBodyTextLegacyScalar(t *testing.T) {
	s := Section{Content: "legacy body"}
	if got := s.BodyText(); got != "legacy body" {
		t.Errorf("got %q, want legacy scalar", got)
	}
}

func TestBodyTextIgnoresLegacyWhenBlocksExist(t *testing.T) {
	s := Section{
		Content: "legacy body",
		ContentBlocks: []ContentBlock{
			{Kind: BlockText, Content: "first"},
			{Kind: BlockImage, Data: []byte{1}, Caption: "fig"},
			{Kind: BlockText, Content: "second"},
		},
	}
	want := "first\n\nsecond"
	if got := s.BodyText(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFigureFileName(t *testing.T) {
	if got := FigureFileName(2, 1); got != "figure_2_1.png" {
		t.Errorf("got %q, want figure_2_1.png", got)
	}
}
