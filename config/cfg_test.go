package config

import "testing"

func TestUnitConversions(t *testing.T) {
	if got := Inches(0.75).Twips(); got != 1080 {
		t.Errorf("0.75in in twips: got %d, want 1080", got)
	}
	if got := Inches(2.5).EMU(); got != 2286000 {
		t.Errorf("2.5in in EMU: got %d, want 2286000", got)
	}
	if got := Points(9.5).HalfPoints(); got != 19 {
		t.Errorf("9.5pt in half-points: got %d, want 19", got)
	}
	if got := Points(10).Twips(); got != 200 {
		t.Errorf("10pt in twips: got %d, want 200", got)
	}
}

func TestFigureWidthCategories(t *testing.T) {
	cfg := IEEE()
	cases := []struct {
		size string
		want Inches
	}{
		{"Very Small", 1.2},
		{"Small", 1.8},
		{"Medium", 2.5},
		{"Large", 3.2},
		{"", 2.5},
		{"Gigantic", 2.5},
	}
	for _, c := range cases {
		if got := cfg.FigureWidth(c.size); got != c.want {
			t.Errorf("FigureWidth(%q): got %v, want %v", c.size, got, c.want)
		}
	}
}
