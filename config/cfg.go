package config

// Inches is a page measurement in inches.
type Inches float64

// Points is a font/spacing measurement in typographic points.
type Points float64

// Twips returns the value in twentieths of a point, the unit most
// WordprocessingML page attributes use.
func (in Inches) Twips() int {
	return int(float64(in) * 1440)
}

// EMU returns the value in English Metric Units, the unit inline drawings use.
func (in Inches) EMU() int64 {
	return int64(float64(in) * 914400)
}

func (in Inches) Points() Points {
	return Points(float64(in) * 72)
}

func (p Points) Twips() int {
	return int(float64(p) * 20)
}

// HalfPoints returns the value in half-points, the unit w:sz uses.
func (p Points) HalfPoints() int {
	return int(float64(p) * 2)
}

// IEEEConfig is the layout constant table for IEEE conference styling. One
// instance is built at startup and handed to the document serializer so every
// render uses the same numbers.
type IEEEConfig struct {
	FontName        string
	FontSizeTitle   Points
	FontSizeBody    Points
	FontSizeCaption Points

	MarginLeft   Inches
	MarginRight  Inches
	MarginTop    Inches
	MarginBottom Inches

	ColumnCountBody int
	ColumnSpacing   Inches
	ColumnWidth     Inches
	ColumnIndent    Inches

	// LineSpacing is applied with the "exact" rule everywhere, not "at least".
	LineSpacing Points

	FigureSizes     map[string]Inches
	MaxFigureHeight Inches
}

// IEEE returns the fixed IEEE conference layout configuration.
func IEEE() IEEEConfig {
	return IEEEConfig{
		FontName:        "Times New Roman",
		FontSizeTitle:   24,
		FontSizeBody:    9.5,
		FontSizeCaption: 9,
		MarginLeft:      0.75,
		MarginRight:     0.75,
		MarginTop:       0.75,
		MarginBottom:    0.75,
		ColumnCountBody: 2,
		ColumnSpacing:   0.25,
		ColumnWidth:     3.375,
		ColumnIndent:    0.2,
		LineSpacing:     10,
		FigureSizes: map[string]Inches{
			"Very Small": 1.2,
			"Small":      1.8,
			"Medium":     2.5,
			"Large":      3.2,
		},
		MaxFigureHeight: 4.0,
	}
}

// FigureWidth maps a size category to its nominal width, falling back to
// Medium for unknown categories the same way the form defaults do.
func (c IEEEConfig) FigureWidth(size string) Inches {
	if w, ok := c.FigureSizes[size]; ok {
		return w
	}
	return c.FigureSizes["Medium"]
}
