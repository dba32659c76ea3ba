package pdfextract

// Config carries the classification and grouping heuristics. The numeric
// defaults are inherited tuning values; override them per deployment rather
// than editing the classifier.
type Config struct {
	// HeaderFontRatio marks an element as a header when its font size exceeds
	// this multiple of the running average. Also the level-3 threshold.
	HeaderFontRatio float64
	// TitleFontRatio and SectionFontRatio are the level-1 and level-2
	// thresholds relative to the running average font size.
	TitleFontRatio   float64
	SectionFontRatio float64

	// LineGap is the vertical distance between spans that starts a new text
	// block in the layout-aware backend. ColumnGap is the horizontal
	// equivalent (large indentation or column jump).
	LineGap   float64
	ColumnGap float64

	// IndentUnit is the number of leading whitespace characters per list
	// nesting level.
	IndentUnit int

	// MaxBoldHeaderLen is the length under which bold text counts as a header.
	// MinCapsHeaderLen/MaxCapsHeaderLen bound the all-uppercase header rule
	// (length strictly between the two).
	MaxBoldHeaderLen int
	MinCapsHeaderLen int
	MaxCapsHeaderLen int
}

func (c *Config) defaults() {
	if c.HeaderFontRatio == 0 {
		c.HeaderFontRatio = 1.2
	}
	if c.TitleFontRatio == 0 {
		c.TitleFontRatio = 2.0
	}
	if c.SectionFontRatio == 0 {
		c.SectionFontRatio = 1.5
	}
	if c.LineGap == 0 {
		c.LineGap = 5
	}
	if c.ColumnGap == 0 {
		c.ColumnGap = 20
	}
	if c.IndentUnit == 0 {
		c.IndentUnit = 4
	}
	if c.MaxBoldHeaderLen == 0 {
		c.MaxBoldHeaderLen = 100
	}
	if c.MinCapsHeaderLen == 0 {
		c.MinCapsHeaderLen = 3
	}
	if c.MaxCapsHeaderLen == 0 {
		c.MaxCapsHeaderLen = 80
	}
}
