package pdfextract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	allCapsLineRe  = regexp.MustCompile(`^[A-Z][A-Z\s]{2,}$`)
	numberedHeadRe = regexp.MustCompile(`^\d+\.?\s+[A-Z][^.]*$`)
	romanHeadRe    = regexp.MustCompile(`^[IVX]+\.?\s+[A-Z][^.]*$`)
	letterHeadRe   = regexp.MustCompile(`^[A-Z]\.?\s+[A-Z][^.]*$`)

	bulletItemRe   = regexp.MustCompile(`^\s*[•*\-+]\s+`)
	numberedItemRe = regexp.MustCompile(`^\s*\d+[.)]\s+`)
	letterItemRe   = regexp.MustCompile(`^\s*[a-z][.)]\s+`)
	romanItemRe    = regexp.MustCompile(`^\s*[ivx]+[.)]\s+`)

	pageNumberRe = regexp.MustCompile(`^\d+$`)
	multiSpaceRe = regexp.MustCompile(`\s{3,}`)
	numberPairRe = regexp.MustCompile(`\d+\s+\d+`)

	sectionDepth3Re = regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`)
	sectionDepth2Re = regexp.MustCompile(`^\d+\.\d+\.?\s+`)
	sectionDepth1Re = regexp.MustCompile(`^\d+\.?\s+`)
)

var footerMarkers = []string{"page", "copyright", "©", "confidential", "proprietary"}

// rule is one entry of the ordered classification table. Rules are evaluated
// in declaration order and the first match wins:
// header > list item > footer > table > paragraph (default).
type rule struct {
	match func(d *document, el *TextElement) bool
	apply func(d *document, el *TextElement)
}

var classificationRules = []rule{
	{
		match: isHeader,
		apply: func(d *document, el *TextElement) {
			el.Type = Header
			el.Level = headerLevel(d, el)
		},
	},
	{
		match: func(_ *document, el *TextElement) bool { return isListItem(el.Text) },
		apply: func(d *document, el *TextElement) {
			el.Type = ListItem
			el.Level = listLevel(el.Text, d.cfg.IndentUnit)
		},
	},
	{
		match: func(_ *document, el *TextElement) bool { return isFooter(el.Text) },
		apply: func(_ *document, el *TextElement) { el.Type = Footer },
	},
	{
		match: func(_ *document, el *TextElement) bool { return isTable(el.Text) },
		apply: func(_ *document, el *TextElement) { el.Type = Table },
	},
}

// classify assigns an element type via the ordered rule table. Elements that
// match no rule stay paragraphs.
func classify(d *document, el *TextElement) {
	for _, r := range classificationRules {
		if r.match(d, el) {
			r.apply(d, el)
			return
		}
	}
	el.Type = Paragraph
}

func isHeader(d *document, el *TextElement) bool {
	text := strings.TrimSpace(el.Text)
	cfg := d.cfg

	if el.FontSize > 0 && el.FontSize > d.avgFontSize()*cfg.HeaderFontRatio {
		return true
	}
	if el.Bold && len([]rune(text)) < cfg.MaxBoldHeaderLen {
		return true
	}
	if allCapsLineRe.MatchString(text) || numberedHeadRe.MatchString(text) ||
		romanHeadRe.MatchString(text) || letterHeadRe.MatchString(text) {
		return true
	}
	if n := len([]rune(text)); n > cfg.MinCapsHeaderLen && n < cfg.MaxCapsHeaderLen && isUpperText(text) {
		return true
	}
	return false
}

// headerLevel derives the level from the font-size ratio when the size is
// known, otherwise from the numbering depth of the text.
func headerLevel(d *document, el *TextElement) int {
	text := strings.TrimSpace(el.Text)
	if el.FontSize > 0 {
		avg := d.avgFontSize()
		switch {
		case el.FontSize > avg*d.cfg.TitleFontRatio:
			return 1
		case el.FontSize > avg*d.cfg.SectionFontRatio:
			return 2
		case el.FontSize > avg*d.cfg.HeaderFontRatio:
			return 3
		default:
			return 4
		}
	}
	switch {
	case sectionDepth3Re.MatchString(text):
		return 3
	case sectionDepth2Re.MatchString(text):
		return 2
	case sectionDepth1Re.MatchString(text):
		return 1
	}
	return 1
}

func isListItem(text string) bool {
	return bulletItemRe.MatchString(text) || numberedItemRe.MatchString(text) ||
		letterItemRe.MatchString(text) || romanItemRe.MatchString(text)
}

// listLevel maps leading whitespace to a nesting level, one level per
// indentUnit characters, never below 1.
func listLevel(text string, indentUnit int) int {
	leading := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			break
		}
		leading++
	}
	level := leading/indentUnit + 1
	if level < 1 {
		level = 1
	}
	return level
}

func isFooter(text string) bool {
	trimmed := strings.TrimSpace(text)
	if pageNumberRe.MatchString(trimmed) {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, marker := range footerMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isTable(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.Contains(trimmed, "\t") ||
		multiSpaceRe.MatchString(trimmed) ||
		numberPairRe.MatchString(trimmed)
}

// isUpperText reports whether the text has at least one uppercase letter and
// no lowercase letters. Digits and symbols are neutral, so "• HELLO WORLD"
// still counts as uppercase.
func isUpperText(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
