package pdfextract

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// span is one positioned text fragment read from the page content.
type span struct {
	text     string
	x, y, w  float64
	fontSize float64
	font     string
}

// layoutBackend reads per-fragment position and size metadata and groups
// adjacent fragments into text blocks before classification. Most capable
// backend, tried first.
type layoutBackend struct {
	cfg Config
}

func (b *layoutBackend) Name() string { return "layout" }

func (b *layoutBackend) Available() bool { return true }

func (b *layoutBackend) Extract(doc *document, content []byte) error {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}

	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		texts := page.Content().Text
		spans := make([]span, 0, len(texts))
		for _, t := range texts {
			spans = append(spans, span{
				text:     t.S,
				x:        t.X,
				y:        t.Y,
				w:        t.W,
				fontSize: t.FontSize,
				font:     t.Font,
			})
		}
		for _, blk := range groupSpans(spans, b.cfg) {
			doc.add(blk.element(pageNum))
		}
	}
	return nil
}

// block is a group of spans that form one logical unit of text.
type block struct {
	spans []span
}

// groupSpans orders fragments into reading order (top to bottom, left to
// right) and splits them into blocks. A new block starts when the vertical
// gap to the previous fragment exceeds the line-gap threshold or the
// horizontal gap exceeds the column-gap threshold.
func groupSpans(spans []span, cfg Config) []block {
	if len(spans) == 0 {
		return nil
	}

	ordered := make([]span, len(spans))
	copy(ordered, spans)
	// PDF y grows upward, so larger y means closer to the page top.
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].y != ordered[j].y {
			return ordered[i].y > ordered[j].y
		}
		return ordered[i].x < ordered[j].x
	})

	var blocks []block
	current := block{spans: []span{ordered[0]}}
	for _, s := range ordered[1:] {
		last := current.spans[len(current.spans)-1]
		verticalGap := math.Abs(s.y - last.y)
		horizontalGap := s.x - (last.x + last.w)
		if verticalGap > cfg.LineGap || horizontalGap > cfg.ColumnGap {
			blocks = append(blocks, current)
			current = block{spans: []span{s}}
			continue
		}
		current.spans = append(current.spans, s)
	}
	return append(blocks, current)
}

// element flattens a block into a single text element. Font size is the mean
// over the block's fragments; the bounding box spans all of them.
func (bl block) element(page int) TextElement {
	var sb strings.Builder
	var sizeSum float64
	sized := 0
	bold, italic := false, false
	box := BBox{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}

	for _, s := range bl.spans {
		sb.WriteString(s.text)
		if s.fontSize > 0 {
			sizeSum += s.fontSize
			sized++
		}
		if fontIsBold(s.font) {
			bold = true
		}
		if fontIsItalic(s.font) {
			italic = true
		}
		box.X0 = math.Min(box.X0, s.x)
		box.Y0 = math.Min(box.Y0, s.y)
		box.X1 = math.Max(box.X1, s.x+s.w)
		box.Y1 = math.Max(box.Y1, s.y)
	}

	el := TextElement{
		Text:   sb.String(),
		Type:   Paragraph,
		Bold:   bold,
		Italic: italic,
		BBox:   &box,
		Page:   page,
	}
	if sized > 0 {
		el.FontSize = sizeSum / float64(sized)
	}
	return el
}

func fontIsBold(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}

func fontIsItalic(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}
