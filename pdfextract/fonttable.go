package pdfextract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gen2brain/go-fitz"
)

// fontTableBackend reads text spans with font name and size directly from the
// MuPDF structured-HTML rendering, no manual glyph grouping. Second link of
// the chain.
type fontTableBackend struct{}

func (b *fontTableBackend) Name() string { return "fonttable" }

func (b *fontTableBackend) Available() bool { return true }

func (b *fontTableBackend) Extract(doc *document, content []byte) error {
	fz, err := fitz.NewFromMemory(content)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer fz.Close()

	for n := 0; n < fz.NumPage(); n++ {
		page, err := fz.HTML(n, true)
		if err != nil {
			return fmt.Errorf("failed to render page %d: %w", n+1, err)
		}
		if err := parsePageSpans(doc, page, n+1); err != nil {
			return err
		}
	}
	return nil
}

var (
	fontSizeStyleRe   = regexp.MustCompile(`font-size\s*:\s*([0-9.]+)`)
	fontFamilyStyleRe = regexp.MustCompile(`font-family\s*:\s*([^;]+)`)
)

// parsePageSpans walks the rendered page markup and emits one element per
// styled span. Spans without their own style inherit nothing; their font size
// stays unknown and pattern rules take over.
func parsePageSpans(doc *document, page string, pageNum int) error {
	q, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return fmt.Errorf("failed to parse page markup: %w", err)
	}

	q.Find("p").Each(func(_ int, p *goquery.Selection) {
		spans := p.Find("span")
		if spans.Length() == 0 {
			addSpanElement(doc, p, pageNum)
			return
		}
		spans.Each(func(_ int, s *goquery.Selection) {
			addSpanElement(doc, s, pageNum)
		})
	})
	return nil
}

func addSpanElement(doc *document, sel *goquery.Selection, pageNum int) {
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return
	}

	style, _ := sel.Attr("style")
	var size float64
	if m := fontSizeStyleRe.FindStringSubmatch(style); m != nil {
		size, _ = strconv.ParseFloat(m[1], 64)
	}
	family := ""
	if m := fontFamilyStyleRe.FindStringSubmatch(style); m != nil {
		family = m[1]
	}

	doc.add(TextElement{
		Text:     text,
		Type:     Paragraph,
		FontSize: size,
		Bold:     fontIsBold(family) || sel.Is("b") || sel.Find("b").Length() > 0,
		Italic:   fontIsItalic(family) || sel.Is("i") || sel.Find("i").Length() > 0,
		Page:     pageNum,
	})
}
