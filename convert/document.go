package convert

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/homdahal997/fileapi/pdfextract"
)

// HTML stripping pipeline for html -> txt. Block-level openers become
// paragraph breaks, <br> becomes a line break, everything else is removed.
var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style.*?</style>`)
	brTagRe       = regexp.MustCompile(`(?i)<br\s*/?>`)
	pOpenRe       = regexp.MustCompile(`(?i)<p[^>]*>`)
	hOpenRe       = regexp.MustCompile(`(?i)<h[1-6][^>]*>`)
	hCloseRe      = regexp.MustCompile(`(?i)</h[1-6]>`)
	pCloseRe      = regexp.MustCompile(`(?i)</p>`)
	anyTagRe      = regexp.MustCompile(`<[^>]+>`)
	blankRunRe    = regexp.MustCompile(`\n\s*\n`)
)

type pair struct {
	in  string
	out string
}

type documentHandler func(content []byte, opts Options) ([]byte, error)

// DocumentConverter handles the textual document family: txt, html, docx and
// pdf. Pairs without a handler report ErrNotImplemented rather than
// ErrUnsupportedConversion so callers can tell a missing feature from an
// invalid request.
type DocumentConverter struct {
	extractor StructuredExtractor
	logger    *zap.Logger
	handlers  map[pair]documentHandler
}

func NewDocumentConverter(extractor StructuredExtractor, logger *zap.Logger) *DocumentConverter {
	c := &DocumentConverter{extractor: extractor, logger: logger}
	c.handlers = map[pair]documentHandler{
		{"txt", "html"}:  c.txtToHTML,
		{"html", "txt"}:  c.htmlToTxt,
		{"txt", "pdf"}:   c.txtToPDF,
		{"pdf", "txt"}:   c.pdfToTxt,
		{"txt", "docx"}:  c.txtToDocx,
		{"docx", "txt"}:  c.docxToTxt,
		{"html", "docx"}: c.htmlToDocx,
		{"docx", "html"}: c.docxToHTML,
	}
	return c
}

func (c *DocumentConverter) Convert(content []byte, in, out string, opts Options) ([]byte, error) {
	h, ok := c.handlers[pair{in, out}]
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrNotImplemented, in, out)
	}
	converted, err := h(content, opts)
	if err != nil {
		return nil, &ConversionError{Family: "document", Err: err}
	}
	return converted, nil
}

func (c *DocumentConverter) txtToHTML(content []byte, _ Options) ([]byte, error) {
	paragraphs := splitParagraphs(string(content))

	var body strings.Builder
	for _, p := range paragraphs {
		escaped := html.EscapeString(p)
		body.WriteString("<p>")
		body.WriteString(strings.ReplaceAll(escaped, "\n", "<br>"))
		body.WriteString("</p>\n")
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Converted Document</title>
</head>
<body>
<h1>Converted Document</h1>
%s</body>
</html>
`, body.String())
	return []byte(doc), nil
}

func (c *DocumentConverter) htmlToTxt(content []byte, _ Options) ([]byte, error) {
	text := string(content)
	text = scriptBlockRe.ReplaceAllString(text, "")
	text = styleBlockRe.ReplaceAllString(text, "")
	text = brTagRe.ReplaceAllString(text, "\n")
	text = pOpenRe.ReplaceAllString(text, "\n\n")
	text = hOpenRe.ReplaceAllString(text, "\n\n")
	text = hCloseRe.ReplaceAllString(text, "\n")
	text = pCloseRe.ReplaceAllString(text, "")
	text = anyTagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return []byte(strings.TrimSpace(text)), nil
}

func (c *DocumentConverter) txtToPDF(content []byte, _ Options) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(72, 72, 72)
	doc.SetAutoPageBreak(true, 18)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(0, 22, tr("Converted Document"), "", "L", false)
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 11)
	for _, p := range splitParagraphs(string(content)) {
		doc.MultiCell(0, 14, tr(p), "", "L", false)
		doc.Ln(6)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *DocumentConverter) pdfToTxt(content []byte, opts Options) ([]byte, error) {
	text, structure, err := c.extractor.Extract(content, pdfextract.Options{PreserveStructure: opts.PreserveStructure})
	if err != nil {
		c.logger.Warn("structured extraction failed, retrying with basic backend", zap.Error(err))
		text, structure, err = c.extractor.ExtractBasic(content)
		if err != nil {
			return nil, fmt.Errorf("failed to extract pdf text: %w", err)
		}
	}

	var out strings.Builder
	out.WriteString(structureBanner(structure))
	out.WriteString(text)
	return []byte(out.String()), nil
}

func (c *DocumentConverter) txtToDocx(content []byte, _ Options) ([]byte, error) {
	return buildDocx(string(content))
}

func (c *DocumentConverter) docxToTxt(content []byte, _ Options) ([]byte, error) {
	text, err := readDocxText(content)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (c *DocumentConverter) htmlToDocx(content []byte, opts Options) ([]byte, error) {
	text, err := c.htmlToTxt(content, opts)
	if err != nil {
		return nil, err
	}
	return buildDocx(string(text))
}

func (c *DocumentConverter) docxToHTML(content []byte, opts Options) ([]byte, error) {
	text, err := readDocxText(content)
	if err != nil {
		return nil, err
	}
	return c.txtToHTML([]byte(text), opts)
}

// structureBanner summarizes the extracted document structure ahead of the
// text body.
func structureBanner(s *pdfextract.DocumentStructure) string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("# Document Structure Analysis\n")
	fmt.Fprintf(&b, "# Total Pages: %d\n", s.TotalPages)
	fmt.Fprintf(&b, "# Headers: %d\n", s.Statistics.Headers)
	fmt.Fprintf(&b, "# Paragraphs: %d\n", s.Statistics.Paragraphs)
	fmt.Fprintf(&b, "# List Items: %d\n", s.Statistics.ListItems)
	fmt.Fprintf(&b, "# Tables: %d\n", s.Statistics.Tables)
	b.WriteString("# " + strings.Repeat("=", 60) + "\n\n")
	return b.String()
}

// splitParagraphs breaks text on blank lines after normalizing line endings,
// dropping empty runs.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var paragraphs []string
	for _, chunk := range strings.Split(text, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			paragraphs = append(paragraphs, chunk)
		}
	}
	return paragraphs
}
