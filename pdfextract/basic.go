package pdfextract

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// basicBackend extracts plain per-line text from page content streams with no
// font metadata; classification relies purely on textual patterns. Last link
// of the chain and the forced path when structure preservation is disabled.
type basicBackend struct{}

func (b *basicBackend) Name() string { return "basic" }

func (b *basicBackend) Available() bool { return true }

func (b *basicBackend) Extract(doc *document, content []byte) error {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(content), conf)
	if err != nil {
		return fmt.Errorf("failed to read PDF: %w", err)
	}

	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil || len(data) == 0 {
			continue
		}
		for _, line := range streamTextLines(data) {
			doc.add(TextElement{Text: line, Type: Paragraph, Page: pageNr})
		}
	}
	return nil
}

// pdfStringRe matches PDF string literals, tolerating escaped parentheses.
var pdfStringRe = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// streamTextLines walks the decoded content stream and reassembles shown text
// into lines. Positioning operators (Td, TD, T*, ET) terminate the current
// line; Tj/TJ/' append their string operands.
func streamTextLines(data []byte) []string {
	var lines []string
	var current strings.Builder

	flush := func() {
		text := strings.TrimRight(current.String(), " ")
		if strings.TrimSpace(text) != "" {
			lines = append(lines, text)
		}
		current.Reset()
	}

	for _, raw := range bytes.Split(data, []byte{'\n'}) {
		line := bytes.TrimRight(raw, "\r ")
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		quoted := bytes.HasSuffix(bytes.TrimSpace(line), []byte("'"))
		if quoted || bytes.Contains(line, []byte("Td")) || bytes.Contains(line, []byte("TD")) ||
			bytes.Contains(line, []byte("T*")) || bytes.Contains(line, []byte("ET")) {
			flush()
		}

		if quoted || bytes.Contains(line, []byte("Tj")) || bytes.Contains(line, []byte("TJ")) {
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				current.WriteString(decodePDFString(m[1]))
			}
		}
	}
	flush()
	return lines
}

// decodePDFString resolves PDF string escape sequences, including octal
// escapes such as \050.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}
