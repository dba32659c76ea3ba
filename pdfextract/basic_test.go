package pdfextract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
)

func TestStreamTextLines(t *testing.T) {
	testCases := []struct {
		name     string
		stream   string
		expected []string
	}{
		{
			name: "TjPerLine",
			stream: "BT\n/F1 12 Tf\n72 700 Td\n(Hello World) Tj\n0 -14 Td\n(Second line) Tj\nET\n",
			expected: []string{"Hello World", "Second line"},
		},
		{
			name:     "TJArrayWithKerning",
			stream:   "BT\n72 700 Td\n[(Part) -250 (ial)] TJ\nET\n",
			expected: []string{"Partial"},
		},
		{
			name:     "QuoteOperatorStartsNewLine",
			stream:   "BT\n72 700 Td\n(first) Tj\n(second) '\nET\n",
			expected: []string{"first", "second"},
		},
		{
			name:     "EscapedParens",
			stream:   "BT\n72 700 Td\n(a \\(b\\) c) Tj\nET\n",
			expected: []string{"a (b) c"},
		},
		{
			name:     "OctalEscape",
			stream:   "BT\n72 700 Td\n(\\101\\102) Tj\nET\n",
			expected: []string{"AB"},
		},
		{
			name:     "SingleLineOps",
			stream:   "BT 72 700 Td (compact form) Tj ET\nBT 72 680 Td (next) Tj ET\n",
			expected: []string{"compact form", "next"},
		},
		{
			name:     "NoText",
			stream:   "q\n1 0 0 1 0 0 cm\nQ\n",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := streamTextLines([]byte(tc.stream))
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d lines, got %d: %q", len(tc.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("line %d: expected %q, got %q", i, tc.expected[i], got[i])
				}
			}
		})
	}
}

func TestDecodePDFString(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Plain", "hello", "hello"},
		{"Newline", `a\nb`, "a\nb"},
		{"Tab", `a\tb`, "a\tb"},
		{"Backslash", `a\\b`, `a\b`},
		{"Octal", `\050x\051`, "(x)"},
		{"ShortOctal", `\61`, "1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := decodePDFString([]byte(tc.raw)); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// buildFixturePDF renders a small uncompressed PDF so the content stream stays
// parseable as plain operator lines.
func buildFixturePDF(t *testing.T, lines []string) []byte {
	t.Helper()
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCompression(false)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		doc.MultiCell(0, 14, line, "", "L", false)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}
	return buf.Bytes()
}

func TestBasicBackendOnGeneratedPDF(t *testing.T) {
	content := buildFixturePDF(t, []string{"1. Introduction", "Some body."})

	doc := newTestDocument()
	b := &basicBackend{}
	if err := b.Extract(doc, content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.elements) == 0 {
		t.Fatal("expected extracted elements")
	}

	joined := ""
	for _, el := range doc.elements {
		joined += el.Text + "\n"
	}
	if !strings.Contains(joined, "Introduction") || !strings.Contains(joined, "Some body.") {
		t.Errorf("missing expected text in %q", joined)
	}
}

func TestBasicBackendRejectsGarbage(t *testing.T) {
	doc := newTestDocument()
	b := &basicBackend{}
	if err := b.Extract(doc, []byte("definitely not a pdf")); err == nil {
		t.Error("expected error for malformed input")
	}
}
