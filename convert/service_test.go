package convert

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/homdahal997/fileapi/format"
	"github.com/homdahal997/fileapi/pdfextract"
)

// stubExtractor satisfies StructuredExtractor without touching real PDF
// backends.
type stubExtractor struct {
	text      string
	structure *pdfextract.DocumentStructure
	err       error

	basicText string
	basicErr  error
}

func (s *stubExtractor) Extract(_ []byte, _ pdfextract.Options) (string, *pdfextract.DocumentStructure, error) {
	return s.text, s.structure, s.err
}

func (s *stubExtractor) ExtractBasic(_ []byte) (string, *pdfextract.DocumentStructure, error) {
	return s.basicText, s.structure, s.basicErr
}

func newTestService(extractor StructuredExtractor) *Service {
	if extractor == nil {
		extractor = &stubExtractor{}
	}
	return NewService(format.Default(), extractor, zap.NewNop())
}

func TestConvertRejectsUnsupportedFormats(t *testing.T) {
	svc := newTestService(nil)

	testCases := []struct {
		name string
		in   string
		out  string
	}{
		{"UnknownInput", "xyz", "png"},
		{"InputDisabled", "svg", "png"},
		{"OutputDisabled", "png", "webp"},
		{"UnknownOutput", "png", "xyz"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Convert([]byte("data"), "file."+tc.in, tc.in, tc.out, DefaultOptions())
			if !errors.Is(err, ErrUnsupportedConversion) {
				t.Errorf("expected ErrUnsupportedConversion, got %v", err)
			}
		})
	}
}

func TestConvertIdentityCopies(t *testing.T) {
	svc := newTestService(nil)
	content := []byte("same format")

	result, err := svc.Convert(content, "notes.txt", "txt", "TXT", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(result.Content, content) {
		t.Errorf("expected identical content, got %q", result.Content)
	}
	content[0] = 'X'
	if result.Content[0] == 'X' {
		t.Error("result shares backing array with input")
	}
	if result.Filename != "notes.txt" {
		t.Errorf("expected notes.txt, got %q", result.Filename)
	}
}

func TestConvertNoFamilyClaimsPair(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.Convert([]byte("book"), "book.epub", "epub", "mobi", DefaultOptions())
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("expected ErrUnsupportedConversion, got %v", err)
	}
}

func TestConvertRoutesDataFamily(t *testing.T) {
	svc := newTestService(nil)
	result, err := svc.Convert([]byte(`{"name":"ada"}`), "obj.json", "json", "yaml", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(result.Content, []byte("name: ada")) {
		t.Errorf("unexpected yaml output: %q", result.Content)
	}
	if result.Filename != "obj.yaml" {
		t.Errorf("expected obj.yaml, got %q", result.Filename)
	}
}

func TestExtractStructuredPDFText(t *testing.T) {
	extractor := &stubExtractor{
		text:      "# Title\n\nBody.\n",
		structure: &pdfextract.DocumentStructure{TotalPages: 2, Statistics: pdfextract.Statistics{Headers: 1}},
	}
	svc := newTestService(extractor)

	text, structure, err := svc.ExtractStructuredPDFText([]byte("%PDF-1.4"), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Title\n\nBody.\n" {
		t.Errorf("unexpected text: %q", text)
	}
	if structure.TotalPages != 2 || structure.Statistics.Headers != 1 {
		t.Errorf("unexpected structure: %+v", structure)
	}
}

func TestOutputFilename(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		in       string
		out      string
		expected string
	}{
		{"SwapsExtension", "report.pdf", "pdf", "txt", "report.txt"},
		{"EmptyFilename", "", "pdf", "txt", "input.txt"},
		{"StripsDirectory", "/tmp/uploads/photo.png", "png", "jpg", "photo.jpg"},
		{"NoExtension", "README", "txt", "html", "README.html"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := outputFilename(tc.filename, tc.in, tc.out); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestInspectReportsImageDimensions(t *testing.T) {
	svc := newTestService(nil)
	content := encodeTestPNG(t, 12, 8, false)

	info := svc.Inspect(content, "tiny.png")
	if info.Size != len(content) {
		t.Errorf("expected size %d, got %d", len(content), info.Size)
	}
	if info.Extension != "png" {
		t.Errorf("expected extension png, got %q", info.Extension)
	}
	if info.MIMEType != "image/png" {
		t.Errorf("expected image/png, got %q", info.MIMEType)
	}
	if info.Width != 12 || info.Height != 8 {
		t.Errorf("expected 12x8, got %dx%d", info.Width, info.Height)
	}
}

func TestInspectNonImage(t *testing.T) {
	svc := newTestService(nil)
	info := svc.Inspect([]byte("a,b\n1,2\n"), "table.csv")
	if info.Width != 0 || info.Height != 0 {
		t.Errorf("expected no dimensions, got %dx%d", info.Width, info.Height)
	}
	if info.MIMEType == "" {
		t.Error("expected a mime type for csv")
	}
}
