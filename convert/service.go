// Package convert routes byte buffers between file formats. The Service
// validates a format pair against the catalog and dispatches to the matching
// converter family; each call is synchronous, stateless and side-effect free
// beyond the returned bytes.
package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/homdahal997/fileapi/format"
	"github.com/homdahal997/fileapi/pdfextract"
)

// Family membership tables mirror the router's dispatch order. csv and tsv
// belong to both the spreadsheet and data families; the spreadsheet family
// wins when both ends are tabular.
var (
	imageFormats       = nameSet("jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp", "ico")
	documentFormats    = nameSet("pdf", "docx", "doc", "txt", "rtf", "odt", "html")
	spreadsheetFormats = nameSet("xlsx", "xls", "csv", "ods", "tsv")
	textDataFormats    = nameSet("txt", "json", "xml", "yaml", "yml", "csv", "tsv")
)

func nameSet(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func member(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}

// Service is the format classifier and router.
type Service struct {
	catalog      *format.Catalog
	extractor    StructuredExtractor
	logger       *zap.Logger
	images       *ImageConverter
	documents    *DocumentConverter
	spreadsheets *SpreadsheetConverter
	data         *TextDataConverter
}

// NewService wires the converter families around a shared catalog and PDF
// extraction chain.
func NewService(catalog *format.Catalog, extractor StructuredExtractor, logger *zap.Logger) *Service {
	return &Service{
		catalog:      catalog,
		extractor:    extractor,
		logger:       logger,
		images:       NewImageConverter(logger),
		documents:    NewDocumentConverter(extractor, logger),
		spreadsheets: NewSpreadsheetConverter(logger),
		data:         NewTextDataConverter(logger),
	}
}

// Convert transforms content from inputFormat to outputFormat and returns the
// converted bytes with a suggested filename. Format names are
// case-insensitive and may carry a leading dot. Both formats must be present
// in the catalog and supported for their direction before any converter runs.
func (s *Service) Convert(content []byte, filename, inputFormat, outputFormat string, opts Options) (*Result, error) {
	in := format.Normalize(inputFormat)
	out := format.Normalize(outputFormat)

	inDesc, ok := s.catalog.Lookup(in)
	if !ok || !inDesc.Input {
		return nil, fmt.Errorf("%w: input format %q", ErrUnsupportedConversion, in)
	}
	outDesc, ok := s.catalog.Lookup(out)
	if !ok || !outDesc.Output {
		return nil, fmt.Errorf("%w: output format %q", ErrUnsupportedConversion, out)
	}

	outName := outputFilename(filename, in, out)

	if in == out {
		copied := make([]byte, len(content))
		copy(copied, content)
		return &Result{Content: copied, Filename: outName}, nil
	}

	var (
		converted []byte
		err       error
	)
	switch {
	case member(imageFormats, in) && member(imageFormats, out):
		converted, err = s.images.Convert(content, in, out, opts)
	case member(documentFormats, in) && member(documentFormats, out):
		converted, err = s.documents.Convert(content, in, out, opts)
	case member(spreadsheetFormats, in) && member(spreadsheetFormats, out):
		converted, err = s.spreadsheets.Convert(content, in, out)
	case member(textDataFormats, in) && member(textDataFormats, out):
		converted, err = s.data.Convert(content, in, out)
	default:
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, in, out)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("conversion complete",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("input_bytes", len(content)),
		zap.Int("output_bytes", len(converted)))

	return &Result{Content: converted, Filename: outName}, nil
}

// ExtractStructuredPDFText exposes the extraction chain directly: formatted
// text plus the structure summary for one PDF buffer.
func (s *Service) ExtractStructuredPDFText(content []byte, opts Options) (string, *pdfextract.DocumentStructure, error) {
	return s.extractor.Extract(content, pdfextract.Options{PreserveStructure: opts.PreserveStructure})
}

// Formats lists the catalog descriptors.
func (s *Service) Formats() []format.Descriptor {
	return s.catalog.Descriptors()
}

// outputFilename swaps the extension of the input filename for the output
// format, deriving a placeholder name when none was supplied.
func outputFilename(filename, in, out string) string {
	if filename == "" {
		filename = "input." + in
	}
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return base + "." + out
}
