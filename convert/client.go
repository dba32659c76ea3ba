package convert

import "github.com/homdahal997/fileapi/pdfextract"

// Options carries caller-supplied conversion knobs. Unset numeric fields mean
// "not requested".
type Options struct {
	// Quality is the encode quality for lossy image encoders, 1-100.
	Quality int
	// Width and Height request an image resize in pixels. When only one is
	// set the other is derived from the source aspect ratio.
	Width  int
	Height int
	// PreserveStructure governs whether the PDF extractor classifies document
	// structure or is forced onto the plain-text path.
	PreserveStructure bool
}

// DefaultOptions returns quality 95 with structure preservation enabled.
func DefaultOptions() Options {
	return Options{Quality: 95, PreserveStructure: true}
}

// Result is the success variant of a conversion call.
type Result struct {
	Content  []byte
	Filename string
}

// FileInfo describes an input buffer without converting it.
type FileInfo struct {
	Size      int    `json:"size"`
	Filename  string `json:"filename"`
	Extension string `json:"extension"`
	MIMEType  string `json:"mime_type,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// StructuredExtractor is the PDF extraction chain consumed by the document
// converter.
type StructuredExtractor interface {
	Extract(content []byte, opts pdfextract.Options) (string, *pdfextract.DocumentStructure, error)
	ExtractBasic(content []byte) (string, *pdfextract.DocumentStructure, error)
}
