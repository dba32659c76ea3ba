// Package format holds the catalog of file format descriptors consumed by the
// conversion engine. The catalog is read-only after startup.
package format

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category groups formats into converter families.
type Category string

const (
	CategoryDocument     Category = "document"
	CategoryImage        Category = "image"
	CategorySpreadsheet  Category = "spreadsheet"
	CategoryData         Category = "data"
	CategoryEbook        Category = "ebook"
	CategoryPresentation Category = "presentation"
)

// Descriptor describes one file format known to the engine.
type Descriptor struct {
	Name        string   `yaml:"name" json:"name"`
	Category    Category `yaml:"category" json:"category"`
	MIMEType    string   `yaml:"mime_type" json:"mime_type"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Input       bool     `yaml:"input" json:"input_supported"`
	Output      bool     `yaml:"output" json:"output_supported"`
}

// Catalog is a lookup table of format descriptors keyed by normalized name.
type Catalog struct {
	byName  map[string]Descriptor
	ordered []string
}

// NewCatalog builds a catalog from descriptors. Later entries with a duplicate
// name replace earlier ones, which is how overlay files extend the defaults.
func NewCatalog(descriptors []Descriptor) *Catalog {
	c := &Catalog{byName: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		d.Name = Normalize(d.Name)
		if _, exists := c.byName[d.Name]; !exists {
			c.ordered = append(c.ordered, d.Name)
		}
		c.byName[d.Name] = d
	}
	return c
}

// Load returns the default catalog, overlaid with descriptors from the given
// YAML file when path is non-empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read format catalog: %w", err)
	}
	var overlay []Descriptor
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse format catalog: %w", err)
	}
	return NewCatalog(append(defaultDescriptors(), overlay...)), nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return NewCatalog(defaultDescriptors())
}

// Normalize lowercases a format name and strips leading dots, so ".PDF" and
// "pdf" address the same descriptor.
func Normalize(name string) string {
	return strings.TrimLeft(strings.ToLower(strings.TrimSpace(name)), ".")
}

// Lookup returns the descriptor for a normalized format name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.byName[Normalize(name)]
	return d, ok
}

// Descriptors returns all descriptors in registration order.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(c.ordered))
	for _, name := range c.ordered {
		out = append(out, c.byName[name])
	}
	return out
}

func defaultDescriptors() []Descriptor {
	return []Descriptor{
		// Documents.
		{Name: "pdf", Category: CategoryDocument, MIMEType: "application/pdf", Description: "Portable Document Format", Input: true, Output: true},
		{Name: "docx", Category: CategoryDocument, MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", Description: "Microsoft Word Document", Input: true, Output: true},
		{Name: "doc", Category: CategoryDocument, MIMEType: "application/msword", Description: "Microsoft Word Document (Legacy)", Input: true, Output: true},
		{Name: "txt", Category: CategoryDocument, MIMEType: "text/plain", Description: "Plain Text", Input: true, Output: true},
		{Name: "rtf", Category: CategoryDocument, MIMEType: "application/rtf", Description: "Rich Text Format", Input: true, Output: true},
		{Name: "odt", Category: CategoryDocument, MIMEType: "application/vnd.oasis.opendocument.text", Description: "OpenDocument Text", Input: true, Output: true},
		{Name: "html", Category: CategoryDocument, MIMEType: "text/html", Description: "HyperText Markup Language", Input: true, Output: true},

		// Images. webp decodes but has no pure-Go encoder; svg/ico/avif have
		// neither, so they stay listed but unsupported in those directions.
		{Name: "jpg", Category: CategoryImage, MIMEType: "image/jpeg", Description: "JPEG Image", Input: true, Output: true},
		{Name: "jpeg", Category: CategoryImage, MIMEType: "image/jpeg", Description: "JPEG Image", Input: true, Output: true},
		{Name: "png", Category: CategoryImage, MIMEType: "image/png", Description: "Portable Network Graphics", Input: true, Output: true},
		{Name: "gif", Category: CategoryImage, MIMEType: "image/gif", Description: "Graphics Interchange Format", Input: true, Output: true},
		{Name: "bmp", Category: CategoryImage, MIMEType: "image/bmp", Description: "Bitmap Image", Input: true, Output: true},
		{Name: "tiff", Category: CategoryImage, MIMEType: "image/tiff", Description: "Tagged Image File Format", Input: true, Output: true},
		{Name: "webp", Category: CategoryImage, MIMEType: "image/webp", Description: "WebP Image", Input: true, Output: false},
		{Name: "svg", Category: CategoryImage, MIMEType: "image/svg+xml", Description: "Scalable Vector Graphics", Input: false, Output: false},
		{Name: "ico", Category: CategoryImage, MIMEType: "image/x-icon", Description: "Icon Format", Input: false, Output: false},
		{Name: "avif", Category: CategoryImage, MIMEType: "image/avif", Description: "AV1 Image File Format", Input: false, Output: false},

		// Spreadsheets.
		{Name: "xlsx", Category: CategorySpreadsheet, MIMEType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Description: "Microsoft Excel Spreadsheet", Input: true, Output: true},
		{Name: "xls", Category: CategorySpreadsheet, MIMEType: "application/vnd.ms-excel", Description: "Microsoft Excel Spreadsheet (Legacy)", Input: true, Output: true},
		{Name: "csv", Category: CategorySpreadsheet, MIMEType: "text/csv", Description: "Comma Separated Values", Input: true, Output: true},
		{Name: "ods", Category: CategorySpreadsheet, MIMEType: "application/vnd.oasis.opendocument.spreadsheet", Description: "OpenDocument Spreadsheet", Input: true, Output: true},
		{Name: "tsv", Category: CategorySpreadsheet, MIMEType: "text/tab-separated-values", Description: "Tab Separated Values", Input: true, Output: true},

		// Data.
		{Name: "json", Category: CategoryData, MIMEType: "application/json", Description: "JavaScript Object Notation", Input: true, Output: true},
		{Name: "xml", Category: CategoryData, MIMEType: "application/xml", Description: "Extensible Markup Language", Input: true, Output: true},
		{Name: "yaml", Category: CategoryData, MIMEType: "application/x-yaml", Description: "YAML Ain't Markup Language", Input: true, Output: true},
		{Name: "yml", Category: CategoryData, MIMEType: "application/x-yaml", Description: "YAML Ain't Markup Language", Input: true, Output: true},

		// Ebooks are catalogued but no converter family claims them yet.
		{Name: "epub", Category: CategoryEbook, MIMEType: "application/epub+zip", Description: "Electronic Publication", Input: true, Output: true},
		{Name: "mobi", Category: CategoryEbook, MIMEType: "application/x-mobipocket-ebook", Description: "Mobipocket eBook", Input: true, Output: true},
	}
}
