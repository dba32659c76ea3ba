package pdfextract

// ElementType classifies a text element extracted from a PDF.
type ElementType string

const (
	Header    ElementType = "header"
	Subheader ElementType = "subheader"
	Paragraph ElementType = "paragraph"
	ListItem  ElementType = "list_item"
	Footer    ElementType = "footer"
	Table     ElementType = "table"
)

// BBox is an element's bounding box in page coordinates (x0, y0, x1, y1).
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// TextElement is one classified unit of text. Immutable once classified.
type TextElement struct {
	Text     string      `json:"text"`
	Type     ElementType `json:"element_type"`
	Level    int         `json:"level"`               // header level or list nesting, >= 0
	FontSize float64     `json:"font_size,omitempty"` // 0 means unknown
	Bold     bool        `json:"is_bold"`
	Italic   bool        `json:"is_italic"`
	BBox     *BBox       `json:"bbox,omitempty"`
	Page     int         `json:"page_number"` // 1-based
}

// OutlineEntry is one header in the document navigation outline.
type OutlineEntry struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Statistics counts elements per type.
type Statistics struct {
	Headers    int `json:"headers"`
	Paragraphs int `json:"paragraphs"`
	ListItems  int `json:"lists"`
	Footers    int `json:"footers"`
	Tables     int `json:"tables"`
}

// DocumentStructure summarizes one extraction: page count, header outline and
// per-type element counts. Derived in a single pass over the element sequence.
type DocumentStructure struct {
	TotalPages    int            `json:"total_pages"`
	TotalElements int            `json:"total_elements"`
	Outline       []OutlineEntry `json:"outline"`
	Statistics    Statistics     `json:"statistics"`
}
