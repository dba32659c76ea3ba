package pdfextract

import (
	"fmt"
	"strings"
)

const noTextMessage = "No readable text found in the PDF document."

const pageBannerWidth = 50

// renderElements assembles classified elements into output text, in document
// order. With structure enabled: page-break banners precede elements on a new
// page, headers carry a #-marker run equal to their level, list items indent
// by nesting level, footers are bracketed and table lines prefixed. Without
// structure every element renders verbatim.
func renderElements(elements []TextElement, structured bool) string {
	if len(elements) == 0 {
		return noTextMessage
	}

	banner := strings.Repeat("=", pageBannerWidth)
	lines := make([]string, 0, len(elements))
	currentPage := 1

	for _, el := range elements {
		if !structured {
			lines = append(lines, el.Text)
			continue
		}
		if el.Page > currentPage {
			lines = append(lines, "\n"+banner)
			lines = append(lines, fmt.Sprintf("PAGE %d", el.Page))
			lines = append(lines, banner+"\n")
			currentPage = el.Page
		}
		switch el.Type {
		case Header, Subheader:
			lines = append(lines, fmt.Sprintf("\n%s %s\n", strings.Repeat("#", el.Level), el.Text))
		case ListItem:
			indent := strings.Repeat("  ", el.Level-1)
			lines = append(lines, fmt.Sprintf("%s• %s", indent, el.Text))
		case Footer:
			lines = append(lines, fmt.Sprintf("\n[FOOTER: %s]\n", el.Text))
		case Table:
			lines = append(lines, "[TABLE] "+el.Text)
		default:
			lines = append(lines, el.Text+"\n")
		}
	}

	return strings.Join(lines, "\n")
}

// buildStructure derives the summary in one pass over the final element
// sequence: total pages is the maximum page seen, the outline lists headers
// in order, and statistics count every element of each type.
func buildStructure(elements []TextElement) *DocumentStructure {
	s := &DocumentStructure{TotalElements: len(elements)}
	for _, el := range elements {
		if el.Page > s.TotalPages {
			s.TotalPages = el.Page
		}
		switch el.Type {
		case Header, Subheader:
			s.Statistics.Headers++
			s.Outline = append(s.Outline, OutlineEntry{Level: el.Level, Text: el.Text, Page: el.Page})
		case ListItem:
			s.Statistics.ListItems++
		case Footer:
			s.Statistics.Footers++
		case Table:
			s.Statistics.Tables++
		default:
			s.Statistics.Paragraphs++
		}
	}
	return s
}
