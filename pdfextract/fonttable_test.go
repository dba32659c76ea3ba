package pdfextract

import "testing"

const fixturePageMarkup = `<div id="page0">
<p><span style="font-family:Helvetica-Bold;font-size:18.0pt">Document Title</span></p>
<p><span style="font-family:Helvetica;font-size:11.0pt">Body paragraph text here without any markers.</span></p>
<p><span style="font-family:Helvetica;font-size:11.0pt">• point one</span></p>
<p>bare paragraph without span</p>
</div>`

func TestParsePageSpans(t *testing.T) {
	doc := newTestDocument()
	if err := parsePageSpans(doc, fixturePageMarkup, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.elements) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(doc.elements))
	}

	title := doc.elements[0]
	if title.FontSize != 18 {
		t.Errorf("expected font size 18, got %v", title.FontSize)
	}
	if !title.Bold {
		t.Error("expected bold title")
	}
	if title.Type != Header {
		t.Errorf("expected header, got %s", title.Type)
	}
	if title.Page != 2 {
		t.Errorf("expected page 2, got %d", title.Page)
	}

	body := doc.elements[1]
	if body.Type != Paragraph {
		t.Errorf("expected paragraph, got %s", body.Type)
	}
	if body.FontSize != 11 {
		t.Errorf("expected font size 11, got %v", body.FontSize)
	}

	if doc.elements[2].Type != ListItem {
		t.Errorf("expected list item, got %s", doc.elements[2].Type)
	}

	bare := doc.elements[3]
	if bare.FontSize != 0 {
		t.Errorf("expected unknown font size, got %v", bare.FontSize)
	}
}
