package pdfextract

import "testing"

func defaultTestConfig() Config {
	cfg := Config{}
	cfg.defaults()
	return cfg
}

func TestGroupSpansSameLine(t *testing.T) {
	spans := []span{
		{text: "Hello ", x: 72, y: 700, w: 30, fontSize: 11},
		{text: "world", x: 102, y: 700, w: 28, fontSize: 11},
	}
	blocks := groupSpans(spans, defaultTestConfig())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if got := blocks[0].element(1).Text; got != "Hello world" {
		t.Errorf("expected joined text, got %q", got)
	}
}

func TestGroupSpansSplitsOnVerticalGap(t *testing.T) {
	spans := []span{
		{text: "first line", x: 72, y: 700, w: 60},
		{text: "second line", x: 72, y: 686, w: 60}, // 14 > line gap of 5
	}
	blocks := groupSpans(spans, defaultTestConfig())
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestGroupSpansSplitsOnHorizontalGap(t *testing.T) {
	spans := []span{
		{text: "left column", x: 72, y: 700, w: 50},
		{text: "right column", x: 300, y: 700, w: 50}, // gap 178 > column gap of 20
	}
	blocks := groupSpans(spans, defaultTestConfig())
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestGroupSpansReadingOrder(t *testing.T) {
	// Input out of order; grouping must sort top-to-bottom, left-to-right.
	spans := []span{
		{text: "bottom", x: 72, y: 600, w: 40},
		{text: "top", x: 72, y: 700, w: 40},
	}
	blocks := groupSpans(spans, defaultTestConfig())
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].element(1).Text != "top" {
		t.Errorf("expected top block first, got %q", blocks[0].element(1).Text)
	}
}

func TestBlockElementMetadata(t *testing.T) {
	bl := block{spans: []span{
		{text: "Bold ", x: 72, y: 700, w: 30, fontSize: 14, font: "Helvetica-Bold"},
		{text: "title", x: 102, y: 700, w: 28, fontSize: 16, font: "Helvetica-Bold"},
	}}
	el := bl.element(3)

	if el.Text != "Bold title" {
		t.Errorf("unexpected text %q", el.Text)
	}
	if el.FontSize != 15 {
		t.Errorf("expected mean font size 15, got %v", el.FontSize)
	}
	if !el.Bold || el.Italic {
		t.Errorf("expected bold non-italic, got bold=%v italic=%v", el.Bold, el.Italic)
	}
	if el.Page != 3 {
		t.Errorf("expected page 3, got %d", el.Page)
	}
	if el.BBox == nil || el.BBox.X0 != 72 || el.BBox.X1 != 130 {
		t.Errorf("unexpected bbox: %+v", el.BBox)
	}
}

func TestFontStyleDetection(t *testing.T) {
	testCases := []struct {
		font   string
		bold   bool
		italic bool
	}{
		{"Helvetica-Bold", true, false},
		{"Times-BoldItalic", true, true},
		{"Courier-Oblique", false, true},
		{"Helvetica", false, false},
	}
	for _, tc := range testCases {
		if got := fontIsBold(tc.font); got != tc.bold {
			t.Errorf("%s: bold=%v, expected %v", tc.font, got, tc.bold)
		}
		if got := fontIsItalic(tc.font); got != tc.italic {
			t.Errorf("%s: italic=%v, expected %v", tc.font, got, tc.italic)
		}
	}
}
