package convert

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestJSONToYAML(t *testing.T) {
	c := NewTextDataConverter(zap.NewNop())
	out, err := c.Convert([]byte(`{"name":"ada","tags":["math","code"]}`), "json", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "name: ada") {
		t.Errorf("scalar missing: %q", got)
	}
	if !strings.Contains(got, "- math") {
		t.Errorf("sequence missing: %q", got)
	}
}

func TestYAMLToJSON(t *testing.T) {
	c := NewTextDataConverter(zap.NewNop())
	out, err := c.Convert([]byte("name: grace\nactive: true\ncount: 3\n"), "yml", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if decoded["name"] != "grace" {
		t.Errorf("expected name grace, got %v", decoded["name"])
	}
	if decoded["active"] != true {
		t.Errorf("expected active true, got %v", decoded["active"])
	}
}

func TestCSVToJSON(t *testing.T) {
	c := NewTextDataConverter(zap.NewNop())
	out, err := c.Convert([]byte("name,age\nada,36\ngrace,\n"), "csv", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []map[string]string
	if err := json.Unmarshal(out, &records); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["name"] != "ada" || records[0]["age"] != "36" {
		t.Errorf("unexpected first record: %v", records[0])
	}
	if records[1]["age"] != "" {
		t.Errorf("expected empty age, got %q", records[1]["age"])
	}
}

func TestCSVToJSONHeaderOnly(t *testing.T) {
	c := NewTextDataConverter(zap.NewNop())
	out, err := c.Convert([]byte("name,age\n"), "csv", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(string(out)) != "[]" {
		t.Errorf("expected empty array, got %q", out)
	}
}

func TestTextDataRejectsMalformedInput(t *testing.T) {
	c := NewTextDataConverter(zap.NewNop())
	_, err := c.Convert([]byte("{broken"), "json", "yaml")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestTextDataUnhandledPair(t *testing.T) {
	c := NewTextDataConverter(zap.NewNop())
	_, err := c.Convert([]byte("<root/>"), "xml", "json")
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}
