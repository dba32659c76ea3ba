package convert

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const emptyDocxMessage = "No readable text content found in the document."

const noParagraphsMessage = "Document content could not be split into paragraphs."

// buildDocx assembles a minimal OOXML package: one document part with a
// title paragraph followed by one paragraph per blank-line-separated block.
// When the source yields no paragraphs, a default message plus an excerpt of
// the raw content is written instead.
func buildDocx(text string) ([]byte, error) {
	paragraphs := splitParagraphs(text)
	if len(paragraphs) == 0 {
		paragraphs = []string{noParagraphsMessage}
		if excerpt := strings.TrimSpace(truncate(text, 1000)); excerpt != "" {
			paragraphs = append(paragraphs, excerpt)
		}
	}

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	doc.WriteString(`<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Converted Document</w:t></w:r></w:p>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r>`)
		for i, line := range strings.Split(p, "\n") {
			if i > 0 {
				doc.WriteString(`<w:br/>`)
			}
			doc.WriteString(`<w:t xml:space="preserve">`)
			if err := xml.EscapeText(&doc, []byte(line)); err != nil {
				return nil, fmt.Errorf("failed to escape text: %w", err)
			}
			doc.WriteString(`</w:t>`)
		}
		doc.WriteString(`</w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/document.xml", doc.String()},
	}
	for _, part := range parts {
		f, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize docx: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// readDocxText extracts the plain text of word/document.xml, one line per
// paragraph, tabs and explicit breaks preserved.
func readDocxText(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: not a zip archive: %v", ErrDecode, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%w: missing word/document.xml", ErrDecode)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document part: %w", err)
	}
	defer rc.Close()

	lines, err := walkDocumentXML(rc)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return emptyDocxMessage, nil
	}
	return strings.Join(lines, "\n"), nil
}

func walkDocumentXML(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		lines   []string
		current strings.Builder
		inPara  bool
		inText  bool
	)
	flush := func() {
		line := strings.TrimRight(current.String(), " ")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed document xml: %v", ErrDecode, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
			case "t":
				inText = true
			case "br":
				if inPara {
					flush()
				}
			case "tab":
				if inPara {
					current.WriteByte('\t')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				flush()
				inPara = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inPara && inText {
				current.Write(t)
			}
		}
	}
	flush()
	return lines, nil
}
