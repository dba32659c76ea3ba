package convert

import (
	"bytes"
	"image"
	"mime"
	"path/filepath"
	"strings"
)

// Inspect reports metadata about an input buffer without converting it.
// Image dimensions are included when the extension belongs to the image
// family and the bytes decode.
func (s *Service) Inspect(content []byte, filename string) *FileInfo {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	info := &FileInfo{
		Size:      len(content),
		Filename:  filename,
		Extension: ext,
	}

	if mt := mime.TypeByExtension("." + ext); mt != "" {
		info.MIMEType = mt
	} else if desc, ok := s.catalog.Lookup(ext); ok {
		info.MIMEType = desc.MIMEType
	}

	if member(imageFormats, ext) {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(content)); err == nil {
			info.Width = cfg.Width
			info.Height = cfg.Height
		}
	}
	return info
}
