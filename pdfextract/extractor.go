// Package pdfextract turns PDF bytes into classified text elements and a
// document structure summary. Extraction runs through a strict-priority chain
// of backends: layout-aware span grouping, then font-table spans, then plain
// per-line text. A backend failure advances the chain instead of aborting.
package pdfextract

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrBackendUnavailable marks a backend whose optional dependency is
	// missing. Internal to the chain; never surfaced on its own.
	ErrBackendUnavailable = errors.New("extraction backend unavailable")
	// ErrExtractionFailed is returned once every backend has been exhausted.
	ErrExtractionFailed = errors.New("pdf extraction failed")

	errNoElements = errors.New("no text elements extracted")
)

// Options controls a single extraction call.
type Options struct {
	// PreserveStructure enables structural classification and markers. When
	// false the basic plain-text backend is forced and elements render
	// verbatim.
	PreserveStructure bool
}

// DefaultOptions enables structure preservation.
func DefaultOptions() Options {
	return Options{PreserveStructure: true}
}

// backend is one extraction strategy in the fallback chain.
type backend interface {
	Name() string
	// Available reports whether the backend's dependency can be used. Probed
	// per call; cheap for the bundled backends.
	Available() bool
	// Extract parses the PDF and feeds elements into the per-call document.
	Extract(doc *document, content []byte) error
}

// document is the context of exactly one extraction call. It owns the element
// list and the running font-size average, so concurrent extractions never
// share state.
type document struct {
	cfg      Config
	elements []TextElement
	fontSum  float64
	fontSeen int
}

// avgFontSize is the arithmetic mean of all font sizes observed so far in
// reading order. Provisional early in the document; the very first header may
// be misclassified against its own size, which is accepted behavior.
func (d *document) avgFontSize() float64 {
	if d.fontSeen == 0 {
		return 12
	}
	return d.fontSum / float64(d.fontSeen)
}

// add classifies and appends one element. The element's own font size joins
// the running average before classification.
func (d *document) add(el TextElement) {
	if strings.TrimSpace(el.Text) == "" {
		return
	}
	if el.FontSize > 0 {
		d.fontSum += el.FontSize
		d.fontSeen++
	}
	classify(d, &el)
	el.Text = strings.TrimSpace(el.Text)
	d.elements = append(d.elements, el)
}

// Extractor runs the backend chain. Safe for concurrent use; all per-call
// state lives in the document context.
type Extractor struct {
	cfg      Config
	logger   *zap.Logger
	backends []backend
	basic    backend
}

// New builds an extractor with the default backend chain.
func New(cfg Config, logger *zap.Logger) *Extractor {
	cfg.defaults()
	basic := &basicBackend{}
	return &Extractor{
		cfg:    cfg,
		logger: logger,
		backends: []backend{
			&layoutBackend{cfg: cfg},
			&fontTableBackend{},
			basic,
		},
		basic: basic,
	}
}

// Extract runs the chain and returns the formatted text plus the structure
// summary. Backend errors and panics are logged and advance the chain; only
// full exhaustion surfaces as ErrExtractionFailed. A parseable document with
// no text yields the literal no-text message and a nil error.
func (e *Extractor) Extract(content []byte, opts Options) (string, *DocumentStructure, error) {
	chain := e.backends
	if !opts.PreserveStructure {
		chain = []backend{e.basic}
	}
	return e.run(chain, content, opts.PreserveStructure)
}

// ExtractBasic forces the plain-text backend, bypassing the chain. Used by
// callers as an outer fallback after an Extract failure.
func (e *Extractor) ExtractBasic(content []byte) (string, *DocumentStructure, error) {
	return e.run([]backend{e.basic}, content, true)
}

func (e *Extractor) run(chain []backend, content []byte, structured bool) (string, *DocumentStructure, error) {
	var lastErr error
	for _, b := range chain {
		if !b.Available() {
			e.logger.Warn("extraction backend unavailable", zap.String("backend", b.Name()))
			lastErr = fmt.Errorf("%s: %w", b.Name(), ErrBackendUnavailable)
			continue
		}
		doc := &document{cfg: e.cfg}
		if err := runBackend(b, doc, content); err != nil {
			e.logger.Warn("extraction backend failed",
				zap.String("backend", b.Name()),
				zap.Error(err))
			lastErr = err
			continue
		}
		if len(doc.elements) == 0 {
			e.logger.Warn("extraction backend produced no text", zap.String("backend", b.Name()))
			lastErr = errNoElements
			continue
		}
		e.logger.Info("pdf extracted",
			zap.String("backend", b.Name()),
			zap.Int("elements", len(doc.elements)))
		return renderElements(doc.elements, structured), buildStructure(doc.elements), nil
	}
	if lastErr != nil && !errors.Is(lastErr, errNoElements) {
		return "", nil, fmt.Errorf("%w: %v", ErrExtractionFailed, lastErr)
	}
	return noTextMessage, &DocumentStructure{}, nil
}

// runBackend isolates backend panics so a broken parser cannot abort the
// chain.
func runBackend(b backend, doc *document, content []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend %s panicked: %v", b.Name(), r)
		}
	}()
	return b.Extract(doc, content)
}
