package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homdahal997/fileapi/convert"
)

// Handlers holds the HTTP handlers for the conversion endpoints.
type Handlers struct {
	service        *convert.Service
	logger         *zap.Logger
	maxUploadBytes int64
}

// NewHandlers creates the handler set around a conversion service.
func NewHandlers(service *convert.Service, logger *zap.Logger, maxUploadBytes int64) *Handlers {
	return &Handlers{
		service:        service,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Convert handles POST /api/v1/convert. The request is multipart form data
// with the upload under "file", a required "output_format" field, and
// optional "input_format", "quality", "width", "height" and
// "preserve_structure" fields. The response body is the converted file.
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	conversionID := uuid.NewString()
	w.Header().Set("X-Conversion-Id", conversionID)

	content, filename, err := h.readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	outputFormat := strings.TrimSpace(r.FormValue("output_format"))
	if outputFormat == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing output_format parameter"))
		return
	}
	inputFormat := strings.TrimSpace(r.FormValue("input_format"))
	if inputFormat == "" {
		inputFormat = strings.TrimPrefix(filepath.Ext(filename), ".")
	}
	if inputFormat == "" {
		writeError(w, http.StatusBadRequest, errors.New("input format could not be determined"))
		return
	}

	opts, err := parseOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.Convert(content, filename, inputFormat, outputFormat, opts)
	if err != nil {
		h.logger.Warn("conversion request failed",
			zap.String("conversion_id", conversionID),
			zap.String("input", inputFormat),
			zap.String("output", outputFormat),
			zap.Error(err))
		writeError(w, statusFor(err), err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(result.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Content)
}

// FileInfo handles POST /api/v1/file-info and returns metadata about the
// uploaded file as JSON.
func (h *Handlers) FileInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	content, filename, err := h.readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Inspect(content, filename))
}

// Formats handles GET /api/v1/formats and lists the format catalog.
func (h *Handlers) Formats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Formats())
}

func (h *Handlers) readUpload(r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return nil, "", fmt.Errorf("failed to parse upload: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", errors.New("missing file upload")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	return content, header.Filename, nil
}

func parseOptions(r *http.Request) (convert.Options, error) {
	opts := convert.DefaultOptions()

	intFields := []struct {
		name   string
		target *int
	}{
		{"quality", &opts.Quality},
		{"width", &opts.Width},
		{"height", &opts.Height},
	}
	for _, f := range intFields {
		raw := strings.TrimSpace(r.FormValue(f.name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return opts, fmt.Errorf("invalid %s parameter: %q", f.name, raw)
		}
		*f.target = v
	}

	if raw := strings.TrimSpace(r.FormValue("preserve_structure")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid preserve_structure parameter: %q", raw)
		}
		opts.PreserveStructure = v
	}
	return opts, nil
}

// statusFor maps conversion errors onto HTTP statuses: caller mistakes are
// 400, everything else is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, convert.ErrUnsupportedConversion),
		errors.Is(err, convert.ErrNotImplemented),
		errors.Is(err, convert.ErrDecode),
		errors.Is(err, convert.ErrUnsupportedPixelFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
