package convert

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	// webp decodes but has no encoder; registration only.
	_ "golang.org/x/image/webp"
)

// Formats whose encoders carry no alpha channel. Transparent sources are
// flattened onto white before encoding to these.
var opaqueOnlyFormats = nameSet("jpg", "jpeg", "bmp")

// ImageConverter decodes, optionally resizes, and re-encodes raster images.
type ImageConverter struct {
	logger *zap.Logger
}

func NewImageConverter(logger *zap.Logger) *ImageConverter {
	return &ImageConverter{logger: logger}
}

// Convert re-encodes content from one raster format to another, resizing
// first when the options ask for it.
func (c *ImageConverter) Convert(content []byte, in, out string, opts Options) ([]byte, error) {
	img, codec, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, &ConversionError{Family: "image", Err: fmt.Errorf("%w: %v", ErrDecode, err)}
	}

	if opts.Width > 0 || opts.Height > 0 {
		img = resize(img, opts.Width, opts.Height)
	}

	if member(opaqueOnlyFormats, out) && hasAlpha(img) {
		img = flattenOnWhite(img)
	}

	encoded, err := encode(img, out, opts.Quality)
	if err != nil {
		return nil, &ConversionError{Family: "image", Err: err}
	}

	c.logger.Debug("image re-encoded",
		zap.String("decoded_as", codec),
		zap.String("target", out),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))

	return encoded, nil
}

// resize scales img to the requested dimensions, deriving a missing dimension
// from the source aspect ratio.
func resize(img image.Image, width, height int) image.Image {
	src := img.Bounds()
	if width <= 0 {
		ratio := float64(height) / float64(src.Dy())
		width = int(math.Round(float64(src.Dx()) * ratio))
	}
	if height <= 0 {
		ratio := float64(width) / float64(src.Dx())
		height = int(math.Round(float64(src.Dy()) * ratio))
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == src.Dx() && height == src.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)
	return dst
}

// hasAlpha reports whether img may contain non-opaque pixels.
func hasAlpha(img image.Image) bool {
	type opaquer interface {
		Opaque() bool
	}
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}
	return true
}

// flattenOnWhite composites img over a white background, discarding alpha.
func flattenOnWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Over)
	return flat
}

func encode(img image.Image, target string, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = 95
	}

	var buf bytes.Buffer
	switch target {
	case "jpg", "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode jpeg: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode png: %w", err)
		}
	case "gif":
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("failed to encode gif: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode bmp: %w", err)
		}
	case "tiff":
		if err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return nil, fmt.Errorf("failed to encode tiff: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: no %s encoder", ErrUnsupportedPixelFormat, target)
	}
	return buf.Bytes(), nil
}
