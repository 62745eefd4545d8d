// Package smartdecoder provides an image decoder that selects the codec from
// the file extension and falls back to content sniffing.
package smartdecoder

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/user/img2gif/pkg/ports"
)

// Format identifies a still image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

// DecodeFunc decodes one image from r.
type DecodeFunc func(r io.Reader) (image.Image, error)

var (
	// ErrUnsupportedFormat is returned for names with no registered extension.
	ErrUnsupportedFormat = errors.New("smartdecoder: unsupported format")
)

// Decoder implements ports.ImageDecoder over a registry of formats.
type Decoder struct {
	extensions map[string]Format
	decoders   map[Format]DecodeFunc
	magic      map[Format][]string
}

// New creates a Decoder with PNG, JPEG, BMP, TIFF and WebP registered.
func New() *Decoder {
	d := &Decoder{
		extensions: make(map[string]Format),
		decoders:   make(map[Format]DecodeFunc),
		magic:      make(map[Format][]string),
	}
	d.Register(FormatPNG, png.Decode, []string{".png"}, "\x89PNG\r\n\x1a\n")
	d.Register(FormatJPEG, jpeg.Decode, []string{".jpg", ".jpeg"}, "\xff\xd8")
	d.Register(FormatBMP, bmp.Decode, []string{".bmp"}, "BM")
	d.Register(FormatTIFF, tiff.Decode, []string{".tiff"}, "II*\x00", "MM\x00*")
	d.Register(FormatWebP, webp.Decode, []string{".webp"}, "RIFF????WEBP")
	return d
}

// Register adds or replaces a format. Extensions include the leading dot and
// are matched case-insensitively. Magic prefixes use '?' as a wildcard byte.
func (d *Decoder) Register(format Format, fn DecodeFunc, extensions []string, magic ...string) {
	d.decoders[format] = fn
	for _, ext := range extensions {
		d.extensions[strings.ToLower(ext)] = format
	}
	if len(magic) > 0 {
		d.magic[format] = magic
	}
}

// Extensions returns the registered extensions in sorted order.
func (d *Decoder) Extensions() []string {
	exts := make([]string, 0, len(d.extensions))
	for ext := range d.extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// FormatOf returns the format registered for the extension of name.
func (d *Decoder) FormatOf(name string) (Format, bool) {
	f, ok := d.extensions[strings.ToLower(filepath.Ext(name))]
	return f, ok
}

// Supports reports whether name carries a registered extension.
func (d *Decoder) Supports(name string) bool {
	_, ok := d.FormatOf(name)
	return ok
}

// Decode decodes r using the codec registered for the extension of name.
// When the content does not start with that codec's signature but matches
// another registered one, the matching codec is used instead.
func (d *Decoder) Decode(r io.Reader, name string) (image.Image, error) {
	format, ok := d.FormatOf(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}

	br := bufio.NewReader(r)
	if sniffed, ok := d.sniff(br); ok {
		format = sniffed
	}

	img, err := d.decoders[format](br)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return img, nil
}

// sniff peeks at the header and returns the first format whose signature matches.
func (d *Decoder) sniff(br *bufio.Reader) (Format, bool) {
	for format, prefixes := range d.magic {
		for _, prefix := range prefixes {
			head, err := br.Peek(len(prefix))
			if err != nil {
				continue
			}
			if matchMagic(prefix, head) {
				return format, true
			}
		}
	}
	return "", false
}

func matchMagic(magic string, b []byte) bool {
	if len(magic) != len(b) {
		return false
	}
	for i, c := range b {
		if magic[i] != c && magic[i] != '?' {
			return false
		}
	}
	return true
}

// Ensure Decoder implements ports.ImageDecoder
var _ ports.ImageDecoder = (*Decoder)(nil)
