// Package imgio decodes image files into pixedit buffers and encodes
// buffers back to disk. It is the codec collaborator around the editing
// core: PNG and JPEG via the standard library, BMP via golang.org/x/image.
package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gopix/pixedit"
)

// ErrUnsupportedFormat is returned for file extensions no codec handles.
var ErrUnsupportedFormat = errors.New("imgio: unsupported format")

// Load reads the image at path and decodes it into a 3-channel RGB
// buffer. The format is chosen by file extension: .png, .jpg/.jpeg, .bmp.
func Load(path string) (*pixedit.Buffer, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imgio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode: %w", err)
	}

	buf, err := FromImage(img)
	if err != nil {
		return nil, err
	}

	pixedit.Logger().Debug("image loaded",
		"path", path, "width", buf.Width(), "height", buf.Height())
	return buf, nil
}

// Save encodes the buffer to path, choosing the format by file
// extension. Single-channel buffers are written as grayscale images.
func Save(path string, b *pixedit.Buffer) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imgio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := encode(f, ToImage(b)); err != nil {
		return fmt.Errorf("imgio: encode: %w", err)
	}

	pixedit.Logger().Debug("image saved", "path", path)
	return nil
}

func decoderFor(path string) (func(io.Reader) (image.Image, error), error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Decode, nil
	case ".jpg", ".jpeg":
		return jpeg.Decode, nil
	case ".bmp":
		return bmp.Decode, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
