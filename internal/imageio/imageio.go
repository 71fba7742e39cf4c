// Package imageio loads source images and persists generated variants.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultQuality is the JPEG quality used for generated variants.
const DefaultQuality = 95

var (
	// ErrDecode is returned when a source image cannot be read or decoded.
	ErrDecode = errors.New("imageio: cannot decode image")
	// ErrEncode is returned when a variant cannot be encoded or written.
	ErrEncode = errors.New("imageio: cannot encode image")
)

// Load opens and decodes the image at path. Truncated JPEG data is decoded
// best-effort; see LoadFile.
func Load(path string) (image.Image, error) {
	img, _, err := LoadFile(path)
	return img, err
}

// LoadFile is like Load and also reports whether the image was recovered
// from truncated data, in which case the missing tail is filled in.
func LoadFile(path string) (img image.Image, partial bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	img, partial, err = Decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return img, partial, nil
}

// Decode decodes an image held in memory. If a JPEG stream ends early, the
// entropy-coded data is padded and terminated so the intact rows survive;
// partial is then true. Other formats fail on truncation.
func Decode(data []byte) (img image.Image, partial bool, err error) {
	img, _, err = image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, false, nil
	}
	if !isTruncatedJPEG(data, err) {
		return nil, false, err
	}

	cfg, cfgErr := jpeg.DecodeConfig(bytes.NewReader(data))
	if cfgErr != nil {
		return nil, false, err
	}
	padded := make([]byte, len(data), len(data)+cfg.Width*cfg.Height+jpegPadding+len(jpegEOI))
	copy(padded, data)
	padded = append(padded, make([]byte, cfg.Width*cfg.Height+jpegPadding)...)
	padded = append(padded, jpegEOI...)

	img, retryErr := jpeg.Decode(bytes.NewReader(padded))
	if retryErr != nil {
		return nil, false, err
	}
	return img, true, nil
}

// jpegPadding is the minimum number of zero bytes appended to a truncated
// JPEG scan.
const jpegPadding = 4096

var (
	jpegSOI = []byte{0xff, 0xd8}
	jpegEOI = []byte{0xff, 0xd9}
)

// isTruncatedJPEG reports whether err is the decoder running out of data in
// a JPEG stream that lacks its end-of-image marker.
func isTruncatedJPEG(data []byte, err error) bool {
	if !bytes.HasPrefix(data, jpegSOI) || bytes.HasSuffix(data, jpegEOI) {
		return false
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var ferr jpeg.FormatError
	return errors.As(err, &ferr) && strings.HasPrefix(string(ferr), "short")
}

// SaveJPEG encodes img as a JPEG file at path with the given quality
// (1-100). Out-of-range values fall back to DefaultQuality.
func SaveJPEG(img image.Image, path string, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	if err := imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	return nil
}

// CopyFile copies src to dst byte for byte, replacing dst if it exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, dst, err)
	}
	defer func() {
		out.Close()
		os.Remove(tmp) // clean up if not renamed
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, dst, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, dst, err)
	}
	return nil
}
