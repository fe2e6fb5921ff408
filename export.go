package icongen

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// DefaultPreviewFormat is used when no preview format is given.
const DefaultPreviewFormat = "png"

// previewExt maps the supported preview formats to their file extension.
var previewExt = map[string]string{
	"png":  ".png",
	"bmp":  ".bmp",
	"jpg":  ".jpg",
	"jpeg": ".jpg",
}

// PreviewName returns the file name of the preview image for size s.
func PreviewName(s Size, format string) (string, error) {
	ext, ok := previewExt[normalizeFormat(format)]
	if !ok {
		return "", fmt.Errorf("unsupported preview format %q", format)
	}
	return fmt.Sprintf("icon-%s%s", s, ext), nil
}

// ExportPreviews writes every canvas of set into dir as a standalone image and
// returns the written paths in set order. dir must exist.
func ExportPreviews(dir, format string, set IconImageSet) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to access the preview directory: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	paths := make([]string, 0, len(set))
	for i, s := range set.Sizes() {
		name, err := PreviewName(s, format)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, name)
		if err := savePreview(path, format, set[i]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func savePreview(path, format string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the preview file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := encodePreview(f, format, img); err != nil {
		return fmt.Errorf("could not encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// encodePreview encodes img in the requested format.
func encodePreview(w io.Writer, format string, img image.Image) error {
	switch normalizeFormat(format) {
	case "png":
		return imaging.Encode(w, img, imaging.PNG)
	case "jpg", "jpeg":
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(100))
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported preview format %q", format)
	}
}

func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "" {
		return DefaultPreviewFormat
	}
	return format
}
