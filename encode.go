package icongen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/ycc/icongen/utils"
)

// PipeName is the output path that redirects the container to stdout.
const PipeName = "-"

// EncoderFunc writes images into a single multi-resolution container.
// The first image is the primary entry.
type EncoderFunc func(w io.Writer, imgs []image.Image) error

// DefaultEncoder packs the images into an ICO container.
var DefaultEncoder EncoderFunc = ico.EncodeAll

// Encode writes set to w as an ICO container, one entry per canvas in set order.
func Encode(w io.Writer, set IconImageSet) error {
	return encode(DefaultEncoder, w, set)
}

func encode(enc EncoderFunc, w io.Writer, set IconImageSet) error {
	if enc == nil {
		return errors.New("no icon encoder configured")
	}
	if len(set) == 0 {
		return errors.New("cannot encode an empty icon set")
	}
	for _, s := range set.Sizes() {
		if err := validateSize(s); err != nil {
			return err
		}
	}
	if err := enc(w, set.Images()); err != nil {
		return fmt.Errorf("could not encode the icon: %w", err)
	}
	return nil
}

// WriteFile encodes set into the file at path, replacing any existing file.
// The parent directory must already exist.
func WriteFile(path string, set IconImageSet) error {
	return writeFile(DefaultEncoder, path, set)
}

func writeFile(enc EncoderFunc, path string, set IconImageSet) error {
	var buf bytes.Buffer
	if err := encode(enc, &buf, set); err != nil {
		return err
	}
	return writeBytes(path, buf.Bytes())
}

// writeBytes stores an encoded container at path, or on stdout for PipeName.
func writeBytes(path string, data []byte) (err error) {
	if path == PipeName {
		if utils.IsTerminal(os.Stdout) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close the destination file: %w", cerr)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("unable to write the destination file: %w", err)
	}
	return nil
}
