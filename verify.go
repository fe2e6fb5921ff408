package icongen

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	"github.com/ycc/icongen/utils"
)

const iconContentType = "image/x-icon"

// ICONDIR header and ICONDIRENTRY sizes, in bytes.
const (
	dirHeaderLen = 6
	dirEntryLen  = 16
)

// Verify checks that path holds a decodable icon container and returns the
// entry sizes in container order. The first size is the primary entry.
func Verify(path string) ([]Size, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, err
	}
	if ctype != iconContentType {
		return nil, fmt.Errorf("%s is not an icon file (detected %s)", path, ctype)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sizes, err := readDirectory(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	imgs, err := ico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode the icon: %w", err)
	}
	if len(imgs) != len(sizes) {
		return nil, fmt.Errorf("icon directory lists %d entries but %d decoded", len(sizes), len(imgs))
	}
	return sizes, nil
}

// readDirectory parses the ICONDIR header. A stored dimension of 0 means 256.
func readDirectory(r io.Reader) ([]Size, error) {
	var hdr [dirHeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("could not read the icon header: %w", err)
	}
	if binary.LittleEndian.Uint16(hdr[0:]) != 0 || binary.LittleEndian.Uint16(hdr[2:]) != 1 {
		return nil, errors.New("invalid icon header")
	}

	n := int(binary.LittleEndian.Uint16(hdr[4:]))
	if n == 0 {
		return nil, errors.New("icon contains no images")
	}

	sizes := make([]Size, 0, n)
	var entry [dirEntryLen]byte
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return nil, fmt.Errorf("could not read icon entry %d: %w", i, err)
		}
		w, h := int(entry[0]), int(entry[1])
		if w == 0 {
			w = 256
		}
		if h == 0 {
			h = 256
		}
		sizes = append(sizes, Size{w, h})
	}
	return sizes, nil
}

// CheckSizes reports an error unless got matches want entry by entry.
func CheckSizes(got, want []Size) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d icon entries, found %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("entry %d: expected %s, found %s", i, want[i], got[i])
		}
	}
	return nil
}

// VerifyPixels decodes every entry of the container at path and compares it
// with a freshly rendered canvas of the same size.
func VerifyPixels(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	imgs, err := ico.DecodeAll(f)
	if err != nil {
		return fmt.Errorf("could not decode the icon: %w", err)
	}
	for i, img := range imgs {
		b := img.Bounds()
		want, err := Render(Size{b.Dx(), b.Dy()})
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if !bytes.Equal(imaging.Clone(img).Pix, want.Pix) {
			return fmt.Errorf("entry %d (%dx%d): pixels differ from the rendered canvas", i, b.Dx(), b.Dy())
		}
	}
	return nil
}
