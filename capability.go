package icongen

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

// DependencyError reports that the drawing or encoding facility is unusable.
// It is returned before any rendering takes place.
type DependencyError struct {
	Component string
	Err       error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s is not available: %v", e.Component, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// InstallHint tells the user how to obtain a working build.
func (e *DependencyError) InstallHint() string {
	return "Install with: go install github.com/ycc/icongen/cmd/icongen@latest"
}

// Remediation lists the alternatives offered to the user when the icon cannot be generated.
func (e *DependencyError) Remediation() []string {
	return []string{
		"1. Create an icon manually with a tool such as GIMP, Photoshop or an online generator",
		"2. Save it as 'icon.ico' in the installer directory",
		"3. Run build.bat to build the installer",
	}
}

// CheckCapabilities runs enc on a 1x1 canvas and decodes the result back.
func CheckCapabilities(enc EncoderFunc) (err error) {
	if enc == nil {
		return &DependencyError{Component: "icon encoder", Err: errors.New("no encoder registered")}
	}
	defer func() {
		if r := recover(); r != nil {
			err = &DependencyError{Component: "icon encoder", Err: fmt.Errorf("encoder panicked: %v", r)}
		}
	}()

	sample := imaging.New(1, 1, Background)
	var buf bytes.Buffer
	if err := enc(&buf, []image.Image{sample}); err != nil {
		return &DependencyError{Component: "icon encoder", Err: err}
	}

	imgs, err := ico.DecodeAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return &DependencyError{Component: "icon decoder", Err: err}
	}
	if len(imgs) != 1 || imgs[0].Bounds().Dx() != 1 || imgs[0].Bounds().Dy() != 1 {
		return &DependencyError{
			Component: "icon encoder",
			Err:       fmt.Errorf("round trip returned %d image(s)", len(imgs)),
		}
	}
	return nil
}
