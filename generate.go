package icongen

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Operations reported by a GenerationError.
const (
	OpRender = "render"
	OpEncode = "encode"
	OpWrite  = "write"
	OpExport = "export"
	OpPanic  = "panic"
)

// GenerationError wraps any fault raised while rendering, encoding or writing the icon.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Result describes a successful run.
type Result struct {
	Path     string
	Sizes    []Size
	Previews []string
	Elapsed  time.Duration
}

// Generator renders the icon at every configured size and writes the container.
type Generator struct {
	// Sizes defaults to the package level Sizes when empty.
	Sizes   []Size
	Encoder EncoderFunc
	Logger  zerolog.Logger

	// PreviewDir, when set, receives one image file per size.
	PreviewDir    string
	PreviewFormat string
}

// NewGenerator returns a Generator using the ICO encoder and logging nothing.
func NewGenerator() *Generator {
	return &Generator{
		Sizes:   Sizes,
		Encoder: DefaultEncoder,
		Logger:  zerolog.Nop(),
	}
}

// Generate writes the icon to outputPath with the default Generator.
func Generate(outputPath string) (*Result, error) {
	return NewGenerator().Generate(outputPath)
}

// Generate checks the encoder, renders every size and writes the container to
// outputPath. A failed capability check is reported as *DependencyError; every
// other fault, panics included, is reported as *GenerationError.
func (g *Generator) Generate(outputPath string) (res *Result, err error) {
	if err := CheckCapabilities(g.Encoder); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			res, err = nil, &GenerationError{Op: OpPanic, Err: fmt.Errorf("%v", r)}
		}
	}()

	start := time.Now()
	sizes := g.Sizes
	if len(sizes) == 0 {
		sizes = Sizes
	}

	set, err := g.render(sizes)
	if err != nil {
		return nil, &GenerationError{Op: OpRender, Err: err}
	}

	var buf bytes.Buffer
	if err := encode(g.Encoder, &buf, set); err != nil {
		return nil, &GenerationError{Op: OpEncode, Err: err}
	}
	if err := writeBytes(outputPath, buf.Bytes()); err != nil {
		return nil, &GenerationError{Op: OpWrite, Err: err}
	}
	g.Logger.Info().
		Str("path", outputPath).
		Int("entries", len(set)).
		Int("bytes", buf.Len()).
		Msg("icon written")

	res = &Result{
		Path:  outputPath,
		Sizes: set.Sizes(),
	}

	if g.PreviewDir != "" {
		res.Previews, err = ExportPreviews(g.PreviewDir, g.PreviewFormat, set)
		if err != nil {
			return nil, &GenerationError{Op: OpExport, Err: err}
		}
		g.Logger.Info().Str("dir", g.PreviewDir).Int("files", len(res.Previews)).Msg("previews exported")
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

func (g *Generator) render(sizes []Size) (IconImageSet, error) {
	if len(sizes) == 0 {
		return nil, errors.New("no icon sizes given")
	}
	set := make(IconImageSet, 0, len(sizes))
	for _, s := range sizes {
		img, err := Render(s)
		if err != nil {
			return nil, err
		}
		g.Logger.Debug().
			Stringer("size", s).
			Int("border", BorderWidth(s)).
			Int("line", LineWidth(s)).
			Msg("canvas rendered")
		set = append(set, img)
	}
	return set, nil
}
