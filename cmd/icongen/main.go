package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/ycc/icongen"
	"github.com/ycc/icongen/utils"
)

const HelpBanner = `
icongen - generates the YCC Job Host installer icon.
    Version: %s

Usage: icongen [flags] [output]

`

// defaultName is the container written next to the executable when no output is given.
const defaultName = "icon.ico"

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination   = flag.String("out", "", "Output path (default icon.ico next to the executable, - for stdout)")
	previewDir    = flag.String("preview", "", "Directory receiving one preview image per size")
	previewFormat = flag.String("format", icongen.DefaultPreviewFormat, "Preview image format: png, bmp or jpg")
	verify        = flag.Bool("verify", false, "Decode the written icon and check its entries")
	verbose       = flag.Bool("v", false, "Print debug logs to stderr")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	utils.NoColor = !utils.IsTerminal(os.Stdout)

	out := *destination
	if flag.NArg() > 0 {
		out = flag.Arg(0)
	}
	if out == "" {
		var err error
		if out, err = defaultOutputPath(); err != nil {
			log.Fatalf(utils.DecorateText("ERROR: %v", utils.ErrorMessage), err)
		}
	}

	// Console messages must not mix with the container when it is piped to stdout.
	var console io.Writer = os.Stdout
	if out == icongen.PipeName {
		console = os.Stderr
	}

	gen := icongen.NewGenerator()
	gen.Logger = newLogger(os.Stderr, *verbose)
	gen.PreviewDir = *previewDir
	gen.PreviewFormat = *previewFormat

	var spinner *utils.Spinner
	if showSpinner(out, utils.IsTerminal(os.Stderr)) {
		spinner = utils.NewSpinner(
			utils.DecorateText("⇢ rendering icon...", utils.StatusMessage),
			80*time.Millisecond, true,
		)
		// Capture CTRL-C signal and restore the cursor visibility back.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-signalChan
			spinner.RestoreCursor()
			os.Exit(1)
		}()
	}

	os.Exit(run(gen, out, *verify, console, spinner))
}

// run generates the icon and reports the outcome on w. It returns the process exit code.
func run(gen *icongen.Generator, out string, verify bool, w io.Writer, spinner *utils.Spinner) int {
	fmt.Fprintln(w, utils.DecorateText("Creating icon for YCC Job Host...", utils.StatusMessage))

	if spinner != nil {
		spinner.Start()
	}
	res, err := gen.Generate(out)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		printError(w, err)
		return 1
	}

	fmt.Fprintf(w, "%s %s\n",
		utils.DecorateText("✓ Icon created successfully:", utils.SuccessMessage),
		res.Path,
	)
	fmt.Fprintf(w, "  Sizes included: %s\n", joinSizes(res.Sizes))
	for _, p := range res.Previews {
		fmt.Fprintf(w, "  Preview: %s\n", p)
	}

	if verify && out != icongen.PipeName {
		sizes, err := icongen.Verify(out)
		if err == nil {
			err = icongen.CheckSizes(sizes, res.Sizes)
		}
		if err == nil {
			err = icongen.VerifyPixels(out)
		}
		if err != nil {
			printError(w, err)
			return 1
		}
		fmt.Fprintf(w, "  Verified %d entries, primary %s\n", len(sizes), sizes[0])
	}

	fmt.Fprintf(w, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(res.Elapsed), utils.SuccessMessage))
	fmt.Fprintln(w, "\nNOTE: This is a basic, automatically generated icon.")
	fmt.Fprintf(w, "For a more professional look, replace '%s' with a professionally designed icon.\n", filepath.Base(res.Path))
	return 0
}

// printError writes err in the layout matching its kind.
func printError(w io.Writer, err error) {
	var depErr *icongen.DependencyError
	if errors.As(err, &depErr) {
		fmt.Fprintln(w, utils.DecorateText("ERROR: "+depErr.Error(), utils.ErrorMessage))
		fmt.Fprintln(w, depErr.InstallHint())
		fmt.Fprintln(w, "\nAlternatively, you can:")
		for _, line := range depErr.Remediation() {
			fmt.Fprintln(w, line)
		}
		return
	}
	fmt.Fprintln(w, utils.DecorateText("ERROR: "+err.Error(), utils.ErrorMessage))
}

// showSpinner reports whether the progress spinner may draw on stderr. It stays
// off when stderr is not a terminal or when the icon itself is piped to stdout.
func showSpinner(out string, stderrIsTerminal bool) bool {
	return stderrIsTerminal && out != icongen.PipeName
}

// joinSizes renders sizes as a comma separated list, e.g. "16x16, 32x32".
func joinSizes(sizes []icongen.Size) string {
	s := make([]string, len(sizes))
	for i, size := range sizes {
		s[i] = size.String()
	}
	return strings.Join(s, ", ")
}

// defaultOutputPath resolves icon.ico in the directory holding the executable.
func defaultOutputPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("unable to locate the executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), defaultName), nil
}

// newLogger returns a console logger on w, or a disabled logger unless verbose is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    utils.NoColor,
	}
	return zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
