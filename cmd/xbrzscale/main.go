// xbrzscale scales pixel art images with the xBRZ algorithm.
//
// Usage:
//
//	xbrzscale [-debug] <scale> <input> <output>
//	xbrzscale -version
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/obinnaokechukwu/xbrzscale"
	"github.com/sirupsen/logrus"
)

const usageStr = `xbrzscale scales pixel art images using the xBRZ algorithm.

Usage:

    xbrzscale [-debug] <scale> <input> <output>
    xbrzscale -version

Examples:

    xbrzscale 4 input.png output.png      Scale input.png by 4x
    xbrzscale 2 sprite.bmp sprite_2x.png  Scale sprite.bmp by 2x

The scale factor must be between 2 and 6 (inclusive).
Input may be BMP, GIF, JPEG, PNG, TIFF or WEBP. Output is always PNG.

Set XBRZ_LIBRARY_PATH to point at the xbrz_shared library if it is not
found automatically.
`

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xbrzscale", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { io.WriteString(stderr, usageStr) }
	debugFlag := fs.Bool("debug", false, "enable debug logging")
	versionFlag := fs.Bool("version", false, "print the xBRZ library version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := newLogger(stderr, *debugFlag)
	if *debugFlag {
		xbrzscale.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *versionFlag {
		v, err := xbrzscale.Version()
		if err != nil {
			logger.Errorf("Error: %v", err)
			return exitError
		}
		fmt.Fprintf(stdout, "xbrzscale %s\n", v)
		return exitOK
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return exitUsage
	}

	scale, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		logger.Errorf("Error: invalid scale factor %q", fs.Arg(0))
		return exitUsage
	}
	if err := scaleFile(logger, scale, fs.Arg(1), fs.Arg(2)); err != nil {
		logger.Errorf("Error: %v", err)
		return exitError
	}
	return exitOK
}

func newLogger(out io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}

	return logger
}

func scaleFile(logger *logrus.Logger, scale int, input, output string) error {
	if scale < xbrzscale.MinScale || scale > xbrzscale.MaxScale {
		return fmt.Errorf("scale_factor must be between %d and %d (inclusive), got %d",
			xbrzscale.MinScale, xbrzscale.MaxScale, scale)
	}

	if fi, err := os.Stat(input); err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("input file not found: %s", input)
	}

	logger.Infof("Loading image from %s...", input)
	img, err := loadImage(input)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	b := img.Bounds()
	logger.Infof("Image size: %dx%d", b.Dx(), b.Dy())

	logger.Infof("Scaling image by %dx...", scale)
	scaled, err := xbrzscale.ScaleNRGBA(img, scale)
	if err != nil {
		logger.WithField("kind", xbrzscale.KindOf(err)).Debug("scale failed")
		return fmt.Errorf("scaling failed: %w", err)
	}
	sb := scaled.Bounds()
	logger.Infof("Scaled size: %dx%d", sb.Dx(), sb.Dy())

	logger.Infof("Saving image to %s...", output)
	if err := savePNG(output, scaled); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	logger.Info("Done!")
	return nil
}
