package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/obinnaokechukwu/xbrzscale/internal/bindings"
)

func writeTestImage(t *testing.T, path string, encode func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(100 * y), B: 7, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func encodePNG(f *os.File, img image.Image) error { return png.Encode(f, img) }
func encodeBMP(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"no args", nil, exitUsage, "Usage:"},
		{"too few", []string{"2", "in.png"}, exitUsage, "Usage:"},
		{"non-integer scale", []string{"two", "in.png", "out.png"}, exitUsage, "invalid scale factor"},
		{"unknown flag", []string{"-bogus"}, exitUsage, "bogus"},
		{"scale too small", []string{"1", "in.png", "out.png"}, exitError, "between 2 and 6"},
		{"scale too large", []string{"7", "in.png", "out.png"}, exitError, "got 7"},
		{"missing input", []string{"2", filepath.Join(t.TempDir(), "nope.png"), "out.png"}, exitError, "input file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.code, stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.msg) {
				t.Errorf("stderr %q should contain %q", stderr.String(), tt.msg)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != exitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "xBRZ") {
		t.Errorf("help output %q", stderr.String())
	}
}

func TestRunInputIsDirectory(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"3", t.TempDir(), "out.png"}, &stdout, &stderr); code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
}

func TestRunUndecodableInput(t *testing.T) {
	in := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(in, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"2", in, "out.png"}, &stdout, &stderr); code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	if !strings.Contains(stderr.String(), "failed to load image") {
		t.Errorf("stderr %q", stderr.String())
	}
}

func TestLoadImageFormats(t *testing.T) {
	dir := t.TempDir()
	for name, enc := range map[string]func(*os.File, image.Image) error{
		"in.png": encodePNG,
		"in.bmp": encodeBMP,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			writeTestImage(t, path, enc)

			img, err := loadImage(path)
			if err != nil {
				t.Fatalf("loadImage: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
				t.Errorf("bounds = %v, want 3x2", b)
			}
			r, g, _, _ := img.At(2, 1).RGBA()
			if r>>8 != 80 || g>>8 != 100 {
				t.Errorf("pixel (2,1) r=%d g=%d, want 80, 100", r>>8, g>>8)
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if err := savePNG(path, img); err != nil {
		t.Fatalf("savePNG: %v", err)
	}
	got, err := loadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}

	if err := savePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("savePNG into a missing directory should fail")
	}
}

// Integration test - only runs if the native library is installed.
func TestRunScale(t *testing.T) {
	if _, ok := bindings.FindLibrary(bindings.CurrentConfig()); !ok {
		t.Skip("xBRZ shared library not installed")
	}

	dir := t.TempDir()
	in := filepath.Join(dir, "sprite.bmp")
	out := filepath.Join(dir, "sprite_3x.png")
	writeTestImage(t, in, encodeBMP)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"3", in, out}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
	}
	for _, want := range []string{"Image size: 3x2", "Scaled size: 9x6", "Done!"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("log %q missing %q", stderr.String(), want)
		}
	}

	img, err := loadImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 9 || b.Dy() != 6 {
		t.Errorf("output bounds = %v, want 9x6", b)
	}
}
