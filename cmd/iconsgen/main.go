// Command iconsgen writes a placeholder icon pack so the puzzle can run
// without hand-made artwork.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

type shape int

const (
	donut shape = iota
	square
	diamond
	lines
	oval
	numShapes
)

var palette = []color.RGBA{
	{255, 0, 0, 255},   // red
	{0, 255, 0, 255},   // green
	{0, 0, 255, 255},   // blue
	{255, 255, 0, 255}, // yellow
	{255, 128, 0, 255}, // orange
	{255, 0, 255, 255}, // purple
	{0, 255, 255, 255}, // cyan
}

func main() {
	out := flag.String("out", "assets", "output directory")
	size := flag.Int("size", 48, "icon width and height in pixels")
	count := flag.Int("count", len(palette)*int(numShapes), "number of icons to write")
	flag.Parse()

	if err := generate(*out, *size, *count); err != nil {
		fmt.Fprintf(os.Stderr, "iconsgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d icons to %s\n", *count, *out)
}

func generate(dir string, size, count int) error {
	if limit := len(palette) * int(numShapes); count < 1 || count > limit {
		return fmt.Errorf("count must be between 1 and %d", limit)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	ttf, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(size) / 4,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	for i := 0; i < count; i++ {
		s := shape(i % int(numShapes))
		clr := palette[i/int(numShapes)]
		dc := drawIcon(size, s, clr, face, string(rune('A'+i%26)))
		name := filepath.Join(dir, fmt.Sprintf("icon_%02d.png", i))
		if err := dc.SavePNG(name); err != nil {
			return err
		}
	}
	return nil
}

func drawIcon(size int, s shape, clr color.RGBA, face font.Face, label string) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.RGBA{60, 60, 100, 255})
	dc.Clear()

	f := float64(size)
	quarter, half := f/4, f/2
	dc.SetColor(clr)
	switch s {
	case donut:
		dc.DrawCircle(half, half, half-5)
		dc.Fill()
		dc.SetColor(color.RGBA{60, 60, 100, 255})
		dc.DrawCircle(half, half, quarter-5)
		dc.Fill()
	case square:
		dc.DrawRectangle(quarter, quarter, f-2*quarter, f-2*quarter)
		dc.Fill()
	case diamond:
		dc.MoveTo(half, 0)
		dc.LineTo(f-1, half)
		dc.LineTo(half, f-1)
		dc.LineTo(0, half)
		dc.ClosePath()
		dc.Fill()
	case lines:
		dc.SetLineWidth(1)
		for i := 0.0; i < f; i += 4 {
			dc.DrawLine(0, i, i, 0)
			dc.DrawLine(i, f-1, f-1, i)
		}
		dc.Stroke()
	case oval:
		dc.DrawEllipse(half, half, half, quarter)
		dc.Fill()
	}

	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(label, f-6, f-6, 0.5, 0.5)
	return dc
}
