package charts

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/carprice/dashboard/config"
)

// Format is an output image encoding.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
)

// ParseFormat maps a query value to a Format. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return "", fmt.Errorf("unsupported image format %q", s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == WebP {
		return "image/webp"
	}
	return "image/png"
}

// Encode writes img in format f. A positive width smaller than the image
// scales it down, keeping the aspect ratio.
func Encode(w io.Writer, img image.Image, f Format, width int) error {
	img = scaleToWidth(img, width)
	switch f {
	case WebP:
		opt := &webp.Options{Lossless: false, Quality: config.ChartWebPQuality}
		if err := webp.Encode(w, img, opt); err != nil {
			return fmt.Errorf("failed to encode WebP: %w", err)
		}
		return nil
	case PNG, "":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported image format %q", f)
}

func scaleToWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if width <= 0 || width >= bounds.Dx() {
		return img
	}
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Placeholder returns a white image with text centred on it.
func Placeholder(width, height int, text string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	drawCentered(img, text, color.RGBA{R: 110, G: 110, B: 110, A: 255})
	return img
}

func drawCentered(img *image.RGBA, text string, c color.Color) {
	face := basicfont.Face7x13
	lines := strings.Split(text, "\n")
	lineHeight := face.Height + 8
	b := img.Bounds()
	startY := b.Dy()/2 - len(lines)*lineHeight/2 + face.Ascent

	for i, line := range lines {
		x := (b.Dx() - len(line)*face.Width) / 2
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(x, startY+i*lineHeight),
		}
		d.DrawString(line)
	}
}
