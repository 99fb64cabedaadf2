// Package hud rasterizes short blocks of text into images that the viewer
// draws as an overlay on top of the scene.
package hud

import (
	"errors"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

type Config struct {
	// Size is the font size in points. Defaults to 14.
	Size float64
	// DPI defaults to 72.
	DPI float64
	// Padding around the text block in pixels. Defaults to 8.
	Padding int
	// Foreground defaults to opaque black, Background to translucent white.
	Foreground color.Color
	Background color.Color
	// TTF is the font file. Defaults to Go Regular.
	TTF []byte
}

// Renderer draws lines of text with a single font face.
type Renderer struct {
	face    font.Face
	fg, bg  image.Image
	padding int
}

var errNoLines = errors.New("no lines to render")

func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.Size == 0 {
		cfg.Size = 14
	}
	if cfg.DPI == 0 {
		cfg.DPI = 72
	}
	if cfg.Padding == 0 {
		cfg.Padding = 8
	}
	if cfg.Size < 0 || cfg.DPI < 0 || cfg.Padding < 0 {
		return nil, errors.New("negative HUD dimension")
	}
	if cfg.Foreground == nil {
		cfg.Foreground = color.Black
	}
	if cfg.Background == nil {
		cfg.Background = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	}
	if cfg.TTF == nil {
		cfg.TTF = goregular.TTF
	}
	ttf, err := truetype.Parse(cfg.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    cfg.Size,
		DPI:     cfg.DPI,
		Hinting: font.HintingFull,
	})
	return &Renderer{
		face:    face,
		fg:      image.NewUniform(cfg.Foreground),
		bg:      image.NewUniform(cfg.Background),
		padding: cfg.Padding,
	}, nil
}

// LineHeight returns the distance between consecutive baselines in pixels.
func (r *Renderer) LineHeight() int {
	return r.face.Metrics().Height.Ceil()
}

// Measure returns the size of the image Render would produce for lines.
func (r *Renderer) Measure(lines []string) image.Point {
	var width fixed.Int26_6
	for _, line := range lines {
		width = max(width, font.MeasureString(r.face, line))
	}
	return image.Point{
		X: width.Ceil() + 2*r.padding,
		Y: len(lines)*r.LineHeight() + 2*r.padding,
	}
}

// Render draws lines top to bottom on a background filled image sized to fit.
func (r *Renderer) Render(lines []string) (*image.RGBA, error) {
	if len(lines) == 0 {
		return nil, errNoLines
	}
	sz := r.Measure(lines)
	img := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(img, img.Bounds(), r.bg, image.Point{}, draw.Src)
	d := font.Drawer{
		Dst:  img,
		Src:  r.fg,
		Face: r.face,
	}
	ascent := r.face.Metrics().Ascent.Ceil()
	lh := r.LineHeight()
	for i, line := range lines {
		d.Dot = fixed.P(r.padding, r.padding+ascent+i*lh)
		d.DrawString(line)
	}
	return img, nil
}
