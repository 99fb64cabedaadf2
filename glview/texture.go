package glview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	math "github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"golang.org/x/image/draw"
)

// LoadTexture decodes a JPEG or PNG image file into RGBA, downscaling it so
// neither dimension exceeds maxSize.
func LoadTexture(path string, maxSize int) (*image.RGBA, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	img, _, err := image.Decode(fp)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return toRGBA(img, maxSize)
}

func toRGBA(src image.Image, maxSize int) (*image.RGBA, error) {
	sz := src.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, errors.New("empty texture image")
	} else if maxSize <= 0 {
		return nil, errors.New("invalid max texture size")
	}
	dstSize := sz
	if big := max(sz.X, sz.Y); big > maxSize {
		dstSize.X = max(1, sz.X*maxSize/big)
		dstSize.Y = max(1, sz.Y*maxSize/big)
	}
	dst := image.NewRGBA(image.Rectangle{Max: dstSize})
	if dstSize == sz {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return dst, nil
}

var (
	woodLight = [3]float32{0.78, 0.58, 0.36}
	woodDark  = [3]float32{0.45, 0.28, 0.14}
)

// WoodTexture generates a width x height wood grain image: concentric rings
// stretched along the Y axis with a sinusoidal wobble.
func WoodTexture(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	const rings = 12
	for j := 0; j < height; j++ {
		v := float32(j) / float32(max(1, height-1))
		for i := 0; i < width; i++ {
			u := float32(i)/float32(max(1, width-1)) - 0.5
			wobble := 0.04 * math.Sin(v*math.Pi*6+u*3)
			d := math.Abs(u+wobble) + 0.05*v
			ring := d*rings - math.Floor(d*rings)
			t := ms1.Clamp(math.Pow(ring, 3), 0, 1)
			img.SetRGBA(i, j, color.RGBA{
				R: shade(woodLight[0], woodDark[0], t),
				G: shade(woodLight[1], woodDark[1], t),
				B: shade(woodLight[2], woodDark[2], t),
				A: 255,
			})
		}
	}
	return img
}

func shade(a, b, t float32) uint8 {
	return uint8(255 * ms1.Clamp(a+(b-a)*t, 0, 1))
}
