package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/ball.svg
var ballSVGData []byte

//go:embed assets/coin.svg
var coinSVGData []byte

// spriteScale renders sprites larger than their drawn size so that the
// pulse and spin scaling in the renderer stays smooth
const spriteScale = 2

// Sprites holds the rasterized artwork. A nil sprite falls back to vector drawing.
type Sprites struct {
	Ball *ebiten.Image
	Coin *ebiten.Image
}

// LoadSprites rasterizes the embedded SVG assets for round objects of the
// given diameters. With DEBUG_SPRITES=1 each raster is also written out as
// sprite_<name>.png.
func LoadSprites(ballDiameter, coinDiameter int) (*Sprites, error) {
	dump := os.Getenv("DEBUG_SPRITES") == "1"
	sprites := &Sprites{}

	for _, s := range []struct {
		name     string
		data     []byte
		diameter int
		dst      **ebiten.Image
	}{
		{"ball", ballSVGData, ballDiameter, &sprites.Ball},
		{"coin", coinSVGData, coinDiameter, &sprites.Coin},
	} {
		if s.diameter <= 0 {
			return nil, fmt.Errorf("sprite %s: invalid diameter %d", s.name, s.diameter)
		}
		icon, err := oksvg.ReadIconStream(bytes.NewReader(s.data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s sprite: %w", s.name, err)
		}

		size := s.diameter * spriteScale
		icon.SetTarget(0, 0, float64(size), float64(size))
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		icon.Draw(rasterx.NewDasher(size, size, rasterx.NewScannerGV(size, size, img, img.Bounds())), 1)

		if dump {
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err == nil {
				err = os.WriteFile("sprite_"+s.name+".png", buf.Bytes(), 0644)
			}
			if err != nil {
				log.Printf("[SPRITES] Could not dump %s: %v", s.name, err)
			}
		}
		*s.dst = ebiten.NewImageFromImage(img)
	}
	return sprites, nil
}
