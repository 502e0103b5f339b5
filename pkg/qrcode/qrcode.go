package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

// Options describes a single rendering. Content is required, everything else
// falls back to the zero-value behavior noted per field.
type Options struct {
	Content         string
	Size            int    // symbol edge in pixels, excluding the quiet zone
	Level           string // error correction level: L, M, Q or H
	QuietZone       int    // blank border width in pixels
	Foreground      color.RGBA
	Background      color.RGBA
	CornerRadius    float64     // module corner rounding, fraction of module size (0..0.5)
	Logo            image.Image // optional center overlay
	LogoScale       float64     // overlay edge as a fraction of Size
	LogoBackground  color.RGBA
	LogoBorderWidth float64
	LogoFade        float64 // width of the fade ring around the overlay, fraction of its radius
}

// GeneratePNG renders the content as a styled PNG.
func (o *Options) GeneratePNG() ([]byte, error) {
	code, err := qrcode.New(o.Content, o.recoveryLevel())
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true

	grid := code.Bitmap()
	n := len(grid)
	if n == 0 {
		return nil, fmt.Errorf("empty qr matrix")
	}

	module := float64(o.Size) / float64(n)
	total := o.Size + 2*o.QuietZone
	offset := float64(o.QuietZone)
	center := float64(total) / 2

	dc := gg.NewContext(total, total)
	dc.SetColor(o.Background)
	dc.Clear()

	// Overlay geometry, evaluated per module below.
	var logoRadius, fadeRadius float64
	logoSize := 0
	if o.Logo != nil {
		logoSize = int(float64(o.Size) * o.LogoScale)
		logoRadius = float64(logoSize)/2 + o.LogoBorderWidth
		fadeRadius = logoRadius * (1 + o.LogoFade)
	}

	fg := o.Foreground
	radius := module * o.CornerRadius

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !grid[y][x] {
				continue
			}

			px := offset + float64(x)*module
			py := offset + float64(y)*module

			alpha := 1.0
			if o.Logo != nil {
				dx := px + module/2 - center
				dy := py + module/2 - center
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist < logoRadius {
					continue
				}
				if dist < fadeRadius {
					alpha = (dist - logoRadius) / (fadeRadius - logoRadius)
				}
			}

			dc.SetRGBA(float64(fg.R)/255, float64(fg.G)/255, float64(fg.B)/255, alpha)
			if radius > 0 {
				dc.DrawRoundedRectangle(px, py, module, module, radius)
			} else {
				dc.DrawRectangle(px, py, module, module)
			}
			dc.Fill()
		}
	}

	if o.Logo != nil && logoSize > 0 {
		resized := resize.Resize(uint(logoSize), uint(logoSize), o.Logo, resize.Lanczos3)

		// Crop the overlay to a circle.
		lc := gg.NewContext(logoSize, logoSize)
		lc.DrawCircle(float64(logoSize)/2, float64(logoSize)/2, float64(logoSize)/2)
		lc.Clip()
		lc.DrawImage(resized, 0, 0)

		dc.SetColor(o.LogoBackground)
		dc.DrawCircle(center, center, logoRadius)
		dc.Fill()
		dc.DrawImage(lc.Image(), (total-logoSize)/2, (total-logoSize)/2)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (o *Options) recoveryLevel() qrcode.RecoveryLevel {
	switch o.Level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ParseHexColor parses a #RRGGBB string.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q", s)
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return c, fmt.Errorf("invalid color %q", s)
		}
		switch i {
		case 0:
			c.R = uint8(v)
		case 1:
			c.G = uint8(v)
		case 2:
			c.B = uint8(v)
		}
	}
	return c, nil
}
