package qr

import "image/color"

// Default is the house style applied when the form leaves fields untouched.
var Default = Options{
	Size:            512,
	Level:           "M",
	QuietZone:       16,
	Foreground:      color.RGBA{R: 20, G: 20, B: 20, A: 255},
	Background:      color.RGBA{R: 250, G: 250, B: 250, A: 255},
	CornerRadius:    0.3,
	LogoScale:       0.2,
	LogoBackground:  color.RGBA{R: 250, G: 250, B: 250, A: 255},
	LogoBorderWidth: 4,
	LogoFade:        0.6,
}
