package qr

import (
	"bytes"
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
)

// GenerateSVG renders the content as a vector SVG. The center overlay is a
// raster-only feature and is not applied here.
func (o *Options) GenerateSVG() ([]byte, error) {
	code, err := qrcode.NewWith(o.Content,
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		o.ecOption(),
	)
	if err != nil {
		return nil, err
	}

	w := &svgWriter{opts: o}
	if err = code.Save(w); err != nil {
		return nil, err
	}

	return w.buf.Bytes(), nil
}

func (o *Options) ecOption() qrcode.EncodeOption {
	switch o.Level {
	case "L":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case "Q":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case "H":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	}
}

// moduleWidth picks a per-module pixel width approximating the requested size.
func (o *Options) moduleWidth() int {
	w := o.Size / 40
	if w < 2 {
		w = 2
	}
	if w > 40 {
		w = 40
	}
	return w
}

// svgWriter emits the encoded matrix as an SVG document, one rect per module.
type svgWriter struct {
	opts *Options
	buf  bytes.Buffer
}

func (w *svgWriter) Write(mat qrcode.Matrix) error {
	dim := mat.Width()
	if dim <= 0 {
		return fmt.Errorf("empty qr matrix")
	}

	scale := w.opts.moduleWidth()
	total := dim*scale + 2*w.opts.QuietZone
	offset := w.opts.QuietZone
	fg := hexRGB(w.opts.Foreground.R, w.opts.Foreground.G, w.opts.Foreground.B)
	bg := hexRGB(w.opts.Background.R, w.opts.Background.G, w.opts.Background.B)

	w.buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	w.buf.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		total, total, total, total,
	))
	w.buf.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, total, total, bg))

	mat.Iterate(qrcode.IterDirection_ROW, func(x int, y int, v qrcode.QRValue) {
		if !v.IsSet() {
			return
		}
		w.buf.WriteString(fmt.Sprintf(
			`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
			offset+x*scale, offset+y*scale, scale, scale, fg,
		))
	})

	w.buf.WriteString(`</svg>`)
	return nil
}

func (w *svgWriter) Close() error { return nil }

func hexRGB(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
