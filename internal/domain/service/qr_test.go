package service

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/qrforms/qrforms/internal/domain/common/errorz"
	"github.com/qrforms/qrforms/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCodeStorage struct {
	codes map[string]entity.Code
}

func newFakeCodeStorage() *fakeCodeStorage {
	return &fakeCodeStorage{codes: map[string]entity.Code{}}
}

func (f *fakeCodeStorage) Set(code entity.Code, _ time.Duration) error {
	f.codes[code.ID] = code
	return nil
}

func (f *fakeCodeStorage) Get(id string) (entity.Code, error) {
	code, ok := f.codes[id]
	if !ok {
		return entity.Code{}, errorz.ErrCodeNotFound
	}
	return code, nil
}

func defaultStyle() entity.Style {
	return entity.Style{QuietZone: -1, CornerRadius: -1}
}

func TestQrServiceRenderPNG(t *testing.T) {
	storage := newFakeCodeStorage()
	s := NewQrService(storage)

	code, err := s.Render("https://example.com", entity.KindText, defaultStyle(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, code.ID)
	assert.Equal(t, entity.KindText, code.Kind)
	assert.Equal(t, entity.FormatPNG, code.Format)

	img, err := png.Decode(bytes.NewReader(code.Data))
	require.NoError(t, err)
	// house default: 512px symbol plus a 16px quiet zone on each side
	assert.Equal(t, 544, img.Bounds().Dx())
	assert.Equal(t, 544, img.Bounds().Dy())

	cached, err := s.Get(code.ID)
	require.NoError(t, err)
	assert.Equal(t, code.Data, cached.Data)
}

func TestQrServiceRenderStyled(t *testing.T) {
	s := NewQrService(newFakeCodeStorage())

	style := entity.Style{
		Size:         256,
		Level:        "H",
		QuietZone:    0,
		Foreground:   "#003366",
		Background:   "#ffffff",
		CornerRadius: 0.4,
	}

	code, err := s.Render("styled", entity.KindText, style, nil)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(code.Data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQrServiceRenderSVG(t *testing.T) {
	s := NewQrService(newFakeCodeStorage())

	style := defaultStyle()
	style.Format = entity.FormatSVG

	code, err := s.Render("vector", entity.KindText, style, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.FormatSVG, code.Format)
	assert.Contains(t, string(code.Data), "<svg")
}

func TestQrServiceRenderErrors(t *testing.T) {
	s := NewQrService(newFakeCodeStorage())

	badColor := defaultStyle()
	badColor.Foreground = "#zzzzzz"
	_, err := s.Render("x", entity.KindText, badColor, nil)
	assert.Error(t, err)

	badFormat := defaultStyle()
	badFormat.Format = "gif"
	_, err = s.Render("x", entity.KindText, badFormat, nil)
	assert.ErrorIs(t, err, errorz.ErrInvalidFormat)
}

func TestQrServiceGetMissing(t *testing.T) {
	s := NewQrService(newFakeCodeStorage())

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, errorz.ErrCodeNotFound)
}
