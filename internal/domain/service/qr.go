package service

import (
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/qrforms/qrforms/internal/domain/common/errorz"
	"github.com/qrforms/qrforms/internal/domain/entity"
	qr "github.com/qrforms/qrforms/pkg/qrcode"
	"github.com/spf13/viper"
)

type codeStorage interface {
	Set(code entity.Code, expiration time.Duration) error
	Get(id string) (entity.Code, error)
}

type QrService struct {
	storage codeStorage
	ttl     time.Duration
}

func NewQrService(storage codeStorage) *QrService {
	ttl := viper.GetDuration("qr.cache-ttl")
	if ttl == 0 {
		ttl = time.Hour
	}
	return &QrService{
		storage: storage,
		ttl:     ttl,
	}
}

// Render generates a styled code for the payload and caches it under a fresh id.
func (s *QrService) Render(content string, kind entity.PayloadKind, style entity.Style, logo image.Image) (entity.Code, error) {
	opts := qr.Default
	opts.Content = content

	if style.Size > 0 {
		opts.Size = style.Size
	}
	if style.Level != "" {
		opts.Level = style.Level
	}
	if style.QuietZone >= 0 {
		opts.QuietZone = style.QuietZone
	}
	if style.CornerRadius >= 0 {
		opts.CornerRadius = style.CornerRadius
	}
	if style.Foreground != "" {
		fg, err := qr.ParseHexColor(style.Foreground)
		if err != nil {
			return entity.Code{}, err
		}
		opts.Foreground = fg
	}
	if style.Background != "" {
		bg, err := qr.ParseHexColor(style.Background)
		if err != nil {
			return entity.Code{}, err
		}
		opts.Background = bg
		opts.LogoBackground = bg
	}
	if style.LogoScale > 0 {
		opts.LogoScale = style.LogoScale
	}
	opts.Logo = logo

	format := style.Format
	if format == "" {
		format = entity.FormatPNG
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case entity.FormatPNG:
		data, err = opts.GeneratePNG()
	case entity.FormatSVG:
		data, err = opts.GenerateSVG()
	default:
		return entity.Code{}, errorz.ErrInvalidFormat
	}
	if err != nil {
		return entity.Code{}, err
	}

	code := entity.Code{
		ID:     uuid.New().String(),
		Kind:   kind,
		Format: format,
		Data:   data,
	}

	if err = s.storage.Set(code, s.ttl); err != nil {
		return entity.Code{}, err
	}

	return code, nil
}

// Get returns a previously rendered code from the cache.
func (s *QrService) Get(id string) (entity.Code, error) {
	return s.storage.Get(id)
}
