package handlers

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qrforms/qrforms/internal/domain/common/errorz"
	"github.com/qrforms/qrforms/internal/domain/entity"
	"github.com/qrforms/qrforms/internal/domain/utils/validator"
	"github.com/spf13/viper"
)

// CreateTextCode renders a code from free text or a URL.
func (h *Handler) CreateTextCode(c *gin.Context) {
	text := c.PostForm("text")
	if !validator.Text(text, nil) {
		badRequest(c, "text", errorz.ErrEmptyContent)
		return
	}

	content, err := h.payload.Text(text)
	if err != nil {
		badRequest(c, "text", err)
		return
	}

	h.render(c, content, entity.KindText)
}

// CreateWiFiCode renders a code carrying network credentials.
func (h *Handler) CreateWiFiCode(c *gin.Context) {
	if !validator.SSID(c.PostForm("ssid"), nil) {
		badRequest(c, "ssid", errorz.ErrInvalidSSID)
		return
	}
	if !validator.WiFiAuth(c.PostForm("auth"), nil) {
		badRequest(c, "auth", errorz.ErrInvalidAuthType)
		return
	}
	if !validator.WiFiPassword(c.PostForm("password"), map[string]interface{}{"auth": c.PostForm("auth")}) {
		badRequest(c, "password", errorz.ErrPasswordRequired)
		return
	}

	creds := entity.WiFiCredentials{
		SSID:     c.PostForm("ssid"),
		Auth:     entity.WiFiAuth(c.PostForm("auth")),
		Password: c.PostForm("password"),
		Hidden:   c.PostForm("hidden") == "true" || c.PostForm("hidden") == "on",
	}

	content, err := h.payload.WiFi(creds)
	if err != nil {
		badRequest(c, "wifi", err)
		return
	}

	h.render(c, content, entity.KindWiFi)
}

// CreateVCardCode renders a code carrying a contact card.
func (h *Handler) CreateVCardCode(c *gin.Context) {
	contact := entity.Contact{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Org:       c.PostForm("org"),
		Title:     c.PostForm("title"),
		Phone:     c.PostForm("phone"),
		WorkPhone: c.PostForm("work_phone"),
		Email:     c.PostForm("email"),
		URL:       c.PostForm("url"),
		Street:    c.PostForm("street"),
		City:      c.PostForm("city"),
		Zip:       c.PostForm("zip"),
		Country:   c.PostForm("country"),
	}

	if contact.Email != "" && !validator.Email(contact.Email, nil) {
		badRequest(c, "email", errorz.ErrInvalidEmail)
		return
	}
	if contact.Phone != "" && !validator.Phone(contact.Phone, nil) {
		badRequest(c, "phone", errorz.ErrInvalidPhone)
		return
	}
	if contact.WorkPhone != "" && !validator.Phone(contact.WorkPhone, nil) {
		badRequest(c, "work_phone", errorz.ErrInvalidPhone)
		return
	}
	if contact.URL != "" && !validator.URL(contact.URL, nil) {
		badRequest(c, "url", fmt.Errorf("invalid url"))
		return
	}

	content, err := h.payload.VCard(contact)
	if err != nil {
		badRequest(c, "contact", err)
		return
	}

	h.render(c, content, entity.KindVCard)
}

// GetCode serves a cached rendering as <id>.png or <id>.svg.
func (h *Handler) GetCode(c *gin.Context) {
	file := c.Param("file")
	ext := path.Ext(file)
	id := strings.TrimSuffix(file, ext)

	code, err := h.qr.Get(id)
	if err != nil {
		if errors.Is(err, errorz.ErrCodeNotFound) {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}
		h.logger.Errorf("failed to fetch code %s: %v", id, err)
		c.JSON(500, gin.H{"error": "internal error"})
		return
	}

	if ext != "" && ext != "."+string(code.Format) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}

	c.Data(200, contentType(code.Format), code.Data)
}

func (h *Handler) render(c *gin.Context, content string, kind entity.PayloadKind) {
	style, err := parseStyle(c)
	if err != nil {
		badRequest(c, "style", err)
		return
	}

	logo, err := h.parseLogo(c)
	if err != nil {
		badRequest(c, "logo", err)
		return
	}

	code, err := h.qr.Render(content, kind, style, logo)
	if err != nil {
		h.logger.Errorf("render failed (kind: %s): %v", kind, err)
		c.JSON(422, gin.H{"error": err.Error()})
		return
	}

	if strings.HasPrefix(c.GetHeader("Accept"), "image/") {
		c.Data(201, contentType(code.Format), code.Data)
		return
	}

	c.JSON(201, gin.H{
		"id":     code.ID,
		"href":   fmt.Sprintf("/api/v1/codes/%s.%s", code.ID, code.Format),
		"format": code.Format,
		"kind":   code.Kind,
	})
}

// parseStyle reads the optional style fields. Absent fields keep the house
// defaults; -1 marks ints/floats whose zero value is meaningful.
func parseStyle(c *gin.Context) (entity.Style, error) {
	style := entity.Style{
		QuietZone:    -1,
		CornerRadius: -1,
	}

	if v := c.PostForm("size"); v != "" {
		if !validator.Size(v, nil) {
			return style, fmt.Errorf("size out of range")
		}
		style.Size, _ = strconv.Atoi(v)
	}
	if v := c.PostForm("level"); v != "" {
		if !validator.Level(v, nil) {
			return style, fmt.Errorf("level must be L, M, Q or H")
		}
		style.Level = v
	}
	if v := c.PostForm("quiet_zone"); v != "" {
		if !validator.QuietZone(v, nil) {
			return style, fmt.Errorf("quiet zone out of range")
		}
		style.QuietZone, _ = strconv.Atoi(v)
	}
	if v := c.PostForm("foreground"); v != "" {
		if !validator.HexColor(v, nil) {
			return style, fmt.Errorf("foreground must be #RRGGBB")
		}
		style.Foreground = v
	}
	if v := c.PostForm("background"); v != "" {
		if !validator.HexColor(v, nil) {
			return style, fmt.Errorf("background must be #RRGGBB")
		}
		style.Background = v
	}
	if v := c.PostForm("corner_radius"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 0.5 {
			return style, fmt.Errorf("corner radius out of range")
		}
		style.CornerRadius = f
	}
	if v := c.PostForm("logo_scale"); v != "" {
		if !validator.LogoScale(v, nil) {
			return style, fmt.Errorf("logo scale out of range")
		}
		style.LogoScale, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.PostForm("format"); v != "" {
		if !validator.Format(v, nil) {
			return style, errorz.ErrInvalidFormat
		}
		style.Format = entity.Format(v)
	}

	return style, nil
}

// parseLogo decodes the optional uploaded overlay image.
func (h *Handler) parseLogo(c *gin.Context) (image.Image, error) {
	fh, err := c.FormFile("logo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errorz.ErrInvalidLogo
	}

	maxBytes := viper.GetInt64("qr.limits.max-logo-bytes")
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, fmt.Errorf("logo larger than %d bytes", maxBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errorz.ErrInvalidLogo
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errorz.ErrInvalidLogo
	}

	maxDim := viper.GetInt("qr.limits.max-logo-dimension")
	if maxDim <= 0 {
		maxDim = 1024
	}
	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		return nil, fmt.Errorf("logo larger than %dx%d pixels", maxDim, maxDim)
	}

	return img, nil
}

func contentType(format entity.Format) string {
	if format == entity.FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}
