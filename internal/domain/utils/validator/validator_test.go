package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSSID(t *testing.T) {
	assert.True(t, SSID("HomeNet", nil))
	assert.True(t, SSID(strings.Repeat("a", 32), nil))
	assert.False(t, SSID("", nil))
	assert.False(t, SSID(strings.Repeat("a", 33), nil))
}

func TestWiFiAuth(t *testing.T) {
	assert.True(t, WiFiAuth("WPA", nil))
	assert.True(t, WiFiAuth("WEP", nil))
	assert.True(t, WiFiAuth("nopass", nil))
	assert.False(t, WiFiAuth("wpa", nil))
	assert.False(t, WiFiAuth("", nil))
}

func TestWiFiPassword(t *testing.T) {
	assert.True(t, WiFiPassword("secret", map[string]interface{}{"auth": "WPA"}))
	assert.False(t, WiFiPassword("", map[string]interface{}{"auth": "WPA"}))
	assert.False(t, WiFiPassword(strings.Repeat("x", 64), map[string]interface{}{"auth": "WPA"}))
	assert.True(t, WiFiPassword("", map[string]interface{}{"auth": "nopass"}))
	assert.False(t, WiFiPassword("secret", map[string]interface{}{"auth": "nopass"}))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("ada@example.com", nil))
	assert.False(t, Email("not-an-email", nil))
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("+44 20 1234 5678", nil))
	assert.True(t, Phone("0123456", nil))
	assert.False(t, Phone("call me", nil))
	assert.False(t, Phone("+", nil))
}

func TestURL(t *testing.T) {
	assert.True(t, URL("https://example.com/page", nil))
	assert.True(t, URL("http://example.com", nil))
	assert.False(t, URL("ftp://example.com", nil))
	assert.False(t, URL("example.com", nil))
}

func TestHexColor(t *testing.T) {
	assert.True(t, HexColor("#1a2B3c", nil))
	assert.False(t, HexColor("1a2b3c", nil))
	assert.False(t, HexColor("#fff", nil))
	assert.False(t, HexColor("#12345g", nil))
}

func TestLevel(t *testing.T) {
	for _, l := range []string{"L", "M", "Q", "H"} {
		assert.True(t, Level(l, nil))
	}
	assert.False(t, Level("X", nil))
	assert.False(t, Level("m", nil))
}

func TestSize(t *testing.T) {
	assert.True(t, Size("512", nil))
	assert.True(t, Size("64", nil))
	assert.True(t, Size("2048", nil))
	assert.False(t, Size("63", nil))
	assert.False(t, Size("2049", nil))
	assert.False(t, Size("big", nil))
}

func TestQuietZone(t *testing.T) {
	assert.True(t, QuietZone("0", nil))
	assert.True(t, QuietZone("64", nil))
	assert.False(t, QuietZone("-1", nil))
	assert.False(t, QuietZone("65", nil))
}

func TestLogoScale(t *testing.T) {
	assert.True(t, LogoScale("0.2", nil))
	assert.True(t, LogoScale("0.3", nil))
	assert.False(t, LogoScale("0", nil))
	assert.False(t, LogoScale("0.5", nil))
	assert.False(t, LogoScale("tiny", nil))
}

func TestFormatAndTheme(t *testing.T) {
	assert.True(t, Format("png", nil))
	assert.True(t, Format("svg", nil))
	assert.False(t, Format("gif", nil))

	assert.True(t, Theme("light", nil))
	assert.True(t, Theme("dark", nil))
	assert.False(t, Theme("auto", nil))
}
