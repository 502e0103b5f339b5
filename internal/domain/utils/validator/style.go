package validator

import (
	"regexp"
	"strconv"

	"github.com/spf13/viper"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func HexColor(value string, _ map[string]interface{}) bool {
	return hexColorRe.MatchString(value)
}

func Level(level string, _ map[string]interface{}) bool {
	return level == "L" || level == "M" || level == "Q" || level == "H"
}

func Size(size string, _ map[string]interface{}) bool {
	n, err := strconv.Atoi(size)
	if err != nil {
		return false
	}
	minSize := viper.GetInt("qr.limits.min-size")
	maxSize := viper.GetInt("qr.limits.max-size")
	if minSize == 0 {
		minSize = 64
	}
	if maxSize == 0 {
		maxSize = 2048
	}
	return n >= minSize && n <= maxSize
}

func QuietZone(zone string, _ map[string]interface{}) bool {
	n, err := strconv.Atoi(zone)
	return err == nil && n >= 0 && n <= 64
}

func LogoScale(scale string, _ map[string]interface{}) bool {
	f, err := strconv.ParseFloat(scale, 64)
	if err != nil {
		return false
	}
	// Larger overlays eat too many modules even at the H level.
	return f > 0 && f <= 0.3
}

func Format(format string, _ map[string]interface{}) bool {
	return format == "png" || format == "svg"
}

func Theme(theme string, _ map[string]interface{}) bool {
	return theme == "light" || theme == "dark"
}
