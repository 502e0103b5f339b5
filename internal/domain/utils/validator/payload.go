package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{4,19}$`)

func Text(text string, _ map[string]interface{}) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	maxLen := viper.GetInt("qr.limits.max-text-length")
	if maxLen == 0 {
		maxLen = 1000
	}
	return utf8.RuneCountInString(text) <= maxLen
}

func SSID(ssid string, _ map[string]interface{}) bool {
	return ssid != "" && len(ssid) <= 32
}

func WiFiAuth(auth string, _ map[string]interface{}) bool {
	return auth == "WPA" || auth == "WEP" || auth == "nopass"
}

func WiFiPassword(password string, params map[string]interface{}) bool {
	auth, _ := params["auth"].(string)
	if auth == "nopass" {
		return password == ""
	}
	return password != "" && len(password) <= 63
}

func Email(email string, _ map[string]interface{}) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func Phone(phone string, _ map[string]interface{}) bool {
	return phoneRe.MatchString(phone)
}

func URL(rawURL string, _ map[string]interface{}) bool {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
