package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/qrforms/qrforms/internal/domain/common/errorz"
	"github.com/qrforms/qrforms/internal/domain/entity"
	"github.com/spf13/viper"
)

// wifiEscaper escapes the characters reserved by the WIFI: payload format.
var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

// vcardEscaper escapes text values per vCard 3.0 rules.
var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

type PayloadService struct{}

func NewPayloadService() *PayloadService {
	return &PayloadService{}
}

// Text validates free text and returns it as the payload unchanged.
func (s *PayloadService) Text(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errorz.ErrEmptyContent
	}

	maxLen := viper.GetInt("qr.limits.max-text-length")
	if maxLen > 0 && utf8.RuneCountInString(text) > maxLen {
		return "", errorz.ErrContentTooLong
	}

	return text, nil
}

// WiFi builds a WIFI:T:<auth>;S:<ssid>;P:<password>;H:true;; payload.
func (s *PayloadService) WiFi(creds entity.WiFiCredentials) (string, error) {
	if creds.SSID == "" || len(creds.SSID) > 32 {
		return "", errorz.ErrInvalidSSID
	}

	switch creds.Auth {
	case entity.WiFiAuthWPA, entity.WiFiAuthWEP:
		if creds.Password == "" {
			return "", errorz.ErrPasswordRequired
		}
		if len(creds.Password) > 63 {
			return "", errorz.ErrPasswordTooLong
		}
	case entity.WiFiAuthNone:
		if creds.Password != "" {
			return "", errorz.ErrPasswordNotAllowed
		}
	default:
		return "", errorz.ErrInvalidAuthType
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("WIFI:T:%s;", creds.Auth))
	b.WriteString(fmt.Sprintf("S:%s;", wifiEscaper.Replace(creds.SSID)))
	if creds.Auth != entity.WiFiAuthNone {
		b.WriteString(fmt.Sprintf("P:%s;", wifiEscaper.Replace(creds.Password)))
	}
	if creds.Hidden {
		b.WriteString("H:true;")
	}
	b.WriteString(";")

	return b.String(), nil
}

// VCard builds a vCard 3.0 payload with CRLF line endings.
func (s *PayloadService) VCard(contact entity.Contact) (string, error) {
	if contact.FirstName == "" && contact.LastName == "" {
		return "", errorz.ErrEmptyContent
	}
	if !contact.HasContent() {
		return "", errorz.ErrEmptyContact
	}

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		fmt.Sprintf("N:%s;%s;;;", vcardEscaper.Replace(contact.LastName), vcardEscaper.Replace(contact.FirstName)),
		fmt.Sprintf("FN:%s", vcardEscaper.Replace(strings.TrimSpace(contact.FirstName+" "+contact.LastName))),
	}

	if contact.Org != "" {
		lines = append(lines, fmt.Sprintf("ORG:%s", vcardEscaper.Replace(contact.Org)))
	}
	if contact.Title != "" {
		lines = append(lines, fmt.Sprintf("TITLE:%s", vcardEscaper.Replace(contact.Title)))
	}
	if contact.Phone != "" {
		lines = append(lines, fmt.Sprintf("TEL;TYPE=CELL:%s", vcardEscaper.Replace(contact.Phone)))
	}
	if contact.WorkPhone != "" {
		lines = append(lines, fmt.Sprintf("TEL;TYPE=WORK:%s", vcardEscaper.Replace(contact.WorkPhone)))
	}
	if contact.Email != "" {
		lines = append(lines, fmt.Sprintf("EMAIL:%s", vcardEscaper.Replace(contact.Email)))
	}
	if contact.URL != "" {
		lines = append(lines, fmt.Sprintf("URL:%s", vcardEscaper.Replace(contact.URL)))
	}
	if contact.Street != "" || contact.City != "" || contact.Zip != "" || contact.Country != "" {
		lines = append(lines, fmt.Sprintf("ADR;TYPE=HOME:;;%s;%s;;%s;%s",
			vcardEscaper.Replace(contact.Street),
			vcardEscaper.Replace(contact.City),
			vcardEscaper.Replace(contact.Zip),
			vcardEscaper.Replace(contact.Country),
		))
	}

	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\r\n") + "\r\n", nil
}
