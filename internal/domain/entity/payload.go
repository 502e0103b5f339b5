package entity

// PayloadKind names the kind of content encoded into a code.
type PayloadKind string

const (
	KindText  PayloadKind = "text"
	KindWiFi  PayloadKind = "wifi"
	KindVCard PayloadKind = "vcard"
)

// WiFiAuth is the authentication type segment of a wifi payload.
type WiFiAuth string

const (
	WiFiAuthWPA  WiFiAuth = "WPA"
	WiFiAuthWEP  WiFiAuth = "WEP"
	WiFiAuthNone WiFiAuth = "nopass"
)

type WiFiCredentials struct {
	SSID     string
	Auth     WiFiAuth
	Password string
	Hidden   bool
}

type Contact struct {
	FirstName string
	LastName  string
	Org       string
	Title     string
	Phone     string
	WorkPhone string
	Email     string
	URL       string
	Street    string
	City      string
	Zip       string
	Country   string
}

// HasContent reports whether the contact carries anything beyond the name.
func (c Contact) HasContent() bool {
	return c.Org != "" || c.Title != "" || c.Phone != "" || c.WorkPhone != "" ||
		c.Email != "" || c.URL != "" || c.Street != "" || c.City != "" ||
		c.Zip != "" || c.Country != ""
}
