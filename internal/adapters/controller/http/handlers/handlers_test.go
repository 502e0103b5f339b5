package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qrforms/qrforms/internal/domain/common/errorz"
	"github.com/qrforms/qrforms/internal/domain/entity"
	"github.com/qrforms/qrforms/internal/domain/service"
	"github.com/qrforms/qrforms/pkg/logger/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCodes struct {
	codes map[string]entity.Code
}

func (f *fakeCodes) Set(code entity.Code, _ time.Duration) error {
	f.codes[code.ID] = code
	return nil
}

func (f *fakeCodes) Get(id string) (entity.Code, error) {
	code, ok := f.codes[id]
	if !ok {
		return entity.Code{}, errorz.ErrCodeNotFound
	}
	return code, nil
}

type fakePrefs struct {
	themes map[string]string
}

func (f *fakePrefs) GetTheme(clientID string) (string, error) {
	return f.themes[clientID], nil
}

func (f *fakePrefs) SetTheme(clientID string, theme string) error {
	f.themes[clientID] = theme
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &Handler{
		logger:  &types.Logger{SugaredLogger: zap.NewNop().Sugar()},
		payload: service.NewPayloadService(),
		qr:      service.NewQrService(&fakeCodes{codes: map[string]entity.Code{}}),
		prefs:   service.NewPrefsService(&fakePrefs{themes: map[string]string{}}),
	}

	r := gin.New()
	r.GET("/", h.FormPage)
	r.GET("/healthz", h.Health)
	api := r.Group("/api/v1")
	{
		api.POST("/codes/text", h.CreateTextCode)
		api.POST("/codes/wifi", h.CreateWiFiCode)
		api.POST("/codes/vcard", h.CreateVCardCode)
		api.GET("/codes/:file", h.GetCode)
		api.GET("/theme", h.GetTheme)
		api.PUT("/theme", h.SetTheme)
	}
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFormPage(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<form id=\"qrForm\">")
}

func TestCreateTextCode(t *testing.T) {
	r := newTestRouter()

	w := postForm(r, "/api/v1/codes/text", url.Values{"text": {"https://example.com"}})
	require.Equal(t, 201, w.Code)

	var resp struct {
		ID     string `json:"id"`
		Href   string `json:"href"`
		Format string `json:"format"`
		Kind   string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "png", resp.Format)
	assert.Equal(t, "text", resp.Kind)

	// the href must serve the rendered image back
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, resp.Href, nil))
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, "image/png", w2.Header().Get("Content-Type"))

	_, err := png.Decode(bytes.NewReader(w2.Body.Bytes()))
	assert.NoError(t, err)
}

func TestCreateTextCodeEmpty(t *testing.T) {
	r := newTestRouter()

	w := postForm(r, "/api/v1/codes/text", url.Values{"text": {"   "}})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"text"`)
}

func TestCreateTextCodeBadStyle(t *testing.T) {
	r := newTestRouter()

	w := postForm(r, "/api/v1/codes/text", url.Values{
		"text": {"hello"},
		"size": {"10000"},
	})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"style"`)
}

func TestCreateWiFiCode(t *testing.T) {
	r := newTestRouter()

	w := postForm(r, "/api/v1/codes/wifi", url.Values{
		"ssid":     {"HomeNet"},
		"auth":     {"WPA"},
		"password": {"secret"},
		"hidden":   {"true"},
	})
	require.Equal(t, 201, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"wifi"`)
}

func TestCreateWiFiCodeValidation(t *testing.T) {
	r := newTestRouter()

	w := postForm(r, "/api/v1/codes/wifi", url.Values{
		"auth":     {"WPA"},
		"password": {"secret"},
	})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"ssid"`)

	w = postForm(r, "/api/v1/codes/wifi", url.Values{
		"ssid":     {"Cafe"},
		"auth":     {"nopass"},
		"password": {"unexpected"},
	})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"password"`)
}

func TestCreateVCardCode(t *testing.T) {
	r := newTestRouter()

	w := postForm(r, "/api/v1/codes/vcard", url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
	})
	require.Equal(t, 201, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"vcard"`)
}

func TestCreateVCardCodeInvalidEmail(t *testing.T) {
	r := newTestRouter()

	w := postForm(r, "/api/v1/codes/vcard", url.Values{
		"first_name": {"Ada"},
		"email":      {"not-an-email"},
	})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"email"`)
}

func TestCreateTextCodeWithLogo(t *testing.T) {
	r := newTestRouter()

	logo := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			logo.Set(x, y, color.RGBA{R: 10, G: 120, B: 240, A: 255})
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("text", "with logo"))
	require.NoError(t, mw.WriteField("level", "H"))
	fw, err := mw.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(fw, logo))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/codes/text", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
}

func TestCreateTextCodeLogoTooLarge(t *testing.T) {
	r := newTestRouter()

	// Thin but wider than any sane overlay cap.
	logo := image.NewRGBA(image.Rect(0, 0, 1200, 8))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("text", "with logo"))
	fw, err := mw.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(fw, logo))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/codes/text", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "logo")
}

func TestGetCodeNotFound(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/codes/missing.png", nil))
	assert.Equal(t, 404, w.Code)
}

func TestTheme(t *testing.T) {
	r := newTestRouter()

	// default theme for a fresh client
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/theme", nil))
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"theme":"light"`)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// switch to dark with the issued client cookie
	body := bytes.NewReader([]byte(`{"theme":"dark"}`))
	req := httptest.NewRequest(http.MethodPut, "/api/v1/theme", body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, 200, w2.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/theme", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, req)
	assert.Contains(t, w3.Body.String(), `"theme":"dark"`)
}

func TestSetThemeInvalid(t *testing.T) {
	r := newTestRouter()

	body := bytes.NewReader([]byte(`{"theme":"solarized"}`))
	req := httptest.NewRequest(http.MethodPut, "/api/v1/theme", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
