package setup

import (
	"github.com/qrforms/qrforms/cmd/app"
	"github.com/qrforms/qrforms/internal/adapters/controller/http/handlers"
)

// Setup registers all routes on the app's engine.
func Setup(a *app.App) {
	h := handlers.New(a)

	a.Engine.GET("/", h.FormPage)
	a.Engine.GET("/healthz", h.Health)

	api := a.Engine.Group("/api/v1")
	{
		api.POST("/codes/text", h.CreateTextCode)
		api.POST("/codes/wifi", h.CreateWiFiCode)
		api.POST("/codes/vcard", h.CreateVCardCode)
		api.GET("/codes/:file", h.GetCode)

		api.GET("/theme", h.GetTheme)
		api.PUT("/theme", h.SetTheme)
	}
}
