package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/qrforms/qrforms/cmd/app"
	"github.com/qrforms/qrforms/internal/domain/service"
	"github.com/qrforms/qrforms/pkg/logger/types"
)

type Handler struct {
	logger  *types.Logger
	payload *service.PayloadService
	qr      *service.QrService
	prefs   *service.PrefsService
}

func New(a *app.App) *Handler {
	return &Handler{
		logger:  a.Logger,
		payload: service.NewPayloadService(),
		qr:      service.NewQrService(a.Redis.Codes),
		prefs:   service.NewPrefsService(a.Redis.Prefs),
	}
}

func badRequest(c *gin.Context, field string, err error) {
	c.JSON(400, gin.H{
		"error": err.Error(),
		"field": field,
	})
}
