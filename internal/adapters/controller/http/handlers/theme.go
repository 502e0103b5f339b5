package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/qrforms/qrforms/internal/domain/common/errorz"
)

const clientCookie = "qrforms_client"

// clientID identifies the browser with a uuid cookie, minting one on first use.
func clientID(c *gin.Context) string {
	id, err := c.Cookie(clientCookie)
	if err == nil && id != "" {
		return id
	}

	id = uuid.New().String()
	c.SetCookie(clientCookie, id, 365*24*60*60, "/", "", false, false)
	return id
}

func (h *Handler) GetTheme(c *gin.Context) {
	c.JSON(200, gin.H{
		"theme": h.prefs.Theme(clientID(c)),
	})
}

func (h *Handler) SetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" form:"theme"`
	}
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "theme", errorz.ErrInvalidTheme)
		return
	}

	id := clientID(c)
	if err := h.prefs.SetTheme(id, req.Theme); err != nil {
		badRequest(c, "theme", err)
		return
	}

	c.JSON(200, gin.H{"theme": req.Theme})
}
