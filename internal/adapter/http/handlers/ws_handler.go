package handlers

import (
	"net/http"

	"autofixpro/internal/adapter/http/middleware"
	"autofixpro/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// WSHandler upgrades HTTP requests to websocket subscriptions on the
// realtime hub.

type WSHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Status page and API are served from different origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe upgrades the connection and registers it under the identity the
// middleware resolved. Anonymous clients still receive broadcast events.
func (h *WSHandler) Subscribe(c *gin.Context) {
	username := c.GetString(middleware.UsernameKey)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("[http][ws] websocket upgrade failed")
		return
	}

	h.hub.HandleConnection(conn, username)
}
