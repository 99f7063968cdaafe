package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rentster/rentster-app/middlewares"
	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// DashboardWS upgrades to a websocket and streams booking, payment and
// item events to management dashboard clients.
func DashboardWS(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if actor.Role != models.RoleAdmin && actor.Role != models.RoleBusinessOwner {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	realtime.RegisterClient(ws, actor.Role)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	realtime.UnregisterClient(ws)
}
