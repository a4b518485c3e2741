package live

import (
	"log"
	"net/http"

	"fiesta/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChannelWebSocket handles WebSocket subscriptions to a live update channel
func ChannelWebSocket(c *gin.Context) {
	channel := c.Param("channel")

	if !realtime.IsKnownChannel(channel) {
		c.JSON(404, gin.H{"error": "Unknown channel"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(channel, conn)
	defer func() {
		realtime.UnregisterClient(channel, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
