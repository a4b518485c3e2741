package live

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the live update routes
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/live/:channel", ChannelWebSocket)
}
