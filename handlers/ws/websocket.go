package ws

import (
	"log"
	"net/http"
	"slices"

	"festival/realtime"
	"festival/storage"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CollectionWebSocket handles WebSocket connections for a collection.
// Connected clients receive a full snapshot of the collection after
// every write.
func CollectionWebSocket(c *gin.Context) {
	collection := c.Param("collection")

	if !slices.Contains(storage.Collections, collection) {
		c.JSON(404, gin.H{"error": "Unknown collection"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	// Send the current state so clients do not wait for the next write
	records, err := storage.Store.GetAllRaw(c.Request.Context(), collection)
	if err == nil {
		snapshot := realtime.Snapshot{Collection: collection, Records: records}
		if err := conn.WriteJSON(snapshot); err != nil {
			log.Printf("WebSocket initial snapshot error: %v", err)
		}
	}

	realtime.RegisterClient(collection, conn)
	defer func() {
		realtime.UnregisterClient(collection, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

// RegisterRoutes registers the realtime WebSocket route
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws/:collection", CollectionWebSocket)
}
