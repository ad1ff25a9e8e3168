package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	collectionClients = make(map[string]map[*websocket.Conn]bool) // Map of collection name to connected clients
	subscribers       = make(map[string]map[int]func(Snapshot))   // Map of collection name to in-process callbacks
	broadcast         = make(chan Snapshot)                       // Broadcast channel for snapshots
	mutex             sync.Mutex                                  // Mutex protecting both maps
	nextSubscriberID  int
)

// Snapshot carries the full current contents of a collection. Every write
// re-delivers the whole collection to every subscriber, not a delta.
type Snapshot struct {
	Collection string            `json:"collection"`
	Records    []json.RawMessage `json:"records"`
}

// RegisterClient adds a WebSocket client listening to a collection
func RegisterClient(collection string, conn *websocket.Conn) {
	mutex.Lock()
	if collectionClients[collection] == nil {
		collectionClients[collection] = make(map[*websocket.Conn]bool)
	}
	collectionClients[collection][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a collection
func UnregisterClient(collection string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := collectionClients[collection]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(collectionClients, collection)
		}
	}
	mutex.Unlock()
}

// Subscribe registers an in-process callback for a collection's snapshots
// and returns an unsubscribe function
func Subscribe(collection string, callback func(Snapshot)) func() {
	mutex.Lock()
	if subscribers[collection] == nil {
		subscribers[collection] = make(map[int]func(Snapshot))
	}
	id := nextSubscriberID
	nextSubscriberID++
	subscribers[collection][id] = callback
	mutex.Unlock()

	return func() {
		mutex.Lock()
		delete(subscribers[collection], id)
		mutex.Unlock()
	}
}

// BroadcastSnapshot delivers a collection snapshot to every subscriber
func BroadcastSnapshot(snapshot Snapshot) {
	broadcast <- snapshot
}

func handleBroadcast() {
	for {
		snapshot := <-broadcast
		mutex.Lock()
		callbacks := make([]func(Snapshot), 0, len(subscribers[snapshot.Collection]))
		for _, callback := range subscribers[snapshot.Collection] {
			callbacks = append(callbacks, callback)
		}
		if clients, exists := collectionClients[snapshot.Collection]; exists {
			for client := range clients {
				if err := client.WriteJSON(snapshot); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()

		for _, callback := range callbacks {
			callback(snapshot)
		}
	}
}

func init() {
	go handleBroadcast()
}
