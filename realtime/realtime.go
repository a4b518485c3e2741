package realtime

import (
	"log"
	"sync"

	"fiesta/metrics"

	"github.com/gorilla/websocket"
)

// Channels clients can subscribe to
const (
	ChannelRegistrations = "registrations"
	ChannelStudents      = "students"
	ChannelResults       = "results"
	ChannelScoreboard    = "scoreboard"
	ChannelAssignments   = "assignments"
)

// Events broadcast over the channels
const (
	EventRegistrationCreated = "registration-created"
	EventRegistrationDeleted = "registration-deleted"
	EventStudentCreated      = "student-created"
	EventStudentUpdated      = "student-updated"
	EventStudentDeleted      = "student-deleted"
	EventResultSubmitted     = "result-submitted"
	EventResultApproved      = "result-approved"
	EventResultRejected      = "result-rejected"
	EventResultUpdated       = "result-updated"
	EventScoreboardUpdated   = "scoreboard-updated"
	EventAssignmentCreated   = "assignment-created"
	EventAssignmentDeleted   = "assignment-deleted"
)

var (
	channelClients = make(map[string]map[*websocket.Conn]bool) // Map of channel name to connected clients
	broadcast      = make(chan Update, 64)                     // Broadcast channel for updates
	mutex          sync.Mutex                                  // Mutex to protect channelClients map
)

// Update is a single event pushed to all subscribers of a channel
type Update struct {
	Channel string      `json:"channel"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// IsKnownChannel reports whether clients may subscribe to the given channel
func IsKnownChannel(channel string) bool {
	switch channel {
	case ChannelRegistrations, ChannelStudents, ChannelResults, ChannelScoreboard, ChannelAssignments:
		return true
	}
	return false
}

// RegisterClient adds a WebSocket client to a specific channel
func RegisterClient(channel string, conn *websocket.Conn) {
	mutex.Lock()
	if channelClients[channel] == nil {
		channelClients[channel] = make(map[*websocket.Conn]bool)
	}
	channelClients[channel][conn] = true
	mutex.Unlock()
	metrics.RealtimeClients.WithLabelValues(channel).Inc()
}

// UnregisterClient removes a WebSocket client from a specific channel
func UnregisterClient(channel string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := channelClients[channel]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(channelClients, channel)
		}
	}
	mutex.Unlock()
	metrics.RealtimeClients.WithLabelValues(channel).Dec()
}

// Publish queues an event for delivery to all subscribers of the channel.
// Delivery is fire-and-forget: a failed or slow notification never rolls
// back the write that triggered it.
func Publish(channel, event string, payload interface{}) {
	update := Update{Channel: channel, Event: event, Payload: payload}
	select {
	case broadcast <- update:
	default:
		log.Printf("Realtime broadcast queue full, dropping %s on %s", event, channel)
	}
	publishRedis(update)
}

func deliver(update Update) {
	mutex.Lock()
	if clients, exists := channelClients[update.Channel]; exists {
		for client := range clients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(clients, client)
				metrics.RealtimeClients.WithLabelValues(update.Channel).Dec()
			}
		}
	}
	mutex.Unlock()
}

func handleBroadcast() {
	for update := range broadcast {
		deliver(update)
	}
}

func init() {
	go handleBroadcast()
}
