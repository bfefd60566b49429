package realtime

import (
	"log"
	"sync"
	"time"

	"wavectf/metrics"

	"github.com/gorilla/websocket"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected solve feed clients
	broadcast = make(chan SolveEvent)          // Broadcast channel for accepted solves
	mutex     sync.Mutex                       // Protects the clients map
)

// SolveEvent is pushed to every connected client when a flag is accepted
type SolveEvent struct {
	ChallengeID    uint      `json:"challenge_id"`
	ChallengeTitle string    `json:"challenge_title"`
	UserID         uint      `json:"user_id"`
	Username       string    `json:"username"`
	TeamName       string    `json:"team_name,omitempty"`
	Points         int       `json:"points"`
	SolvedAt       time.Time `json:"solved_at"`
}

// RegisterClient adds a WebSocket client to the solve feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	clients[conn] = true
	metrics.WebsocketClients.Set(float64(len(clients)))
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the solve feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(clients, conn)
	metrics.WebsocketClients.Set(float64(len(clients)))
	mutex.Unlock()
}

// BroadcastSolve sends an accepted solve to all connected clients
func BroadcastSolve(event SolveEvent) {
	broadcast <- event
}

func handleBroadcast() {
	for {
		event := <-broadcast
		mutex.Lock()
		for client := range clients {
			if err := client.WriteJSON(event); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(clients, client)
			}
		}
		metrics.WebsocketClients.Set(float64(len(clients)))
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
