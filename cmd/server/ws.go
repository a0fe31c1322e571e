package main

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"FATIGUE_MONITOR/go-backend/internal/models"
	"FATIGUE_MONITOR/go-backend/internal/services"
)

type WebSocketClient struct {
	conn     *websocket.Conn
	clientID string
	send     chan interface{}
}

type WebSocketClients struct {
	mu      sync.RWMutex
	clients map[string]*WebSocketClient
}

type WebSocketMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	ClientID  string      `json:"client_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

var wsClients = &WebSocketClients{
	clients: make(map[string]*WebSocketClient),
}

// Broadcast queues a message for every connected client. A client whose
// send buffer is full misses the message rather than stalling the pipeline.
func (c *WebSocketClients) Broadcast(msg WebSocketMessage) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, client := range c.clients {
		select {
		case client.send <- msg:
			services.GetMetrics().IncrementWebSocketMessages()
		default:
		}
	}
}

// BroadcastSnapshot pushes one finished metric snapshot to all clients.
func (c *WebSocketClients) BroadcastSnapshot(snap *models.MetricSnapshot) {
	c.Broadcast(WebSocketMessage{
		Type:      "SNAPSHOT",
		Payload:   snap,
		Timestamp: snap.Timestamp.Unix(),
	})
}

// BroadcastAlert pushes a dispatched alert to all clients.
func (c *WebSocketClients) BroadcastAlert(alert models.Alert) {
	c.Broadcast(WebSocketMessage{
		Type:      "ALERT",
		Payload:   alert,
		Timestamp: alert.Timestamp.Unix(),
	})
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = uuid.NewString()
	}

	log.Printf("WebSocket client connected: %s", clientID)

	client := &WebSocketClient{
		conn:     conn,
		clientID: clientID,
		send:     make(chan interface{}, 256),
	}

	wsClients.mu.Lock()
	wsClients.clients[clientID] = client
	wsClients.mu.Unlock()
	services.GetMetrics().IncrementWebSocketConnections()

	defer func() {
		wsClients.mu.Lock()
		delete(wsClients.clients, clientID)
		wsClients.mu.Unlock()
		services.GetMetrics().DecrementWebSocketConnections()

		conn.Close()
		log.Printf("WebSocket client disconnected: %s", clientID)
	}()

	go writePump(client)

	client.send <- WebSocketMessage{
		Type:      "WELCOME",
		ClientID:  clientID,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"message": "Connected to Fatigue Monitor",
			"version": "1.0",
		},
	}

	readPump(client)
}

func readPump(client *WebSocketClient) {
	defer func() {
		client.conn.Close()
	}()

	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg WebSocketMessage
		err := client.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for %s: %v", client.clientID, err)
				services.GetMetrics().IncrementWebSocketErrors()
			}
			break
		}

		switch msg.Type {
		case "PING":
			client.send <- WebSocketMessage{
				Type:      "PONG",
				ClientID:  client.clientID,
				Timestamp: time.Now().Unix(),
			}

		default:
			log.Printf("Unknown message type from %s: %s", client.clientID, msg.Type)
		}
	}
}

func writePump(client *WebSocketClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteJSON(msg); err != nil {
				services.GetMetrics().IncrementWebSocketErrors()
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func closeAllWebSocketConnections() {
	wsClients.mu.Lock()
	defer wsClients.mu.Unlock()

	for clientID, client := range wsClients.clients {
		close(client.send)
		client.conn.Close()
		log.Printf("Closed connection for client: %s", clientID)
	}
	wsClients.clients = make(map[string]*WebSocketClient)
}

// wsAlertNotifier adapts the hub to the alert channel interface.
type wsAlertNotifier struct{}

func (wsAlertNotifier) Notify(alert models.Alert) error {
	wsClients.BroadcastAlert(alert)
	return nil
}
