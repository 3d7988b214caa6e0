package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Live relay between telemedicine participants. Each connected user is keyed
// by id; messages are routed to the recipient when connected and dropped
// otherwise (the REST endpoint persists them regardless). Connects,
// disconnects and routing lookups run on separate goroutines, so every map
// access goes through the mutex.
var (
	participantsMu sync.Mutex
	participants   = make(map[string]*sessionClient)
)

func registerParticipant(client *sessionClient) int {
	participantsMu.Lock()
	defer participantsMu.Unlock()
	participants[client.userID] = client
	return len(participants)
}

func unregisterParticipant(userID string) int {
	participantsMu.Lock()
	defer participantsMu.Unlock()
	delete(participants, userID)
	return len(participants)
}

func lookupParticipant(userID string) (*sessionClient, bool) {
	participantsMu.Lock()
	defer participantsMu.Unlock()
	client, ok := participants[userID]
	return client, ok
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type sessionClient struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

type sessionMessage struct {
	PatientID   string `json:"patient_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
}

func ServeTelemedicineWs(c *gin.Context) {
	userID := c.Query("userId")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "WebSocket upgrade failed: " + err.Error()})
		return
	}
	client := &sessionClient{userID: userID, conn: conn, send: make(chan []byte)}
	total := registerParticipant(client)
	log.Printf("User %s connected. Total participants: %d", userID, total)

	go client.writePump()
	go client.readPump()
}

func (c *sessionClient) readPump() {
	defer func() {
		c.conn.Close()
		total := unregisterParticipant(c.userID)
		log.Printf("User %s disconnected. Total participants: %d", c.userID, total)
	}()
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg sessionMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("error: %v", err)
			continue
		}

		if recipient, ok := lookupParticipant(msg.RecipientID); ok {
			recipient.send <- raw
		} else {
			log.Printf("No active participant with ID %s", msg.RecipientID)
		}
	}
}

func (c *sessionClient) writePump() {
	defer c.conn.Close()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			break
		}
		c.conn.WriteMessage(websocket.TextMessage, message)
	}
}
