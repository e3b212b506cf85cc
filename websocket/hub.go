package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
)

type Client struct {
	UserID uint
	Conn   *websocket.Conn
}

var clients = make(map[uint]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)

// NotifyInquiry pushes a freshly created inquiry to the broker owning the
// inquired property, if that broker has a live connection.
var NotifyInquiry = make(chan *models.Inquiry)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %d", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %d", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case inquiry := <-NotifyInquiry:
			var brokerID uint
			err := database.DB.
				Model(&models.Property{}).
				Where("id = ?", inquiry.PropertyID).
				Pluck("broker_id", &brokerID).Error
			if err != nil {
				log.Printf("Error resolving broker for inquiry %d: %v", inquiry.ID, err)
				continue
			}

			clientsMu.RLock()
			conn, ok := clients[brokerID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}

			if err := conn.WriteJSON(inquiry); err != nil {
				log.Printf("Error sending inquiry to broker %d: %v", brokerID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, brokerID)
				clientsMu.Unlock()
			}
		}
	}
}
