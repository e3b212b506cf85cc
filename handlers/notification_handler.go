package handlers

import (
	"errors"
	"fmt"
	"log"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v4"
	"github.com/nahomt24/addis_estates/config"
	"github.com/nahomt24/addis_estates/websocket"
)

// ServeWs keeps a broker connection open for live inquiry notifications. The
// client authenticates with its JWT as the first message, since browsers
// cannot set an Authorization header on websocket upgrades.
func ServeWs(c *websocketcontrib.Conn) {
	type authMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}

	var authMsg authMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(map[string]string{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(map[string]string{"error": "Invalid token"})
		c.Close()
		return
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		_ = c.WriteJSON(map[string]string{"error": "Invalid user ID"})
		c.Close()
		return
	}
	userID := uint(rawID)

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	// Notifications are one-way; the read loop only detects disconnects.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("WebSocket closed for client %d: %v", userID, err)
			} else {
				log.Printf("WebSocket read error for client %d: %v", userID, err)
			}
			break
		}
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
