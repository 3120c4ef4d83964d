package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"creatures/internal/service"
)

// WebSocketHandler diffuse le journal de combat en temps réel
type WebSocketHandler struct {
	upgrader      websocket.Upgrader
	battleService service.BattleServiceInterface
	feed          service.BattleFeedInterface
}

// NewWebSocketHandler crée une nouvelle instance du handler WebSocket
func NewWebSocketHandler(battleService service.BattleServiceInterface, feed service.BattleFeedInterface) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // En production, vérifier l'origine
			},
		},
		battleService: battleService,
		feed:          feed,
	}
}

// StreamBattle gère une connexion WebSocket de suivi de combat.
// GET /ws/battles/:id
func (h *WebSocketHandler) StreamBattle(c *gin.Context) {
	battleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid battle ID",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	battle, err := h.battleService.GetBattle(battleID)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	// Rejouer le journal existant avant de basculer sur le direct
	for _, entry := range battle.Log {
		if err := conn.WriteJSON(entry); err != nil {
			return
		}
	}

	if battle.Completed {
		return
	}

	entries, cancel := h.feed.Subscribe(battleID)
	defer cancel()

	// Détecter la déconnexion du client
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if err := conn.WriteJSON(entry); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			logrus.WithField("battle_id", battleID).Debug("WebSocket client disconnected")
			return
		}
	}
}
