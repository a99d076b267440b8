package handlers

import (
	"log"
	"net/http"

	"github.com/alexdoyle/rivals-team-builder/internal/service"
	"github.com/alexdoyle/rivals-team-builder/internal/websocket"
	"github.com/go-chi/chi/v5"
	ws "github.com/gorilla/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

type WebSocketHandler struct {
	hub         *websocket.Hub
	authService *service.AuthService
}

func NewWebSocketHandler(hub *websocket.Hub, authService *service.AuthService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
	}
}

// HandleTeamComments serves GET /ws/teams/{slug}/comments. Reading the
// stream needs no account, so a token is only checked when the client
// sends one. The connection is accepted before the hub registration,
// and registration failure leaves the socket open with nothing to say.
func (h *WebSocketHandler) HandleTeamComments(w http.ResponseWriter, r *http.Request) {
	if token := r.URL.Query().Get("token"); token != "" {
		if _, err := h.authService.ValidateToken(token); err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
	}

	slug := chi.URLParam(r, "slug")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [WebSocketHandler.HandleTeamComments] upgrade failed: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn, slug)
	go client.WritePump()
	h.hub.Register(client)
	go client.ReadPump()
}
