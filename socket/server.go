package socket

import (
	"log"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
)

// Server relays call-room events to connected clients. Clients join a room
// by its shareable room code; WebRTC offer/answer/candidate payloads pass
// through untouched, and call lifecycle events published by the call manager
// are broadcast to the room.
type Server struct {
	io *socketio.Server
}

// NewSocketServer initializes and returns a new Socket.IO relay server
func NewSocketServer() *Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, roomCode string) {
		if roomCode == "" {
			log.Println("Invalid room code in join request")
			return
		}
		log.Printf("Socket %s joined room %s", c.ID(), roomCode)
		c.Join(roomCode)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, roomCode string) {
		c.Leave(roomCode)
	})

	// WebRTC signaling passthrough: the payload carries the room code and
	// the SDP/candidate blob; the core never inspects it.
	server.OnEvent("/", "signal", func(c socketio.Conn, payload map[string]interface{}) {
		roomCode, _ := payload["roomCode"].(string)
		if roomCode == "" {
			log.Println("Signal payload missing room code")
			return
		}
		server.BroadcastToRoom("/", roomCode, "signal", payload)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return &Server{io: server}
}

// Publish broadcasts a call lifecycle event to a room. Implements the call
// manager's event sink.
func (s *Server) Publish(roomCode, event string, payload interface{}) {
	s.io.BroadcastToRoom("/", roomCode, event, payload)
}

// Handler exposes the underlying socket.io HTTP handler for mounting.
func (s *Server) Handler() http.Handler {
	return s.io
}

// Serve runs the socket.io event loop until Close is called.
func (s *Server) Serve() error {
	return s.io.Serve()
}

// Close shuts the event loop down.
func (s *Server) Close() error {
	return s.io.Close()
}
