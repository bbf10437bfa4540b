package comments

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const defaultHistorySize = 50

// Message is one live discussion entry. Threads are keyed by post slug.
type Message struct {
	Type string    `json:"type"`
	Post string    `json:"post"`
	User string    `json:"user"`
	Text string    `json:"text,omitempty"`
	At   time.Time `json:"at"`
}

type thread struct {
	connections map[*websocket.Conn]string
	history     []Message
}

type Hub struct {
	mu          sync.Mutex
	threads     map[string]*thread
	historySize int
}

func NewHub(historySize int) *Hub {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &Hub{
		threads:     make(map[string]*thread),
		historySize: historySize,
	}
}

func (h *Hub) Join(post string, ws *websocket.Conn, user string) []Message {
	var history []Message
	h.mu.Lock()
	t := h.threadLocked(post)
	t.connections[ws] = user
	history = append(history, t.history...)
	h.mu.Unlock()

	h.Broadcast(Message{
		Type: "user_join",
		Post: post,
		User: user,
		At:   time.Now().UTC(),
	})

	return history
}

func (h *Hub) Leave(post string, ws *websocket.Conn) {
	var user string
	h.mu.Lock()
	if t, ok := h.threads[post]; ok {
		if u, exists := t.connections[ws]; exists {
			user = u
		}
		delete(t.connections, ws)
	}
	h.mu.Unlock()

	_ = ws.Close()

	if user != "" {
		h.Broadcast(Message{
			Type: "user_leave",
			Post: post,
			User: user,
			At:   time.Now().UTC(),
		})
	}
}

func (h *Hub) Broadcast(msg Message) {
	if msg.At.IsZero() {
		msg.At = time.Now().UTC()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.threads[msg.Post]
	if !ok {
		return
	}

	if msg.Type == "message" {
		t.history = append(t.history, msg)
		if len(t.history) > h.historySize {
			t.history = t.history[len(t.history)-h.historySize:]
		}
	}

	for ws := range t.connections {
		if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = ws.Close()
			delete(t.connections, ws)
		}
	}
}

func (h *Hub) History(post string) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.threads[post]; ok {
		return append([]Message(nil), t.history...)
	}
	return nil
}

func (h *Hub) User(post string, ws *websocket.Conn) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.threads[post]; ok {
		return t.connections[ws]
	}
	return ""
}

func (h *Hub) threadLocked(post string) *thread {
	t, ok := h.threads[post]
	if !ok {
		t = &thread{connections: make(map[*websocket.Conn]string)}
		h.threads[post] = t
	}
	return t
}
