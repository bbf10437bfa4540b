package livereload

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastToTCPClient(t *testing.T) {
	hub := NewHub()

	server, client := net.Pipe()
	defer client.Close()
	hub.Add(server)

	done := make(chan ContentEvent, 1)
	go func() {
		sc := bufio.NewScanner(client)
		if sc.Scan() {
			var ev ContentEvent
			_ = json.Unmarshal(sc.Bytes(), &ev)
			done <- ev
		}
	}()

	hub.BroadcastJSON(ContentEvent{
		Type:   EventReindexed,
		Posts:  12,
		Series: 2,
		At:     time.Now().UTC(),
	})

	select {
	case ev := <-done:
		assert.Equal(t, EventReindexed, ev.Type)
		assert.Equal(t, 12, ev.Posts)
		assert.Equal(t, 2, ev.Series)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestHubRemovesDeadClients(t *testing.T) {
	hub := NewHub()

	server, client := net.Pipe()
	hub.Add(server)
	require.Equal(t, 1, hub.Count())

	// closing the peer makes the next write fail and evicts the client
	_ = client.Close()
	_ = server.Close()
	hub.BroadcastJSON(ContentEvent{Type: EventReindexed, At: time.Now().UTC()})

	assert.Equal(t, 0, hub.Count())
}

func TestHubStats(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, Stats{}, hub.Stats())

	server, client := net.Pipe()
	defer client.Close()
	defer server.Close()
	hub.Add(server)

	assert.Equal(t, Stats{TCPClients: 1}, hub.Stats())
}
