package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func newTestClient(h *Hub, buffer int) *Client {
	return &Client{hub: h, send: make(chan []byte, buffer)}
}

func TestBroadcastReachesAllClients(t *testing.T) {
	h := NewHub()

	c1 := newTestClient(h, sendBufferSize)
	c2 := newTestClient(h, sendBufferSize)
	h.addClient(c1)
	h.addClient(c2)

	h.BroadcastToAll(Event{Op: OpContentUpdate, Data: ContentUpdateData{Section: "hero"}})

	for _, c := range []*Client{c1, c2} {
		select {
		case raw := <-c.send:
			var ev Event
			if err := json.Unmarshal(raw, &ev); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if ev.Op != OpContentUpdate {
				t.Fatalf("op = %q", ev.Op)
			}
			if ev.Seq != 1 {
				t.Fatalf("seq = %d, want 1", ev.Seq)
			}
		default:
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestBroadcastSeqIncrements(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, sendBufferSize)
	h.addClient(c)

	h.BroadcastToAll(Event{Op: OpContentUpdate})
	h.BroadcastToAll(Event{Op: OpContentUpdate})

	var first, second Event
	_ = json.Unmarshal(<-c.send, &first)
	_ = json.Unmarshal(<-c.send, &second)

	if second.Seq != first.Seq+1 {
		t.Fatalf("seq not monotonic: %d then %d", first.Seq, second.Seq)
	}
}

// Buffer'ı dolu client broadcast'i bloklamamalı; hub onu koparır.
func TestBroadcastEvictsSlowClient(t *testing.T) {
	h := NewHub()
	go h.Run()

	slow := newTestClient(h, 1)
	h.addClient(slow)

	// İlk event buffer'ı doldurur, ikincisi eviction tetikler.
	h.BroadcastToAll(Event{Op: OpContentUpdate})
	h.BroadcastToAll(Event{Op: OpContentUpdate})

	deadline := time.After(time.Second)
	for h.ClientCount() != 0 {
		select {
		case <-deadline:
			t.Fatal("slow client was not evicted")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestShutdownClosesClients(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, sendBufferSize)
	h.addClient(c)

	h.Shutdown()

	if h.ClientCount() != 0 {
		t.Fatalf("client count = %d", h.ClientCount())
	}
	if _, open := <-c.send; open {
		t.Fatal("send channel should be closed after shutdown")
	}
}
