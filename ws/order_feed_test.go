package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestOrdersChangedNeverBlocks(t *testing.T) {
	h := NewOrderFeedHub()
	// no Run loop draining; the buffered channel fills and the rest drop
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			h.OrdersChanged()
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OrdersChanged blocked")
	}
}

func TestFeedDeliversChangeEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewOrderFeedHub()
	go h.Run()

	r := gin.New()
	r.GET("/admin/ws", h.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// registration races the broadcast; give the hub a beat
	time.Sleep(50 * time.Millisecond)
	h.OrdersChanged()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev FeedEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read: %v", err)
	}
	if ev.Event != "orders_changed" {
		t.Fatalf("Event = %q, want orders_changed", ev.Event)
	}
}
