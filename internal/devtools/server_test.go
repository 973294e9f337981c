package devtools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/okvist/pagesync/internal/history"
)

func TestPublish(t *testing.T) {
	srv := NewServer()
	if err := srv.Listen("127.0.0.1:0"); err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws://"+srv.Addr()+"/events", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	// Client registration races with the publish below; give the accept
	// handler a moment to record the connection.
	deadline := time.Now().Add(2 * time.Second)
	for {
		srv.mu.Lock()
		n := len(srv.clients)
		srv.mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	want := history.Entry{
		Trigger:  "resize",
		Expr:     "calc(600px - 64px - 0px)",
		Resolved: true,
		Px:       536,
	}
	srv.Publish(want)

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got history.Entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decoding broadcast: %v", err)
	}
	if got.Expr != want.Expr || got.Px != want.Px {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPublish_NoClients(t *testing.T) {
	srv := NewServer()
	// Publish without Listen must not panic or block.
	srv.Publish(history.Entry{Trigger: "load"})
}
