package net

import (
	"context"
	"fmt"
	"log"

	"LocalSketch/internal/state"

	"github.com/gorilla/websocket"
)

// Watch connects to a host's mirror and calls onBoard with every board state
// newer than the last one, until ctx is cancelled or the host goes away.
// onBoard runs on Watch's goroutine.
func Watch(ctx context.Context, url string, onBoard func(shapes []state.Shape)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	var tracker Tracker
	for {
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("disconnected from host: %w", err)
		}
		if f.Type != frameBoard || !tracker.Accept(f) {
			continue
		}
		shapes, err := state.FromRecords(f.Shapes)
		if err != nil {
			log.Printf("[MIRROR] Dropping frame %d: %v", f.Seq, err)
			continue
		}
		onBoard(shapes)
	}
}
