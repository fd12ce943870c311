package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"LocalSketch/internal/state"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// MirrorPath is where the hub accepts viewer connections.
const MirrorPath = "/mirror"

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

// Frame is one complete board state sent to viewers.
type Frame struct {
	Type   string              `json:"type"`
	Site   string              `json:"site"`
	Seq    uint64              `json:"seq"`
	Shapes []state.ShapeRecord `json:"shapes"`
}

const frameBoard = "board"

// Peer is a connected viewer. Viewers are read-only: anything they send is
// discarded.
type Peer struct {
	ID   string
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (p *Peer) close() {
	p.once.Do(func() { close(p.send) })
}

// Hub fans board frames out to every connected viewer. Publish is called
// from the UI goroutine and never blocks; each peer has its own writer.
type Hub struct {
	upgrader websocket.Upgrader
	clock    *Clock

	mu     sync.RWMutex
	peers  map[string]*Peer
	latest []byte
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// viewers are native apps on the LAN, not browsers
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clock: NewClock(),
		peers: make(map[string]*Peer),
	}
}

// Publish encodes shapes as the next frame and queues it for every viewer.
// A viewer too slow to keep up is disconnected; it gets the latest frame
// again when it reconnects.
func (h *Hub) Publish(shapes []state.Shape) error {
	data, err := json.Marshal(Frame{
		Type:   frameBoard,
		Site:   h.clock.Site(),
		Seq:    h.clock.Next(),
		Shapes: state.ToRecords(shapes),
	})
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for id, p := range h.peers {
		select {
		case p.send <- data:
		default:
			log.Printf("[MIRROR] Viewer %s is not keeping up, dropping it", id)
			delete(h.peers, id)
			p.close()
		}
	}
	return nil
}

// Peers returns the number of connected viewers.
func (h *Hub) Peers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

func (h *Hub) add(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p.ID] = p
	if h.latest != nil {
		p.send <- h.latest
	}
	log.Printf("[MIRROR] Viewer %s connected from %s", p.ID, p.conn.RemoteAddr())
}

func (h *Hub) remove(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.peers[p.ID]; ok {
		delete(h.peers, p.ID)
		p.close()
		log.Printf("[MIRROR] Viewer %s disconnected", p.ID)
	}
}

// ServeHTTP upgrades a viewer connection and streams frames to it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[MIRROR] Upgrade failed: %v", err)
		return
	}
	p := &Peer{ID: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}
	h.add(p)
	go h.writeLoop(p)
	h.readLoop(p)
}

func (h *Hub) writeLoop(p *Peer) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[MIRROR] Write to %s failed: %v", p.ID, err)
				h.remove(p)
				return
			}
		case <-ticker.C:
			if err := p.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.remove(p)
				return
			}
		}
	}
}

// readLoop only exists to process control frames and notice the close.
func (h *Hub) readLoop(p *Peer) {
	defer h.remove(p)
	p.conn.SetReadLimit(512)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, p := range h.peers {
		delete(h.peers, id)
		p.close()
	}
}

// Serve runs the mirror endpoint on port until ctx is cancelled.
func Serve(ctx context.Context, port int, hub *Hub) error {
	mux := http.NewServeMux()
	mux.Handle(MirrorPath, hub)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[MIRROR] Listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start mirror server: %w", err)
	}
	return nil
}
