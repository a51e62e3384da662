// Package debug serves a local HTTP surface for inspecting and steering a running game
package debug

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/status"
)

// ErrStageRange is returned for a stage outside the loaded layout
var ErrStageRange = errors.New("stage out of range")

// Controller is the part of the game the debug surface reads and drives
// Both methods are safe from any goroutine
type Controller interface {
	Snapshot() engine.Snapshot
	Post(cmd engine.Command) bool
}

// Server exposes position, metrics and teleport commands
type Server struct {
	game     Controller
	metrics  *status.Registry
	interval time.Duration
	upgrader websocket.Upgrader

	mu   sync.Mutex
	srv  *http.Server
	addr string
}

// NewServer creates a server; interval paces the websocket position stream
func NewServer(game Controller, metrics *status.Registry, interval time.Duration) *Server {
	return &Server{
		game:     game,
		metrics:  metrics,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Loopback tool, any page may attach
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the routed handler
// Routes sit on the root router so a method mismatch answers 405
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/debug/position", s.position).Methods(http.MethodGet)
	r.HandleFunc("/debug/metrics", s.metricsHandler).Methods(http.MethodGet)
	r.HandleFunc("/debug/tutorial/reset", s.tutorialReset).Methods(http.MethodPost)
	r.HandleFunc("/debug/teleport/{stage:[0-9]+}", s.teleport).Methods(http.MethodPost)
	r.HandleFunc("/debug/goal/{stage:[0-9]+}", s.goal).Methods(http.MethodPost)
	r.HandleFunc("/debug/ws", s.stream).Methods(http.MethodGet)
	return r
}

// Start listens on addr and serves in the background
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("debug listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[debug] serve: %v", err)
		}
	})
	log.Printf("[debug] listening on %s", s.addr)
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Shutdown stops the listener; safe to call when never started
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// positionReply is the /debug/position body
type positionReply struct {
	Stage     int     `json:"stage"`
	StageName string  `json:"stageName"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Grounded  bool    `json:"grounded"`
	CameraY   float64 `json:"cameraY"`
}

func (s *Server) position(w http.ResponseWriter, _ *http.Request) {
	snap := s.game.Snapshot()
	writeJSON(w, http.StatusOK, positionReply{
		Stage:     snap.Stage,
		StageName: snap.StageName,
		X:         snap.X,
		Y:         snap.Y,
		VX:        snap.VX,
		VY:        snap.VY,
		Grounded:  snap.Grounded,
		CameraY:   snap.CameraY,
	})
}

func (s *Server) metricsHandler(w http.ResponseWriter, _ *http.Request) {
	if s.metrics == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}

func (s *Server) tutorialReset(w http.ResponseWriter, _ *http.Request) {
	s.post(w, func(g *engine.Game) { g.ResetTutorial() })
}

func (s *Server) teleport(w http.ResponseWriter, r *http.Request) {
	n, err := s.stageParam(r)
	if err != nil {
		httpError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.post(w, func(g *engine.Game) {
		if err := g.TeleportToStage(n); err != nil {
			log.Printf("[debug] teleport: %v", err)
		}
	})
}

func (s *Server) goal(w http.ResponseWriter, r *http.Request) {
	n, err := s.stageParam(r)
	if err != nil {
		httpError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.post(w, func(g *engine.Game) {
		if err := g.TeleportToGoal(n); err != nil {
			log.Printf("[debug] goal: %v", err)
		}
	})
}

// stageParam validates the route stage against the published layout size
func (s *Server) stageParam(r *http.Request) (int, error) {
	n, err := strconv.Atoi(mux.Vars(r)["stage"])
	if err != nil {
		return 0, err
	}
	if stages := s.game.Snapshot().Stages; n < 1 || n > stages {
		return 0, fmt.Errorf("%w: %d of %d", ErrStageRange, n, stages)
	}
	return n, nil
}

func (s *Server) post(w http.ResponseWriter, cmd engine.Command) {
	if !s.game.Post(cmd) {
		httpError(w, "command queue full", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]bool{"queued": true})
}

// stream pushes a snapshot per interval until the client goes away
func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[debug] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Reads only detect the close; client messages are ignored
	done := make(chan struct{})
	core.Go(func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last int64 = -1
	for {
		if snap := s.game.Snapshot(); snap.Frame != last {
			last = snap.Frame
			conn.SetWriteDeadline(time.Now().Add(time.Second))
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		}
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[debug] encode reply: %v", err)
	}
}

func httpError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
