package debug

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/stage"
	"github.com/lixenwraith/hell-escape/status"
)

func newGame(t *testing.T) (*engine.Game, *engine.MockTimeProvider) {
	t.Helper()
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := engine.NewGameContext(mock)
	layout, err := stage.Assemble([]stage.Descriptor{stage.Fallback(), stage.Fallback()})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if err := ctx.Init(layout); err != nil {
		t.Fatalf("init: %v", err)
	}
	return engine.NewGame(ctx), mock
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestPosition(t *testing.T) {
	g, _ := newGame(t)
	h := NewServer(g, nil, time.Millisecond).Handler()

	rec := do(t, h, http.MethodGet, "/debug/position")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var got positionReply
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := g.Snapshot()
	if got.Stage != 1 || got.X != want.X || got.Y != want.Y {
		t.Errorf("Expected stage 1 at (%.0f, %.0f), got %+v", want.X, want.Y, got)
	}
}

func TestMetrics(t *testing.T) {
	g, _ := newGame(t)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyPlayerHits).Store(3)
	h := NewServer(g, reg, time.Millisecond).Handler()

	rec := do(t, h, http.MethodGet, "/debug/metrics")
	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got[status.KeyPlayerHits] != float64(3) {
		t.Errorf("Expected %s=3, got %v", status.KeyPlayerHits, got[status.KeyPlayerHits])
	}
}

func TestTeleportQueuesCommand(t *testing.T) {
	g, mock := newGame(t)
	h := NewServer(g, nil, time.Millisecond).Handler()

	rec := do(t, h, http.MethodPost, "/debug/teleport/2")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", rec.Code)
	}
	if g.Context().State.CurrentStage != 1 {
		t.Error("Expected teleport deferred until the next tick")
	}

	g.Tick(mock.Now())
	if g.Context().State.CurrentStage != 2 {
		t.Errorf("Expected stage 2, got %d", g.Context().State.CurrentStage)
	}
	if g.Snapshot().Stage != 2 {
		t.Errorf("Expected snapshot stage 2, got %d", g.Snapshot().Stage)
	}
}

func TestTeleportRejectsOutOfRange(t *testing.T) {
	g, _ := newGame(t)
	h := NewServer(g, nil, time.Millisecond).Handler()

	for _, path := range []string{"/debug/teleport/0", "/debug/teleport/3", "/debug/goal/9"} {
		if rec := do(t, h, http.MethodPost, path); rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rec.Code)
		}
	}
	if rec := do(t, h, http.MethodPost, "/debug/teleport/abc"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected non-numeric stage unrouted, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/debug/teleport/1"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/debug/tutorial/reset"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET on tutorial reset, got %d", rec.Code)
	}
}

func TestGoalAndTutorialReset(t *testing.T) {
	g, mock := newGame(t)
	ctx := g.Context()
	ctx.Store.SetTutorialDone(true)
	h := NewServer(g, nil, time.Millisecond).Handler()

	do(t, h, http.MethodPost, "/debug/goal/1")
	do(t, h, http.MethodPost, "/debug/tutorial/reset")
	g.Tick(mock.Now())

	st, _ := ctx.Layout.Stage(1)
	if st.Goal == nil {
		t.Fatal("Expected fallback stage to have a goal")
	}
	if got := ctx.Player.Hitbox().Bottom(); got != st.Goal.Top() {
		t.Errorf("Expected player on goal top %.0f, got %.0f", st.Goal.Top(), got)
	}
	if ctx.Store.TutorialDone() {
		t.Error("Expected tutorial flag cleared")
	}
}

func TestStreamSendsSnapshots(t *testing.T) {
	g, _ := newGame(t)
	srv := httptest.NewServer(NewServer(g, nil, 5*time.Millisecond).Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/debug/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var snap engine.Snapshot
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("read: %v", err)
	}
	if snap.Stage != 1 || snap.Stages != 2 {
		t.Errorf("Expected stage 1 of 2, got %d of %d", snap.Stage, snap.Stages)
	}
}

func TestStartAndShutdown(t *testing.T) {
	g, _ := newGame(t)
	s := NewServer(g, nil, time.Millisecond)
	if err := s.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("start: %v", err)
	}

	resp, err := http.Get("http://" + s.Addr() + "/debug/position")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	if err := s.Shutdown(t.Context()); err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
	if err := s.Shutdown(t.Context()); err != nil {
		t.Errorf("Expected repeated shutdown to be a no-op, got %v", err)
	}
}
