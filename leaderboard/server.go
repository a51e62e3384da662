package leaderboard

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// maxBodyBytes bounds a submitted record
const maxBodyBytes = 4 << 10

// NewHandler serves the same REST shape FirebaseClient consumes, backed by store
//
//	POST {prefix}/{ns}/leaderboard.json   body: Entry      -> {"name": id}
//	GET  {prefix}/{ns}/leaderboard.json?orderBy="time"&limitToFirst=N -> {id: Entry}
func NewHandler(store *MemoryStore) http.Handler {
	r := mux.NewRouter()
	h := &handler{store: store}

	for _, path := range []string{"/leaderboard.json", "/{ns}/leaderboard.json"} {
		r.HandleFunc(path, h.submit).Methods(http.MethodPost)
		r.HandleFunc(path, h.list).Methods(http.MethodGet)
	}
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)
	return r
}

type handler struct {
	store *MemoryStore
}

func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	var e Entry
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&e); err != nil {
		httpError(w, "invalid body", http.StatusBadRequest)
		return
	}

	name, ok := CleanName(e.Name)
	if !ok || e.Time <= 0 || e.Stage < 1 {
		httpError(w, "invalid record", http.StatusBadRequest)
		return
	}
	e.Name = name
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().UnixMilli()
	}

	id := h.store.Add(e)
	log.Printf("[leaderboard] %s stored %q %dms stage %d (ns=%s)", id, e.Name, e.Time, e.Stage, mux.Vars(r)["ns"])
	writeJSON(w, http.StatusOK, map[string]string{"name": id})
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if ob := q.Get("orderBy"); ob != "" && ob != `"time"` {
		httpError(w, "orderBy must be \"time\"", http.StatusBadRequest)
		return
	}

	n := -1
	if raw := q.Get("limitToFirst"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			httpError(w, "invalid limitToFirst", http.StatusBadRequest)
			return
		}
		n = v
	}

	top := h.store.Top(n)
	out := make(map[string]Entry, len(top))
	for _, e := range top {
		out[e.ID] = e
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		httpError(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func httpError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
