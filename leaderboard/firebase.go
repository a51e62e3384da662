package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// FirebaseClient talks to a Firebase Realtime Database style REST endpoint
// Records live under {BaseURL}/{Namespace}/leaderboard.json
type FirebaseClient struct {
	BaseURL   string
	Namespace string
	HTTP      *http.Client
	Now       func() time.Time
}

// NewFirebaseClient creates a client with a bounded HTTP timeout
func NewFirebaseClient(baseURL, namespace string, timeout time.Duration) *FirebaseClient {
	return &FirebaseClient{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Namespace: strings.Trim(namespace, "/"),
		HTTP:      &http.Client{Timeout: timeout},
		Now:       time.Now,
	}
}

func (c *FirebaseClient) endpoint() string {
	if c.Namespace == "" {
		return c.BaseURL + "/leaderboard.json"
	}
	return c.BaseURL + "/" + c.Namespace + "/leaderboard.json"
}

// Submit posts one record and reports whether the backend accepted it
func (c *FirebaseClient) Submit(ctx context.Context, name string, clearTimeMs int64, stage int) bool {
	name, ok := CleanName(name)
	if !ok || clearTimeMs <= 0 {
		log.Printf("[leaderboard] submit rejected: name=%q time=%d", name, clearTimeMs)
		return false
	}

	body, err := json.Marshal(Entry{
		Name:      name,
		Time:      clearTimeMs,
		Stage:     stage,
		Timestamp: c.Now().UnixMilli(),
	})
	if err != nil {
		log.Printf("[leaderboard] submit encode: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		log.Printf("[leaderboard] submit request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("[leaderboard] submit: %v", err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		log.Printf("[leaderboard] submit: status %d", resp.StatusCode)
		return false
	}
	return true
}

// FetchTop returns up to n records ordered by ascending time
// The backend returns an object keyed by record id; order is re-established locally
func (c *FirebaseClient) FetchTop(ctx context.Context, n int) []Entry {
	entries, err := c.fetch(ctx, n)
	if err != nil {
		log.Printf("[leaderboard] fetch: %v", err)
		return nil
	}
	return entries
}

func (c *FirebaseClient) fetch(ctx context.Context, n int) ([]Entry, error) {
	q := url.Values{}
	q.Set("orderBy", `"time"`)
	q.Set("limitToFirst", strconv.Itoa(n))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint()+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	// An empty database answers with JSON null
	var byID map[string]Entry
	if err := json.NewDecoder(resp.Body).Decode(&byID); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	entries := make([]Entry, 0, len(byID))
	for id, e := range byID {
		e.ID = id
		entries = append(entries, e)
	}
	SortByTime(entries)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
