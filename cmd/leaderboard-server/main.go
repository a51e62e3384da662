package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/leaderboard"
)

func main() {
	addr := flag.String("addr", ":8090", "Listen address")
	flag.Parse()

	// Optional .env for deployments that configure through files
	if err := godotenv.Load(); err == nil {
		log.Printf("[leaderboard] loaded .env")
	}
	if v := os.Getenv("LEADERBOARD_ADDR"); v != "" {
		*addr = v
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           leaderboard.NewHandler(leaderboard.NewMemoryStore()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core.Go(func() {
		log.Printf("[leaderboard] listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[leaderboard] serve: %v", err)
		}
	})

	<-ctx.Done()
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		log.Printf("[leaderboard] shutdown: %v", err)
	}
}
