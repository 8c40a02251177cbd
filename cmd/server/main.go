// Command server hosts the HTTP path and near services over a starmap
// graph loaded once at startup.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/azybler/evepath/pkg/api"
	"github.com/azybler/evepath/pkg/gate"
	"github.com/azybler/evepath/pkg/routing"
	"github.com/azybler/evepath/pkg/starmap"
)

func main() {
	graphPath := envOrDefault("STARMAP_PATH", "data/starmap.bin")
	maxConcurrent := envIntOrDefault("MAX_CONCURRENT_REQUESTS", gate.DefaultMaxConcurrent)

	g, err := starmap.ReadBinary(graphPath)
	if err != nil {
		log.Fatalf("server: failed to load graph from %s: %v", graphPath, err)
	}
	log.Printf("server: loaded graph with %d systems from %s", len(g.Systems), graphPath)

	router := routing.New(g, gate.New(int64(maxConcurrent)))
	srv := api.NewServer(router)

	addr := envOrDefault("LISTEN_ADDR", ":8080")
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler(maxConcurrent),
	}

	go func() {
		log.Printf("server: listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Println("server: shutting down")
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("server: shutdown error: %v", err)
	}
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("server: invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
