package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

// APIServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// drains in-flight requests. onShutdown runs first so background workers
// (the countdown tickers) stop before the listener closes.
func APIServer(route *chi.Mux, port string, onShutdown func()) {
	addr := fmt.Sprintf(":%s", port)
	server := &http.Server{Addr: addr, Handler: route}

	go func() {
		fmt.Printf("Server running on http://localhost%s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if onShutdown != nil {
		onShutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error:", err)
	}
}
