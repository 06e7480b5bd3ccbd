// Command starmsa-server provides a REST API for StarMSA operations.
//
// Usage:
//
//	starmsa-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/centerstar-bio/starmsa/api/handlers"
	"github.com/centerstar-bio/starmsa/api/middleware"
	"github.com/centerstar-bio/starmsa/internal/config"
)

func main() {
	config.Setup()
	cfg := config.New()

	port := flag.Int("port", cfg.Server.Port, "Port to listen on")
	host := flag.String("host", cfg.Server.Host, "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Sequence endpoints
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/validate", handlers.ValidateHandler)
			r.Post("/validate-batch", handlers.BatchValidateHandler)
			r.Post("/info", handlers.SequenceInfoHandler)
		})

		// Pairwise alignment endpoints
		r.Route("/alignment", func(r chi.Router) {
			r.Post("/global", handlers.GlobalAlignHandler)
			r.Post("/score", handlers.AlignmentScoreHandler)
		})

		// Multiple alignment endpoints
		r.Route("/msa", func(r chi.Router) {
			r.Post("/run", handlers.MSARunHandler)
			r.Post("/matrix", handlers.ScoreMatrixHandler)
		})

		// Statistics endpoints
		r.Route("/stats", func(r chi.Router) {
			r.Post("/alignment", handlers.AlignmentStatsHandler)
			r.Post("/set", handlers.SequenceSetStatsHandler)
		})
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>StarMSA API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>StarMSA API</h1>
    <p>A REST API for multiple sequence alignment.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/msa/run</code>
        <p>Compute a center star multiple alignment.</p>
        <pre>{"sequences": [{"id": "s1", "bases": "ACGT"}, {"id": "s2", "bases": "AGT"}, {"id": "s3", "bases": "ACT"}]}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/msa/matrix</code>
        <p>Compute the pairwise score matrix and the center sequence.</p>
        <pre>{"sequences": [{"bases": "ACGT"}, {"bases": "AGT"}]}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/global</code>
        <p>Globally align two sequences (Needleman-Wunsch).</p>
        <pre>{"sequence1": "ACGT", "sequence2": "AGT"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sequence/validate-batch</code>
        <p>Validate every sequence and report each failure.</p>
        <pre>{"sequences": [{"id": "s1", "bases": "ACGT"}, {"id": "s2", "bases": "AXGT"}]}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/stats/alignment</code>
        <p>Per-column statistics for an existing gapped alignment.</p>
        <pre>{"rows": ["ACGT", "A-GT", "AC-T"]}</pre>
    </div>

    <p>For more information, see the <a href="https://github.com/centerstar-bio/starmsa">documentation</a>.</p>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("StarMSA API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
