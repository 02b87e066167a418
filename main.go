package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rewardsadmin/api"
	"rewardsadmin/config"
	"rewardsadmin/db"
	"rewardsadmin/uploads"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop signal.
const shutdownTimeout = 10 * time.Second

// @title           Rewards Admin API
// @version         1.0.0

// @description     ## Rewards Admin API
// @description
// @description     Backend of the rewards admin dashboard. Brands, vouchers and coupons are kept in
// @description     JSON files on local disk (one array per resource). Uploaded images are written to
// @description     the public directory and served back under `/uploads`.
// @description
// @description     **Sessions:** dashboard pages are gated on the presence of the `auth_token` cookie.
// @description     The cookie value is never verified by this server; the resource endpoints are open.
// @description
// @description     **Listing:** list endpoints return the whole collection. Filtering, sorting and
// @description     pagination are done by the dashboard.

// @license.name  MIT

// @host      localhost:3000
// @BasePath  /
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL: Failed to load configuration: %v", err)
	}

	// --- Database ---
	database, err := db.NewDatabase(cfg)
	if err != nil {
		// NewDatabase logs specifics, including critical parse errors
		log.Fatalf("CRITICAL: Failed to initialize database: %v", err)
	}

	// --- Router ---
	sidecar := uploads.NewSidecar(cfg.PublicDir)
	router, err := api.NewRouter(cfg, database, sidecar)
	if err != nil {
		log.Fatalf("CRITICAL: Failed to build router: %v", err)
	}

	// --- Start Server ---
	listenAddr := fmt.Sprintf("%s:%s", cfg.ListenAddress, cfg.ListenPort)
	server := &http.Server{
		Addr:              listenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("INFO: Starting server on %s", listenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("CRITICAL: Server failed to start: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Printf("INFO: Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Server shutdown did not complete cleanly: %v", err)
		return
	}
	log.Printf("INFO: Server stopped")
}
