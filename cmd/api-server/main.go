package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gamelib/internal/catalog"
	"gamelib/internal/feed"
	"gamelib/pkg/utils"
)

func main() {
	cfg := utils.LoadConfig()

	fetcher := feed.NewFetcher(cfg.FeedURL, cfg.FetchTimeout)
	store := catalog.NewStore()

	reload := func(ctx context.Context) (*catalog.Snapshot, error) {
		games, stats, err := feed.Load(ctx, fetcher)
		if err != nil {
			store.Fail(err)
			return nil, err
		}
		return store.Replace(games, stats), nil
	}

	// Initial load. Failure is not fatal: the server starts degraded and
	// /ready stays 503 until a reload succeeds.
	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout+5*time.Second)
	if snap, err := reload(loadCtx); err != nil {
		log.Printf("[api] initial feed load failed: %v", err)
	} else {
		log.Printf("[api] loaded catalog %s: %d games", snap.LoadID, len(snap.Games))
	}
	cancel()

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// The consumer is a browser frontend on another origin.
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		snap, _ := store.Current()
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"load_id": snap.LoadID,
			"games":   len(snap.Games),
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		snap, err := store.Current()
		if err != nil || !store.Ready() {
			body := gin.H{"status": "not_ready"}
			if err != nil {
				body["load_error"] = err.Error()
			}
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"load_id":   snap.LoadID,
			"loaded_at": snap.LoadedAt,
			"games":     len(snap.Games),
		})
	})

	handler := catalog.NewHandler(store, cfg.FacetExcludeDesigners)
	handler.Reload = reload
	handler.RegisterRoutes(router)

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[api] HTTP server listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
