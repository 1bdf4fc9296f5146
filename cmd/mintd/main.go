package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/0gfoundation/0g-signature-mint/internal/api"
	"github.com/0gfoundation/0g-signature-mint/internal/auth"
	"github.com/0gfoundation/0g-signature-mint/internal/bootstrap"
	"github.com/0gfoundation/0g-signature-mint/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	log, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Key, chain client, id source ──────────────────────────────────────────
	deps, err := bootstrap.Build(ctx, cfg, log, true)
	if err != nil {
		log.Fatal("minter init failed", zap.Error(err))
	}
	defer deps.Close()

	chainID, err := deps.Chain.ChainID(ctx)
	if err != nil {
		log.Fatal("rpc unreachable", zap.Error(err))
	}
	log.Info("minter ready",
		zap.String("contract", deps.Contract.Hex()),
		zap.String("signer", deps.Key.Address().Hex()),
		zap.String("chainId", chainID.String()),
	)

	// ── HTTP server ───────────────────────────────────────────────────────────
	r := newRouter(deps, cfg, log)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}
	log.Info("shutdown complete")
}

// newRouter mounts health, metrics and the minter API. Mutating routes need a
// nonce store and at least one operator; otherwise they are not mounted.
func newRouter(deps *bootstrap.Deps, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := api.NewHandler(deps.Minter, log)
	operators := cfg.OperatorAddresses()
	switch {
	case deps.Redis == nil:
		log.Warn("no redis configured, only verification endpoints are served")
		h.RegisterPublic(r.Group("/api"))
		return r
	case len(operators) == 0:
		log.Warn("no operators configured, only verification endpoints are served")
		h.RegisterPublic(r.Group("/api"))
		return r
	}
	gate := auth.Middleware(deps.Redis, auth.Options{
		Operators: operators,
		Contract:  deps.Contract,
	})
	h.Register(r.Group("/api"), gate)
	return r
}
