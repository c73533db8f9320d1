package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/liekkasfc/real-time-stock-mcp-service/config"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/api"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/eastmoney"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/kline"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/logger"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/metrics"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/store/redis"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/store/sqlite"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/xueqiu"
)

func main() {
	cfg := config.Load()
	log := logger.Init("stock-mcp", slog.LevelInfo)
	met := metrics.New()

	emCfg := eastmoney.DefaultConfig()
	if cfg.EastmoneyKlineURL != "" {
		emCfg.KlineURL = cfg.EastmoneyKlineURL
	}
	if cfg.EastmoneySearchURL != "" {
		emCfg.SearchURL = cfg.EastmoneySearchURL
	}
	if cfg.EastmoneyUserAgent != "" {
		emCfg.UserAgent = cfg.EastmoneyUserAgent
	}
	emCfg.Timeout = cfg.FetchTimeout
	client := eastmoney.New(emCfg)

	var quoter kline.Quoter
	if cfg.XueqiuCookie != "" {
		xqCfg := xueqiu.DefaultConfig()
		if cfg.XueqiuQuoteURL != "" {
			xqCfg.QuoteURL = cfg.XueqiuQuoteURL
		}
		xqCfg.Cookie = cfg.XueqiuCookie
		quoter = xueqiu.New(xqCfg)
		log.Info("real-time quotes enabled")
	}

	var store kline.BarStore
	if cfg.SQLitePath != "" {
		barCache, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			log.Error("sqlite open failed", slog.String("path", cfg.SQLitePath), slog.Any("err", err))
			os.Exit(1)
		}
		defer barCache.Close()
		store = barCache
		log.Info("bar store opened", slog.String("path", cfg.SQLitePath))
	}

	var respCache *redis.Cache
	if cfg.RedisAddr != "" {
		c, err := redis.New(redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			TTL:      cfg.ResponseCacheTTL,
		}, log)
		if err != nil {
			// Redis is an optimization; run without it rather than die.
			log.Warn("redis unavailable, response cache disabled", slog.Any("err", err))
		} else {
			defer c.Close()
			respCache = c
			log.Info("response cache connected", slog.String("addr", cfg.RedisAddr))
		}
	}

	svc := kline.New(client, quoter, store, met, log)
	server := api.NewServer(svc, respCache, met, log, cfg.StreamInterval)

	go func() {
		log.Info("metrics listening", slog.String("addr", cfg.MetricsAddr))
		if err := metrics.Serve(cfg.MetricsAddr); err != nil {
			log.Error("metrics server failed", slog.Any("err", err))
		}
	}()

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("api listening", slog.String("addr", cfg.ListenAddr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("api server failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
