package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AhmetBilalOzgun/nettrack/internal/analysis"
	"github.com/AhmetBilalOzgun/nettrack/internal/api"
	"github.com/AhmetBilalOzgun/nettrack/internal/cleaner"
	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/services"
	"github.com/AhmetBilalOzgun/nettrack/internal/sheets"
	"github.com/AhmetBilalOzgun/nettrack/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("NetTrack Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("sheet_id=%s", cfg.SheetID)
	log.Debug("sheet_name=%s", cfg.SheetName)
	log.Debug("exam_type=%s", cfg.ExamType)
	log.Debug("target_net=%g", cfg.TargetNet)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("refresh_worker_count=%d", cfg.RefreshWorkerCount)
	log.Debug("refresh_queue_size=%d", cfg.RefreshQueueSize)

	profile := config.ProfileFor(cfg.ExamType)
	analysisCfg := config.DefaultAnalysis()

	// Initialize data pipeline
	loader := sheets.New()
	cl := cleaner.New(profile, analysisCfg.TotalSubject, false)
	examService := services.NewExamService(loader, cl, cfg.SheetID, cfg.SheetName)

	// Initialize analysis engines
	statsEngine := analysis.NewStatisticsEngine(analysisCfg)
	trendEngine := analysis.NewTrendEngine(analysisCfg)
	rankingEngine := analysis.NewRankingEngine(statsEngine, trendEngine, analysisCfg)
	topicEngine := analysis.NewTopicEngine(analysisCfg, profile)
	reporter := analysis.NewReporter(statsEngine, trendEngine, rankingEngine, topicEngine, analysisCfg, cfg.ExamType)

	refreshPool := worker.NewPool(cfg.RefreshWorkerCount, cfg.RefreshQueueSize)

	srv := &api.Server{
		ExamService: examService,
		Stats:       statsEngine,
		Trends:      trendEngine,
		Ranking:     rankingEngine,
		Topics:      topicEngine,
		Reporter:    reporter,
		RefreshPool: refreshPool,
		AnalysisCfg: analysisCfg,
		TargetNet:   cfg.TargetNet,
	}

	ctx, cancel := context.WithCancel(context.Background())
	refreshPool.Start(ctx)

	// Load the initial snapshot in the background so a slow or unreachable
	// sheet does not block startup.
	refreshPool.Submit(&worker.RefreshJob{ExamService: examService})

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel worker context
	log.Debug("stopping workers")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for workers to finish
	log.Debug("stopping refresh pool")
	refreshPool.Stop()

	log.Info("===========================================")
	log.Info("NetTrack Server Stopped")
	log.Info("===========================================")
}
