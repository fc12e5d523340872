package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sig-gov/sig-backend/config"
	"github.com/sig-gov/sig-backend/internal/bootstrap"
	cronjob "github.com/sig-gov/sig-backend/internal/sig/cron"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
	"github.com/sig-gov/sig-backend/internal/sig/export"
	"github.com/sig-gov/sig-backend/internal/sig/repository"
	"github.com/sig-gov/sig-backend/internal/sig/service"
	"github.com/sig-gov/sig-backend/internal/source"
	"github.com/sig-gov/sig-backend/internal/source/sheets"
	"github.com/sig-gov/sig-backend/internal/storage/postgres"
	"github.com/sig-gov/sig-backend/internal/storage/postgres/sighistory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	edges, nodes, err := buildSources(ctx, cfg)
	if err != nil {
		log.Fatalf("sheets: %v", err)
	}

	mode, err := domain.ParseAggregationMode(cfg.Graph.Aggregation)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pipeline := service.New(edges, nodes, service.Options{
		Anchor:      cfg.Graph.Anchor,
		Aggregation: mode,
		Strict:      cfg.Graph.Strict,
	})
	handle := service.NewHandle()

	var sinks []cronjob.Sink
	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer client.Close()
		sinks = append(sinks, repository.NewSnapshotRepository(client))
	}
	if cfg.Database.Host != "" {
		db, err := postgres.NewConnection(&cfg.Database)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer db.Close()
		sinks = append(sinks, sighistory.NewSnapshotStore(db))
	}
	if cfg.Graph.ExportDir != "" {
		sinks = append(sinks, export.NewFileSink(cfg.Graph.ExportDir))
	}
	if len(sinks) == 0 {
		log.Println("No snapshot sinks configured, refreshes will only be logged")
	}

	sched := cronjob.NewScheduler(pipeline, handle, cfg.Graph.RefreshCron, sinks...)
	if err := sched.Start(); err != nil {
		log.Fatalf("cron: %v", err)
	}

	// one refresh right away so the stores are warm before the first tick
	sched.RunOnce()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("worker shutting down")
}

func buildSources(ctx context.Context, cfg *config.Config) (source.EdgeSource, source.NodeSource, error) {
	if cfg.Sheets.UseAPI {
		c, err := sheets.NewAPIClient(ctx, cfg.Sheets.SheetID, cfg.Sheets.EdgesRange, cfg.Sheets.NodesRange)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	}
	c := sheets.NewCSVClient(cfg.Sheets.SheetID, cfg.Sheets.EdgesGID, cfg.Sheets.NodesGID)
	return c, c, nil
}
