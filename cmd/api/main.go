package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sig-gov/sig-backend/config"
	"github.com/sig-gov/sig-backend/internal/bootstrap"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
	sighttp "github.com/sig-gov/sig-backend/internal/sig/http"
	"github.com/sig-gov/sig-backend/internal/sig/repository"
	"github.com/sig-gov/sig-backend/internal/sig/service"
	"github.com/sig-gov/sig-backend/internal/source"
	"github.com/sig-gov/sig-backend/internal/source/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	ctx := context.Background()

	var pool *pgxpool.Pool
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		pool, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: dsn})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()
	} else {
		log.Println("DB_DSN not set, db health probe disabled")
	}

	var sink sighttp.SnapshotSink
	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer client.Close()
		sink = repository.NewSnapshotRepository(client)
	} else {
		log.Println("REDIS_ADDR not set, snapshot persistence disabled")
	}

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

	// best effort; the API serves and can be refreshed later even when the
	// sheet is unreachable at boot
	ictx, cancel := context.WithTimeout(ctx, 60*time.Second)
	if snap, err := pipeline.Refresh(ictx); err != nil {
		log.Printf("initial refresh failed: %v", err)
	} else {
		handle.Set(snap)
		log.Printf("initial snapshot %s: %d nodes, %d edges", snap.ID, snap.Stats.Nodes, snap.Stats.Edges)
	}
	cancel()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "sig-backend",
		Version:     cfg.App.Version,
		DB:          pool,
		Pipeline:    pipeline,
		Handle:      handle,
		Sink:        sink,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
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
