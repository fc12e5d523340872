// Package cronjob runs the scheduled sheet refresh in the worker process.
package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sig-gov/sig-backend/internal/sig/service"
)

type Sink interface {
	Save(ctx context.Context, snap *service.Snapshot) error
}

type Scheduler struct {
	pipeline *service.Pipeline
	handle   *service.Handle
	sinks    []Sink
	spec     string
}

func NewScheduler(pipeline *service.Pipeline, handle *service.Handle, spec string, sinks ...Sink) *Scheduler {
	return &Scheduler{pipeline: pipeline, handle: handle, sinks: sinks, spec: spec}
}

// Start registers the refresh job and starts the cron loop. The spec uses
// the six-field form with seconds, matching the worker defaults.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(s.spec, s.RunOnce); err != nil {
		return err
	}

	log.Printf("Cron scheduler started (refresh spec %q)", s.spec)
	c.Start()
	return nil
}

// RunOnce performs one refresh + persist cycle. A failed refresh leaves
// the previous snapshot in place.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snap, err := s.pipeline.Refresh(ctx)
	if err != nil {
		log.Printf("Scheduled refresh failed: %v", err)
		return
	}

	s.handle.Set(snap)
	log.Printf("Refreshed snapshot %s: %d nodes, %d edges, %d diagnostics",
		snap.ID, snap.Stats.Nodes, snap.Stats.Edges, len(snap.Diagnostics))

	for _, sink := range s.sinks {
		if err := s.persist(ctx, sink, snap); err != nil {
			log.Printf("Snapshot persist failed: %v", err)
		}
	}
}

func (s *Scheduler) persist(ctx context.Context, sink Sink, snap *service.Snapshot) error {
	pctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return sink.Save(pctx, snap)
}
