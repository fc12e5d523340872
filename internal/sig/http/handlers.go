// Package http exposes the governance graph read models over gin. Every
// read serves from the caller-owned snapshot handle; only POST /refresh
// derives new state.
package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sig-gov/sig-backend/internal/sig/analysis"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
	"github.com/sig-gov/sig-backend/internal/sig/encode"
	"github.com/sig-gov/sig-backend/internal/sig/export"
	"github.com/sig-gov/sig-backend/internal/sig/service"
)

// SnapshotSink receives refreshed snapshots for persistence. Optional;
// persistence failures never fail a refresh.
type SnapshotSink interface {
	Save(ctx context.Context, snap *service.Snapshot) error
}

type Handler struct {
	pipeline *service.Pipeline
	handle   *service.Handle
	sink     SnapshotSink
}

func NewHandler(pipeline *service.Pipeline, handle *service.Handle, sink SnapshotSink) *Handler {
	return &Handler{pipeline: pipeline, handle: handle, sink: sink}
}

func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/graph")
	g.GET("", h.getGraph)
	g.GET("/roles", h.getRoles)
	g.GET("/stats", h.getStats)
	g.GET("/clusters", h.getClusters)
	g.GET("/centrality", h.getCentrality)
	g.GET("/encodings", h.getEncodings)
	g.GET("/min-requirements", h.getMinRequirements)
	g.GET("/export.dot", h.getDOT)
	g.POST("/refresh", h.postRefresh)
}

func (h *Handler) current(c *gin.Context) *service.Snapshot {
	snap := h.handle.Current()
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot available, POST /graph/refresh first"})
		return nil
	}
	return snap
}

func (h *Handler) postRefresh(c *gin.Context) {
	snap, err := h.pipeline.Refresh(c.Request.Context())
	if err != nil {
		var verr *domain.ValidationError
		var aerr *domain.AnchorNotFoundError
		switch {
		case errors.As(err, &verr), errors.As(err, &aerr):
			// structurally bad input; previous snapshot stays current
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	h.handle.Set(snap)
	if h.sink != nil {
		if err := h.sink.Save(c.Request.Context(), snap); err != nil {
			log.Printf("[sig] snapshot persist failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          snap.ID,
		"stats":       snap.Stats,
		"diagnostics": len(snap.Diagnostics),
		"fetched_at":  snap.FetchedAt,
	})
}

func (h *Handler) getGraph(c *gin.Context) {
	snap := h.current(c)
	if snap == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          snap.ID,
		"aggregation": snap.Aggregation,
		"graph":       snap.Graph,
		"diagnostics": snap.Diagnostics,
		"fetched_at":  snap.FetchedAt,
	})
}

func (h *Handler) getRoles(c *gin.Context) {
	snap := h.current(c)
	if snap == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"anchor": snap.Anchor, "roles": snap.Roles})
}

func (h *Handler) getStats(c *gin.Context) {
	snap := h.current(c)
	if snap == nil {
		return
	}
	c.JSON(http.StatusOK, snap.Stats)
}

func (h *Handler) getClusters(c *gin.Context) {
	snap := h.current(c)
	if snap == nil {
		return
	}
	by := c.DefaultQuery("by", domain.AttrContext)
	c.JSON(http.StatusOK, gin.H{"by": by, "clusters": analysis.Clusters(snap.Graph, by)})
}

func (h *Handler) getCentrality(c *gin.Context) {
	snap := h.current(c)
	if snap == nil {
		return
	}
	kind := analysis.CentralityKind(c.DefaultQuery("kind", string(analysis.CentralityDegree)))
	scores, err := analysis.Centrality(snap.Graph, kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind, "centrality": scores})
}

func (h *Handler) getEncodings(c *gin.Context) {
	snap := h.current(c)
	if snap == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"nodes": encode.Nodes(snap.Graph, snap.Roles)})
}

func (h *Handler) getMinRequirements(c *gin.Context) {
	snap := h.current(c)
	if snap == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": encode.MinimumRequirements(snap.Graph)})
}

func (h *Handler) getDOT(c *gin.Context) {
	snap := h.current(c)
	if snap == nil {
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz", []byte(export.ToDOT(snap.Graph, c.Query("title"))))
}
