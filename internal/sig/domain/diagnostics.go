package domain

import "fmt"

type DiagnosticKind string

const (
	DiagOrphanEdge        DiagnosticKind = "orphan_edge"
	DiagUnresolvedContext DiagnosticKind = "unresolved_context"
)

// Diagnostic is a structured record of a recoverable anomaly found during
// graph construction or aggregation. Diagnostics are returned with
// results, never logged as a side channel.
type Diagnostic struct {
	Kind      DiagnosticKind `json:"kind"`
	NodeID    string         `json:"node_id"`
	EdgeIndex int            `json:"edge_index"`
	Message   string         `json:"message"`
}

func OrphanEdge(nodeID string, edgeIndex int) Diagnostic {
	return Diagnostic{
		Kind:      DiagOrphanEdge,
		NodeID:    nodeID,
		EdgeIndex: edgeIndex,
		Message:   fmt.Sprintf("edge %d references unknown node %q", edgeIndex, nodeID),
	}
}

func UnresolvedContext(nodeID string) Diagnostic {
	return Diagnostic{
		Kind:      DiagUnresolvedContext,
		NodeID:    nodeID,
		EdgeIndex: -1,
		Message:   fmt.Sprintf("no node_context mapping for %q", nodeID),
	}
}
