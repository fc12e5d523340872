package domain

import (
	"fmt"
	"strings"
)

// ValidationError aborts a build: the input tables are structurally
// unusable (empty, missing required columns, or orphan edges in strict
// mode).
type ValidationError struct {
	Table   string
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s table: missing required columns: %s", e.Table, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%s table: %s", e.Table, e.Reason)
}

// AnchorNotFoundError means the classification anchor id is absent from
// the node set. Classification fails loud rather than degrading.
type AnchorNotFoundError struct {
	AnchorID string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("anchor node %q not found in graph", e.AnchorID)
}
