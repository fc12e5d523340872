// Package validator checks the raw edge/node tables before graph
// construction. Structural problems here are fatal; everything softer is
// reported as diagnostics by the mapper.
package validator

import (
	"github.com/sig-gov/sig-backend/internal/records"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
)

func ValidateEdges(t *records.Table) error {
	if t.Empty() {
		return &domain.ValidationError{Table: "edges", Reason: "no rows"}
	}
	if missing := t.MissingColumns(domain.ColFrom, domain.ColTo); len(missing) > 0 {
		return &domain.ValidationError{Table: "edges", Missing: missing}
	}
	return nil
}

func ValidateNodes(t *records.Table) error {
	if t.Empty() {
		return &domain.ValidationError{Table: "nodes", Reason: "no rows"}
	}
	if missing := t.MissingColumns(domain.ColNode, domain.AttrContext); len(missing) > 0 {
		return &domain.ValidationError{Table: "nodes", Missing: missing}
	}
	return nil
}
