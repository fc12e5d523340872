package domain

import "fmt"

// Well-known columns and attribute keys from the governance sheets.
const (
	ColFrom         = "from"
	ColTo           = "to"
	ColNode         = "node"
	AttrContext     = "node_context"
	AttrArrowkeeper = "arrowkeeper"

	// AttrHumanContext is the derived flag set when a node's context equals
	// the human sentinel.
	AttrHumanContext = "is_human_context"
	HumanContext     = "humans"
)

// UnresolvedMarker is the explicit endpoint placeholder used when an id
// cannot be resolved during aggregation. It is never a node id.
const UnresolvedMarker = "~unresolved"

type AggregationMode string

const (
	AggregationNone        AggregationMode = "none"
	AggregationNodeContext AggregationMode = "node_context"
)

func ParseAggregationMode(s string) (AggregationMode, error) {
	switch AggregationMode(s) {
	case AggregationNone, AggregationNodeContext:
		return AggregationMode(s), nil
	case "":
		return AggregationNone, nil
	}
	return "", fmt.Errorf("unknown aggregation mode %q", s)
}

// RoleCategory is a node's directional relationship to the anchor node.
// Exactly one category applies per node.
type RoleCategory string

const (
	RoleAnchor        RoleCategory = "anchor"
	RoleToAnchor      RoleCategory = "to_anchor"
	RoleFromAnchor    RoleCategory = "from_anchor"
	RoleBidirectional RoleCategory = "bidirectional"
	RoleUnconnected   RoleCategory = "unconnected"
)
