// Package encode maps graph state to the visual attributes consumed by
// the external renderer (shape, color). No layout or drawing happens here.
package encode

import (
	"fmt"
	"sort"

	"github.com/sig-gov/sig-backend/internal/sig/domain"
)

// contextPalette is the fixed color assignment for the known governance
// contexts (solarized accents).
var contextPalette = map[string]string{
	"reporting": "#268bd2",
	"humans":    "#b58900",
	"data":      "#2aa198",
	"tools":     "#839496",
	"field":     "#859900",
	"projects":  "#d33682",
}

const defaultColor = "#93a1a1"

type NodeEncoding struct {
	ID    string              `json:"id"`
	Shape string              `json:"shape"`
	Color string              `json:"color"`
	Role  domain.RoleCategory `json:"role,omitempty"`
}

// Nodes returns one encoding per node, ordered by id. Human-context nodes
// render as circles, everything else as squares; color follows the node's
// context. roles may be nil when no classification ran.
func Nodes(g *domain.Graph, roles map[string]domain.RoleCategory) []NodeEncoding {
	out := make([]NodeEncoding, 0, g.NodeCount())
	for id, n := range g.Nodes {
		enc := NodeEncoding{ID: id, Shape: "s", Color: defaultColor}
		if human, _ := n.Attrs[domain.AttrHumanContext].(bool); human {
			enc.Shape = "o"
		}
		if ctx, _ := n.Attrs[domain.AttrContext].(string); ctx != "" {
			if c, ok := contextPalette[ctx]; ok {
				enc.Color = c
			}
		}
		if roles != nil {
			enc.Role = roles[id]
		}
		out = append(out, enc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MinReqRow is the minimum-requirements projection of an edge.
type MinReqRow struct {
	From                  string `json:"from"`
	To                    string `json:"to"`
	Arrowkeeper           string `json:"arrowkeeper"`
	ToMinimumRequirements string `json:"to_minimum_requirements"`
	Status                string `json:"status"`
}

// MinimumRequirements projects the edge set onto the columns the review
// table needs, preserving edge order.
func MinimumRequirements(g *domain.Graph) []MinReqRow {
	out := make([]MinReqRow, 0, g.EdgeCount())
	for _, e := range g.Edges {
		out = append(out, MinReqRow{
			From:                  e.From,
			To:                    e.To,
			Arrowkeeper:           attrString(e.Attrs, domain.AttrArrowkeeper),
			ToMinimumRequirements: attrString(e.Attrs, "to_minimum_requirements"),
			Status:                attrString(e.Attrs, "status"),
		})
	}
	return out
}

func attrString(a domain.Attrs, key string) string {
	v, ok := a[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
