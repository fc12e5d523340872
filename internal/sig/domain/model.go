package domain

type Attrs map[string]any

// Node is one governance entity. Attrs holds the open attribute set from
// the node table (node_context, category fields) plus derived attributes
// computed at build time.
type Node struct {
	ID    string `json:"id"`
	Attrs Attrs  `json:"attrs,omitempty"`
}

// Edge is one directed relationship. From/To keep the raw endpoint ids;
// FromAttrs/ToAttrs carry the node attributes joined at build time and are
// nil when the endpoint did not resolve against the node table.
type Edge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Attrs     Attrs  `json:"attrs,omitempty"`
	FromAttrs Attrs  `json:"from_attrs,omitempty"`
	ToAttrs   Attrs  `json:"to_attrs,omitempty"`
}

// Graph is a directed attributed multigraph. Edges keeps insertion order
// and parallel edges; Nodes is keyed by id. Out/In are adjacency indexes
// rebuilt from Edges, not serialized.
type Graph struct {
	Nodes map[string]*Node `json:"nodes"`
	Edges []*Edge          `json:"edges"`

	Out map[string][]*Edge `json:"-"`
	In  map[string][]*Edge `json:"-"`
}

func NewGraph() *Graph {
	return &Graph{
		Nodes: map[string]*Node{},
		Edges: []*Edge{},
		Out:   map[string][]*Edge{},
		In:    map[string][]*Edge{},
	}
}

// SetNode inserts or replaces a node. Duplicate ids are last-write-wins.
func (g *Graph) SetNode(n *Node) {
	g.Nodes[n.ID] = n
}

func (g *Graph) AddEdge(e *Edge) {
	g.Edges = append(g.Edges, e)
	g.Out[e.From] = append(g.Out[e.From], e)
	g.In[e.To] = append(g.In[e.To], e)
}

func (g *Graph) NodeCount() int { return len(g.Nodes) }
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Reindex rebuilds the Out/In adjacency maps from Edges. Needed after
// JSON round-trips, which skip the adjacency indexes.
func (g *Graph) Reindex() {
	g.Out = map[string][]*Edge{}
	g.In = map[string][]*Edge{}
	if g.Nodes == nil {
		g.Nodes = map[string]*Node{}
	}
	for _, e := range g.Edges {
		g.Out[e.From] = append(g.Out[e.From], e)
		g.In[e.To] = append(g.In[e.To], e)
	}
}
