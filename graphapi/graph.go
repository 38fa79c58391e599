package graphapi

import (
	"encoding/json"
)

// Graph holds the nodes of a workflow.  Only the parts of the host graph
// that node extensions interact with are modeled here: node creation from a
// registered definition, lookup by ID and type, and serialization of widget
// values.
type Graph struct {
	Nodes      []*Node       `json:"nodes"`
	LastNodeID int           `json:"last_node_id"`
	NodesByID  map[int]*Node `json:"-"`
	registry   *Registry
}

// NewGraph creates an empty graph whose nodes are instantiated from the
// given registry.
func NewGraph(registry *Registry) *Graph {
	return &Graph{
		Nodes:     make([]*Node, 0),
		NodesByID: make(map[int]*Node),
		registry:  registry,
	}
}

// CreateNode instantiates a node of the given registered type, runs the
// definition's OnNodeCreated hook, and adds the node to the graph.
func (t *Graph) CreateNode(nodeType string) (*Node, error) {
	def, err := t.registry.GetNodeDef(nodeType)
	if err != nil {
		return nil, err
	}

	t.LastNodeID++
	node := &Node{
		ID:          t.LastNodeID,
		Type:        def.Type,
		DisplayName: def.DisplayName,
		Graph:       t,
	}

	// base widgets come from the definition before any created hook runs
	for _, bw := range def.Widgets {
		w := bw
		if _, err := node.AddWidget(&w); err != nil {
			return nil, err
		}
	}

	if def.OnNodeCreated != nil {
		if err := def.OnNodeCreated(node); err != nil {
			return nil, err
		}
	}

	t.Nodes = append(t.Nodes, node)
	t.NodesByID[node.ID] = node
	return node, nil
}

// GetNodeByID returns the node with the given ID, or nil.
func (t *Graph) GetNodeByID(id int) *Node {
	val, ok := t.NodesByID[id]
	if ok {
		return val
	}
	return nil
}

// GetNodesWithType retrieves all nodes in the graph that match a specified type.
func (t *Graph) GetNodesWithType(nodeType string) []*Node {
	retv := make([]*Node, 0)
	for _, n := range t.Nodes {
		if n.Type == nodeType {
			retv = append(retv, n)
		}
	}
	return retv
}

// GetFirstNodeWithType returns the first node of the given type, or nil.
func (t *Graph) GetFirstNodeWithType(nodeType string) *Node {
	nodes := t.GetNodesWithType(nodeType)
	if len(nodes) != 0 {
		return nodes[0]
	}
	return nil
}

type serializedNode struct {
	ID            int      `json:"id"`
	Type          string   `json:"type"`
	Title         string   `json:"title,omitempty"`
	WidgetsValues []string `json:"widgets_values"`
}

// MarshalJSON serializes the graph the way the host saves workflows: each
// node carries only the values of its persisted widgets.
func (t *Graph) MarshalJSON() ([]byte, error) {
	nodes := make([]serializedNode, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		nodes = append(nodes, serializedNode{
			ID:            n.ID,
			Type:          n.Type,
			Title:         n.Title,
			WidgetsValues: n.SerializedWidgetValues(),
		})
	}
	return json.Marshal(map[string]interface{}{
		"last_node_id": t.LastNodeID,
		"nodes":        nodes,
	})
}
