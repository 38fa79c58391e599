package graphapi

import "fmt"

// Node represents an individual functionality within a Graph.  The host
// graph owns the node's lifetime; extensions only ever read and mutate the
// node's widgets.
type Node struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title,omitempty"`
	Widgets     []*Widget `json:"-"`
	Graph       *Graph    `json:"-"`
	DisplayName string    `json:"-"`
}

// AddWidget attaches a widget to the node and returns it.  Adding a widget
// whose name is already taken is an error; the host keys widgets by name.
func (n *Node) AddWidget(w *Widget) (*Widget, error) {
	if n.GetWidgetWithName(w.Name) != nil {
		return nil, fmt.Errorf("node %d already has a widget named %q", n.ID, w.Name)
	}
	w.node = n
	n.Widgets = append(n.Widgets, w)
	return w, nil
}

// GetWidgetWithName returns the widget with the given name, or nil.
func (n *Node) GetWidgetWithName(name string) *Widget {
	for _, w := range n.Widgets {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// WidgetValue returns the string value of the named widget, and whether the
// widget exists.
func (n *Node) WidgetValue(name string) (string, bool) {
	w := n.GetWidgetWithName(name)
	if w == nil {
		return "", false
	}
	return w.Value, true
}

// SetWidgetValue sets the value of the named widget.  It is a no-op if the
// node has no widget with that name.
func (n *Node) SetWidgetValue(name, value string) {
	if w := n.GetWidgetWithName(name); w != nil {
		w.SetValue(value)
	}
}

// SerializedWidgetValues returns the values of the widgets that are persisted
// with the graph, in widget order.  Transient widgets are skipped entirely,
// matching how the host omits non-serialized widgets from saved workflows.
func (n *Node) SerializedWidgetValues() []string {
	retv := make([]string, 0, len(n.Widgets))
	for _, w := range n.Widgets {
		if w.Serialize {
			retv = append(retv, w.Value)
		}
	}
	return retv
}
