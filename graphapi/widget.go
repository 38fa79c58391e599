package graphapi

// WidgetType describes the kind of UI control a Widget renders as.
type WidgetType string

const (
	TextWidget   WidgetType = "text"
	ComboWidget  WidgetType = "combo"
	ButtonWidget WidgetType = "button"
)

// Widget represents a named, typed UI control attached to a Node.
// A widget may or may not be persisted with the graph; transient controls
// such as the "recent" combo set Serialize to false.
type Widget struct {
	Name      string     `json:"name"`
	Type      WidgetType `json:"type"`
	Value     string     `json:"value,omitempty"`
	Options   []string   `json:"options,omitempty"`
	Serialize bool       `json:"-"`

	// Callback is invoked after the widget value changes, with the owning
	// node and the new value.  Button widgets only ever fire the callback.
	Callback func(n *Node, value string) `json:"-"`

	node *Node
}

// SetValue stores the value and fires the widget callback, if any.
func (w *Widget) SetValue(value string) {
	w.Value = value
	if w.Callback != nil {
		w.Callback(w.node, value)
	}
}

// SetOptions replaces the combo options.  The current value is kept even if
// it is no longer among the options; the host renders it as a free entry.
func (w *Widget) SetOptions(options []string) {
	w.Options = options
}

// Press fires the widget callback without changing the value.  Only
// meaningful for button widgets.
func (w *Widget) Press() {
	if w.Callback != nil {
		w.Callback(w.node, w.Value)
	}
}

// Node returns the node the widget is attached to.
func (w *Widget) Node() *Node {
	return w.node
}
