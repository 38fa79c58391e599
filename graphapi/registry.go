package graphapi

import (
	"fmt"
	"log/slog"
)

// NodeDef describes a node type before any node of that type exists.
// Extensions may adjust the definition (attach widgets, wrap hooks) during
// registration.
type NodeDef struct {
	Type        string
	DisplayName string
	Category    string

	// Widgets are stamped onto every created node before OnNodeCreated runs.
	Widgets []Widget

	// OnNodeCreated runs once per created node.  Extensions that need to
	// extend it must keep the previous hook and call through to it first,
	// preserving its order and result.
	OnNodeCreated func(*Node) error
}

// Extension is the host registration contract: Setup runs once when the
// extension is registered, BeforeRegisterNodeDef runs for every node type
// registered afterwards.
type Extension interface {
	Name() string
	Setup() error
	BeforeRegisterNodeDef(def *NodeDef) error
}

// Registry holds the known node definitions and the registered extensions.
type Registry struct {
	defs       map[string]*NodeDef
	extensions []Extension
}

func NewRegistry() *Registry {
	return &Registry{
		defs:       make(map[string]*NodeDef),
		extensions: make([]Extension, 0),
	}
}

// RegisterExtension runs the extension's Setup hook and stores it so that
// its BeforeRegisterNodeDef hook sees every subsequently registered node
// definition.
func (r *Registry) RegisterExtension(ext Extension) error {
	if err := ext.Setup(); err != nil {
		return fmt.Errorf("extension %s setup: %w", ext.Name(), err)
	}
	r.extensions = append(r.extensions, ext)
	return nil
}

// RegisterNodeDef runs every registered extension against the definition and
// stores it.  An extension that fails is skipped with a warning; node
// registration itself never fails on extension errors.
func (r *Registry) RegisterNodeDef(def *NodeDef) {
	for _, ext := range r.extensions {
		if err := ext.BeforeRegisterNodeDef(def); err != nil {
			slog.Warn("extension failed during node registration",
				"extension", ext.Name(), "node type", def.Type, "error", err)
		}
	}
	r.defs[def.Type] = def
}

// GetNodeDef returns the registered definition for a node type.
func (r *Registry) GetNodeDef(nodeType string) (*NodeDef, error) {
	def, ok := r.defs[nodeType]
	if !ok {
		return nil, fmt.Errorf("unknown node type %q", nodeType)
	}
	return def, nil
}
