// Package extension wires the VideoFirstLastFrame node UI: it attaches the
// recent-files dropdown and the refresh/browse buttons when a node of that
// type is created, and funnels file drops and browse picks through the
// upload bridge into the node's "video" widget.
package extension

import (
	"io"
	"log/slog"

	"github.com/esp-dev/comfyui-videoframenode/graphapi"
)

// VideoNodeType is the node type the extension augments.
const VideoNodeType = "VideoFirstLastFrame"

// Widget names the extension reads or attaches.
const (
	VideoWidget   = "video"
	RecentWidget  = "recent"
	RefreshWidget = "refresh recent"
	BrowseWidget  = "browse"
)

// Bridge is the server access the extension needs: the upload bridge and
// the recent-files fetch.  *client.Client satisfies it.
type Bridge interface {
	UploadVideoFromReader(r io.Reader, filename string) (string, error)
	RecentVideos() []string
}

// VideoNodeExtension augments VideoFirstLastFrame node definitions at
// registration time.  It implements graphapi.Extension.
type VideoNodeExtension struct {
	bridge Bridge

	// OnBrowse is invoked when a node's browse button is pressed, with a
	// fresh session bound to that node.  The host wires this to its file
	// picker; a nil hook makes the button inert.
	OnBrowse func(*BrowseSession)
}

// New creates the extension around a server bridge.
func New(bridge Bridge) *VideoNodeExtension {
	return &VideoNodeExtension{bridge: bridge}
}

func (e *VideoNodeExtension) Name() string {
	return "videoframenode.upload"
}

// Setup runs once when the extension is registered with the host.
func (e *VideoNodeExtension) Setup() error {
	slog.Info("videoframenode extension registered")
	return nil
}

// BeforeRegisterNodeDef extends the VideoFirstLastFrame definition's
// OnNodeCreated hook.  The previous hook is kept and always called through
// first, preserving its order and result; the extension's widgets are only
// attached after it succeeds.
func (e *VideoNodeExtension) BeforeRegisterNodeDef(def *graphapi.NodeDef) error {
	if def.Type != VideoNodeType {
		return nil
	}

	prev := def.OnNodeCreated
	def.OnNodeCreated = func(n *graphapi.Node) error {
		if prev != nil {
			if err := prev(n); err != nil {
				return err
			}
		}
		return e.attachWidgets(n)
	}
	return nil
}

// attachWidgets adds the recent dropdown and the refresh/browse buttons.
// The dropdown is UI-only and never saved with the graph.
func (e *VideoNodeExtension) attachWidgets(n *graphapi.Node) error {
	recent, err := n.AddWidget(&graphapi.Widget{
		Name:      RecentWidget,
		Type:      graphapi.ComboWidget,
		Options:   []string{""},
		Serialize: false,
		Callback: func(node *graphapi.Node, value string) {
			if value != "" {
				node.SetWidgetValue(VideoWidget, value)
			}
		},
	})
	if err != nil {
		return err
	}
	recent.SetOptions(recentOptions(e.bridge.RecentVideos()))

	if _, err := n.AddWidget(&graphapi.Widget{
		Name:      RefreshWidget,
		Type:      graphapi.ButtonWidget,
		Serialize: false,
		Callback: func(node *graphapi.Node, _ string) {
			e.RefreshRecent(node)
		},
	}); err != nil {
		return err
	}

	if _, err := n.AddWidget(&graphapi.Widget{
		Name:      BrowseWidget,
		Type:      graphapi.ButtonWidget,
		Serialize: false,
		Callback: func(node *graphapi.Node, _ string) {
			// each press opens its own session bound to this node
			if e.OnBrowse != nil {
				e.OnBrowse(e.NewBrowseSession(node))
			}
		},
	}); err != nil {
		return err
	}
	return nil
}

// RefreshRecent rebuilds the node's recent dropdown from the server.  The
// list is transient; it is refetched in full on every call.
func (e *VideoNodeExtension) RefreshRecent(n *graphapi.Node) {
	w := n.GetWidgetWithName(RecentWidget)
	if w == nil {
		return
	}
	w.SetOptions(recentOptions(e.bridge.RecentVideos()))
}

// recentOptions prepends the blank entry the dropdown always leads with.
func recentOptions(files []string) []string {
	return append([]string{""}, files...)
}
