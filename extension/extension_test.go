package extension

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/esp-dev/comfyui-videoframenode/graphapi"
)

// fakeBridge records uploads and serves a canned recent list.
type fakeBridge struct {
	mu          sync.Mutex
	uploads     []string
	uploadName  string
	uploadErr   error
	recentFiles []string

	// assignName derives the returned name from the uploaded filename,
	// overriding uploadName when set.
	assignName func(filename string) string
}

func (f *fakeBridge) UploadVideoFromReader(r io.Reader, filename string) (string, error) {
	io.Copy(io.Discard, r)
	f.mu.Lock()
	f.uploads = append(f.uploads, filename)
	f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if f.assignName != nil {
		return f.assignName(filename), nil
	}
	if f.uploadName != "" {
		return f.uploadName, nil
	}
	return filename, nil
}

func (f *fakeBridge) RecentVideos() []string {
	return f.recentFiles
}

func (f *fakeBridge) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

// newTestGraph registers the extension and a video node definition whose own
// created hook records that it ran.
func newTestGraph(t *testing.T, bridge *fakeBridge) (*graphapi.Graph, *VideoNodeExtension, *[]string) {
	t.Helper()

	registry := graphapi.NewRegistry()
	ext := New(bridge)
	if err := registry.RegisterExtension(ext); err != nil {
		t.Fatalf("RegisterExtension failed: %v", err)
	}

	order := make([]string, 0)
	registry.RegisterNodeDef(&graphapi.NodeDef{
		Type:        VideoNodeType,
		DisplayName: "Video: First & Last Frame",
		Widgets: []graphapi.Widget{
			{Name: VideoWidget, Type: graphapi.TextWidget, Serialize: true},
		},
		OnNodeCreated: func(n *graphapi.Node) error {
			order = append(order, "original")
			return nil
		},
	})

	return graphapi.NewGraph(registry), ext, &order
}

func createVideoNode(t *testing.T, g *graphapi.Graph) *graphapi.Node {
	t.Helper()
	n, err := g.CreateNode(VideoNodeType)
	if err != nil {
		t.Fatalf("CreateNode failed: %v", err)
	}
	return n
}

func TestCreatedHookCallsThroughFirst(t *testing.T) {
	bridge := &fakeBridge{}
	g, _, order := newTestGraph(t, bridge)
	n := createVideoNode(t, g)

	if len(*order) != 1 || (*order)[0] != "original" {
		t.Fatalf("expected original created hook to run, got %v", *order)
	}
	// widgets were attached after the original hook succeeded
	for _, name := range []string{RecentWidget, RefreshWidget, BrowseWidget} {
		if n.GetWidgetWithName(name) == nil {
			t.Errorf("expected widget %q to be attached", name)
		}
	}
}

func TestCreatedHookOriginalFailureSkipsWidgets(t *testing.T) {
	registry := graphapi.NewRegistry()
	if err := registry.RegisterExtension(New(&fakeBridge{})); err != nil {
		t.Fatalf("RegisterExtension failed: %v", err)
	}
	registry.RegisterNodeDef(&graphapi.NodeDef{
		Type: VideoNodeType,
		OnNodeCreated: func(n *graphapi.Node) error {
			return errors.New("boom")
		},
	})

	g := graphapi.NewGraph(registry)
	if _, err := g.CreateNode(VideoNodeType); err == nil {
		t.Fatal("expected original hook error to propagate")
	}
}

func TestOtherNodeTypesUntouched(t *testing.T) {
	registry := graphapi.NewRegistry()
	if err := registry.RegisterExtension(New(&fakeBridge{})); err != nil {
		t.Fatalf("RegisterExtension failed: %v", err)
	}
	registry.RegisterNodeDef(&graphapi.NodeDef{Type: "Note"})

	g := graphapi.NewGraph(registry)
	n, err := g.CreateNode("Note")
	if err != nil {
		t.Fatalf("CreateNode failed: %v", err)
	}
	if len(n.Widgets) != 0 {
		t.Errorf("expected no widgets on Note node, got %d", len(n.Widgets))
	}
}

func TestRecentDropdownOptions(t *testing.T) {
	bridge := &fakeBridge{recentFiles: []string{"a.mp4", "b.mp4"}}
	g, _, _ := newTestGraph(t, bridge)
	n := createVideoNode(t, g)

	w := n.GetWidgetWithName(RecentWidget)
	if w == nil {
		t.Fatal("recent widget missing")
	}
	want := []string{"", "a.mp4", "b.mp4"}
	if len(w.Options) != len(want) {
		t.Fatalf("expected options %v, got %v", want, w.Options)
	}
	for i := range want {
		if w.Options[i] != want[i] {
			t.Fatalf("expected options %v, got %v", want, w.Options)
		}
	}
}

func TestRecentDropdownEmptyOnFetchFailure(t *testing.T) {
	bridge := &fakeBridge{recentFiles: []string{}}
	g, _, _ := newTestGraph(t, bridge)
	n := createVideoNode(t, g)

	w := n.GetWidgetWithName(RecentWidget)
	if len(w.Options) != 1 || w.Options[0] != "" {
		t.Errorf("expected only the leading blank entry, got %v", w.Options)
	}
}

func TestRecentSelectionWritesVideoWidget(t *testing.T) {
	bridge := &fakeBridge{recentFiles: []string{"input/a.mp4"}}
	g, _, _ := newTestGraph(t, bridge)
	n := createVideoNode(t, g)

	n.GetWidgetWithName(RecentWidget).SetValue("input/a.mp4")
	if got, _ := n.WidgetValue(VideoWidget); got != "input/a.mp4" {
		t.Errorf("expected video widget input/a.mp4, got %q", got)
	}

	// the blank entry must not clobber the selection
	n.GetWidgetWithName(RecentWidget).SetValue("")
	if got, _ := n.WidgetValue(VideoWidget); got != "input/a.mp4" {
		t.Errorf("blank selection overwrote video widget, got %q", got)
	}
}

func TestRefreshButtonRebuildsOptions(t *testing.T) {
	bridge := &fakeBridge{recentFiles: []string{"a.mp4"}}
	g, _, _ := newTestGraph(t, bridge)
	n := createVideoNode(t, g)

	bridge.recentFiles = []string{"a.mp4", "b.mp4"}
	n.GetWidgetWithName(RefreshWidget).Press()

	w := n.GetWidgetWithName(RecentWidget)
	if len(w.Options) != 3 || w.Options[2] != "b.mp4" {
		t.Errorf("expected refreshed options with b.mp4, got %v", w.Options)
	}
}
