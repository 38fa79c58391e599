package extension

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/esp-dev/comfyui-videoframenode/graphapi"
)

// ErrUnsupportedFile is returned for files that are not .mp4.
var ErrUnsupportedFile = errors.New("only .mp4 files are supported")

// handleFile is the single path every entry point converges on: check the
// extension, upload, write the assigned name into the node's video widget,
// then best-effort refresh the recent dropdown.  A failed upload leaves the
// video widget untouched.
func (e *VideoNodeExtension) handleFile(target *graphapi.Node, filename string, r io.Reader) error {
	if !strings.EqualFold(filepath.Ext(filename), ".mp4") {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}

	name, err := e.bridge.UploadVideoFromReader(r, filename)
	if err != nil {
		return err
	}

	target.SetWidgetValue(VideoWidget, name)
	e.RefreshRecent(target)
	return nil
}

// HandleNodeDrop handles a file dropped directly onto a node.  Errors are
// logged and swallowed; a failed drop is a no-op for the user.
func (e *VideoNodeExtension) HandleNodeDrop(target *graphapi.Node, filename string, r io.Reader) {
	if err := e.handleFile(target, filename, r); err != nil {
		slog.Warn("node drop ignored", "file", filename, "error", err)
	}
}

// HandleGlobalDrop handles a file dropped anywhere on the document.  The
// drop targets the first VideoFirstLastFrame node in the graph; with no such
// node the drop is ignored.  Errors are logged and swallowed.
func (e *VideoNodeExtension) HandleGlobalDrop(g *graphapi.Graph, filename string, r io.Reader) {
	target := g.GetFirstNodeWithType(VideoNodeType)
	if target == nil {
		slog.Warn("global drop ignored, no video node in graph", "file", filename)
		return
	}
	if err := e.handleFile(target, filename, r); err != nil {
		slog.Warn("global drop ignored", "file", filename, "error", err)
	}
}
