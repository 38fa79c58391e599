package extension

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/esp-dev/comfyui-videoframenode/graphapi"
)

// ErrSessionUsed is returned when a browse session is given a second file.
var ErrSessionUsed = errors.New("browse session already consumed")

// BrowseSession is the one-shot file picker opened by the browse button.
// Each session carries its own target-node binding, so concurrent sessions
// on different nodes cannot cross-assign an uploaded filename.
type BrowseSession struct {
	ext    *VideoNodeExtension
	target *graphapi.Node
	used   atomic.Bool
}

// NewBrowseSession opens a picker session bound to the given node.
func (e *VideoNodeExtension) NewBrowseSession(target *graphapi.Node) *BrowseSession {
	return &BrowseSession{ext: e, target: target}
}

// Target returns the node this session uploads into.
func (s *BrowseSession) Target() *graphapi.Node {
	return s.target
}

// Choose delivers the picked file to the session's node.  A session accepts
// exactly one file; further calls fail.  Upload errors are logged and the
// node is left untouched, matching the drop entry points.
func (s *BrowseSession) Choose(filename string, r io.Reader) error {
	if !s.used.CompareAndSwap(false, true) {
		return ErrSessionUsed
	}
	if err := s.ext.handleFile(s.target, filename, r); err != nil {
		slog.Warn("browse pick ignored", "file", filename, "error", err)
		return err
	}
	return nil
}
