// Videoframenode is the upload plumbing for the VideoFirstLastFrame ComfyUI
// node.  It provides the companion server endpoints that accept .mp4 uploads
// and list recent videos, the client-side bridge that performs the uploads,
// and the node extension that wires dropdowns, drops and browse picks into
// the node's "video" widget.
package videoframenode
