package client

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

type recentResponse struct {
	Files []string `json:"files"`
	Error string   `json:"error,omitempty"`
}

// RecentVideos retrieves the server's recent-files list.  On any failure
// (transport error, non-ok status, malformed body) it logs a warning and
// returns an empty list rather than an error; callers treat the list as
// purely cosmetic.
func (c *Client) RecentVideos() []string {
	resp, err := c.httpclient.Get(fmt.Sprintf("http://%s%s", c.serverBaseAddress, recentRoute))
	if err != nil {
		slog.Warn("fetching recent videos", "error", err)
		return []string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("fetching recent videos", "status", resp.StatusCode)
		return []string{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("reading recent videos response", "error", err)
		return []string{}
	}

	retv := &recentResponse{}
	if err := json.Unmarshal(body, retv); err != nil {
		slog.Warn("decoding recent videos response", "error", err)
		return []string{}
	}
	if retv.Files == nil {
		return []string{}
	}
	return retv.Files
}
