package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "videoframenode",
		Short:   "Companion endpoints and upload tooling for the VideoFirstLastFrame node",
		Version: version,
		Long: `videoframenode runs the companion HTTP endpoints for the
VideoFirstLastFrame ComfyUI node and provides upload tooling:

  • serve   - run the upload and recent-files endpoints
  • upload  - upload an .mp4 to the server and print the assigned name
  • recent  - print the server's recent-files list
  • watch   - follow the websocket feed and report refresh events`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		uploadCmd(),
		recentCmd(),
		watchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
