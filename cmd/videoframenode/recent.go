package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/esp-dev/comfyui-videoframenode/client"
)

func recentCmd() *cobra.Command {
	var (
		address string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Print the server's recent-files list",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.NewClient(address, port)
			for _, f := range c.RecentVideos() {
				fmt.Println(f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "localhost", "Server address")
	cmd.Flags().IntVar(&port, "port", 8188, "Server port")
	return cmd
}
