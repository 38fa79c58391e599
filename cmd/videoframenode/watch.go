package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/esp-dev/comfyui-videoframenode/client"
)

func watchCmd() *cobra.Command {
	var (
		address string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the websocket feed and report refresh events",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.NewClient(address, port)
			w := c.NewWatcher(func() {
				fmt.Printf("%s execution finished, recent list is stale\n",
					time.Now().Format(time.RFC3339))
			})
			if err := w.Connect(); err != nil {
				return err
			}
			defer w.Close()

			<-w.Done
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "localhost", "Server address")
	cmd.Flags().IntVar(&port, "port", 8188, "Server port")
	return cmd
}
