package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/esp-dev/comfyui-videoframenode/client"
)

func uploadCmd() *cobra.Command {
	var (
		address string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "upload <file.mp4>",
		Short: "Upload an .mp4 and print the server-assigned name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			info, err := file.Stat()
			if err != nil {
				return err
			}

			c := client.NewClient(address, port)
			bar := progressbar.DefaultBytes(info.Size(), filepath.Base(path))
			pr := progressbar.NewReader(file, bar)
			name, err := c.UploadVideoFromReader(&pr, filepath.Base(path))
			if err != nil {
				return err
			}

			fmt.Println(name)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "localhost", "Server address")
	cmd.Flags().IntVar(&port, "port", 8188, "Server port")
	return cmd
}
