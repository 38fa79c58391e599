package main

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/esp-dev/comfyui-videoframenode/server"
)

func serveCmd() *cobra.Command {
	var (
		listen  string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the videoframenode companion endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := server.NewStore(dataDir)
			if err != nil {
				return err
			}

			srv := server.New(store)
			slog.Info("serving videoframenode endpoints",
				"listen", listen, "input dir", store.InputDir())
			return http.ListenAndServe(listen, srv.Routes())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8189", "Listen address")
	cmd.Flags().StringVar(&dataDir, "data-dir", ".", "Directory holding input/ and output/")
	return cmd
}
