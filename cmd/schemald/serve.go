// Serve command runs the preview HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pressmark/schemald/internal/preview"
	"github.com/pressmark/schemald/internal/render"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered JSON-LD over HTTP for debugging",
	Long: `Serve starts a read-only preview server over the store:

  GET /healthz             liveness
  GET /head/:post          rendered head fragment for a post
  GET /schema/:key/:post   single JSON-LD object, 404 when empty`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := zap.NewProduction()
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(exitSysError)
		}
		defer log.Sync()

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		pipeline := render.New(store, store, store, render.WithLogger(log))
		server := preview.NewServer(pipeline, log)

		if err := server.Run(flagAddr); err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(exitSysError)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
}
