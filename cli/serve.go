package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumigrid/lumigrid/httpapi"
	"github.com/lumigrid/lumigrid/lightsout"
)

var serveAddr string

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver HTTP API",
		Long: `Serve the solver HTTP API.

POST /solve accepts {"board": <tiles>, "difficulty": "<label>"} and
answers with the press sequence that lights every tile.

Examples:
  lumigrid serve
  lumigrid serve --addr 0.0.0.0:9000`,
		RunE: runServe,
	}

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "127.0.0.1:8000", "Listen address")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	handler := httpapi.NewHandler(lightsout.New(), log)
	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           httpapi.CORS(httpapi.RequestLogger(log, mux)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithField("addr", serveAddr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
