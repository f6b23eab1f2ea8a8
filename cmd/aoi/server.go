/*
File   : aoi/cmd/aoi/server.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akashmaji946/aoi/internal/config"
	"github.com/akashmaji946/aoi/internal/httpserver"
)

// newServerCommand builds `aoi server`: starts the HTTP collaborator
// bound to 0.0.0.0:<port> (default 8080, per spec.md §6).
func newServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the Aoi HTTP collaborator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer log.Sync()

			srv := httpserver.New(cfg, log)
			addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
			log.Info("starting server", zap.String("addr", addr))

			if err := http.ListenAndServe(addr, srv); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return nil
		},
	}
}
