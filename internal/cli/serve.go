package cli

import (
	"github.com/spf13/cobra"

	"github.com/javapkg/builddep/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	addr := ":8080"

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve build dependency extraction over HTTP",
		Long: `Run an HTTP service that extracts build dependencies from posted descriptors.

Endpoints:
  GET  /healthz          liveness check
  POST /api/v1/extract   body: pom.xml, response: extracted artifacts as JSON
  GET  /api/v1/policy    effective extraction policy as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, reg, err := c.newExtractor()
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			return server.Serve(cmd.Context(), addr, server.NewRouter(logger, x, reg), logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	return cmd
}
