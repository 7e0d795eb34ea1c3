package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scorecard/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scorecards over HTTP",
		Long: `Serve scorecards over HTTP.

Routes:
  GET /health
  GET /api/v1/games/{date}
  GET /api/v1/scorecards/{date}/{away}/{home}?game=1&format=svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, cfg, runnerOpts{needsDB: true})
			if err != nil {
				return err
			}
			defer runner.Close()

			if addr == "" {
				addr = cfg.Server.Addr
			}
			if addr == "" {
				addr = server.DefaultAddr
			}
			backend := "files"
			if cfg.Mongo.URI != "" {
				backend = "mongo"
			}
			printKeyValue("Address", addr)
			printKeyValue("Games", backend)
			printKeyValue("Health", StyleLink.Render(healthURL(addr)))
			srv := server.New(runner, c.Logger, server.Config{
				Addr:           addr,
				AllowedOrigins: cfg.Server.AllowedOrigins,
				RequestTimeout: cfg.Server.RequestTimeout,
			})
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+server.DefaultAddr+")")

	return cmd
}

// healthURL returns a browsable URL for a listen address such as ":8080".
func healthURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/health"
}
