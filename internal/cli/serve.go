package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fingerbox/pkg/api"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		target  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP for live-preview clients.

Several instances can share one cache by pointing --cache at Redis or MongoDB:

  fingerbox serve --addr :8080 --cache redis://localhost:6379/0
  fingerbox serve --cache mongodb://localhost:27017/fingerbox`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, target, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&target, "cache", "", "cache directory or redis://, mongodb:// URL (default $"+cacheEnv+" or ~/.cache/"+appName+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, target string, noCache bool) error {
	runner, err := c.newRunner(ctx, target, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	installLogHooks(c.Logger)

	printSuccess("Serving layouts on %s", styleLink.Render("http://"+addr+"/api/v1"))
	printDetail("Press Ctrl+C to stop")

	return api.NewServer(runner, c.Logger).ListenAndServe(ctx, addr)
}
