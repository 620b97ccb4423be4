package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/stockdash/internal/adapters/web"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard to a local browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen == "" {
				listen = app.settings.Listen
			}

			ctx, stop := signal.NotifyContext(app.context(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server, err := web.NewServer(app.auth, app.stock, app.table, app.logger)
			if err != nil {
				return fmt.Errorf("build web server: %w", err)
			}

			listener, err := net.Listen("tcp", listen)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", listen, err)
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "serving on http://%s\n", listener.Addr()); err != nil {
				_ = listener.Close()
				return err
			}

			return web.Serve(ctx, listener, server.Handler())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (defaults to STOCKDASH_WEB_LISTEN or 127.0.0.1:8080)")

	return cmd
}
