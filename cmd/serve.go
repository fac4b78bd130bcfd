/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eslsoft/luci/internal/app"
	"github.com/eslsoft/luci/internal/infrastructure/database"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Connect RPC + HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		skipMigrate, _ := cmd.Flags().GetBool("skip-migrate")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		container, cleanup, err := app.Initialize(ctx)
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()
		logger := container.Logger

		if !skipMigrate {
			if err := database.Migrate(ctx, container.DB.Driver); err != nil {
				return err
			}
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(container.Server.Start)
		g.Go(func() error {
			return container.Ledger.Run(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			if ctx.Err() != nil {
				logger.Info("received shutdown signal")
			}
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), container.Config.Server.ShutdownTimeout)
			defer cancel()
			return container.Server.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			logger.WithError(err).Error("server stopped")
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("skip-migrate", false, "do not create or upgrade the schema before serving")
	serveCmd.Flags().Int("port", 0, "HTTP port (overrides SERVER_HTTP_PORT)")
	bindFlagToViper("server.http_port", serveCmd.Flags().Lookup("port"))
}
