package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmj2097/portfolio/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the portfolio page",
		Long: `The serve command renders the portfolio page on every request and serves
it together with the stylesheet, script and media files. With --watch the
layout templates are reloaded from --templates-dir whenever they change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().IntP("port", "p", 8080, "port to serve the page on")
	cmd.Flags().Bool("watch", false, "reload templates when they change")
	cmd.Flags().String("templates-dir", "", "load layout templates from this directory instead of the embedded ones")
	cmd.Flags().String("static-dir", "", "serve /static from this directory instead of the embedded assets")
	cmd.Flags().String("media-dir", "media", "directory served under /media")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	pages, err := a.pageRenderer()
	if err != nil {
		return err
	}

	if a.cfg.Watch {
		go func() {
			if err := pages.Watch(ctx, a.cfg.TemplatesDir); err != nil {
				a.logger.Errorw("template watcher stopped", "error", err)
			}
		}()
	}

	a.logger.Infow("serving portfolio",
		"port", a.cfg.Port,
		"entries", len(a.entries),
		"media_dir", a.cfg.MediaDir,
	)
	return server.New(a.cfg, pages, a.entries, a.logger).Run(ctx)
}
