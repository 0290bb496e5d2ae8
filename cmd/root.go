// Package cmd holds the command line interface.
package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jmj2097/portfolio/internal/config"
	"github.com/jmj2097/portfolio/internal/content"
	"github.com/jmj2097/portfolio/internal/logging"
	"github.com/jmj2097/portfolio/internal/page"
	"github.com/jmj2097/portfolio/internal/portfolio"
	"github.com/jmj2097/portfolio/web"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// app is what every subcommand works with once the root command has
// loaded configuration.
type app struct {
	cfg     config.Config
	logger  *zap.SugaredLogger
	entries []portfolio.Entry
}

// NewRootCommand builds the command tree. Flags bound to viper override
// the config file and the environment.
func NewRootCommand() *cobra.Command {
	var cfgFile string
	a := &app{}

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Renders and serves the portfolio page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, cfgFile)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	root.AddCommand(newServeCommand(a), newRenderCommand(a))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command, cfgFile string) error {
	v := config.New(cfgFile)
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		// --templates-dir sets templates_dir
		bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	cfg, used, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	if used != "" {
		logger.Infow("using config file", "file", used)
	}

	entries := content.Entries()
	if err := portfolio.Validate(entries); err != nil {
		return fmt.Errorf("invalid portfolio content: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.entries = entries
	return nil
}

// pageRenderer loads templates from templates_dir when set, otherwise from
// the embedded copy.
func (a *app) pageRenderer() (*page.Renderer, error) {
	var templates fs.FS = web.Templates()
	if a.cfg.TemplatesDir != "" {
		templates = os.DirFS(a.cfg.TemplatesDir)
	}
	return page.New(templates, page.Options{
		Title:             a.cfg.SiteTitle,
		SidebarBreakpoint: a.cfg.UI.SidebarBreakpoint,
		HighlightColor:    a.cfg.UI.HighlightColor,
		HighlightDuration: a.cfg.UI.HighlightDuration,
	}, a.logger)
}
