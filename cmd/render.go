package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newRenderCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Writes the rendered portfolio page",
		Long: `The render command performs the same single rendering pass as a page
load and writes the resulting HTML to --out, or to stdout when --out is
not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return a.render(cmd.OutOrStdout())
			}
			return a.renderFile(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write the page to")
	cmd.Flags().String("templates-dir", "", "load layout templates from this directory instead of the embedded ones")
	return cmd
}

func (a *app) render(w io.Writer) error {
	pages, err := a.pageRenderer()
	if err != nil {
		return err
	}
	return pages.Render(w, a.entries)
}

// renderFile replaces path only once the whole page has rendered, so a
// failed render leaves the previous file intact.
func (a *app) renderFile(path string) error {
	var buf bytes.Buffer
	if err := a.render(&buf); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := buf.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	a.logger.Infow("page rendered", "file", path, "entries", len(a.entries))
	return nil
}
