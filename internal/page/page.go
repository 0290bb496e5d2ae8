// Package page assembles rendered entries into the layout template.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync/atomic"
	"time"

	"github.com/jmj2097/portfolio/internal/portfolio"
	"go.uber.org/zap"
)

// LayoutName is the template executed for the page.
const LayoutName = "index.html"

const defaultDebounce = 500 * time.Millisecond

// Options tune the page chrome and the browser-side affordances.
type Options struct {
	Title             string
	SidebarBreakpoint int
	HighlightColor    string
	HighlightDuration time.Duration
}

// NavItem is one sidebar link.
type NavItem struct {
	Title  string
	Anchor string
}

// Data is what the layout template sees.
type Data struct {
	Title           string
	Nav             []NavItem
	Entries         []template.HTML
	Breakpoint      int
	HighlightColor  string
	HighlightMillis int64
}

// Renderer owns the parsed layout. Templates can be swapped at runtime by
// Reload while requests are being served.
type Renderer struct {
	fsys     fs.FS
	opts     Options
	logger   *zap.SugaredLogger
	debounce time.Duration

	tmpl atomic.Pointer[template.Template]
}

// New parses the templates in fsys. fsys must contain LayoutName.
func New(fsys fs.FS, opts Options, logger *zap.SugaredLogger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	r := &Renderer{
		fsys:     fsys,
		opts:     opts,
		logger:   logger,
		debounce: defaultDebounce,
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses the templates. On failure the previous templates stay
// in use.
func (r *Renderer) Reload() error {
	t, err := template.ParseFS(r.fsys, "*.html")
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	if t.Lookup(LayoutName) == nil {
		return fmt.Errorf("layout %s not found in templates", LayoutName)
	}
	r.tmpl.Store(t)
	return nil
}

// Build renders every entry and collects the navigation.
func (r *Renderer) Build(entries []portfolio.Entry) (Data, error) {
	data := Data{
		Title:           r.opts.Title,
		Nav:             make([]NavItem, 0, len(entries)),
		Entries:         make([]template.HTML, 0, len(entries)),
		Breakpoint:      r.opts.SidebarBreakpoint,
		HighlightColor:  r.opts.HighlightColor,
		HighlightMillis: r.opts.HighlightDuration.Milliseconds(),
	}
	for _, entry := range entries {
		markup, err := portfolio.HTML(entry)
		if err != nil {
			return Data{}, fmt.Errorf("failed to render entry %s: %w", entry.ID, err)
		}
		data.Entries = append(data.Entries, markup)
		data.Nav = append(data.Nav, NavItem{Title: entry.Title, Anchor: entry.Anchor()})
	}
	return data, nil
}

// Render writes the full page for entries to w. Nothing is written if
// rendering fails part way.
func (r *Renderer) Render(w io.Writer, entries []portfolio.Entry) error {
	data, err := r.Build(entries)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Load().ExecuteTemplate(&buf, LayoutName, data); err != nil {
		return fmt.Errorf("failed to execute layout %s: %w", LayoutName, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}
