package page

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jmj2097/portfolio/internal/content"
	"github.com/jmj2097/portfolio/internal/portfolio"
	"github.com/jmj2097/portfolio/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testOptions = Options{
	Title:             "Portfolio",
	SidebarBreakpoint: 850,
	HighlightColor:    "#d3cf00",
	HighlightDuration: 500 * time.Millisecond,
}

const minimalLayout = `<main>{{range .Nav}}[{{.Title}}|{{.Anchor}}]{{end}}{{range .Entries}}{{.}}{{end}}</main>`

func TestNew_MissingLayout(t *testing.T) {
	fsys := fstest.MapFS{"other.html": {Data: []byte("x")}}
	_, err := New(fsys, testOptions, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), LayoutName)
}

func TestNew_BrokenTemplate(t *testing.T) {
	fsys := fstest.MapFS{LayoutName: {Data: []byte("{{ .Title ")}}
	_, err := New(fsys, testOptions, nil)
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	r, err := New(fstest.MapFS{LayoutName: {Data: []byte(minimalLayout)}}, testOptions, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	data, err := r.Build([]portfolio.Entry{
		{Title: "First", ID: "first", Summary: "a"},
		{Title: "Second", ID: "second", Summary: "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", data.Title)
	assert.Equal(t, int64(500), data.HighlightMillis)
	assert.Equal(t, 850, data.Breakpoint)
	assert.Equal(t, []NavItem{
		{Title: "First", Anchor: "#entry-first"},
		{Title: "Second", Anchor: "#entry-second"},
	}, data.Nav)
	require.Len(t, data.Entries, 2)
	assert.Contains(t, string(data.Entries[1]), `id="entry-second"`)
}

func TestRender_EntriesNotEscaped(t *testing.T) {
	r, err := New(fstest.MapFS{LayoutName: {Data: []byte(minimalLayout)}}, testOptions, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, []portfolio.Entry{{Title: "A & B", ID: "ab", Summary: "s"}}))

	assert.Equal(t,
		`<main>[A &amp; B|#entry-ab]<article class="entrySizeStandard" id="entry-ab"><h3>A &amp; B</h3><p>s</p></article></main>`,
		buf.String())
}

func TestRender_EmbeddedLayout(t *testing.T) {
	r, err := New(web.Templates(), testOptions, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, content.Entries()))
	out := buf.String()

	assert.Contains(t, out, "<title>Portfolio</title>")
	assert.Contains(t, out, `data-sidebar-breakpoint="850"`)
	assert.Contains(t, out, "@media (min-width: 850px)")
	assert.Contains(t, out, `data-highlight-color="#d3cf00"`)
	assert.Contains(t, out, `data-highlight-ms="500"`)
	assert.Contains(t, out, `<a href="#entry-generalMusic" data-highlight="#entry-generalMusic">Music</a>`)

	mainStart := strings.Index(out, "<main>")
	require.GreaterOrEqual(t, mainStart, 0)
	for _, id := range []string{"entry-buffscript", "entry-generalMusic", "entry-generalSounds"} {
		assert.Greater(t, strings.Index(out, `id="`+id+`"`), mainStart, id)
	}
}

func TestReload_KeepsPreviousOnFailure(t *testing.T) {
	fsys := fstest.MapFS{LayoutName: {Data: []byte("v1")}}
	r, err := New(fsys, testOptions, nil)
	require.NoError(t, err)

	fsys[LayoutName] = &fstest.MapFile{Data: []byte("{{ broken")}
	require.Error(t, r.Reload())

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, nil))
	assert.Equal(t, "v1", buf.String())

	fsys[LayoutName] = &fstest.MapFile{Data: []byte("v2")}
	require.NoError(t, r.Reload())
	buf.Reset()
	require.NoError(t, r.Render(&buf, nil))
	assert.Equal(t, "v2", buf.String())
}

func TestRender_BreakpointDrivesStylesheet(t *testing.T) {
	opts := testOptions
	opts.SidebarBreakpoint = 1024
	r, err := New(web.Templates(), opts, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, content.Entries()))
	out := buf.String()

	assert.Contains(t, out, `data-sidebar-breakpoint="1024"`)
	assert.Contains(t, out, "@media (min-width: 1024px)")
	assert.NotContains(t, out, "850px")
}
