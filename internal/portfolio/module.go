// Package portfolio holds the content records shown on the page and turns
// them into HTML node trees.
package portfolio

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Module is any portfolio record that can produce its own markup.
type Module interface {
	Node() *html.Node
}

// Render writes the markup of m to w.
func Render(w io.Writer, m Module) error {
	if err := html.Render(w, m.Node()); err != nil {
		return fmt.Errorf("failed to render module: %w", err)
	}
	return nil
}

// HTML renders m into a string that templates will not escape again.
func HTML(m Module) (template.HTML, error) {
	var buf bytes.Buffer
	if err := Render(&buf, m); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// element creates a detached element node with the given classes and
// attributes. Classes come first so the output is stable.
func element(tag string, classes []string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(classes) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	n.Attr = append(n.Attr, attrs...)
	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// textElement creates an element whose only content is text.
func textElement(tag, text string, classes ...string) *html.Node {
	n := element(tag, classes)
	appendText(n, text)
	return n
}

// appendText adds text to n the way innerText assignment does: every
// newline becomes a <br>.
func appendText(n *html.Node, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			n.AppendChild(element("br", nil))
		}
		if line != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		}
	}
}
