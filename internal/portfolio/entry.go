package portfolio

import "golang.org/x/net/html"

// EntrySize is the CSS class controlling how much room an entry takes.
type EntrySize string

const (
	SizeStandard EntrySize = "entrySizeStandard"
	SizeWide     EntrySize = "entrySizeWide"
)

// Entry is one self-contained portfolio item. Only Title, ID and Summary
// are required; every other field is skipped when empty.
type Entry struct {
	Title    string `validate:"required"`
	ID       string `validate:"required,htmlid"`
	Subtitle string
	Summary  string `validate:"required"`
	// Description is Markdown shown behind a "Read more" toggle.
	Description string
	Cover       *Image
	Links       *Group[Link]
	Gallery     *Group[Image]
	Audio       *Group[Audio]
	Size        EntrySize `validate:"omitempty,oneof=entrySizeStandard entrySizeWide"`
}

// ElementID is the id attribute of the entry's <article>.
func (e Entry) ElementID() string {
	return "entry-" + e.ID
}

// Anchor is the fragment the sidebar navigation links to.
func (e Entry) Anchor() string {
	return "#" + e.ElementID()
}

func (e Entry) size() EntrySize {
	if e.Size == "" {
		return SizeStandard
	}
	return e.Size
}

func (e Entry) Node() *html.Node {
	article := element("article", []string{string(e.size())}, attr("id", e.ElementID()))

	article.AppendChild(textElement("h3", e.Title))
	if e.Subtitle != "" {
		article.AppendChild(textElement("h4", e.Subtitle))
	}
	article.AppendChild(textElement("p", e.Summary))

	if e.Description != "" {
		article.AppendChild(e.descriptionNode())
	}
	if e.Cover != nil {
		article.AppendChild(e.Cover.Node())
	}
	if !e.Gallery.Empty() {
		article.AppendChild(e.Gallery.Node())
	}
	if !e.Audio.Empty() {
		article.AppendChild(e.Audio.Node())
	}
	if !e.Links.Empty() {
		article.AppendChild(e.Links.Node())
	}
	return article
}

func (e Entry) descriptionNode() *html.Node {
	details := element("details", []string{"entryDescription"})
	details.AppendChild(textElement("summary", "Read more"))

	nodes, err := markdownNodes(e.Description)
	if err != nil {
		// Show the source as plain text rather than losing it.
		details.AppendChild(textElement("p", e.Description))
		return details
	}
	for _, n := range nodes {
		details.AppendChild(n)
	}
	return details
}
