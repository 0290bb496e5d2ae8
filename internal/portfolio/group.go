package portfolio

import "golang.org/x/net/html"

// Group is an ordered run of same-kind modules rendered side by side.
type Group[T Module] struct {
	Items []T `validate:"dive"`
}

func NewGroup[T Module](items ...T) *Group[T] {
	return &Group[T]{Items: items}
}

// NewGallery groups images.
func NewGallery(images ...Image) *Group[Image] { return NewGroup(images...) }

// NewLinks groups links.
func NewLinks(links ...Link) *Group[Link] { return NewGroup(links...) }

// NewAudioGallery groups audio clips.
func NewAudioGallery(clips ...Audio) *Group[Audio] { return NewGroup(clips...) }

// Empty reports whether the group has nothing to render. A nil group is empty.
func (g *Group[T]) Empty() bool {
	return g == nil || len(g.Items) == 0
}

// Node always returns the wrapper, even for a nil or empty group, so that
// it satisfies Module. Callers that must omit absent groups check Empty
// first, as Entry does.
func (g *Group[T]) Node() *html.Node {
	wrapper := element("div", []string{"rowWrapGroup"})
	if g == nil {
		return wrapper
	}
	for _, item := range g.Items {
		wrapper.AppendChild(item.Node())
	}
	return wrapper
}
