package portfolio

import "golang.org/x/net/html"

// TooltipPosition is the CSS class that places a tooltip around its link.
type TooltipPosition string

const (
	TooltipUp    TooltipPosition = "ttUp"
	TooltipDown  TooltipPosition = "ttDown"
	TooltipLeft  TooltipPosition = "ttLeft"
	TooltipRight TooltipPosition = "ttRight"
)

// Tooltip is text shown while hovering a link.
type Tooltip struct {
	Text     string          `validate:"required"`
	Position TooltipPosition `validate:"oneof=ttUp ttDown ttLeft ttRight"`
}

// Link points at an external page. Links always open in a new tab.
type Link struct {
	Href    string `validate:"required"`
	Text    string `validate:"required"`
	Tooltip *Tooltip
}

func NewLink(href, text string) Link {
	return Link{Href: href, Text: text}
}

// WithTooltip returns a copy of l annotated with a tooltip.
func (l Link) WithTooltip(text string, pos TooltipPosition) Link {
	l.Tooltip = &Tooltip{Text: text, Position: pos}
	return l
}

func (l Link) Node() *html.Node {
	wrapper := element("div", []string{"toolTipped", "entryLink"})

	anchor := element("a", nil,
		attr("href", l.Href),
		attr("target", "_blank"),
		attr("rel", "noopener noreferrer"),
	)
	appendText(anchor, l.Text)
	wrapper.AppendChild(anchor)

	if l.Tooltip != nil {
		wrapper.AppendChild(textElement("span", l.Tooltip.Text, "toolTip", string(l.Tooltip.Position)))
	}
	return wrapper
}
