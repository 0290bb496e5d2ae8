package portfolio

import (
	"path"
	"strings"

	"golang.org/x/net/html"
)

// Image is a picture together with its accessible description.
type Image struct {
	Src string `validate:"required"`
	Alt string
}

func NewImage(src, alt string) Image {
	return Image{Src: src, Alt: alt}
}

func (i Image) Node() *html.Node {
	return element("img", nil, attr("src", i.Src), attr("alt", i.Alt))
}

// Audio is a playable clip with a caption.
type Audio struct {
	Src   string `validate:"required"`
	Title string
}

func NewAudio(src, title string) Audio {
	return Audio{Src: src, Title: title}
}

// Type returns the MIME type used for the clip's <source> element.
// Only wav and ogg are passed through, everything else is served as mpeg.
func (a Audio) Type() string {
	switch strings.ToLower(path.Ext(a.Src)) {
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	default:
		return "audio/mpeg"
	}
}

const audioFallback = "Your browser does not support the audio element."

func (a Audio) Node() *html.Node {
	player := element("audio", nil, attr("controls", ""))
	player.AppendChild(element("source", nil, attr("src", a.Src), attr("type", a.Type())))
	appendText(player, audioFallback)

	wrapper := element("div", []string{"audioClip"})
	if a.Title != "" {
		wrapper.AppendChild(textElement("h4", a.Title))
	}
	wrapper.AppendChild(player)
	return wrapper
}
